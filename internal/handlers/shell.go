package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lazapee/internal/seller"
	"lazapee/internal/session"
)

type navLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Shell returns the layout/navigation state: who is signed in and whether
// seller-only entries should be shown. An unreachable backend renders the
// shell as non-seller rather than blocking the whole layout.
func Shell(store *session.Store, resolver *seller.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "SHELL")

		view := gin.H{
			"brand":         "LazaPee",
			"authenticated": false,
		}
		nav := []navLink{{Label: "Home", Path: "/"}}

		if !store.IsAuthenticated() {
			nav = append(nav,
				navLink{Label: "Log In", Path: "/login"},
				navLink{Label: "Register", Path: "/signup"},
			)
			view["nav"] = nav
			c.JSON(http.StatusOK, view)
			return
		}

		view["authenticated"] = true
		if user := store.Identity(); user != nil {
			view["user"] = user
		}

		status := resolver.Resolve(c.Request.Context())
		if status.IsSeller() {
			view["seller"] = gin.H{"isSeller": true, "storeName": status.Profile.StoreName}
			nav = append(nav, navLink{Label: "Seller Dashboard", Path: "/seller/dashboard"})
		} else {
			// StateUnavailable lands here too; the resolver already logged it.
			view["seller"] = gin.H{"isSeller": false}
			nav = append(nav, navLink{Label: "Become a Seller", Path: "/seller/onboarding"})
		}

		view["nav"] = nav
		c.JSON(http.StatusOK, view)
	}
}
