package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"lazapee/internal/api"
	"lazapee/internal/forms"
	"lazapee/internal/seller"
	"lazapee/internal/session"
)

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// Onboarding serves the seller creation form. A user who already has a
// profile is redirected away; an unreachable backend shows a retryable
// error instead of the form.
func Onboarding(store *session.Store, resolver *seller.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "ONBOARDING")

		if !store.IsAuthenticated() {
			respondRedirect(c, "/login")
			return
		}

		status := resolver.Resolve(c.Request.Context())
		switch status.State {
		case seller.StateSeller:
			respondRedirect(c, "/")
		case seller.StateNotSeller:
			c.JSON(http.StatusOK, gin.H{"state": "ok", "form": forms.SellerForm{}})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"state": "error",
				"error": "Failed to load seller profile.",
				"retry": true,
			})
		}
	}
}

// OnboardingSubmit creates the seller profile. On success the local session
// is destroyed and the user is sent back to login: the fresh token carries
// the new seller claims.
func OnboardingSubmit(store *session.Store, sellers *api.SellerService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "ONBOARDING")

		var form forms.SellerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		payload, fieldErrors := forms.ParseSeller(form)
		if fieldErrors != nil {
			respondFieldErrors(c, fieldErrors)
			return
		}

		if !acquireSubmit(c, guard, "seller-create") {
			return
		}
		defer guard.Release("seller-create")

		created, err := sellers.Create(c.Request.Context(), *payload)
		if err != nil {
			respondBackendError(c, "SELLER", err, "Failed to create seller profile. Please try again.")
			return
		}

		if err := store.Clear(); err != nil {
			log.Println("[SELLER] [ERROR] forced logout failed:", err)
		}

		log.Println("[SELLER] [INFO] seller profile created:", created.StoreName)
		c.JSON(http.StatusOK, gin.H{
			"redirect": "/login",
			"message":  "Seller profile created. Please log in again.",
		})
	}
}

// ProfileEdit loads the current profile into an editable form.
func ProfileEdit(sellers *api.SellerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "SELLER")

		profile, err := sellers.MyProfile(c.Request.Context())
		if err != nil {
			log.Println("[SELLER] [ERROR] profile load failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"state":    "error",
				"error":    "Failed to load your store profile.",
				"redirect": "/seller/dashboard",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"state": "ok", "form": forms.SellerFormFrom(*profile)})
	}
}

func ProfileEditSubmit(sellers *api.SellerService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "SELLER")

		var form forms.SellerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		payload, fieldErrors := forms.ParseSellerUpdate(form)
		if fieldErrors != nil {
			respondFieldErrors(c, fieldErrors)
			return
		}

		if !acquireSubmit(c, guard, "seller-update") {
			return
		}
		defer guard.Release("seller-update")

		if _, err := sellers.Update(c.Request.Context(), *payload); err != nil {
			respondBackendError(c, "SELLER", err, "Failed to save changes. Please try again.")
			return
		}

		respondRedirect(c, "/seller/dashboard")
	}
}

type dashboardProduct struct {
	api.Product
	Stock *int `json:"stock,omitempty"`
}

// Dashboard needs the profile first (for the seller id), then that seller's
// products. Both must succeed; stock counts are best effort on top.
func Dashboard(sellers *api.SellerService, products *api.ProductService, inventory *api.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "DASHBOARD")

		profile, err := sellers.MyProfile(c.Request.Context())
		if err != nil {
			log.Println("[DASHBOARD] [ERROR] profile load failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"state": "error",
				"error": "Unable to load your store information. Please try again later.",
			})
			return
		}

		list, err := products.BySeller(c.Request.Context(), profile.SellerID)
		if err != nil {
			log.Println("[DASHBOARD] [ERROR] product load failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"state": "error",
				"error": "Unable to load your store information. Please try again later.",
			})
			return
		}

		store := gin.H{
			"sellerId":         profile.SellerID,
			"storeName":        profile.StoreName,
			"storeDescription": profile.StoreDescription,
			"status":           profile.Status,
		}

		if len(list) == 0 {
			c.JSON(http.StatusOK, gin.H{"state": "empty", "store": store})
			return
		}

		items := make([]dashboardProduct, len(list))
		group, ctx := errgroup.WithContext(c.Request.Context())
		group.SetLimit(4)
		for i, product := range list {
			items[i].Product = product
			group.Go(func() error {
				stock, err := inventory.ForProduct(ctx, product.ProductID)
				if err != nil {
					// Degrade to unknown stock; the dashboard still renders.
					log.Println("[DASHBOARD] [ERROR] stock lookup failed:", err)
					return nil
				}
				items[i].Stock = &stock.QuantityAvailable
				return nil
			})
		}
		_ = group.Wait()

		c.JSON(http.StatusOK, gin.H{"state": "ok", "store": store, "products": items})
	}
}

// DeleteAccount removes the seller profile. It is gated behind an explicit
// confirmation and forces a logout on success; failure is surfaced, not
// swallowed.
func DeleteAccount(store *session.Store, sellers *api.SellerService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "SELLER")

		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"state": "error", "error": "confirmation required"})
			return
		}

		if !acquireSubmit(c, guard, "seller-delete") {
			return
		}
		defer guard.Release("seller-delete")

		if err := sellers.DeleteMyProfile(c.Request.Context()); err != nil {
			log.Println("[SELLER] [ERROR] account deletion failed:", err)
			respondBackendError(c, "SELLER", err, "Failed to delete seller account. Please try again.")
			return
		}

		if err := store.Clear(); err != nil {
			log.Println("[SELLER] [ERROR] forced logout failed:", err)
		}

		log.Println("[SELLER] [INFO] seller account deleted")
		respondRedirect(c, "/")
	}
}
