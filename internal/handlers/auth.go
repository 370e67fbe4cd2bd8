package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lazapee/internal/api"
	"lazapee/internal/forms"
	"lazapee/internal/session"
)

type LoginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpForm struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LogIn authenticates against the backend and persists the returned session.
func LogIn(store *session.Store, auth *api.AuthService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "LOGIN")

		var form LoginForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		if !acquireSubmit(c, guard, "login") {
			return
		}
		defer guard.Release("login")

		resp, err := auth.Login(c.Request.Context(), api.Credentials{
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			respondBackendError(c, "AUTH", err, "Failed to log in. Please try again.")
			return
		}

		if err := store.Save(session.Session{Token: resp.Token, User: resp.User}); err != nil {
			log.Println("[AUTH] [ERROR] session persist failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"state": "error", "error": "could not persist session"})
			return
		}

		log.Println("[AUTH] [INFO] login succeeded:", resp.User.Email)
		respondRedirect(c, "/")
	}
}

// SignUp registers a new account. Missing required fields are rejected
// locally; the backend is never called for an incomplete payload.
func SignUp(store *session.Store, auth *api.AuthService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "SIGNUP")

		var form SignUpForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		if !acquireSubmit(c, guard, "signup") {
			return
		}
		defer guard.Release("signup")

		resp, err := auth.Register(c.Request.Context(), api.SignUpRequest{
			UserName: form.UserName,
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			respondBackendError(c, "AUTH", err, "Failed to sign up. Please try again.")
			return
		}

		if resp.Token != "" {
			if err := store.Save(session.Session{Token: resp.Token, User: resp.User}); err != nil {
				log.Println("[AUTH] [ERROR] session persist failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"state": "error", "error": "could not persist session"})
				return
			}
		}

		log.Println("[AUTH] [INFO] sign-up succeeded:", form.Email)
		respondRedirect(c, "/")
	}
}

// LogOut clears the persisted session.
func LogOut(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "LOGOUT")

		if err := store.Clear(); err != nil {
			log.Println("[AUTH] [ERROR] session clear failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"state": "error", "error": "could not clear session"})
			return
		}
		respondRedirect(c, "/")
	}
}
