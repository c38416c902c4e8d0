// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/domain/session"
	"github.com/your-org/printmart/internal/interfaces/http/middleware"
)

// AuthHandler handles sign-in, sign-out and profile endpoints.
// Sign-in accepts any name and email: there are no credentials.
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Please enter your name and email.",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please enter your name and email.",
		})
		return
	}

	identity := store.SignIn(name, email)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"data":    identity,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	store.SignOut()

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	identity, signedIn := store.Identity()
	if !signedIn {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    identity,
	})
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	var req session.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	identity, signedIn := store.UpdateProfile(req)
	if !signedIn {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings saved",
		"data":    identity,
	})
}

// storeOrAbort fetches the session store, answering 500 when the session
// middleware did not run
func storeOrAbort(c *gin.Context) (*session.Store, bool) {
	store, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Session not initialized",
		})
		c.Abort()
		return nil, false
	}
	return store, true
}
