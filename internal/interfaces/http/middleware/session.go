// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/config"
	"github.com/your-org/printmart/internal/domain/session"
	"github.com/your-org/printmart/internal/pkg/auth"
)

const (
	sessionIDKey    = "session_id"
	sessionStoreKey = "session_store"
)

// Session resolves the session cookie to a session store. A missing or
// invalid token starts a new session and sets a fresh cookie. A valid token
// past half its lifetime is re-issued for the same session, so the cookie
// lasts as long as the session keeps being used.
func Session(cfg *config.Config, manager *auth.SessionManager, registry *session.Registry) gin.HandlerFunc {
	setCookie := func(c *gin.Context, token string) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, token, int(cfg.Session.TTL.Seconds()), "/", "", cfg.Session.SecureCookie, true)
	}

	return func(c *gin.Context) {
		var sessionID string
		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			if claims, err := manager.ParseToken(token); err == nil {
				sessionID = claims.Subject
				if manager.NeedsRefresh(claims) {
					// A failed refresh leaves the current token in place
					if fresh, err := manager.GenerateToken(sessionID); err == nil {
						setCookie(c, fresh)
					}
				}
			}
		}

		if sessionID == "" {
			id, token, err := manager.NewSession()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to start session",
				})
				c.Abort()
				return
			}
			sessionID = id
			setCookie(c, token)
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(sessionStoreKey, registry.Get(sessionID))
		c.Next()
	}
}

// GetStoreFromContext returns the session store resolved by Session
func GetStoreFromContext(c *gin.Context) (*session.Store, bool) {
	value, exists := c.Get(sessionStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(*session.Store)
	return store, ok
}

// GetSessionIDFromContext returns the session id resolved by Session
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(sessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}

// RequireIdentity aborts with 401 unless the session is signed in
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := GetStoreFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Session not initialized",
			})
			c.Abort()
			return
		}

		if _, signedIn := store.Identity(); !signedIn {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Sign in required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
