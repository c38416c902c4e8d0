// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
//
// Allowed origins are exact origins ("https://shop.example.com"), subdomain
// wildcards ("*.example.com") or "*". Credentials are only allowed for a
// specific matched origin, never for "*".
func CORS(cfg *config.Config) gin.HandlerFunc {
	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Vary", "Origin")
		}

		switch originAccess(origin, cfg.Security.CORSAllowedOrigins) {
		case accessOrigin:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		case accessAny:
			c.Header("Access-Control-Allow-Origin", "*")
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type access int

const (
	accessNone access = iota
	accessAny
	accessOrigin
)

// originAccess matches origin against the allow list. A specific match wins
// over a bare "*" so that listed origins keep their credentials.
func originAccess(origin string, allowedOrigins []string) access {
	if origin == "" {
		return accessNone
	}

	host := ""
	if u, err := url.Parse(origin); err == nil {
		host = strings.ToLower(u.Hostname())
	}

	result := accessNone
	for _, allowed := range allowedOrigins {
		allowed = strings.TrimSpace(allowed)
		switch {
		case allowed == "*":
			result = accessAny
		case strings.HasPrefix(allowed, "*."):
			// "*.example.com" covers sub.example.com but not evilexample.com
			// and not the bare example.com
			domain := strings.ToLower(strings.TrimPrefix(allowed, "*"))
			if host != "" && strings.HasSuffix(host, domain) {
				return accessOrigin
			}
		case strings.EqualFold(allowed, origin):
			return accessOrigin
		}
	}
	return result
}
