package middleware

import (
	"strings"

	"langart/internal/auth"
	app_errors "langart/internal/errors"
	"langart/internal/response"

	"github.com/gin-gonic/gin"
)

// claimsKey is the context key under which AdminAuth stores the verified
// session claims.
const claimsKey = "admin_claims"

// AdminAuth gates admin routes behind the session cookie. An Authorization
// bearer header is accepted as a fallback for non-browser clients. Any
// missing or invalid token yields a 401 with no detail about which check
// failed.
func AdminAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.Error(c, app_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			response.Error(c, app_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the session claims stored by AdminAuth, or nil
// on unauthenticated routes.
func ClaimsFromContext(c *gin.Context) *auth.SessionClaims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

// extractToken reads the session token from the cookie, falling back to the
// Authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
