package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the authenticated address.
const CallerKey = "callerAddress"

func JWTMiddleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		token := strings.TrimSpace(authz[7:])
		if svc.IsDevToken(token) {
			c.Set(CallerKey, svc.DevAddress())
			c.Next()
			return
		}

		claims, err := svc.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(CallerKey, claims.Address)
		c.Next()
	}
}

// Caller returns the address set by JWTMiddleware.
func Caller(c *gin.Context) string {
	return c.GetString(CallerKey)
}

// OptionalJWTMiddleware sets the caller when a bearer token is present and
// lets anonymous requests through. An invalid token is still rejected.
func OptionalJWTMiddleware(svc *Service) gin.HandlerFunc {
	required := JWTMiddleware(svc)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		required(c)
	}
}
