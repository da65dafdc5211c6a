package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"excursion-booking/internal/entity"
	"excursion-booking/pkg/session"
)

const principalKey = "principal"

// Session resolves the session cookie to a principal and attaches it to
// the request context. It never aborts; the Require* guards decide.
func Session(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := store.Get(c.Request.Context(), token)
		if err == nil && principal != nil {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// PrincipalFromContext returns the request principal, or nil for an
// anonymous request.
func PrincipalFromContext(c *gin.Context) *entity.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*entity.Principal)
	if !ok {
		return nil
	}
	return principal
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFromContext(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   entity.ErrUnauthorized.Error(),
			})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   entity.ErrForbidden.Error(),
			})
			return
		}
		c.Next()
	}
}
