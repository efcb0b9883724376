package middleware

import (
	"github.com/gin-gonic/gin"
)

// TenantGuard rejects requests that reach a tenant-scoped route
// without a tenant in the context. AuthMiddleware normally sets it;
// the guard catches routes wired without auth by mistake.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextKeyTenantID); !ok {
			abortUnauthorized(c, "tenant context required")
			return
		}
		c.Next()
	}
}
