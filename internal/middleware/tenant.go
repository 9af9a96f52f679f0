package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TenantMiddleware requires the storefront tenant id on every public
// request and makes it available to handlers that forward it upstream.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		appID := c.GetHeader("X-App-Id")
		if appID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-App-Id header"})
			c.Abort()
			return
		}

		c.Set("appID", appID)
		c.Next()
	}
}
