package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/femifunmi/foundation-backend-go/config"
)

// AdminAuth guards write and read-privileged endpoints with the shared
// admin secret carried in the x-admin-key header.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-key")
		if key == "" || key != cfg.AdminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
