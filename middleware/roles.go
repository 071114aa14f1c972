package middleware

import (
	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/utils"
)

// RequireCapability gates a route group on a role capability instead of
// comparing role strings at the call sites.
func RequireCapability(check func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(utils.CurrentRole(c))
		if !role.Valid() || !check(role) {
			c.AbortWithStatusJSON(403, gin.H{"success": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}

func RequireTourManager() gin.HandlerFunc {
	return RequireCapability(models.Role.CanManageTours)
}

func RequireSlotManager() gin.HandlerFunc {
	return RequireCapability(models.Role.CanManageSlots)
}
