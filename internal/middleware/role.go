package middleware

import (
	"net/http"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the user has one of the
// required roles.
func RequireRole(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
			c.Abort()
			return
		}

		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.NewAPIError("User role not found in token"))
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok {
			c.JSON(http.StatusForbidden, models.NewAPIError("Invalid role format"))
			c.Abort()
			return
		}

		for _, required := range requiredRoles {
			if userRole == required {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, models.NewAPIError("Insufficient permissions"))
		c.Abort()
	}
}

// CanModify is the single ownership predicate for mutating endpoints:
// owners may touch any entry, everyone else only entries they created.
func CanModify(role string, userID, creatorID uint) bool {
	return role == models.RoleOwner || creatorID == userID
}
