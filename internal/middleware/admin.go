package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
)

// adminLevel is the minimum user level treated as admin.
const adminLevel = 10

// IsAdmin reports whether the authenticated user is an admin, either by
// role claim or by level.
func IsAdmin(c *gin.Context) bool {
	if role, ok := GetUserRole(c); ok && role == domain.RoleAdmin {
		return true
	}
	return GetUserLevel(c) >= adminLevel
}

// RequireAdmin checks that the authenticated user has admin access
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			common.ErrorResponse(c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
