// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/digibay/digibay-backend/internal/authz"
	"github.com/digibay/digibay-backend/internal/models"
)

// callerFromContext rebuilds the caller identity set by the auth middleware.
// The second return is false for unauthenticated requests.
func callerFromContext(c *gin.Context) (authz.Caller, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return authz.Caller{}, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return authz.Caller{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return authz.Caller{}, false
	}

	role := models.UserRoleUser
	if roleVal, exists := c.Get("user_role"); exists {
		if roleStr, ok := roleVal.(string); ok && roleStr != "" {
			role = models.UserRole(roleStr)
		}
	}

	return authz.Caller{ID: id, Role: role}, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
