package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/fleet_inventory/pkg/utils"
)

// RequireRoles guards a route group behind a role set: the authenticated
// actor must hold at least one of the allowed roles. Evaluation order is
// authenticated first (JWTMiddleware runs before this), then role
// intersection; failure short-circuits before any handler runs.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get(ContextRolesKey)
		if !exists {
			utils.RespondForbiddenError(c, "Role set not found in request context")
			return
		}

		actorRoles, ok := rolesVal.([]string)
		if !ok || !utils.HasIntersection(actorRoles, allowedRoles) {
			utils.RespondForbiddenError(c)
			return
		}

		c.Next()
	}
}
