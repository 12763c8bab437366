package rmiddleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
)

// RoleMiddleware admits sessions holding any of requiredRoles. It must run
// after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := common.GetSession(c)
		if err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		if !session.HasRole(requiredRoles...) {
			responses.SendError(c, http.StatusForbidden, "You don't have permission to access this resource", gin.H{
				"required":   requiredRoles,
				"user_roles": session.Roles,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

// HomemakerMiddleware admits homemakers (and admins acting on their behalf).
func HomemakerMiddleware() gin.HandlerFunc {
	return RoleMiddleware("homemaker", "admin")
}
