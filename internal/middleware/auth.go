package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/token"
)

// RoleLookup resolves a user's current roles. It returns an error when the
// user does not exist (or was deleted).
type RoleLookup interface {
	GetUserRoles(userID uint) ([]string, error)
}

// AuthMiddleware validates the bearer token and attaches a common.Session to
// the request. Roles come from the database, not the token, so revocations
// take effect immediately.
func AuthMiddleware(jwtSecret string, roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		userRoles, err := roles.GetUserRoles(claims.UserID)
		if err != nil {
			responses.SendError(c, http.StatusUnauthorized, "User not found or inactive", nil)
			return
		}

		common.SetSession(c, &common.Session{
			UserID:    claims.UserID,
			Roles:     userRoles,
			RequestID: c.GetString(common.ContextRequestIDKey),
		})
		c.Next()
	}
}
