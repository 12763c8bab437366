package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/token"
)

type stubRoles map[uint][]string

func (s stubRoles) GetUserRoles(userID uint) ([]string, error) {
	roles, ok := s[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return roles, nil
}

func newEngine(roles RoleLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger.Nop()))
	r.GET("/me", AuthMiddleware("secret", roles), func(c *gin.Context) {
		s, err := common.GetSession(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		fromReq, _ := common.SessionFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID, "roles": s.Roles, "rid": fromReq.RequestID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(stubRoles{5: {"homemaker"}})

	t.Run("missing header", func(t *testing.T) {
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rsp.Code)
		assert.NotEmpty(t, rsp.Header().Get(RequestIDHeader))
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, req)
		assert.Equal(t, http.StatusUnauthorized, rsp.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		tok, err := token.GenerateJWT(6, nil, "secret", 5)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, req)
		assert.Equal(t, http.StatusUnauthorized, rsp.Code)
	})

	t.Run("valid token sets session", func(t *testing.T) {
		tok, err := token.GenerateJWT(5, nil, "secret", 5)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		req.Header.Set(RequestIDHeader, "rid-1")
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, req)

		assert.Equal(t, http.StatusOK, rsp.Code)
		assert.JSONEq(t, `{"user_id":5,"roles":["homemaker"],"rid":"rid-1"}`, rsp.Body.String())
		assert.Equal(t, "rid-1", rsp.Header().Get(RequestIDHeader))
	})
}
