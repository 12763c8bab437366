package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
)

func engineWithSession(s *common.Session, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if s != nil {
			common.SetSession(c, s)
		}
		c.Next()
	}, gate, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRoleMiddleware(t *testing.T) {
	cases := []struct {
		name    string
		session *common.Session
		gate    gin.HandlerFunc
		want    int
	}{
		{"no session", nil, AdminMiddleware(), http.StatusUnauthorized},
		{"wrong role", &common.Session{UserID: 1, Roles: []string{"customer"}}, HomemakerMiddleware(), http.StatusForbidden},
		{"homemaker", &common.Session{UserID: 1, Roles: []string{"homemaker"}}, HomemakerMiddleware(), http.StatusNoContent},
		{"admin passes homemaker gate", &common.Session{UserID: 1, Roles: []string{"admin"}}, HomemakerMiddleware(), http.StatusNoContent},
		{"case insensitive", &common.Session{UserID: 1, Roles: []string{"ADMIN"}}, AdminMiddleware(), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rsp := httptest.NewRecorder()
			engineWithSession(tc.session, tc.gate).ServeHTTP(rsp, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tc.want, rsp.Code)
		})
	}
}
