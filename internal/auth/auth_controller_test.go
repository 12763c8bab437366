package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/config"
	"github.com/DhavalSuthar-24/skillbloom/internal/middleware"
	"github.com/DhavalSuthar-24/skillbloom/internal/testutil"
	"github.com/DhavalSuthar-24/skillbloom/internal/user"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/utils"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

func init() {
	utils.HashCost = bcrypt.MinCost
	validator.UseJSONFieldNames()
}

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t, &user.User{}, &user.Role{}, &user.UserRole{}, &user.RefreshToken{})
	require.NoError(t, SeedRoles(db))

	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "access"
	cfg.JWT.RefreshTokenSecret = "refresh"
	cfg.JWT.AccessTokenExpiryMinutes = 15
	cfg.JWT.RefreshTokenExpiryDays = 7

	r := gin.New()
	authMW := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, NewAuthRepository(db))
	RegisterAuthRoutes(r.Group("/api"), db, cfg, authMW, logger.Nop())
	return r, db
}

func call(t *testing.T, r http.Handler, method, path, bearer string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rsp := httptest.NewRecorder()
	r.ServeHTTP(rsp, req)

	var env envelope
	_ = json.Unmarshal(rsp.Body.Bytes(), &env)
	return rsp, env
}

func register(t *testing.T, r http.Handler, body gin.H) AuthResponse {
	t.Helper()
	rsp, env := call(t, r, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rsp.Code, rsp.Body.String())
	var out AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newRouter(t)

	out := register(t, r, gin.H{
		"name": "Asha Patil", "username": "ashabakes", "email": "Asha@Example.com",
		"password": "password123", "role": "homemaker", "city": "Pune",
	})
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "asha@example.com", out.User.Email)
	assert.Equal(t, []string{"homemaker"}, out.User.Roles)
	assert.Equal(t, 36, out.User.ProfileCompletion)

	rsp, _ := call(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Other", "username": "other", "email": "asha@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, rsp.Code)

	rsp, env := call(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bad", "username": "bad", "email": "bad@example.com", "password": "short", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rsp.Code)
	assert.Contains(t, env.Errors, "password")
	assert.Contains(t, env.Errors, "role")

	for _, id := range []string{"asha@example.com", "ashabakes"} {
		rsp, _ = call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"login_identifier": id, "password": "password123"})
		assert.Equal(t, http.StatusOK, rsp.Code, id)
	}
	rsp, _ = call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"login_identifier": "ashabakes", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)
	rsp, _ = call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"login_identifier": "nobody", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)
}

func TestDefaultRoleIsCustomer(t *testing.T) {
	r, _ := newRouter(t)
	out := register(t, r, gin.H{"name": "Ravi", "username": "ravi", "email": "ravi@example.com", "password": "password123"})
	assert.Equal(t, []string{user.RoleCustomer}, out.User.Roles)
}

func TestProfile(t *testing.T) {
	r, _ := newRouter(t)
	out := register(t, r, gin.H{"name": "Asha", "username": "asha", "email": "asha@example.com", "password": "password123"})

	rsp, _ := call(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)

	rsp, env := call(t, r, http.MethodPut, "/api/auth/me", out.AccessToken, gin.H{
		"bio": "Home baker", "city": "Pune", "interests": []string{"baking"},
		"social_media": gin.H{"instagram": "asha.bakes"},
	})
	require.Equal(t, http.StatusOK, rsp.Code, rsp.Body.String())
	var profile UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Home baker", profile.Bio)
	assert.Equal(t, []string{"baking"}, profile.Interests)
	assert.Equal(t, 64, profile.ProfileCompletion)

	rsp, env = call(t, r, http.MethodGet, "/api/auth/me", out.AccessToken, nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "asha.bakes", profile.SocialMedia.Instagram)
	assert.Equal(t, 64, profile.ProfileCompletion)
}

func TestRefreshRotatesToken(t *testing.T) {
	r, _ := newRouter(t)
	out := register(t, r, gin.H{"name": "Asha", "username": "asha", "email": "asha@example.com", "password": "password123"})

	rsp, env := call(t, r, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refresh_token": out.RefreshToken})
	require.Equal(t, http.StatusOK, rsp.Code, rsp.Body.String())
	var next AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &next))
	assert.NotEqual(t, out.RefreshToken, next.RefreshToken)

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refresh_token": out.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code, "old token was revoked")

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refresh_token": out.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code, "access tokens are signed with another secret")
}

func TestLogoutAndChangePassword(t *testing.T) {
	r, db := newRouter(t)
	out := register(t, r, gin.H{"name": "Asha", "username": "asha", "email": "asha@example.com", "password": "password123"})

	rsp, _ := call(t, r, http.MethodPost, "/api/auth/logout", out.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, rsp.Code)

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/logout", out.AccessToken, gin.H{"refresh_token": out.RefreshToken})
	require.Equal(t, http.StatusOK, rsp.Code)
	rsp, _ = call(t, r, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refresh_token": out.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/change-password", out.AccessToken, gin.H{
		"old_password": "nope-nope", "new_password": "newpassword1", "password_confirm": "newpassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/change-password", out.AccessToken, gin.H{
		"old_password": "password123", "new_password": "newpassword1", "password_confirm": "newpassword1",
	})
	require.Equal(t, http.StatusOK, rsp.Code, rsp.Body.String())

	var live int64
	require.NoError(t, db.Model(&user.RefreshToken{}).Where("revoked = ?", false).Count(&live).Error)
	assert.Zero(t, live)

	rsp, _ = call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"login_identifier": "asha", "password": "newpassword1"})
	assert.Equal(t, http.StatusOK, rsp.Code)
}

func TestDeletedUserTokenRejected(t *testing.T) {
	r, db := newRouter(t)
	out := register(t, r, gin.H{"name": "Asha", "username": "asha", "email": "asha@example.com", "password": "password123"})
	require.NoError(t, db.Delete(&user.User{}, out.User.ID).Error)

	rsp, _ := call(t, r, http.MethodGet, "/api/auth/me", out.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rsp.Code)
}

func TestSeedRolesIsIdempotent(t *testing.T) {
	db := testutil.DB(t, &user.Role{})
	require.NoError(t, SeedRoles(db))
	require.NoError(t, SeedRoles(db))
	var n int64
	require.NoError(t, db.Model(&user.Role{}).Count(&n).Error)
	assert.Equal(t, int64(len(user.DefaultRoles)), n)
}
