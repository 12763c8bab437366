package skill

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/testutil"
)

// headerAuth trusts X-User-ID and X-Roles; it stands in for the JWT middleware.
func headerAuth(c *gin.Context) {
	id, err := strconv.Atoi(c.GetHeader("X-User-ID"))
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	roles := strings.Split(c.GetHeader("X-Roles"), ",")
	common.SetSession(c, &common.Session{UserID: uint(id), Roles: roles})
	c.Next()
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t, &Skill{})
	r := gin.New()
	RegisterSkillRoutes(r.Group("/api"), db, headerAuth)
	return r, db
}

func do(r http.Handler, method, path, user, roles string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
		req.Header.Set("X-Roles", roles)
	}
	rsp := httptest.NewRecorder()
	r.ServeHTTP(rsp, req)
	return rsp
}

func verifiedSkill(t *testing.T, db *gorm.DB, owner uint) *Skill {
	t.Helper()
	s := &Skill{OwnerID: owner, Category: "Baking", Name: "Sourdough", Level: 1}
	require.NoError(t, db.Create(s).Error)
	s.ApplyVerification(VerificationDetails{VerifiedAt: time.Now().UTC(), SkillLevel: 4, Feedback: "good", Score: 80})
	require.NoError(t, NewSkillRepository(db).UpdateVerification(context.Background(), s))
	return s
}

func TestCreateAndListSkills(t *testing.T) {
	r, _ := newRouter(t)

	rsp := do(r, http.MethodPost, "/api/skills", "7", "homemaker", gin.H{"name": "Knitting", "category": "Crafts", "level": 2})
	require.Equal(t, http.StatusCreated, rsp.Code, rsp.Body.String())

	rsp = do(r, http.MethodPost, "/api/skills", "7", "homemaker", gin.H{"name": "Embroidery", "category": "Crafts", "level": 9})
	assert.Equal(t, http.StatusBadRequest, rsp.Code)

	rsp = do(r, http.MethodPost, "/api/skills", "8", "customer", gin.H{"name": "Knitting", "category": "Crafts"})
	assert.Equal(t, http.StatusForbidden, rsp.Code)

	rsp = do(r, http.MethodGet, "/api/skills/me", "7", "homemaker", nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	var page struct {
		Data       []Skill `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"total_items"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Knitting", page.Data[0].Name)
	assert.False(t, page.Data[0].IsVerified)
	assert.Equal(t, int64(1), page.Pagination.TotalItems)
}

func TestGetSkillByIDIsPublic(t *testing.T) {
	r, db := newRouter(t)
	s := verifiedSkill(t, db, 7)

	rsp := do(r, http.MethodGet, "/api/skills/"+strconv.Itoa(int(s.ID)), "", "", nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	assert.Contains(t, rsp.Body.String(), `"is_verified":true`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/skills/999", "", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/skills/abc", "", "", nil).Code)
}

func TestUpdateSkill(t *testing.T) {
	t.Run("rename clears verification", func(t *testing.T) {
		r, db := newRouter(t)
		s := verifiedSkill(t, db, 7)

		rsp := do(r, http.MethodPut, "/api/skills/"+strconv.Itoa(int(s.ID)), "7", "homemaker", gin.H{"name": "Rye bread"})
		require.Equal(t, http.StatusOK, rsp.Code, rsp.Body.String())

		stored, err := NewSkillRepository(db).GetSkillByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rye bread", stored.Name)
		assert.False(t, stored.IsVerified)
		assert.Nil(t, stored.VerificationDate)
		assert.Nil(t, stored.VerificationDetails)
		assert.Equal(t, 4, stored.Level)
	})

	t.Run("description edit keeps verification", func(t *testing.T) {
		r, db := newRouter(t)
		s := verifiedSkill(t, db, 7)

		rsp := do(r, http.MethodPut, "/api/skills/"+strconv.Itoa(int(s.ID)), "7", "homemaker", gin.H{"description": "Naturally leavened"})
		require.Equal(t, http.StatusOK, rsp.Code)

		stored, err := NewSkillRepository(db).GetSkillByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsVerified)
		_, ok := stored.Details()
		assert.True(t, ok)
	})

	t.Run("level of verified skill is locked", func(t *testing.T) {
		r, db := newRouter(t)
		s := verifiedSkill(t, db, 7)

		rsp := do(r, http.MethodPut, "/api/skills/"+strconv.Itoa(int(s.ID)), "7", "homemaker", gin.H{"level": 5})
		assert.Equal(t, http.StatusConflict, rsp.Code)
	})

	t.Run("other owner", func(t *testing.T) {
		r, db := newRouter(t)
		s := verifiedSkill(t, db, 7)

		rsp := do(r, http.MethodPut, "/api/skills/"+strconv.Itoa(int(s.ID)), "8", "homemaker", gin.H{"name": "Mine now"})
		assert.Equal(t, http.StatusForbidden, rsp.Code)
	})
}

func TestDeleteSkill(t *testing.T) {
	r, db := newRouter(t)
	s := verifiedSkill(t, db, 7)
	path := "/api/skills/" + strconv.Itoa(int(s.ID))

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, path, "8", "homemaker", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, path, "7", "homemaker", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, "", "", nil).Code)
}

func TestStatsForOwner(t *testing.T) {
	db := testutil.DB(t, &Skill{})
	repo := NewSkillRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateSkill(ctx, &Skill{OwnerID: 7, Category: "Crafts", Name: "Knitting", Level: 1}))
	verifiedSkill(t, db, 7)
	second := verifiedSkill(t, db, 7)
	second.ApplyVerification(VerificationDetails{VerifiedAt: time.Now().UTC(), SkillLevel: 2, Score: 40})
	require.NoError(t, repo.UpdateVerification(ctx, second))
	verifiedSkill(t, db, 9)

	stats, err := repo.StatsForOwner(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Verified)
	assert.InDelta(t, 3.0, stats.AverageVerified, 0.001)

	empty, err := repo.StatsForOwner(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, empty)
}

func TestUpdateVerificationMissingRow(t *testing.T) {
	db := testutil.DB(t, &Skill{})
	s := &Skill{Model: gorm.Model{ID: 55}}
	s.ApplyVerification(VerificationDetails{VerifiedAt: time.Now(), SkillLevel: 3, Score: 50})
	err := NewSkillRepository(db).UpdateVerification(context.Background(), s)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
