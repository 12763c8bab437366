package mentor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"github.com/DhavalSuthar-24/skillbloom/internal/testutil"
)

func names(ms []Mentor) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestGetMentors(t *testing.T) {
	db := testutil.DB(t, &Mentor{})
	repo := NewMentorRepository(db)
	ctx := context.Background()

	for _, m := range []Mentor{
		{Name: "Asha", Expertise: models.StringSlice{"Baking", "Pricing"}, Rating: 4.2, Available: true},
		{Name: "Meera", Expertise: models.StringSlice{"Tailoring"}, Rating: 4.8, Available: true},
		{Name: "Lata", Expertise: models.StringSlice{"baking"}, Rating: 4.9, Available: true},
	} {
		require.NoError(t, repo.CreateMentor(ctx, &m))
	}
	require.NoError(t, db.Model(&Mentor{}).Where("name = ?", "Lata").Update("available", false).Error)

	all, total, err := repo.GetMentors(ctx, "", false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"Lata", "Meera", "Asha"}, names(all))

	bakers, _, err := repo.GetMentors(ctx, "BAKING", false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lata", "Asha"}, names(bakers))

	available, _, err := repo.GetMentors(ctx, "baking", true, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha"}, names(available))
	assert.Equal(t, []string{"Baking", "Pricing"}, []string(available[0].Expertise))
}

func TestCreateMentorIsAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t, &Mentor{})
	auth := func(c *gin.Context) {
		common.SetSession(c, &common.Session{UserID: 1, Roles: strings.Split(c.GetHeader("X-Roles"), ",")})
	}
	r := gin.New()
	RegisterMentorRoutes(r.Group("/api"), db, auth)

	post := func(roles string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/mentors", strings.NewReader(`{"name":"Asha","expertise":["Baking"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Roles", roles)
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, req)
		return rsp.Code
	}
	assert.Equal(t, http.StatusForbidden, post("homemaker"))
	assert.Equal(t, http.StatusCreated, post("admin"))

	rsp := httptest.NewRecorder()
	r.ServeHTTP(rsp, httptest.NewRequest(http.MethodGet, "/api/mentors/1", nil))
	assert.Equal(t, http.StatusOK, rsp.Code)
	assert.Contains(t, rsp.Body.String(), `"expertise":["Baking"]`)
}
