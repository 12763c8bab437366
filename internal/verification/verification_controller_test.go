package verification

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/internal/testutil"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
)

// headerAuth trusts X-User-ID; it stands in for the JWT middleware.
func headerAuth(c *gin.Context) {
	id, err := strconv.Atoi(c.GetHeader("X-User-ID"))
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	common.SetSession(c, &common.Session{UserID: uint(id), Roles: []string{"homemaker"}})
	c.Next()
}

func newRouter(t *testing.T, scorer Collaborator) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t, &skill.Skill{}, &assessment.AssessmentResponse{})
	r := gin.New()
	RegisterVerificationRoutes(r.Group("/api"), db, headerAuth, scorer, time.Second, logger.Nop())
	return r, db
}

func do(r http.Handler, method, path string, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rsp := httptest.NewRecorder()
	r.ServeHTTP(rsp, req)
	return rsp
}

func TestVerifySkillEndpoint(t *testing.T) {
	scorer := &stubScorer{verdict: ai.Verification{SkillLevel: 4, Feedback: "Strong technique", Score: 88}}
	r, db := newRouter(t, scorer)
	seedSkill(t, db, 42, 7, "baking")

	rsp := do(r, http.MethodPost, "/api/skills/verify", "7", gin.H{"skill_id": 42, "answers": bakingAnswers})
	require.Equal(t, http.StatusOK, rsp.Code, rsp.Body.String())

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Skill struct {
				ID         uint `json:"ID"`
				Level      int  `json:"level"`
				IsVerified bool `json:"is_verified"`
			} `json:"skill"`
			Details skill.VerificationDetails `json:"verification_details"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, uint(42), body.Data.Skill.ID)
	assert.Equal(t, 4, body.Data.Skill.Level)
	assert.True(t, body.Data.Skill.IsVerified)
	assert.Equal(t, 88.0, body.Data.Details.Score)

	t.Run("history", func(t *testing.T) {
		rsp := do(r, http.MethodGet, "/api/skills/42/assessments", "7", nil)
		require.Equal(t, http.StatusOK, rsp.Code)
		var hist struct {
			Data []assessment.AssessmentResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &hist))
		require.Len(t, hist.Data, 1)
		assert.Equal(t, "pastry", hist.Data[0].Responses.Data()["techniques"])

		assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/skills/42/assessments", "8", nil).Code)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/skills/43/assessments", "7", nil).Code)
	})
}

func TestVerifySkillEndpointStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		scorer *stubScorer
		user   string
		body   any
		want   int
	}{
		{"missing skill id", &stubScorer{}, "7", gin.H{"answers": bakingAnswers}, http.StatusBadRequest},
		{"missing required answers", &stubScorer{}, "7", gin.H{"skill_id": 1, "answers": gin.H{"techniques": "x"}}, http.StatusBadRequest},
		{"unknown skill", &stubScorer{}, "7", gin.H{"skill_id": 99, "answers": bakingAnswers}, http.StatusNotFound},
		{"not owner", &stubScorer{}, "8", gin.H{"skill_id": 1, "answers": bakingAnswers}, http.StatusForbidden},
		{"provider failure", &stubScorer{err: errors.New("down")}, "7", gin.H{"skill_id": 1, "answers": bakingAnswers}, http.StatusBadGateway},
		{"malformed verdict", &stubScorer{verdict: ai.Verification{SkillLevel: 9, Score: 10}}, "7", gin.H{"skill_id": 1, "answers": bakingAnswers}, http.StatusBadGateway},
		{"no session", &stubScorer{}, "", gin.H{"skill_id": 1, "answers": bakingAnswers}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, db := newRouter(t, tc.scorer)
			seedSkill(t, db, 1, 7, "baking")

			rsp := do(r, http.MethodPost, "/api/skills/verify", tc.user, tc.body)
			assert.Equal(t, tc.want, rsp.Code, rsp.Body.String())
		})
	}
}

func TestVerifySkillEndpointValidationDetail(t *testing.T) {
	r, db := newRouter(t, &stubScorer{})
	seedSkill(t, db, 1, 7, "baking")

	rsp := do(r, http.MethodPost, "/api/skills/verify", "7", gin.H{"skill_id": 1, "answers": gin.H{"experience": "3"}})
	require.Equal(t, http.StatusBadRequest, rsp.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &body))
	assert.Equal(t, "answer is required", body.Errors["education"])
}
