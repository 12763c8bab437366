package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAssessmentRoutes(r.Group("/api"))

	cases := map[string]Bucket{
		"/api/assessments/questions?category=Baking":    BucketCooking,
		"/api/assessments/questions?category=Tutoring":  BucketTutoring,
		"/api/assessments/questions?category=Gardening": BucketGeneric,
		"/api/assessments/questions":                    BucketGeneric,
	}
	for path, bucket := range cases {
		rsp := httptest.NewRecorder()
		r.ServeHTTP(rsp, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rsp.Code)
		assert.Equal(t, "public, max-age=3600", rsp.Header().Get("Cache-Control"))

		var body struct {
			Data QuestionSet `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &body))
		assert.Equal(t, bucket, body.Data.Bucket, path)
		require.Len(t, body.Data.Questions, 5)
		assert.Equal(t, QuestionExperience, body.Data.Questions[0].ID)
		assert.Equal(t, QuestionEducation, body.Data.Questions[1].ID)
	}
}
