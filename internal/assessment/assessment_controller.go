package assessment

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
)

// QuestionSet is the catalog reply for one category.
type QuestionSet struct {
	Category  string     `json:"category"`
	Bucket    Bucket     `json:"bucket"`
	Questions []Question `json:"questions"`
}

// GetQuestions godoc
// @Summary Assessment questions for a category
// @Description Returns the ordered question set used to verify a skill of the given category. Unknown categories get the generic set.
// @Tags Assessments
// @Produce json
// @Param category query string false "Skill category, matched case-insensitively"
// @Success 200 {object} responses.SuccessResponse{data=QuestionSet}
// @Router /assessments/questions [get]
func GetQuestions(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	c.Header("Cache-Control", "public, max-age=3600")
	responses.SendSuccess(c, http.StatusOK, "Questions retrieved successfully", QuestionSet{
		Category:  category,
		Bucket:    BucketFor(category),
		Questions: QuestionsFor(category),
	})
}

func RegisterAssessmentRoutes(router *gin.RouterGroup) {
	router.GET("/assessments/questions", GetQuestions)
}
