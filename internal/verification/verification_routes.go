package verification

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/rmiddleware"
)

func RegisterVerificationRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc, scorer Collaborator, timeout time.Duration, log *logger.Logger) {
	service := NewService(NewStore(db), scorer, timeout, log)
	controller := NewVerificationController(service, skill.NewSkillRepository(db), assessment.NewAssessmentRepository(db))

	skills := router.Group("/skills")
	skills.Use(auth)
	{
		skills.POST("/verify", rmiddleware.HomemakerMiddleware(), controller.VerifySkill)
		skills.GET("/:skill_id/assessments", controller.GetAssessmentHistory)
	}
}
