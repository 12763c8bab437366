package skill

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/pkg/rmiddleware"
)

func RegisterSkillRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc) {
	skillController := NewSkillController(NewSkillRepository(db))

	mySkills := router.Group("/skills")
	mySkills.Use(auth)
	{
		mySkills.GET("/me", skillController.GetMySkills)
		mySkills.POST("", rmiddleware.HomemakerMiddleware(), skillController.CreateSkill)
		mySkills.PUT("/:skill_id", skillController.UpdateSkill)
		mySkills.DELETE("/:skill_id", skillController.DeleteSkill)
	}

	router.GET("/skills/:skill_id", skillController.GetSkillByID)
}
