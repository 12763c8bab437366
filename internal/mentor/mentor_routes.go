package mentor

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/pkg/rmiddleware"
)

func RegisterMentorRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc) {
	mentorController := NewMentorController(NewMentorRepository(db))

	router.GET("/mentors", mentorController.GetMentors)
	router.GET("/mentors/:mentor_id", mentorController.GetMentorByID)
	router.POST("/mentors", auth, rmiddleware.AdminMiddleware(), mentorController.CreateMentor)
}
