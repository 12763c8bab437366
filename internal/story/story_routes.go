package story

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterStoryRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc) {
	storyController := NewStoryController(NewStoryRepository(db))

	router.GET("/stories", storyController.GetStories)
	router.GET("/stories/:story_id", storyController.GetStoryByID)
	router.POST("/stories", auth, storyController.CreateStory)
}
