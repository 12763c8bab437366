package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/config"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, auth gin.HandlerFunc, log *logger.Logger) {
	authController := NewAuthController(NewAuthRepository(db), appConfig, log)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/refresh-token", authController.RefreshToken)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(auth)
	{
		authProtected.GET("/me", authController.GetProfile)
		authProtected.PUT("/me", authController.UpdateProfile)
		authProtected.POST("/change-password", authController.ChangePassword)
		authProtected.POST("/logout", authController.Logout)
	}
}
