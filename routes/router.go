package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/config"
	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/auth"
	"github.com/DhavalSuthar-24/skillbloom/internal/category"
	"github.com/DhavalSuthar-24/skillbloom/internal/dashboard"
	"github.com/DhavalSuthar-24/skillbloom/internal/listing"
	"github.com/DhavalSuthar-24/skillbloom/internal/mentor"
	"github.com/DhavalSuthar-24/skillbloom/internal/middleware"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/internal/story"
	"github.com/DhavalSuthar-24/skillbloom/internal/suggestion"
	"github.com/DhavalSuthar-24/skillbloom/internal/verification"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
)

// Deps are the collaborators the HTTP layer needs besides the database.
type Deps struct {
	Log       *logger.Logger
	Verifier  verification.Collaborator
	Suggester suggestion.Suggester
	Cache     suggestion.Cache
}

func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Deps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Verifier == nil {
		deps.Verifier = ai.Disabled{}
	}
	if deps.Suggester == nil {
		deps.Suggester = ai.Disabled{}
	}
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(deps.Log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMW := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, auth.NewAuthRepository(db))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, authMW, deps.Log)
	skill.RegisterSkillRoutes(api, db, authMW)
	verification.RegisterVerificationRoutes(api, db, authMW, deps.Verifier, cfg.AI.VerifyTimeout, deps.Log)
	suggestion.RegisterSuggestionRoutes(api, suggestion.NewService(db, deps.Suggester, deps.Cache, cfg.Redis.TTL, cfg.AI.SuggestTimeout, deps.Log), authMW)
	assessment.RegisterAssessmentRoutes(api)
	listing.RegisterListingRoutes(api, db, authMW)
	mentor.RegisterMentorRoutes(api, db, authMW)
	story.RegisterStoryRoutes(api, db, authMW)
	category.RegisterCategoryRoutes(api)
	dashboard.RegisterDashboardRoutes(api, db, authMW)

	return r
}
