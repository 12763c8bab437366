package suggestion

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/pkg/rmiddleware"
)

func RegisterSuggestionRoutes(router *gin.RouterGroup, service *Service, auth gin.HandlerFunc) {
	controller := NewSuggestionController(service)

	suggestions := router.Group("/skills/suggestions")
	suggestions.Use(auth, rmiddleware.HomemakerMiddleware())
	{
		suggestions.POST("", controller.GenerateSuggestions)
		suggestions.GET("", controller.GetPendingSuggestions)
		suggestions.POST("/:suggestion_id/accept", controller.AcceptSuggestion)
	}
}
