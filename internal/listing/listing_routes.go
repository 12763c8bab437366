package listing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/pkg/rmiddleware"
)

func RegisterListingRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc) {
	listingController := NewListingController(NewListingRepository(db))

	publicListings := router.Group("/listings")
	{
		publicListings.GET("", listingController.GetListings)
		publicListings.GET("/:listing_id", listingController.GetListingByID)
	}

	homemakerListings := router.Group("/listings")
	homemakerListings.Use(auth, rmiddleware.HomemakerMiddleware())
	{
		homemakerListings.POST("", listingController.CreateListing)
		homemakerListings.PUT("/:listing_id", listingController.UpdateListing)
		homemakerListings.DELETE("/:listing_id", listingController.DeleteListing)
	}
}
