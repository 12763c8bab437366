// Package dashboard serves the signed-in user's home screen summary.
package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/listing"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/internal/suggestion"
	"github.com/DhavalSuthar-24/skillbloom/internal/user"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
)

type Summary struct {
	ProfileCompletion  int         `json:"profile_completion"`
	Skills             skill.Stats `json:"skills"`
	ActiveListings     int64       `json:"active_listings"`
	PendingSuggestions int64       `json:"pending_suggestions"`
}

type (
	skillStats interface {
		StatsForOwner(ctx context.Context, ownerID uint) (skill.Stats, error)
	}
	listingCounter interface {
		CountActiveByHomemaker(ctx context.Context, homemakerID uint) (int64, error)
	}
	suggestionCounter interface {
		CountPending(ctx context.Context, userID uint) (int64, error)
	}
)

type DashboardController struct {
	db          *gorm.DB
	skills      skillStats
	listings    listingCounter
	suggestions suggestionCounter
}

func NewDashboardController(db *gorm.DB, skills skillStats, listings listingCounter, suggestions suggestionCounter) *DashboardController {
	return &DashboardController{db: db, skills: skills, listings: listings, suggestions: suggestions}
}

// GetDashboard godoc
// @Summary My dashboard
// @Description Profile completion, skill statistics, active listings and pending suggestions
// @Tags Dashboard
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	ctx := c.Request.Context()

	var u user.User
	if err := dc.db.WithContext(ctx).Select("id", "profile_completion").First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to load profile")
		return
	}

	summary := Summary{ProfileCompletion: u.Completion()}
	if summary.Skills, err = dc.skills.StatsForOwner(ctx, userID); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to load skill statistics")
		return
	}
	if summary.ActiveListings, err = dc.listings.CountActiveByHomemaker(ctx, userID); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to count listings")
		return
	}
	if summary.PendingSuggestions, err = dc.suggestions.CountPending(ctx, userID); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to count suggestions")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Dashboard retrieved successfully", summary)
}

func RegisterDashboardRoutes(router *gin.RouterGroup, db *gorm.DB, auth gin.HandlerFunc) {
	controller := NewDashboardController(db,
		skill.NewSkillRepository(db),
		listing.NewListingRepository(db),
		suggestion.NewSuggestionRepository(db),
	)
	router.GET("/dashboard", auth, controller.GetDashboard)
}
