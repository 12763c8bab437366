package suggestion

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

type SuggestionController struct {
	service *Service
}

func NewSuggestionController(service *Service) *SuggestionController {
	return &SuggestionController{service: service}
}

type GenerateSuggestionsRequest struct {
	Interests  []string `json:"interests" binding:"omitempty,max=20,dive,max=100"`
	Experience string   `json:"experience" binding:"omitempty,max=2000"`
	Bio        string   `json:"bio" binding:"omitempty,max=2000"`
}

// GenerateSuggestions godoc
// @Summary Suggest skills
// @Description Proposes up to five skills from the caller's interests, experience and bio. Replaces earlier pending suggestions.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body GenerateSuggestionsRequest true "Profile hints"
// @Success 200 {object} responses.SuccessResponse{data=[]SkillSuggestion}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 502 {object} responses.ErrorResponse "Suggestion provider failed"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/suggestions [post]
// @Security BearerAuth
func (sc *SuggestionController) GenerateSuggestions(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req GenerateSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	out, err := sc.service.Generate(c.Request.Context(), userID, ai.SuggestRequest{
		Interests:  req.Interests,
		Experience: req.Experience,
		Bio:        req.Bio,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Suggestions generated successfully", out)
}

// GetPendingSuggestions godoc
// @Summary List my pending suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SkillSuggestion}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/suggestions [get]
// @Security BearerAuth
func (sc *SuggestionController) GetPendingSuggestions(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	out, err := sc.service.Pending(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Suggestions retrieved successfully", out)
}

// AcceptSuggestion godoc
// @Summary Accept a suggestion
// @Description Creates an unverified skill from the suggestion.
// @Tags Suggestions
// @Produce json
// @Param suggestion_id path int true "Suggestion ID"
// @Success 201 {object} responses.SuccessResponse{data=skill.Skill}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Suggestion not found"
// @Failure 409 {object} responses.ErrorResponse "Already accepted"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/suggestions/{suggestion_id}/accept [post]
// @Security BearerAuth
func (sc *SuggestionController) AcceptSuggestion(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	suggestionID, ok := common.ParseIDParam(c, "suggestion_id")
	if !ok {
		return
	}

	created, err := sc.service.Accept(c.Request.Context(), userID, suggestionID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Suggestion accepted", created)
}
