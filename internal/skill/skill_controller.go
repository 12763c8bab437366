package skill

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

// SkillController handles API requests related to a homemaker's skills.
type SkillController struct {
	repo SkillRepository
}

// NewSkillController creates a new SkillController.
func NewSkillController(repo SkillRepository) *SkillController {
	return &SkillController{repo: repo}
}

// --- DTOs ---

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Category    string `json:"category" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Level       *int   `json:"level" binding:"omitempty,min=0,max=5"`
}

type UpdateSkillRequest struct {
	Name        string  `json:"name" binding:"omitempty,min=2,max=100"`
	Category    string  `json:"category" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Level       *int    `json:"level" binding:"omitempty,min=0,max=5"`
}

// CreateSkill godoc
// @Summary Add a skill
// @Description A homemaker adds a self-reported, unverified skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill body CreateSkillRequest true "Skill creation request"
// @Success 201 {object} responses.SuccessResponse{data=Skill}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills [post]
// @Security BearerAuth
func (sc *SkillController) CreateSkill(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	skill := Skill{
		OwnerID:     userID,
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}

	if err := sc.repo.CreateSkill(c.Request.Context(), &skill); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to create skill")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Skill created successfully", skill)
}

// GetMySkills godoc
// @Summary List my skills
// @Tags Skills
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Skill}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/me [get]
// @Security BearerAuth
func (sc *SkillController) GetMySkills(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	page, pageSize := common.Pagination(c)

	skills, total, err := sc.repo.GetSkillsByOwner(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Skills retrieved successfully", skills, total, page, pageSize)
}

// GetSkillByID godoc
// @Summary Get a skill by ID
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse{data=Skill}
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [get]
func (sc *SkillController) GetSkillByID(c *gin.Context) {
	skillID, ok := common.ParseIDParam(c, "skill_id")
	if !ok {
		return
	}

	skill, err := sc.repo.GetSkillByID(c.Request.Context(), skillID)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill retrieved successfully", skill)
}

// UpdateSkill godoc
// @Summary Update one of my skills
// @Description Renaming or recategorising a verified skill removes its verification.
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Param skill body UpdateSkillRequest true "Skill update request"
// @Success 200 {object} responses.SuccessResponse{data=Skill}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 409 {object} responses.ErrorResponse "Level of a verified skill is set by verification"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [put]
// @Security BearerAuth
func (sc *SkillController) UpdateSkill(c *gin.Context) {
	skill, ok := sc.ownedSkill(c)
	if !ok {
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	identityChanged := (name != "" && name != skill.Name) || (category != "" && !strings.EqualFold(category, skill.Category))

	if name != "" {
		skill.Name = name
	}
	if category != "" {
		skill.Category = category
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if identityChanged {
		skill.ClearVerification()
	}
	if req.Level != nil && *req.Level != skill.Level {
		if skill.IsVerified {
			responses.SendError(c, http.StatusConflict, "The level of a verified skill is set by verification", nil)
			return
		}
		skill.Level = *req.Level
	}

	if err := sc.repo.UpdateSkill(c.Request.Context(), skill); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to update skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill updated successfully", skill)
}

// DeleteSkill godoc
// @Summary Delete one of my skills
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [delete]
// @Security BearerAuth
func (sc *SkillController) DeleteSkill(c *gin.Context) {
	skill, ok := sc.ownedSkill(c)
	if !ok {
		return
	}

	if err := sc.repo.DeleteSkill(c.Request.Context(), skill.ID); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to delete skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill deleted successfully", nil)
}

// ownedSkill loads the :skill_id skill and checks the caller owns it. It
// writes the error response itself when it returns false.
func (sc *SkillController) ownedSkill(c *gin.Context) (*Skill, bool) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil, false
	}
	skillID, ok := common.ParseIDParam(c, "skill_id")
	if !ok {
		return nil, false
	}

	skill, err := sc.repo.GetSkillByID(c.Request.Context(), skillID)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve skill")
		return nil, false
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return nil, false
	}
	if skill.OwnerID != userID {
		responses.Forbidden(c, "You can only manage your own skills")
		return nil, false
	}
	return skill, true
}
