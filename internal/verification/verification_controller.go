package verification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

type VerificationController struct {
	service     *Service
	skills      skill.SkillRepository
	assessments assessment.AssessmentRepository
}

func NewVerificationController(service *Service, skills skill.SkillRepository, assessments assessment.AssessmentRepository) *VerificationController {
	return &VerificationController{service: service, skills: skills, assessments: assessments}
}

type VerifySkillRequest struct {
	SkillID uint              `json:"skill_id" binding:"required"`
	Answers map[string]string `json:"answers"`
}

// VerifySkill godoc
// @Summary Verify a skill
// @Description Scores the assessment answers for one of the caller's skills and records the verified level.
// @Tags Skills
// @Accept json
// @Produce json
// @Param request body VerifySkillRequest true "Skill id and answers keyed by question id"
// @Success 200 {object} responses.SuccessResponse{data=Result}
// @Failure 400 {object} responses.ErrorResponse "Validation error with per-question detail"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 502 {object} responses.ErrorResponse "Assessment provider failed"
// @Failure 504 {object} responses.ErrorResponse "Assessment provider timed out"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/verify [post]
// @Security BearerAuth
func (vc *VerificationController) VerifySkill(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req VerifySkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	result, err := vc.service.VerifySkill(c.Request.Context(), userID, req.SkillID, req.Answers)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill verified successfully", result)
}

// GetAssessmentHistory godoc
// @Summary List assessments for one of my skills
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse{data=[]assessment.AssessmentResponse}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id}/assessments [get]
// @Security BearerAuth
func (vc *VerificationController) GetAssessmentHistory(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	skillID, ok := common.ParseIDParam(c, "skill_id")
	if !ok {
		return
	}

	sk, err := vc.skills.GetSkillByID(c.Request.Context(), skillID)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if sk == nil {
		responses.NotFound(c, "Skill")
		return
	}
	if sk.OwnerID != userID {
		responses.Forbidden(c, "You can only view assessments of your own skills")
		return
	}

	history, err := vc.assessments.ListForSkill(c.Request.Context(), userID, skillID)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve assessments")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Assessments retrieved successfully", history)
}
