package mentor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

type MentorController struct {
	repo MentorRepository
}

func NewMentorController(repo MentorRepository) *MentorController {
	return &MentorController{repo: repo}
}

type CreateMentorRequest struct {
	UserID    *uint    `json:"user_id"`
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Title     string   `json:"title" binding:"omitempty,max=150"`
	Expertise []string `json:"expertise" binding:"required,min=1,max=20,dive,min=2,max=50"`
	Bio       string   `json:"bio" binding:"omitempty,max=5000"`
	Rating    float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ImageURL  string   `json:"image_url" binding:"omitempty,url,max=500"`
}

// GetMentors godoc
// @Summary List mentors
// @Tags Mentors
// @Produce json
// @Param expertise query string false "Expertise to filter by"
// @Param available query boolean false "Only mentors taking mentees"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Mentor}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /mentors [get]
func (mc *MentorController) GetMentors(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	onlyAvailable, _ := strconv.ParseBool(c.Query("available"))

	mentors, total, err := mc.repo.GetMentors(c.Request.Context(), c.Query("expertise"), onlyAvailable, page, pageSize)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve mentors")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Mentors retrieved successfully", mentors, total, page, pageSize)
}

// GetMentorByID godoc
// @Summary Get a mentor by ID
// @Tags Mentors
// @Produce json
// @Param mentor_id path int true "Mentor ID"
// @Success 200 {object} responses.SuccessResponse{data=Mentor}
// @Failure 404 {object} responses.ErrorResponse "Mentor not found"
// @Router /mentors/{mentor_id} [get]
func (mc *MentorController) GetMentorByID(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "mentor_id")
	if !ok {
		return
	}
	m, err := mc.repo.GetMentorByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve mentor")
		return
	}
	if m == nil {
		responses.NotFound(c, "Mentor")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Mentor retrieved successfully", m)
}

// CreateMentor godoc
// @Summary Add a mentor
// @Tags Mentors
// @Accept json
// @Produce json
// @Param mentor body CreateMentorRequest true "Mentor creation request"
// @Success 201 {object} responses.SuccessResponse{data=Mentor}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Admins only"
// @Router /mentors [post]
// @Security BearerAuth
func (mc *MentorController) CreateMentor(c *gin.Context) {
	var req CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m := Mentor{
		UserID:    req.UserID,
		Name:      req.Name,
		Title:     req.Title,
		Expertise: models.StringSlice(req.Expertise),
		Bio:       req.Bio,
		Rating:    req.Rating,
		ImageURL:  req.ImageURL,
		Available: true,
	}
	if err := mc.repo.CreateMentor(c.Request.Context(), &m); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to create mentor")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Mentor created successfully", m)
}
