package story

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

type StoryController struct {
	repo StoryRepository
}

func NewStoryController(repo StoryRepository) *StoryController {
	return &StoryController{repo: repo}
}

type CreateStoryRequest struct {
	Title    string `json:"title" binding:"required,min=3,max=200"`
	Story    string `json:"story" binding:"required,min=20,max=10000"`
	Category string `json:"category" binding:"omitempty,max=100"`
	ImageURL string `json:"image_url" binding:"omitempty,url,max=500"`
	Featured bool   `json:"featured"`
}

// GetStories godoc
// @Summary List success stories
// @Description Featured stories come first.
// @Tags Stories
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]SuccessStory}
// @Router /stories [get]
func (sc *StoryController) GetStories(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	stories, total, err := sc.repo.GetStories(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve stories")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Stories retrieved successfully", stories, total, page, pageSize)
}

// GetStoryByID godoc
// @Summary Get a success story by ID
// @Tags Stories
// @Produce json
// @Param story_id path int true "Story ID"
// @Success 200 {object} responses.SuccessResponse{data=SuccessStory}
// @Failure 404 {object} responses.ErrorResponse "Story not found"
// @Router /stories/{story_id} [get]
func (sc *StoryController) GetStoryByID(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "story_id")
	if !ok {
		return
	}
	s, err := sc.repo.GetStoryByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve story")
		return
	}
	if s == nil {
		responses.NotFound(c, "Story")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Story retrieved successfully", s)
}

// CreateStory godoc
// @Summary Share a success story
// @Description Only admins can publish a story as featured.
// @Tags Stories
// @Accept json
// @Produce json
// @Param story body CreateStoryRequest true "Story"
// @Success 201 {object} responses.SuccessResponse{data=SuccessStory}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /stories [post]
// @Security BearerAuth
func (sc *StoryController) CreateStory(c *gin.Context) {
	session, err := common.GetSession(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	s := SuccessStory{
		UserID:   session.UserID,
		Title:    req.Title,
		Story:    req.Story,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Featured: req.Featured && session.HasRole("admin"),
	}
	if err := sc.repo.CreateStory(c.Request.Context(), &s); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to create story")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Story created successfully", s)
}
