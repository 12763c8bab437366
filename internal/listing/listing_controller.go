package listing

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

// ListingController handles API requests related to marketplace listings.
type ListingController struct {
	repo ListingRepository
}

func NewListingController(repo ListingRepository) *ListingController {
	return &ListingController{repo: repo}
}

type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=150"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Category    string   `json:"category" binding:"required,max=100"`
	Subcategory string   `json:"subcategory" binding:"omitempty,max=100"`
	Price       float64  `json:"price" binding:"gte=0"`
	Currency    string   `json:"currency" binding:"omitempty,len=3"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url,max=500"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

type UpdateListingRequest struct {
	Title       string   `json:"title" binding:"omitempty,min=3,max=150"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	Subcategory *string  `json:"subcategory" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=500"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	IsActive    *bool    `json:"is_active"`
}

// GetListings godoc
// @Summary Browse listings
// @Description Active listings filtered by category and subcategory ("All Categories" or empty disables the filter)
// @Tags Listings
// @Produce json
// @Param category query string false "Category, case-insensitive"
// @Param subcategory query string false "Subcategory, case-insensitive"
// @Param search query string false "Text searched in title and description"
// @Param sort query string false "newest, price_asc, price_desc or rating" default(newest)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Listing}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /listings [get]
func (lc *ListingController) GetListings(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	criteria := Criteria{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Search:      c.Query("search"),
		Sort:        ParseSort(c.Query("sort")),
	}

	listings, total, err := lc.repo.FindActive(c.Request.Context(), criteria, page, pageSize)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve listings")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Listings retrieved successfully", listings, total, page, pageSize)
}

// GetListingByID godoc
// @Summary Get a listing by ID
// @Tags Listings
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Success 200 {object} responses.SuccessResponse{data=Listing}
// @Failure 404 {object} responses.ErrorResponse "Listing not found"
// @Router /listings/{listing_id} [get]
func (lc *ListingController) GetListingByID(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "listing_id")
	if !ok {
		return
	}
	l, err := lc.repo.GetListingByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve listing")
		return
	}
	if l == nil {
		responses.NotFound(c, "Listing")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Listing retrieved successfully", l)
}

// CreateListing godoc
// @Summary Create a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param listing body CreateListingRequest true "Listing creation request"
// @Success 201 {object} responses.SuccessResponse{data=Listing}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Homemakers only"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /listings [post]
// @Security BearerAuth
func (lc *ListingController) CreateListing(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "INR"
	}
	l := Listing{
		HomemakerID: userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		Subcategory: strings.TrimSpace(req.Subcategory),
		Price:       req.Price,
		Currency:    currency,
		ImageURL:    req.ImageURL,
		Tags:        models.StringSlice(req.Tags),
		IsActive:    true,
	}
	if err := lc.repo.CreateListing(c.Request.Context(), &l); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to create listing")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Listing created successfully", l)
}

// UpdateListing godoc
// @Summary Update one of my listings
// @Tags Listings
// @Accept json
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Param listing body UpdateListingRequest true "Listing update request"
// @Success 200 {object} responses.SuccessResponse{data=Listing}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Listing not found"
// @Router /listings/{listing_id} [put]
// @Security BearerAuth
func (lc *ListingController) UpdateListing(c *gin.Context) {
	l, ok := lc.ownedListing(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Title != "" {
		l.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Category != "" {
		l.Category = strings.TrimSpace(req.Category)
	}
	if req.Subcategory != nil {
		l.Subcategory = strings.TrimSpace(*req.Subcategory)
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.ImageURL != nil {
		l.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		l.Tags = models.StringSlice(req.Tags)
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := lc.repo.UpdateListing(c.Request.Context(), l); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to update listing")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Listing updated successfully", l)
}

// DeleteListing godoc
// @Summary Delete one of my listings
// @Tags Listings
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Listing not found"
// @Router /listings/{listing_id} [delete]
// @Security BearerAuth
func (lc *ListingController) DeleteListing(c *gin.Context) {
	l, ok := lc.ownedListing(c)
	if !ok {
		return
	}
	if err := lc.repo.DeleteListing(c.Request.Context(), l.ID); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to delete listing")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Listing deleted successfully", nil)
}

func (lc *ListingController) ownedListing(c *gin.Context) (*Listing, bool) {
	session, err := common.GetSession(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil, false
	}
	id, ok := common.ParseIDParam(c, "listing_id")
	if !ok {
		return nil, false
	}

	l, err := lc.repo.GetListingByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to retrieve listing")
		return nil, false
	}
	if l == nil {
		responses.NotFound(c, "Listing")
		return nil, false
	}
	if l.HomemakerID != session.UserID && !session.HasRole("admin") {
		responses.Forbidden(c, "You can only manage your own listings")
		return nil, false
	}
	return l, true
}
