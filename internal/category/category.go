// Package category holds the presentation table the clients use to draw a
// category badge.
package category

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
)

type Style struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Default styles any category missing from the table.
var Default = Style{Name: "Other", Icon: "sparkles", Color: "#6B7280"}

var styles = []Style{
	{Name: "Cooking", Icon: "chef-hat", Color: "#F97316"},
	{Name: "Baking", Icon: "cake", Color: "#EC4899"},
	{Name: "Crafts", Icon: "scissors", Color: "#8B5CF6"},
	{Name: "Handmade", Icon: "hand", Color: "#A855F7"},
	{Name: "Tutoring", Icon: "book-open", Color: "#3B82F6"},
	{Name: "Teaching", Icon: "graduation-cap", Color: "#2563EB"},
	{Name: "Tailoring", Icon: "shirt", Color: "#14B8A6"},
	{Name: "Beauty & Wellness", Icon: "flower", Color: "#F43F5E"},
	{Name: "Gardening", Icon: "sprout", Color: "#22C55E"},
}

var byName = func() map[string]Style {
	m := make(map[string]Style, len(styles))
	for _, s := range styles {
		m[strings.ToLower(s.Name)] = s
	}
	return m
}()

// Lookup returns the style for name, matched exactly but case-insensitively.
func Lookup(name string) Style {
	if s, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return Default
}

// All returns the table in display order.
func All() []Style {
	return append([]Style(nil), styles...)
}

type Catalog struct {
	Categories []Style `json:"categories"`
	Default    Style   `json:"default"`
}

// GetCategories godoc
// @Summary Category presentation table
// @Tags Categories
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Catalog}
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", Catalog{Categories: All(), Default: Default})
}

func RegisterCategoryRoutes(router *gin.RouterGroup) {
	router.GET("/categories", GetCategories)
}
