package listing

import (
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/models"
)

// Listing is a service or product a homemaker offers for sale.
type Listing struct {
	gorm.Model
	HomemakerID uint               `json:"homemaker_id" gorm:"index;not null"`
	Title       string             `json:"title" gorm:"not null"`
	Description string             `json:"description"`
	Category    string             `json:"category" gorm:"index;not null"`
	Subcategory string             `json:"subcategory"`
	Price       float64            `json:"price" gorm:"not null;default:0"`
	Currency    string             `json:"currency" gorm:"size:3;default:'INR'"`
	ImageURL    string             `json:"image_url"`
	Tags        models.StringSlice `json:"tags"`
	Rating      float64            `json:"rating" gorm:"default:0"`
	IsActive    bool               `json:"is_active" gorm:"not null;default:true"`
}
