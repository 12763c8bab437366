package mentor

import (
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/models"
)

type Mentor struct {
	gorm.Model
	UserID    *uint              `json:"user_id,omitempty" gorm:"index"`
	Name      string             `json:"name" gorm:"not null"`
	Title     string             `json:"title"`
	Expertise models.StringSlice `json:"expertise"`
	Bio       string             `json:"bio"`
	Rating    float64            `json:"rating" gorm:"default:0"`
	ImageURL  string             `json:"image_url"`
	Available bool               `json:"available" gorm:"not null;default:true"`
}
