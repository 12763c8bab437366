package story

import "gorm.io/gorm"

// SuccessStory is a homemaker's published account of what the platform did
// for them. Featured stories are curated by admins.
type SuccessStory struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Story    string `json:"story" gorm:"type:text;not null"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Featured bool   `json:"featured" gorm:"not null;default:false"`
}
