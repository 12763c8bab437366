package suggestion

import "gorm.io/gorm"

// SkillSuggestion is an AI-proposed skill waiting for the user to accept it.
type SkillSuggestion struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Accepted    bool   `json:"accepted" gorm:"not null;default:false"`
	SkillID     *uint  `json:"skill_id,omitempty"`
}
