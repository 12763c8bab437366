package assessment

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answers maps question id to the submitted answer.
type Answers map[string]string

// AssessmentResponse is the immutable record of one completed verification
// attempt. It is written in the same transaction as the skill update.
type AssessmentResponse struct {
	gorm.Model
	UserID    uint                        `json:"user_id" gorm:"index;not null"`
	SkillID   uint                        `json:"skill_id" gorm:"index;not null"`
	Category  string                      `json:"category"`
	Bucket    Bucket                      `json:"bucket"`
	Responses datatypes.JSONType[Answers] `json:"responses"`
	Completed bool                        `json:"completed" gorm:"default:false"`
}

func NewResponse(userID, skillID uint, category string, answers Answers) *AssessmentResponse {
	copied := make(Answers, len(answers))
	for k, v := range answers {
		copied[k] = v
	}
	return &AssessmentResponse{
		UserID:    userID,
		SkillID:   skillID,
		Category:  category,
		Bucket:    BucketFor(category),
		Responses: datatypes.NewJSONType(copied),
		Completed: true,
	}
}
