package assessment

import (
	"context"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	// Create inserts a response. Pass a transaction handle via WithTx to make
	// it part of a larger unit of work.
	Create(ctx context.Context, resp *AssessmentResponse) error
	ListForSkill(ctx context.Context, userID, skillID uint) ([]AssessmentResponse, error)
	WithTx(tx *gorm.DB) AssessmentRepository
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) WithTx(tx *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: tx}
}

func (r *assessmentRepository) Create(ctx context.Context, resp *AssessmentResponse) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *assessmentRepository) ListForSkill(ctx context.Context, userID, skillID uint) ([]AssessmentResponse, error) {
	var out []AssessmentResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
