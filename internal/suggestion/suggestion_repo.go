package suggestion

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type SuggestionRepository interface {
	// ReplacePending swaps the user's unaccepted suggestions for fresh ones.
	ReplacePending(ctx context.Context, userID uint, fresh []SkillSuggestion) error
	ListPending(ctx context.Context, userID uint) ([]SkillSuggestion, error)
	CountPending(ctx context.Context, userID uint) (int64, error)
	GetByID(ctx context.Context, id uint) (*SkillSuggestion, error)
	MarkAccepted(ctx context.Context, id, skillID uint) error
	WithTx(tx *gorm.DB) SuggestionRepository
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) WithTx(tx *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: tx}
}

func (r *suggestionRepository) ReplacePending(ctx context.Context, userID uint, fresh []SkillSuggestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND accepted = ?", userID, false).Delete(&SkillSuggestion{}).Error; err != nil {
			return err
		}
		if len(fresh) == 0 {
			return nil
		}
		return tx.Create(&fresh).Error
	})
}

func (r *suggestionRepository) ListPending(ctx context.Context, userID uint) ([]SkillSuggestion, error) {
	var out []SkillSuggestion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND accepted = ?", userID, false).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *suggestionRepository) CountPending(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&SkillSuggestion{}).
		Where("user_id = ? AND accepted = ?", userID, false).
		Count(&n).Error
	return n, err
}

func (r *suggestionRepository) GetByID(ctx context.Context, id uint) (*SkillSuggestion, error) {
	var s SkillSuggestion
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepository) MarkAccepted(ctx context.Context, id, skillID uint) error {
	result := r.db.WithContext(ctx).Model(&SkillSuggestion{}).
		Where("id = ? AND accepted = ?", id, false).
		Updates(map[string]interface{}{"accepted": true, "skill_id": skillID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
