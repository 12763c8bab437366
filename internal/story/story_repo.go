package story

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/listing"
)

type StoryRepository interface {
	CreateStory(ctx context.Context, s *SuccessStory) error
	GetStoryByID(ctx context.Context, id uint) (*SuccessStory, error)
	// GetStories lists stories with featured ones first, newest first within
	// each group.
	GetStories(ctx context.Context, category string, page, pageSize int) ([]SuccessStory, int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) CreateStory(ctx context.Context, s *SuccessStory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *storyRepository) GetStoryByID(ctx context.Context, id uint) (*SuccessStory, error) {
	var s SuccessStory
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storyRepository) GetStories(ctx context.Context, category string, page, pageSize int) ([]SuccessStory, int64, error) {
	var stories []SuccessStory
	var total int64

	query := r.db.WithContext(ctx).Model(&SuccessStory{})
	if c := strings.TrimSpace(category); c != "" && !strings.EqualFold(c, listing.AllCategories) {
		query = query.Where("LOWER(category) = ?", strings.ToLower(c))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Order("featured DESC, created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&stories).Error; err != nil {
		return nil, 0, err
	}
	return stories, total, nil
}
