package mentor

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type MentorRepository interface {
	CreateMentor(ctx context.Context, m *Mentor) error
	GetMentorByID(ctx context.Context, id uint) (*Mentor, error)
	// GetMentors lists mentors, best rated first. A non-empty expertise keeps
	// only mentors listing it (case-insensitive substring of the JSON array).
	GetMentors(ctx context.Context, expertise string, onlyAvailable bool, page, pageSize int) ([]Mentor, int64, error)
}

type mentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &mentorRepository{db: db}
}

func (r *mentorRepository) CreateMentor(ctx context.Context, m *Mentor) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mentorRepository) GetMentorByID(ctx context.Context, id uint) (*Mentor, error) {
	var m Mentor
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *mentorRepository) GetMentors(ctx context.Context, expertise string, onlyAvailable bool, page, pageSize int) ([]Mentor, int64, error) {
	var mentors []Mentor
	var total int64

	query := r.db.WithContext(ctx).Model(&Mentor{})
	if e := strings.ToLower(strings.TrimSpace(expertise)); e != "" {
		query = query.Where("LOWER(CAST(expertise AS TEXT)) LIKE ?", "%"+e+"%")
	}
	if onlyAvailable {
		query = query.Where("available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Order("rating DESC, id ASC").Offset(offset).Limit(pageSize).Find(&mentors).Error; err != nil {
		return nil, 0, err
	}
	return mentors, total, nil
}
