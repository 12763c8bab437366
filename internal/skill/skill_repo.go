package skill

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Stats summarizes one owner's skills.
type Stats struct {
	Total           int64   `json:"total"`
	Verified        int64   `json:"verified"`
	AverageVerified float64 `json:"average_verified_level"`
}

type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *Skill) error
	GetSkillByID(ctx context.Context, id uint) (*Skill, error)
	GetSkillsByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]Skill, int64, error)
	UpdateSkill(ctx context.Context, skill *Skill) error
	// UpdateVerification writes only the verification columns of one row. It
	// returns gorm.ErrRecordNotFound when the row no longer exists.
	UpdateVerification(ctx context.Context, skill *Skill) error
	DeleteSkill(ctx context.Context, id uint) error
	StatsForOwner(ctx context.Context, ownerID uint) (Stats, error)
	WithTx(tx *gorm.DB) SkillRepository
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) WithTx(tx *gorm.DB) SkillRepository {
	return &skillRepository{db: tx}
}

func (r *skillRepository) CreateSkill(ctx context.Context, skill *Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) GetSkillByID(ctx context.Context, id uint) (*Skill, error) {
	var skill Skill
	err := r.db.WithContext(ctx).First(&skill, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Convention: (nil, nil) when the row does not exist
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) GetSkillsByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]Skill, int64, error) {
	var skills []Skill
	var total int64

	query := r.db.WithContext(ctx).Model(&Skill{}).Where("owner_id = ?", ownerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&skills).Error; err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *skillRepository) UpdateSkill(ctx context.Context, skill *Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) UpdateVerification(ctx context.Context, skill *Skill) error {
	updates := map[string]interface{}{
		"level":             skill.Level,
		"is_verified":       skill.IsVerified,
		"verification_date": skill.VerificationDate,
	}
	if skill.VerificationDetails != nil {
		updates["verification_details"] = *skill.VerificationDetails
	} else {
		updates["verification_details"] = gorm.Expr("NULL")
	}

	result := r.db.WithContext(ctx).Model(&Skill{}).Where("id = ?", skill.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *skillRepository) DeleteSkill(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Skill{}, id).Error
}

func (r *skillRepository) StatsForOwner(ctx context.Context, ownerID uint) (Stats, error) {
	var stats Stats
	db := r.db.WithContext(ctx).Model(&Skill{}).Where("owner_id = ?", ownerID)
	if err := db.Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	var row struct {
		Verified int64
		AvgLevel *float64
	}
	err := r.db.WithContext(ctx).Model(&Skill{}).
		Select("COUNT(*) AS verified, AVG(level) AS avg_level").
		Where("owner_id = ? AND is_verified = ?", ownerID, true).
		Scan(&row).Error
	if err != nil {
		return stats, err
	}
	stats.Verified = row.Verified
	if row.AvgLevel != nil {
		stats.AverageVerified = *row.AvgLevel
	}
	return stats, nil
}
