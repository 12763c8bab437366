package verification

import (
	"context"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
)

// Store is the persistence the workflow needs.
type Store interface {
	GetSkill(ctx context.Context, id uint) (*skill.Skill, error)
	// SaveVerification updates the skill's verification columns and inserts
	// the assessment response as one unit. Neither is written on error.
	SaveVerification(ctx context.Context, s *skill.Skill, resp *assessment.AssessmentResponse) error
}

type gormStore struct {
	db          *gorm.DB
	skills      skill.SkillRepository
	assessments assessment.AssessmentRepository
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:          db,
		skills:      skill.NewSkillRepository(db),
		assessments: assessment.NewAssessmentRepository(db),
	}
}

func (s *gormStore) GetSkill(ctx context.Context, id uint) (*skill.Skill, error) {
	return s.skills.GetSkillByID(ctx, id)
}

func (s *gormStore) SaveVerification(ctx context.Context, sk *skill.Skill, resp *assessment.AssessmentResponse) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.skills.WithTx(tx).UpdateVerification(ctx, sk); err != nil {
			return err
		}
		return s.assessments.WithTx(tx).Create(ctx, resp)
	})
}
