package verification

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/pkg/apperr"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
)

const DefaultTimeout = 30 * time.Second

// Collaborator scores a completed assessment.
type Collaborator interface {
	Verify(ctx context.Context, req ai.VerifyRequest) (ai.Verification, error)
}

type Result struct {
	Skill   *skill.Skill              `json:"skill"`
	Details skill.VerificationDetails `json:"verification_details"`
}

type Service struct {
	store   Store
	scorer  Collaborator
	timeout time.Duration
	log     *logger.Logger
	now     func() time.Time
}

func NewService(store Store, scorer Collaborator, timeout time.Duration, log *logger.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		scorer:  scorer,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// VerifySkill scores the requester's answers for one of their skills and
// records the verdict. Nothing is written unless every step succeeds.
func (s *Service) VerifySkill(ctx context.Context, requesterID, skillID uint, answers map[string]string) (*Result, error) {
	sk, err := s.store.GetSkill(ctx, skillID)
	if err != nil {
		return nil, apperr.Persistence("failed to load skill", err)
	}
	if sk == nil {
		return nil, apperr.NotFound("Skill")
	}
	if sk.OwnerID != requesterID {
		return nil, apperr.Forbidden("You can only verify your own skills")
	}

	questions := assessment.QuestionsFor(sk.Category)
	if problems := assessment.ValidateAnswers(questions, answers); problems != nil {
		return nil, apperr.Validation("Invalid assessment answers", problems)
	}

	verdict, err := s.score(ctx, sk, answers)
	if err != nil {
		s.log.Warn("skill verification failed", "skill_id", sk.ID, "user_id", requesterID, "error", err)
		return nil, err
	}

	details := skill.VerificationDetails{
		VerifiedAt: s.now().UTC(),
		SkillLevel: verdict.SkillLevel,
		Feedback:   verdict.Feedback,
		Score:      verdict.Score,
	}
	updated := *sk
	updated.ApplyVerification(details)

	resp := assessment.NewResponse(requesterID, sk.ID, sk.Category, answers)
	if err := s.store.SaveVerification(ctx, &updated, resp); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Skill")
		}
		return nil, apperr.Persistence("failed to save verification", err)
	}

	s.log.Info("skill verified",
		"skill_id", sk.ID,
		"user_id", requesterID,
		"level", details.SkillLevel,
		"score", details.Score)

	return &Result{Skill: &updated, Details: details}, nil
}

func (s *Service) score(ctx context.Context, sk *skill.Skill, answers map[string]string) (ai.Verification, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verdict, err := s.scorer.Verify(callCtx, ai.VerifyRequest{
		Category:  sk.Category,
		SkillName: sk.Name,
		Answers:   answers,
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return ai.Verification{}, apperr.Collaborator("Skill assessment timed out", err)
		}
		if errors.Is(err, ai.ErrMalformedReply) {
			return ai.Verification{}, apperr.Collaborator("Skill assessment returned an invalid result", err)
		}
		return ai.Verification{}, apperr.Collaborator("Skill assessment is unavailable", err)
	}

	if err := checkVerdict(verdict); err != nil {
		return ai.Verification{}, apperr.Collaborator("Skill assessment returned an invalid result", err)
	}
	return verdict, nil
}

func checkVerdict(v ai.Verification) error {
	if v.SkillLevel < 1 || v.SkillLevel > skill.MaxLevel {
		return fmt.Errorf("skill level %d outside [1,%d]", v.SkillLevel, skill.MaxLevel)
	}
	if math.IsNaN(v.Score) || math.IsInf(v.Score, 0) || v.Score < 0 || v.Score > 100 {
		return fmt.Errorf("score %v outside [0,100]", v.Score)
	}
	return nil
}
