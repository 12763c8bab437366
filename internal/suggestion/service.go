package suggestion

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/pkg/apperr"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/utils"
)

// DefaultTimeout bounds a provider call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

type Suggester interface {
	Suggest(ctx context.Context, req ai.SuggestRequest) ([]ai.Suggestion, error)
}

// Cache is the subset of pkg/cache.Redis the service uses. Failures are
// logged and otherwise ignored.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Service struct {
	db        *gorm.DB
	repo      SuggestionRepository
	skills    skill.SkillRepository
	suggester Suggester
	cache     Cache
	ttl       time.Duration
	timeout   time.Duration
	log       *logger.Logger
}

func NewService(db *gorm.DB, suggester Suggester, cache Cache, ttl, timeout time.Duration, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		db:        db,
		repo:      NewSuggestionRepository(db),
		skills:    skill.NewSkillRepository(db),
		suggester: suggester,
		cache:     cache,
		ttl:       ttl,
		timeout:   timeout,
		log:       log,
	}
}

// CacheKey fingerprints the normalized request; interest order and case do
// not matter.
func CacheKey(req ai.SuggestRequest) string {
	interests := make([]string, 0, len(req.Interests))
	for _, i := range req.Interests {
		if i = strings.ToLower(strings.TrimSpace(i)); i != "" {
			interests = append(interests, i)
		}
	}
	sort.Strings(interests)
	return "suggestions:" + utils.Fingerprint(strings.Join(interests, ","), req.Experience, req.Bio)
}

// Generate asks the provider for suggestions, or reuses a cached answer for
// the same input, and stores them as the user's pending suggestions.
func (s *Service) Generate(ctx context.Context, userID uint, req ai.SuggestRequest) ([]SkillSuggestion, error) {
	if len(req.Interests) == 0 && strings.TrimSpace(req.Experience) == "" && strings.TrimSpace(req.Bio) == "" {
		return nil, apperr.Validation("Tell us a little about yourself first", map[string]string{
			"interests": "provide interests, experience or a bio",
		})
	}

	key := CacheKey(req)
	var proposed []ai.Suggestion
	hit := false
	if s.cache != nil {
		var err error
		hit, err = s.cache.GetJSON(ctx, key, &proposed)
		if err != nil {
			s.log.Warn("suggestion cache read failed", "key", key, "error", err)
			hit = false
		}
	}

	if !hit {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		var err error
		proposed, err = s.suggester.Suggest(callCtx, req)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, apperr.Collaborator("Skill suggestions timed out", err)
			}
			return nil, apperr.Collaborator("Skill suggestions are unavailable", err)
		}
		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, proposed, s.ttl); err != nil {
				s.log.Warn("suggestion cache write failed", "key", key, "error", err)
			}
		}
	}

	rows := make([]SkillSuggestion, 0, len(proposed))
	for _, p := range proposed {
		rows = append(rows, SkillSuggestion{
			UserID:      userID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Reason:      p.Reason,
		})
	}
	if err := s.repo.ReplacePending(ctx, userID, rows); err != nil {
		return nil, apperr.Persistence("failed to save suggestions", err)
	}

	s.log.Info("skill suggestions generated", "user_id", userID, "count", len(rows), "cached", hit)
	return rows, nil
}

func (s *Service) Pending(ctx context.Context, userID uint) ([]SkillSuggestion, error) {
	out, err := s.repo.ListPending(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to load suggestions", err)
	}
	return out, nil
}

// Accept turns a pending suggestion into an unverified level-0 skill.
func (s *Service) Accept(ctx context.Context, userID, suggestionID uint) (*skill.Skill, error) {
	sg, err := s.repo.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, apperr.Persistence("failed to load suggestion", err)
	}
	if sg == nil {
		return nil, apperr.NotFound("Suggestion")
	}
	if sg.UserID != userID {
		return nil, apperr.Forbidden("You can only accept your own suggestions")
	}
	if sg.Accepted {
		return nil, apperr.Conflict("Suggestion has already been accepted")
	}

	created := &skill.Skill{
		OwnerID:     userID,
		Name:        sg.Name,
		Category:    sg.Category,
		Description: sg.Description,
		Level:       skill.MinLevel,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.skills.WithTx(tx).CreateSkill(ctx, created); err != nil {
			return err
		}
		return s.repo.WithTx(tx).MarkAccepted(ctx, sg.ID, created.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Conflict("Suggestion has already been accepted")
		}
		return nil, apperr.Persistence("failed to accept suggestion", err)
	}
	return created, nil
}
