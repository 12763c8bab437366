package skill

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MinLevel = 0
	MaxLevel = 5
)

// VerificationDetails is the audit trail of the latest successful verification.
type VerificationDetails struct {
	VerifiedAt time.Time `json:"verified_at"`
	SkillLevel int       `json:"skill_level"`
	Feedback   string    `json:"feedback"`
	Score      float64   `json:"score"`
}

// Skill is something a homemaker offers. Only the verification workflow sets
// IsVerified, VerificationDate and VerificationDetails; when IsVerified is
// true the other two are always present.
type Skill struct {
	gorm.Model
	OwnerID             uint                                    `json:"owner_id" gorm:"index;not null"`
	Category            string                                  `json:"category" gorm:"index;not null"`
	Name                string                                  `json:"name" gorm:"not null"`
	Description         string                                  `json:"description"`
	Level               int                                     `json:"level" gorm:"not null;default:0"`
	IsVerified          bool                                    `json:"is_verified" gorm:"not null;default:false"`
	VerificationDate    *time.Time                              `json:"verification_date"`
	VerificationDetails *datatypes.JSONType[VerificationDetails] `json:"verification_details"`
}

// ApplyVerification folds a verification result into the skill.
func (s *Skill) ApplyVerification(d VerificationDetails) {
	verifiedAt := d.VerifiedAt
	details := datatypes.NewJSONType(d)
	s.Level = d.SkillLevel
	s.IsVerified = true
	s.VerificationDate = &verifiedAt
	s.VerificationDetails = &details
}

// ClearVerification drops the badge, keeping the self-reported level.
func (s *Skill) ClearVerification() {
	s.IsVerified = false
	s.VerificationDate = nil
	s.VerificationDetails = nil
}

// Details returns the verification details, if any.
func (s *Skill) Details() (VerificationDetails, bool) {
	if s.VerificationDetails == nil {
		return VerificationDetails{}, false
	}
	return s.VerificationDetails.Data(), true
}

// ValidLevel reports whether level is within [MinLevel, MaxLevel].
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
