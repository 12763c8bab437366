package user

import (
	"math"
	"strings"
)

// DefaultProfileCompletion is reported for users whose completion has never
// been computed.
const DefaultProfileCompletion = 65

// ComputeProfileCompletion returns the percentage of profile fields filled in.
func ComputeProfileCompletion(u *User) int {
	filled := []bool{
		strings.TrimSpace(u.Name) != "",
		strings.TrimSpace(u.Username) != "",
		strings.TrimSpace(u.Email) != "",
		strings.TrimSpace(u.Phone) != "",
		strings.TrimSpace(u.Bio) != "",
		strings.TrimSpace(u.City) != "",
		strings.TrimSpace(u.State) != "",
		strings.TrimSpace(u.Country) != "",
		strings.TrimSpace(u.ProfileImage) != "",
		len(u.Interests) > 0,
		!u.SocialMedia.Empty(),
	}
	n := 0
	for _, ok := range filled {
		if ok {
			n++
		}
	}
	return int(math.Round(float64(n) * 100 / float64(len(filled))))
}

// Completion is the stored completion, or DefaultProfileCompletion when unset.
func (u *User) Completion() int {
	if u.ProfileCompletion == nil {
		return DefaultProfileCompletion
	}
	return *u.ProfileCompletion
}

// RefreshCompletion recomputes and stores the completion on u.
func (u *User) RefreshCompletion() {
	c := ComputeProfileCompletion(u)
	u.ProfileCompletion = &c
}
