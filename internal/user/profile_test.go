package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/skillbloom/internal/models"
)

func TestCompletionFallback(t *testing.T) {
	u := &User{}
	assert.Equal(t, DefaultProfileCompletion, u.Completion())

	zero := 0
	u.ProfileCompletion = &zero
	assert.Equal(t, 0, u.Completion())
}

func TestComputeProfileCompletion(t *testing.T) {
	assert.Equal(t, 0, ComputeProfileCompletion(&User{}))

	u := &User{Name: "Asha", Username: "asha", Email: "asha@example.com"}
	assert.Equal(t, 27, ComputeProfileCompletion(u))

	u.Phone = "+911234567890"
	u.Bio = "Home baker"
	u.City, u.State, u.Country = "Pune", "MH", "India"
	u.ProfileImage = "https://example.com/a.png"
	u.Interests = models.StringSlice{"baking"}
	u.SocialMedia = models.SocialMedia{Instagram: "asha.bakes"}
	assert.Equal(t, 100, ComputeProfileCompletion(u))

	u.RefreshCompletion()
	assert.Equal(t, 100, u.Completion())
}
