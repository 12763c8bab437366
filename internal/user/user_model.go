package user

import (
	"time"

	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"gorm.io/gorm"
)

const (
	RoleHomemaker = "homemaker"
	RoleCustomer  = "customer"
	RoleAdmin     = "admin"
)

// DefaultRoles are seeded on startup.
var DefaultRoles = []string{RoleHomemaker, RoleCustomer, RoleAdmin}

type User struct {
	gorm.Model
	Name              string             `json:"name"`
	Username          string             `gorm:"uniqueIndex;not null" json:"username"`
	Email             string             `gorm:"uniqueIndex;not null" json:"email"`
	Password          string             `json:"-"`
	Phone             string             `json:"phone"`
	Bio               string             `json:"bio"`
	City              string             `json:"city"`
	State             string             `json:"state"`
	Country           string             `json:"country"`
	ProfileImage      string             `json:"profile_image"`
	Interests         models.StringSlice `json:"interests"`
	SocialMedia       models.SocialMedia `json:"social_media"`
	ProfileCompletion *int               `json:"profile_completion,omitempty"`
	LastActive        time.Time          `json:"last_active"`
	UserRoles         []UserRole         `gorm:"foreignKey:UserID" json:"-"`
}

type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type UserRole struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_user_role;not null"`
	RoleID uint `gorm:"uniqueIndex:idx_user_role;not null"`
	Role   Role `gorm:"foreignKey:RoleID"`
}

type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}

// RoleNames flattens the preloaded UserRoles.
func (u *User) RoleNames() []string {
	roles := make([]string, 0, len(u.UserRoles))
	for _, ur := range u.UserRoles {
		roles = append(roles, ur.Role.Name)
	}
	return roles
}
