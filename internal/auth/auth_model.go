package auth

import (
	"time"

	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"github.com/DhavalSuthar-24/skillbloom/internal/user"
)

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"asha@example.com"` // Can be email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type RegisterRequest struct {
	Name      string              `json:"name" binding:"required,max=100"`
	Username  string              `json:"username" binding:"required,min=3,max=30,alphanum"`
	Email     string              `json:"email" binding:"required,email"`
	Password  string              `json:"password" binding:"required,min=8,max=72"`
	Phone     string              `json:"phone" binding:"omitempty,e164"`
	Role      string              `json:"role" binding:"omitempty,oneof=homemaker customer" example:"homemaker"`
	City      string              `json:"city,omitempty"`
	State     string              `json:"state,omitempty"`
	Country   string              `json:"country,omitempty"`
	Bio       string              `json:"bio,omitempty" binding:"omitempty,max=2000"`
	Interests []string            `json:"interests,omitempty" binding:"omitempty,max=20,dive,max=50"`
	Social    *models.SocialMedia `json:"social_media,omitempty"`
}

type UpdateProfileRequest struct {
	Name         *string             `json:"name,omitempty" binding:"omitempty,max=100" example:"Asha Patil"`
	Username     *string             `json:"username,omitempty" binding:"omitempty,min=3,max=30,alphanum" example:"ashabakes"`
	Phone        *string             `json:"phone,omitempty" binding:"omitempty,e164"`
	Bio          *string             `json:"bio,omitempty" binding:"omitempty,max=2000" example:"Home baker from Pune."`
	City         *string             `json:"city,omitempty" example:"Pune"`
	State        *string             `json:"state,omitempty" example:"Maharashtra"`
	Country      *string             `json:"country,omitempty" example:"India"`
	ProfileImage *string             `json:"profile_image,omitempty" binding:"omitempty,url"`
	Interests    []string            `json:"interests,omitempty" binding:"omitempty,max=20,dive,max=50"`
	SocialMedia  *models.SocialMedia `json:"social_media,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=NewPassword"`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`           // Optional: specific token to invalidate
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"` // If true, invalidate all user's sessions
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID                uint               `json:"id"`
	Name              string             `json:"name"`
	Username          string             `json:"username"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Bio               string             `json:"bio"`
	City              string             `json:"city"`
	State             string             `json:"state"`
	Country           string             `json:"country"`
	ProfileImage      string             `json:"profile_image"`
	Interests         []string           `json:"interests"`
	SocialMedia       models.SocialMedia `json:"social_media"`
	ProfileCompletion int                `json:"profile_completion"`
	LastActive        time.Time          `json:"last_active"`
	Roles             []string           `json:"roles"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FilterUserRecord(u *user.User) UserResponse {
	interests := []string(u.Interests)
	if interests == nil {
		interests = []string{}
	}
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Username:          u.Username,
		Email:             u.Email,
		Phone:             u.Phone,
		Bio:               u.Bio,
		City:              u.City,
		State:             u.State,
		Country:           u.Country,
		ProfileImage:      u.ProfileImage,
		Interests:         interests,
		SocialMedia:       u.SocialMedia,
		ProfileCompletion: u.Completion(),
		LastActive:        u.LastActive,
		Roles:             u.RoleNames(),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
