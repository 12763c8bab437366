package auth

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/skillbloom/internal/user"
)

type AuthRepository interface {
	CreateUser(u *user.User, roleName string) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	GetUserByID(id uint) (*user.User, error)
	UpdateUser(u *user.User) error
	TouchLastActive(userID uint, at time.Time) error

	SaveRefreshToken(token *user.RefreshToken) error
	GetRefreshToken(tokenString string) (*user.RefreshToken, error)
	InvalidateRefreshToken(userID uint, tokenString string) error
	InvalidateAllRefreshTokensForUser(userID uint) error

	GetUserRoles(userID uint) ([]string, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

// SeedRoles makes sure every role in user.DefaultRoles exists.
func SeedRoles(db *gorm.DB) error {
	for _, name := range user.DefaultRoles {
		role := user.Role{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}

// CreateUser inserts the user and grants roleName in one transaction.
func (r *authRepository) CreateUser(u *user.User, roleName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var role user.Role
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("role '%s' not found", roleName)
			}
			return fmt.Errorf("failed to find role: %w", err)
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		userRole := user.UserRole{UserID: u.ID, RoleID: role.ID, Role: role}
		if err := tx.Omit("Role").Create(&userRole).Error; err != nil {
			return fmt.Errorf("failed to assign role to user: %w", err)
		}
		u.UserRoles = []user.UserRole{userRole}
		return nil
	})
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("UserRoles.Role").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("UserRoles.Role").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("UserRoles.Role").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) UpdateUser(u *user.User) error {
	return r.db.Omit("UserRoles").Save(u).Error
}

func (r *authRepository) TouchLastActive(userID uint, at time.Time) error {
	return r.db.Model(&user.User{}).Where("id = ?", userID).UpdateColumn("last_active", at).Error
}

func (r *authRepository) SaveRefreshToken(token *user.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *authRepository) GetRefreshToken(tokenString string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	if err := r.db.Where("token = ? AND expires_at > ? AND revoked = ?", tokenString, time.Now(), false).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(userID uint, tokenString string) error {
	return r.db.Model(&user.RefreshToken{}).
		Where("token = ? AND user_id = ?", tokenString, userID).
		Update("revoked", true).Error
}

func (r *authRepository) InvalidateAllRefreshTokensForUser(userID uint) error {
	result := r.db.Model(&user.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true)

	if result.Error != nil {
		return fmt.Errorf("failed to invalidate all refresh tokens: %w", result.Error)
	}
	return nil
}

// GetUserRoles returns an error when the user does not exist, so the auth
// middleware can reject tokens of deleted accounts.
func (r *authRepository) GetUserRoles(userID uint) ([]string, error) {
	var count int64
	if err := r.db.Model(&user.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var roles []string
	err := r.db.Model(&user.UserRole{}).
		Joins("JOIN roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &roles).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	return roles, nil
}
