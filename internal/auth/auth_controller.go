package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/config"
	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/models"
	"github.com/DhavalSuthar-24/skillbloom/internal/user"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
	"github.com/DhavalSuthar-24/skillbloom/pkg/token"
	"github.com/DhavalSuthar-24/skillbloom/pkg/utils"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
)

const DefaultUserRole = user.RoleCustomer

type AuthController struct {
	repo   AuthRepository
	config *config.Config
	log    *logger.Logger
	now    func() time.Time
}

func NewAuthController(repo AuthRepository, cfg *config.Config, log *logger.Logger) *AuthController {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthController{repo: repo, config: cfg, log: log, now: time.Now}
}

func (ac *AuthController) generateAndSaveTokens(u *user.User) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.RoleNames(), ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: ac.now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}
	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// issue sends the token pair plus the user record.
func (ac *AuthController) issue(c *gin.Context, status int, message string, u *user.User) {
	accessToken, refreshToken, err := ac.generateAndSaveTokens(u)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to generate tokens")
		return
	}
	responses.SendSuccess(c, status, message, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// lookup returns (nil, nil) when no user matches.
func lookup(find func(string) (*user.User, error), key string) (*user.User, error) {
	u, err := find(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return u, err
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a homemaker or customer account. The role defaults to customer.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      409   {object} responses.ErrorResponse "Email or username already taken"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := lookup(ac.repo.GetUserByEmail, email)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to check email")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "User with this email already exists", nil)
		return
	}
	existing, err = lookup(ac.repo.GetUserByUsername, req.Username)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to check username")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "User with this username already exists", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	newUser := &user.User{
		Name:       strings.TrimSpace(req.Name),
		Username:   req.Username,
		Email:      email,
		Password:   hashedPassword,
		Phone:      req.Phone,
		Bio:        req.Bio,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		Interests:  models.StringSlice(req.Interests),
		LastActive: ac.now(),
	}
	if req.Social != nil {
		newUser.SocialMedia = *req.Social
	}
	newUser.RefreshCompletion()

	role := req.Role
	if role == "" {
		role = DefaultUserRole
	}
	if err := ac.repo.CreateUser(newUser, role); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to create user")
		return
	}

	ac.log.Info("user registered", "user_id", newUser.ID, "role", role)
	ac.issue(c, http.StatusCreated, "User registered successfully", newUser)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email or username and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	identifier := strings.TrimSpace(req.LoginIdentifier)
	var (
		u   *user.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = lookup(ac.repo.GetUserByEmail, strings.ToLower(identifier))
	} else {
		u, err = lookup(ac.repo.GetUserByUsername, identifier)
	}
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := ac.repo.TouchLastActive(u.ID, ac.now()); err != nil {
		ac.log.Warn("failed to record last activity", "user_id", u.ID, "error", err)
	}
	ac.issue(c, http.StatusOK, "Login successful", u)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchange a valid refresh token for a new token pair. The old refresh token is revoked.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        token  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      401   {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil || stored.UserID != claims.UserID {
		responses.Unauthorized(c, "Refresh token has been revoked")
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		responses.Unauthorized(c, "User not found")
		return
	}

	if err := ac.repo.InvalidateRefreshToken(u.ID, req.RefreshToken); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}
	ac.issue(c, http.StatusOK, "Token refreshed successfully", u)
}

// GetProfile godoc
// @Summary      Get my profile
// @Tags         Auth
// @Produce      json
// @Success      200   {object} responses.SuccessResponse{data=UserResponse}
// @Failure      401   {object} responses.ErrorResponse "Unauthorized"
// @Failure      404   {object} responses.ErrorResponse "User not found"
// @Router       /auth/me [get]
// @Security     BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	u, ok := ac.currentUser(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(u))
}

// UpdateProfile godoc
// @Summary      Update my profile
// @Description  Partially update profile fields. Profile completion is recomputed.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        profile  body  UpdateProfileRequest  true  "Fields to update"
// @Success      200   {object} responses.SuccessResponse{data=UserResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      401   {object} responses.ErrorResponse "Unauthorized"
// @Failure      409   {object} responses.ErrorResponse "Username already taken"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/me [put]
// @Security     BearerAuth
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, ok := ac.currentUser(c)
	if !ok {
		return
	}

	if req.Username != nil && *req.Username != u.Username {
		taken, err := lookup(ac.repo.GetUserByUsername, *req.Username)
		if err != nil {
			_ = c.Error(err)
			responses.InternalServerError(c, "Failed to check username")
			return
		}
		if taken != nil {
			responses.SendError(c, http.StatusConflict, "User with this username already exists", nil)
			return
		}
		u.Username = *req.Username
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&u.Name, req.Name)
	set(&u.Phone, req.Phone)
	set(&u.Bio, req.Bio)
	set(&u.City, req.City)
	set(&u.State, req.State)
	set(&u.Country, req.Country)
	set(&u.ProfileImage, req.ProfileImage)
	if req.Interests != nil {
		u.Interests = models.StringSlice(req.Interests)
	}
	if req.SocialMedia != nil {
		u.SocialMedia = *req.SocialMedia
	}
	u.RefreshCompletion()
	u.LastActive = ac.now()

	if err := ac.repo.UpdateUser(u); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to update profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully", FilterUserRecord(u))
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Changing the password signs out every other session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        passwords  body  ChangePasswordRequest  true  "Old and new password"
// @Success      200   {object} responses.SuccessResponse
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      401   {object} responses.ErrorResponse "Old password is incorrect"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/change-password [post]
// @Security     BearerAuth
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, ok := ac.currentUser(c)
	if !ok {
		return
	}
	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.Unauthorized(c, "Old password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Error hashing password")
		return
	}
	u.Password = hashed
	if err := ac.repo.UpdateUser(u); err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to update password")
		return
	}
	if err := ac.repo.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
		ac.log.Warn("failed to revoke sessions after password change", "user_id", u.ID, "error", err)
	}

	ac.log.Info("password changed", "user_id", u.ID)
	responses.SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke one refresh token, or every session when invalidate_all_sessions is set.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        logout  body  LogoutRequest  false  "Logout options"
// @Success      200   {object} responses.SuccessResponse
// @Failure      400   {object} responses.ErrorResponse "Nothing to log out"
// @Failure      401   {object} responses.ErrorResponse "Unauthorized"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req LogoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
			return
		}
	}

	switch {
	case req.InvalidateAllSessions:
		err = ac.repo.InvalidateAllRefreshTokensForUser(userID)
	case req.RefreshToken != "":
		err = ac.repo.InvalidateRefreshToken(userID, req.RefreshToken)
	default:
		responses.BadRequest(c, "Provide a refresh_token or set invalidate_all_sessions")
		return
	}
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to log out")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// currentUser loads the session's user, writing the error response itself.
func (ac *AuthController) currentUser(c *gin.Context) (*user.User, bool) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil, false
	}
	u, err := ac.repo.GetUserByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "User")
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		responses.InternalServerError(c, "Failed to load user")
		return nil, false
	}
	return u, true
}
