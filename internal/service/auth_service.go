package service

import (
	"context"
	"fmt"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo    repository.UserRepository
	tokens      auth.TokenIssuer
	passwordCfg *auth.PasswordConfig
	securityCfg config.SecuritySettings
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	tokens auth.TokenIssuer,
	passwordCfg *auth.PasswordConfig,
	securityCfg config.SecuritySettings,
) *AuthService {
	if passwordCfg == nil {
		passwordCfg = auth.DefaultPasswordConfig()
	}
	return &AuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		passwordCfg: passwordCfg,
		securityCfg: securityCfg,
	}
}

// RegisterUser creates a new user account. The admin flag is only honoured
// when admin self-registration is enabled.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	// Hash the password
	passwordHash, salt, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(reg)
	user.PasswordHash = passwordHash
	user.Salt = salt
	user.IsBusiness = reg.IsBusiness
	user.IsAdmin = reg.IsAdmin && s.securityCfg.AllowAdminRegistration

	// Email uniqueness is enforced by the store
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuth("register_success", user.ID, user.Email, true, "")

	return user.Sanitize(), nil
}

// AuthenticateUser verifies credentials and returns a signed token.
// An unknown email and a wrong password yield the same error.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login_failed", "", creds.Email, false, "user not found")
			return "", utils.NewInvalidCredentialsError()
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	// Verify the password
	match, err := auth.VerifyPassword(creds.Password, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	if !match {
		utils.LogAuth("login_failed", user.ID, user.Email, false, "invalid password")
		return "", utils.NewInvalidCredentialsError()
	}

	token, _, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	utils.LogAuth("login_success", user.ID, user.Email, true, "")

	return token, nil
}
