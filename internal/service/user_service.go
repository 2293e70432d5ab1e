package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/policy"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// UserService handles user-related operations
type UserService struct {
	userRepo    repository.UserRepository
	passwordCfg *auth.PasswordConfig
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, passwordCfg *auth.PasswordConfig) *UserService {
	if passwordCfg == nil {
		passwordCfg = auth.DefaultPasswordConfig()
	}
	return &UserService{
		userRepo:    userRepo,
		passwordCfg: passwordCfg,
	}
}

// ListUsers returns every user without password material
func (s *UserService) ListUsers(ctx context.Context, principal *models.Principal) ([]*models.User, error) {
	if err := policy.Evaluate(principal, "", policy.ActionListUsers); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitize())
	}
	return sanitized, nil
}

// UpdateUser replaces the profile of user id and re-hashes the submitted
// password. Only admins may change the admin flag.
func (s *UserService) UpdateUser(ctx context.Context, principal *models.Principal, id string, reg *models.UserRegistration) (*models.User, error) {
	if err := policy.Evaluate(principal, id, policy.ActionUpdateUser); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	passwordHash, salt, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ReplaceProfile(reg)
	user.PasswordHash = passwordHash
	user.Salt = salt
	user.IsBusiness = reg.IsBusiness
	if principal.IsAdmin {
		user.IsAdmin = reg.IsAdmin
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// ToggleBusiness flips the business flag of user id and returns the new value
func (s *UserService) ToggleBusiness(ctx context.Context, principal *models.Principal, id string) (bool, error) {
	if err := policy.Evaluate(principal, id, policy.ActionToggleBusiness); err != nil {
		return false, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	user.IsBusiness = !user.IsBusiness
	user.Touch()

	if err := s.userRepo.SetBusiness(ctx, id, user.IsBusiness, user.UpdatedAt); err != nil {
		return false, err
	}

	log.Info().
		Str("category", constants.LogCategoryUser).
		Str("user_id", id).
		Bool("is_business", user.IsBusiness).
		Msg("Business status changed")

	return user.IsBusiness, nil
}

// DeleteUser removes user id and the likes they gave
func (s *UserService) DeleteUser(ctx context.Context, principal *models.Principal, id string) error {
	if err := policy.Evaluate(principal, id, policy.ActionDeleteUser); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if utils.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
