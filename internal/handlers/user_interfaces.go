// Package handlers provides HTTP request handlers and service interfaces for the business card API.
// This file defines the service contracts used by the user handlers, so handlers
// can be tested against mocked implementations.
package handlers

import (
	"context"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
)

// AuthServiceInterface defines the methods required from the authentication service.
type AuthServiceInterface interface {
	// RegisterUser creates a new account from a validated registration.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - reg: Registration body including the plaintext password
	//
	// Returns:
	//   - The created user without password material
	//   - A 409 error when the email is already registered
	RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error)

	// AuthenticateUser checks credentials and signs a token.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - creds: Email and password
	//
	// Returns:
	//   - The signed token
	//   - A 401 error for an unknown email or a wrong password
	AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (string, error)
}

// UserServiceInterface defines the methods required from UserService.
// Every method receives the authenticated principal and enforces the
// role and ownership rules before touching the store.
type UserServiceInterface interface {
	// ListUsers returns every user. Admin only.
	ListUsers(ctx context.Context, principal *models.Principal) ([]*models.User, error)

	// UpdateUser replaces the profile of user id.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - principal: The caller, admin or the user itself
	//   - id: The target user id
	//   - reg: The full replacement profile, password included
	//
	// Returns:
	//   - The updated user without password material
	//   - A 403 error for other callers, 404 for an unknown id
	UpdateUser(ctx context.Context, principal *models.Principal, id string, reg *models.UserRegistration) (*models.User, error)

	// ToggleBusiness flips the business flag of user id and returns the new value.
	ToggleBusiness(ctx context.Context, principal *models.Principal, id string) (bool, error)

	// DeleteUser removes user id. Admin only.
	DeleteUser(ctx context.Context, principal *models.Principal, id string) error
}
