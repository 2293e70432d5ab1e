package auth

import (
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
)

// JWTValidator verifies tokens for the authorization middleware.
type JWTValidator interface {
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// TokenIssuer signs tokens at login.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, string, error)
}

var (
	_ JWTValidator = (*JWTService)(nil)
	_ TokenIssuer  = (*JWTService)(nil)
)
