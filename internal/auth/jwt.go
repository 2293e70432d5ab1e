package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrMissingSubject       = errors.New("token has no user id")
)

// CustomClaims represents the claims in a JWT token
type CustomClaims struct {
	UserID     string `json:"_id"`
	IsAdmin    bool   `json:"isAdmin"`
	IsBusiness bool   `json:"isBusiness"`
	jwt.RegisteredClaims
}

// Principal returns the caller identity carried by the claims.
func (c *CustomClaims) Principal() *models.Principal {
	return &models.Principal{
		ID:         c.UserID,
		IsAdmin:    c.IsAdmin,
		IsBusiness: c.IsBusiness,
	}
}

// JWTService provides JWT token generation and validation functionality
type JWTService struct {
	config *config.JWTSettings
	now    func() time.Time
}

// NewJWTService creates a new JWTService instance
func NewJWTService(cfg *config.JWTSettings) *JWTService {
	return &JWTService{
		config: cfg,
		now:    time.Now,
	}
}

// GetConfig returns the JWT settings, falling back to defaults
func (s *JWTService) GetConfig() *config.JWTSettings {
	if s.config == nil {
		return &config.JWTSettings{
			Expiry: constants.DefaultJWTExpiry,
			Issuer: constants.DefaultJWTIssuer,
		}
	}
	return s.config
}

// GenerateToken signs a token for user. It returns the token and its id.
func (s *JWTService) GenerateToken(user *models.User) (string, string, error) {
	if user == nil || user.ID == "" {
		return "", "", ErrMissingSubject
	}

	cfg := s.GetConfig()
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = constants.DefaultJWTExpiry
	}

	jwtID := uuid.NewString()
	now := s.now()
	claims := CustomClaims{
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin,
		IsBusiness: user.IsBusiness,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        jwtID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, jwtID, nil
}

// ValidateToken validates a JWT token and returns its claims if valid
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	cfg := s.GetConfig()

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	if claims.UserID == "" {
		return nil, utils.NewInvalidTokenError()
	}

	if cfg.Issuer != "" && claims.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}
