package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

func testJWTSettings() *config.JWTSettings {
	return &config.JWTSettings{
		Secret: "test-secret",
		Expiry: 15 * time.Minute,
		Issuer: "test-issuer",
	}
}

func testUser() *models.User {
	return &models.User{ID: "7d7f2f3e-1111-4c3b-9a55-000000000001", IsAdmin: false, IsBusiness: true}
}

func TestGetConfig(t *testing.T) {
	service := auth.NewJWTService(nil)
	cfg := service.GetConfig()

	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}
	if cfg.Expiry != constants.DefaultJWTExpiry {
		t.Errorf("Expected default Expiry to be %v, got %v", constants.DefaultJWTExpiry, cfg.Expiry)
	}
	if cfg.Issuer != constants.DefaultJWTIssuer {
		t.Errorf("Expected default Issuer to be %q, got %q", constants.DefaultJWTIssuer, cfg.Issuer)
	}

	provided := testJWTSettings()
	if got := auth.NewJWTService(provided).GetConfig(); got != provided {
		t.Errorf("Expected provided config %v, got %v", provided, got)
	}
}

func TestGenerateToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())
	user := testUser()

	tokenString, jwtID, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if tokenString == "" {
		t.Error("Expected non-empty token string")
	}
	if jwtID == "" {
		t.Error("Expected non-empty JWT ID")
	}

	claims, err := service.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("Failed to validate generated token: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("Expected _id %q, got %q", user.ID, claims.UserID)
	}
	if claims.IsBusiness != user.IsBusiness || claims.IsAdmin != user.IsAdmin {
		t.Errorf("Expected role flags to round-trip, got admin=%v business=%v", claims.IsAdmin, claims.IsBusiness)
	}
	if claims.Subject != user.ID {
		t.Errorf("Expected subject %q, got %q", user.ID, claims.Subject)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Expected issuer test-issuer, got %q", claims.Issuer)
	}
	if claims.ID != jwtID {
		t.Errorf("Expected jti %q, got %q", jwtID, claims.ID)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 14*time.Minute || remaining > 15*time.Minute {
		t.Errorf("Expected expiry about 15m from now, got %v", remaining)
	}
}

func TestGenerateToken_MissingUser(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	if _, _, err := service.GenerateToken(nil); !errors.Is(err, auth.ErrMissingSubject) {
		t.Errorf("Expected ErrMissingSubject for nil user, got %v", err)
	}
	if _, _, err := service.GenerateToken(&models.User{}); !errors.Is(err, auth.ErrMissingSubject) {
		t.Errorf("Expected ErrMissingSubject for empty id, got %v", err)
	}
}

func TestPrincipalFromClaims(t *testing.T) {
	claims := &auth.CustomClaims{UserID: "u1", IsAdmin: true}
	p := claims.Principal()

	if p.ID != "u1" || !p.IsAdmin || p.IsBusiness {
		t.Errorf("Unexpected principal %+v", p)
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

func TestValidateToken_Failures(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())
	now := time.Now()

	valid := func() auth.CustomClaims {
		return auth.CustomClaims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "test-issuer",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noSubject := valid()
	noSubject.UserID = ""

	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"garbage", "not-a-token", utils.ErrInvalidToken},
		{"wrong secret", signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), valid()), utils.ErrInvalidToken},
		{"expired", signClaims(t, jwt.SigningMethodHS256, []byte("test-secret"), expired), utils.ErrExpiredToken},
		{"no user id", signClaims(t, jwt.SigningMethodHS256, []byte("test-secret"), noSubject), utils.ErrInvalidToken},
		{"wrong issuer", signClaims(t, jwt.SigningMethodHS256, []byte("test-secret"), wrongIssuer), utils.ErrInvalidToken},
		{"none algorithm", signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid()), utils.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if claims != nil {
				t.Errorf("Expected nil claims, got %+v", claims)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
