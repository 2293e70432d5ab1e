// Package auth provides authentication and authorization functionality for the BizCards API.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// PrincipalContextKey is the context key for the authenticated caller.
const PrincipalContextKey ContextKey = "principal"

// ExtractToken returns the token carried by the request. Sources are tried
// in order: "Authorization: Bearer <token>", a raw Authorization header,
// then the x-auth-token header.
func ExtractToken(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get(constants.HeaderAuthorization)); header != "" {
		if len(header) > len(constants.BearerTokenPrefix) && strings.EqualFold(header[:len(constants.BearerTokenPrefix)], constants.BearerTokenPrefix) {
			return strings.TrimSpace(header[len(constants.BearerTokenPrefix):])
		}
		return header
	}
	return strings.TrimSpace(r.Header.Get(constants.HeaderXAuthToken))
}

// JWTAuth rejects requests without a valid token and attaches the caller's
// Principal to the request context. It performs no store lookups.
func JWTAuth(validator JWTValidator) func(http.Handler) http.Handler {
	if validator == nil {
		panic("auth: nil token validator")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())

			token := ExtractToken(r)
			if token == "" {
				log.Debug().
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Request without token")
				utils.ErrorFromAppError(w, utils.NewUnauthorizedError(constants.MsgAuthRequired))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				log.Info().
					Err(err).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Authentication failed")
				utils.ErrorFromAppError(w, utils.ParseError(err))
				return
			}

			principal := claims.Principal()

			log.Debug().
				Str("user_id", principal.ID).
				Bool("is_admin", principal.IsAdmin).
				Bool("is_business", principal.IsBusiness).
				Str("request_id", requestID).
				Msg("User authenticated")

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, principal)
}

// GetPrincipal extracts the authenticated caller from the request context.
func GetPrincipal(r *http.Request) (*models.Principal, bool) {
	return PrincipalFromContext(r.Context())
}

// PrincipalFromContext extracts the authenticated caller from ctx.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*models.Principal)
	return principal, ok && principal != nil
}
