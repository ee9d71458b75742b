package auth

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"swiftrider/internal/apperr"
	"swiftrider/internal/entities"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/internal/pkg/identity"
	"swiftrider/pkg/logger"
)

var (
	ErrMissingToken = fmt.Errorf("%w: missing bearer token", apperr.ErrUnauthenticated)
	ErrInvalidToken = fmt.Errorf("%w: invalid or expired token", apperr.ErrUnauthenticated)
	ErrRoleDenied   = fmt.Errorf("%w: role is not allowed to access this resource", apperr.ErrForbidden)
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware кладет Identity из заголовка Authorization: Bearer <token> в контекст.
func Middleware(log errorLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				response.Error(w, log, ErrMissingToken)
				return
			}

			actor, err := parser.Parse(raw)
			if err != nil {
				response.Error(w, log, ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), actor)))
		})
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после Middleware.
func RequireRole(log errorLogger, roles ...entities.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := identity.FromContext(r.Context())
			if !ok {
				response.Error(w, log, ErrMissingToken)
				return
			}

			if !slices.Contains(roles, actor.Role) {
				response.Error(w, log, ErrRoleDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
