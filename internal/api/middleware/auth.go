package middleware

import (
	"net/http"
	"strings"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	"github.com/avdeyev/BusPark-BookingService/pkg/authtoken"
)

const (
	msgMissingToken = "требуется аутентификация"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ запрещен"
)

// TokenVerifier интерфейс проверки access-токенов
type TokenVerifier interface {
	Verify(token string) (*authtoken.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer-токен и кладет пользователя в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("auth: token rejected for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только пользователей с ролью admin
// Вешается после Auth
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return RequireRole(logger, string(domain.RoleAdmin))
}

// RequireRole пропускает только пользователей с одной из перечисленных ролей
func RequireRole(logger Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				logger.Warn("auth: missing role in context for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("auth: role %s not allowed for %s %s", role, r.Method, r.URL.Path)
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
