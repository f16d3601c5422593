package middleware

import (
	"net"
	"net/http"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/pkg/ratelimit"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimit ограничивает частоту запросов по IP клиента
// При недоступности хранилища счетчиков запрос пропускается:
// деградация лимитера не должна ронять аутентификацию
func RateLimit(limiter ratelimit.Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("ratelimit: limiter error for %s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("ratelimit: too many requests from %s to %s %s", key, r.Method, r.URL.Path)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	// За обратным прокси реальный адрес приходит в X-Forwarded-For
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
