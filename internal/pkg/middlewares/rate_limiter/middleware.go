package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/internal/pkg/middlewares/metrics"
	"swiftrider/pkg/logger"
)

func Middleware(log handlerLogger, capacity int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			if limiter.AllowKey(key) {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("client", key),
			)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, dto.MessageResponse{
				Message: "Rate limit exceeded. Try again later.",
			})
		})
	}
}

// ClientKey - IP клиента без порта.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
