package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

// Middleware отклоняет новые запросы, когда сервер уже останавливается.
func Middleware(log logger.Logger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				response.JSON(w, log, http.StatusServiceUnavailable, dto.MessageResponse{
					Message: "service is shutting down",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
