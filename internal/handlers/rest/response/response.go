// Package response пишет JSON ответы и переводит ошибки сервисов в HTTP коды.
package response

import (
	"encoding/json"
	"net/http"

	"swiftrider/internal/apperr"
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error отвечает {"message": ...}. Для 5xx текст ошибки не раскрывается, только логируется.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := apperr.HTTPStatus(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("error", err),
			logger.NewField("kind", apperr.Kind(err)),
		)
		message = publicMessage(status)
	}

	JSON(w, log, status, dto.MessageResponse{Message: message})
}

func publicMessage(status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	case http.StatusGatewayTimeout:
		return "request timed out"
	default:
		return "internal server error"
	}
}
