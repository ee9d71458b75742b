package tracking_current_get

import (
	"net/http"

	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/request"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "tracking_current_get")),
		service: service,
	}
}

// ServeHTTP отдает последнюю известную точку доставки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	deliveryID, err := request.PathID(r, "deliveryId")
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	entry, err := h.service.Current(r.Context(), actor, deliveryID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromTrackingEntry(entry))
}
