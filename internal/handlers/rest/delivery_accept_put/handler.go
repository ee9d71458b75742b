package delivery_accept_put

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
		log:     log.With(logger.NewField("handler", "delivery_accept_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	delivery, err := h.service.Accept(r.Context(), actor, id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDelivery(delivery))
}
