package deliveries_rider_get

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
		log:     log.With(logger.NewField("handler", "deliveries_rider_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	page, err := request.Page(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	deliveries, err := h.service.ListForRider(r.Context(), actor, page)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromList(deliveries, dto.FromDelivery))
}
