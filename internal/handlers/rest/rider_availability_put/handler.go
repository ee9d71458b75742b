package rider_availability_put

import (
	"fmt"
	"net/http"

	"swiftrider/internal/apperr"
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/request"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

var ErrMissingAvailability = fmt.Errorf("%w: isAvailable is required", apperr.ErrValidation)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "rider_availability_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var req dto.AvailabilityRequest
	err = request.DecodeJSON(r, &req)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}
	if req.IsAvailable == nil {
		response.Error(w, h.log, ErrMissingAvailability)
		return
	}

	user, err := h.service.SetAvailability(r.Context(), actor, *req.IsAvailable)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromUser(user))
}
