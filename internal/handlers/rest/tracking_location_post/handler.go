package tracking_location_post

import (
	"fmt"
	"net/http"

	"swiftrider/internal/apperr"
	"swiftrider/internal/entities"
	"swiftrider/internal/handlers/rest/dto"
	"swiftrider/internal/handlers/rest/request"
	"swiftrider/internal/handlers/rest/response"
	"swiftrider/pkg/logger"
)

var (
	ErrMissingDeliveryID  = fmt.Errorf("%w: deliveryId is required", apperr.ErrValidation)
	ErrMissingCoordinates = fmt.Errorf("%w: latitude and longitude are required", apperr.ErrValidation)
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "tracking_location_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := request.Identity(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var req dto.TrackingLocationRequest
	err = request.DecodeJSON(r, &req)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	switch {
	case req.DeliveryID <= 0:
		response.Error(w, h.log, ErrMissingDeliveryID)
		return
	case req.Latitude == nil || req.Longitude == nil:
		response.Error(w, h.log, ErrMissingCoordinates)
		return
	}

	entry, err := h.service.RecordLocation(r.Context(), actor, entities.TrackingCreate{
		DeliveryID: req.DeliveryID,
		Location: entities.Location{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		},
		Note: req.Note,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.FromTrackingEntry(entry))
}
