package admin_user_put

import (
	"net/http"

	"swiftrider/internal/entities"
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
		log:     log.With(logger.NewField("handler", "admin_user_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var req dto.UserUpdateRequest
	err = request.DecodeJSON(r, &req)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), entities.UserModify{
		ID:          &id,
		IsVerified:  req.IsVerified,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromUser(user))
}
