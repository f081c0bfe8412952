package courier_link_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/link"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var linkDTO dto.LinkCreate
	err := json.NewDecoder(r.Body).Decode(&linkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	linkEntity, err := h.service.RequestLink(r.Context(), linkDTO.CourierID, linkDTO.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, link.ErrCourierNotFound),
			errors.Is(err, link.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, link.ErrCompanyInactive):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, link.ErrAlreadyLinked),
			errors.Is(err, link.ErrLinkConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LinkCreateResponse{
		ID:     linkEntity.ID,
		Status: linkEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
