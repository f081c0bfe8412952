package courier_link_decide_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/link"
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
	var decisionDTO dto.LinkDecision
	err := json.NewDecoder(r.Body).Decode(&decisionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DecideLink(r.Context(), decisionDTO.LinkID, decisionDTO.CompanyID, decisionDTO.Approve)
	if err != nil {
		switch {
		case errors.Is(err, link.ErrLinkNotFound),
			errors.Is(err, link.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, link.ErrDecisionMismatch):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, link.ErrLinkNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
