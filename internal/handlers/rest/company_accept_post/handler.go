package company_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/entry"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	entryID, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var acceptDTO dto.CompanyAccept
	err = json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.AcceptForCompany(r.Context(), entryID, acceptDTO.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrEntryNotFound),
			errors.Is(err, entry.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entry.ErrCompanyInactive):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, entry.ErrVehicleUnsupported),
			errors.Is(err, entry.ErrOutsideRegion):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, entry.ErrAlreadyTaken),
			errors.Is(err, entry.ErrIllegalTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
