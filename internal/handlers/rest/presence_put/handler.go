package presence_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/service/presence"
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
	courierID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var presenceDTO dto.PresenceUpdate
	err = json.NewDecoder(r.Body).Decode(&presenceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetPresence(r.Context(), courierID, presenceDTO.Online)
	if err != nil {
		switch {
		case errors.Is(err, presence.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, presence.ErrCourierBusy):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
