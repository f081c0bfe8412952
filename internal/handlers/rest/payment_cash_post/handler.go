package payment_cash_post

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

	var cashDTO dto.CashConfirm
	err = json.NewDecoder(r.Body).Decode(&cashDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entry.CashActor{
		CourierID: cashDTO.CourierID,
		CompanyID: cashDTO.CompanyID,
	}

	err = h.service.ConfirmCashPayment(r.Context(), entryID, actor, cashDTO.Approve)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrEntryNotFound),
			errors.Is(err, entry.ErrTransactionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entry.ErrNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, entry.ErrNotCashPayment),
			errors.Is(err, entry.ErrPaymentConflict),
			errors.Is(err, entry.ErrIllegalTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
