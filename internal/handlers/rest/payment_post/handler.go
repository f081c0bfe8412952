package payment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/entry"
	"dispatch/pkg/logger"
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

	var paymentDTO dto.PaymentConfirm
	err = json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transaction, err := h.service.ConfirmPayment(r.Context(), entryID, entities.PaymentMethod(paymentDTO.Method), paymentDTO.CardToken)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, entry.ErrEntryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entry.ErrPaymentFailed):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, entry.ErrIllegalTransition),
			errors.Is(err, entry.ErrPaymentConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	transactionDTO := dto.FromTransaction(transaction)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(transactionDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
