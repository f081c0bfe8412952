package payment_settled

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/service/entry"
	"dispatch/pkg/logger"
	"github.com/IBM/sarama"
)

// settledEvent это вебхук провайдера платежей, переложенный в Kafka.
type settledEvent struct {
	Reference string `json:"reference"`
	Approved  bool   `json:"approved"`
}

type Handler struct {
	entryService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, entryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		entryService:             entryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.settled: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.settled: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event settledEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.settled handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("reference", event.Reference),
		logger.NewField("approved", event.Approved),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.settled processing")

	err = h.entryService.ApplySettlement(ctx, event.Reference, event.Approved)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.settled handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entry.ErrTransactionNotFound):
			// вебхук может прилететь раньше, чем мы записали транзакцию,
			// либо по чужому reference — коммитим и не ретраим
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.settled handler unknown reference")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.settled handler failed to apply settlement")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.settled: processed")

	sess.MarkMessage(message, "")
	return false
}
