//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_cash_post_test
package payment_cash_post

import (
	"context"

	"dispatch/internal/service/entry"
	"dispatch/pkg/logger"
	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ConfirmCashPayment(ctx context.Context, entryID uuid.UUID, actor entry.CashActor, approve bool) error
}
