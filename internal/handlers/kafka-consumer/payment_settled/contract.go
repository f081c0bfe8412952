//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_settled_test
package payment_settled

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApplySettlement(ctx context.Context, reference string, approved bool) error
}
