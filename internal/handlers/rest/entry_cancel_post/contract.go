//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_cancel_post_test
package entry_cancel_post

import (
	"context"

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
	CancelEntry(ctx context.Context, entryID uuid.UUID) error
}
