//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_complete_post_test
package entry_complete_post

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
	CompleteEntry(ctx context.Context, entryID uuid.UUID, courierID int64) error
}
