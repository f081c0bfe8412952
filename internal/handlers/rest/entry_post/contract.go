//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_post_test
package entry_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitEntry(ctx context.Context, submission entities.EntrySubmission) (*entities.Entry, error)
}
