//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_accept_post_test
package company_accept_post

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
	AcceptForCompany(ctx context.Context, entryID uuid.UUID, companyID int64) error
}
