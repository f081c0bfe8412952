//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_link_post_test
package courier_link_post

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
	RequestLink(ctx context.Context, courierID, companyID int64) (*entities.CourierCompanyLink, error)
}
