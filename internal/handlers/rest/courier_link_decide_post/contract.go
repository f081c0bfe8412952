//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_link_decide_post_test
package courier_link_decide_post

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
	DecideLink(ctx context.Context, linkID, companyID int64, approve bool) error
}
