//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=link_test
package link

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	// Create возвращает ErrLinkConflict, если у курьера уже есть
	// не-отклоненная заявка к этой компании.
	Create(ctx context.Context, link *entities.CourierCompanyLink) error
	GetByID(ctx context.Context, id int64) (*entities.CourierCompanyLink, error)
	ListByCourier(ctx context.Context, courierID int64) ([]entities.CourierCompanyLink, error)

	// DecidePending это условное обновление pending -> терминальный статус.
	// Ноль затронутых строк означает ErrLinkNotPending.
	DecidePending(ctx context.Context, id int64, status entities.LinkStatus, at time.Time) error

	AssignCompany(ctx context.Context, courierID, companyID int64) error
}

type AccountReader interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
	GetCompany(ctx context.Context, id int64) (*entities.Company, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
