//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=presence_test
package presence

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
	SetOnline(ctx context.Context, courierID int64, online bool, at time.Time) error
	AppendPresenceRecord(ctx context.Context, record *entities.PresenceRecord) error
	PresenceHistory(ctx context.Context, courierID int64, limit int) ([]entities.PresenceRecord, error)
}

// EntryCounter смотрит, держит ли курьер живую заявку. Реализуется
// репозиторием заявок.
type EntryCounter interface {
	CountActiveByCourier(ctx context.Context, courierID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
