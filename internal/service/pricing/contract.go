//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type RateRepository interface {
	GetRateCard(ctx context.Context, country, state string, vehicleClass entities.VehicleClass) (*entities.RateCard, error)
	GetFeeSchedule(ctx context.Context) (*entities.FeeSchedule, error)
}

// RouteOracle это внешний провайдер дистанций и длительностей.
// Возвращает по ноге на каждую точку назначения в исходном порядке,
// нога может прийти со статусом отличным от OK.
type RouteOracle interface {
	Routes(ctx context.Context, origin entities.Point, destinations []entities.Point, departAt time.Time) (entities.RouteMatrix, error)
}
