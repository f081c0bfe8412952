package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"dispatch/internal/entities"
	"dispatch/internal/service/pricing"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRateCard(ctx context.Context, country, state string, vehicleClass entities.VehicleClass) (*entities.RateCard, error) {
	query := `
		SELECT country, state, vehicle_class, price_per_km
		FROM rate_cards
		WHERE country = $1
		  AND state = $2
		  AND vehicle_class = $3
	`

	var (
		card           entities.RateCard
		vehicleClassDB string
	)

	err := r.querier.QueryRow(ctx, query, country, state, vehicleClass.String()).Scan(
		&card.Country,
		&card.State,
		&vehicleClassDB,
		&card.PricePerKm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrNoRateCard
		}
		return nil, fmt.Errorf("unexpected rates repository get rate card error: %w", err)
	}

	card.VehicleClass = entities.VehicleClass(vehicleClassDB)
	return &card, nil
}

// GetFeeSchedule собирает действующие административные ставки: одну строку
// fee_schedules и все надбавки по типам груза.
func (r *Repository) GetFeeSchedule(ctx context.Context) (*entities.FeeSchedule, error) {
	query := `
		SELECT id, base_fare, price_per_kg
		FROM fee_schedules
		WHERE active
		ORDER BY id DESC
		LIMIT 1
	`

	var (
		scheduleID int64
		schedule   entities.FeeSchedule
	)
	err := r.querier.QueryRow(ctx, query).Scan(&scheduleID, &schedule.BaseFare, &schedule.PricePerKg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrNoFeeSchedule
		}
		return nil, fmt.Errorf("unexpected rates repository get fee schedule error: %w", err)
	}

	feesQuery := `
		SELECT item_type, fee
		FROM item_type_fees
		WHERE schedule_id = $1
	`
	rows, err := r.querier.Query(ctx, feesQuery, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("unexpected rates repository get item fees error: %w", err)
	}
	defer rows.Close()

	schedule.ItemTypeFees = make(map[entities.ItemType]decimal.Decimal)
	for rows.Next() {
		var (
			itemType string
			fee      decimal.Decimal
		)
		if err := rows.Scan(&itemType, &fee); err != nil {
			return nil, fmt.Errorf("unexpected rates repository scan item fee error: %w", err)
		}
		schedule.ItemTypeFees[entities.ItemType(itemType)] = fee
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rates repository item fees rows error: %w", err)
	}

	return &schedule, nil
}
