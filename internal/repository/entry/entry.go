package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/entry"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Какая колонка времени заполняется при переходе в статус.
var statusTimestampColumn = map[entities.EntryStatus]string{
	entities.EntryPending:         "paid_at",
	entities.EntryCompanyAccepted: "company_at",
	entities.EntryAccepted:        "accepted_at",
	entities.EntryOngoing:         "transit_at",
	entities.EntryCompleted:       "completed_at",
	entities.EntryCancelled:       "cancelled_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateWithOrders(ctx context.Context, entryEntity *entities.Entry) error {
	query := `
		INSERT INTO entries (
			id, shipper_id, origin_lat, origin_lng, origin_address,
			country, state, vehicle_class,
			total_distance, total_duration, total_cost, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.querier.Exec(
		ctx,
		query,
		entryEntity.ID,
		entryEntity.ShipperID,
		entryEntity.OriginLat,
		entryEntity.OriginLng,
		entryEntity.OriginAddress,
		entryEntity.Country,
		entryEntity.State,
		entryEntity.VehicleClass.String(),
		entryEntity.TotalDistance,
		entryEntity.TotalDuration,
		entryEntity.TotalCost,
		entryEntity.Status.String(),
		entryEntity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected entry repository create error: %w", err)
	}

	if len(entryEntity.Orders) == 0 {
		return nil
	}

	builder := qb.
		Insert("orders").
		Columns("id", "entry_id", "seq", "dest_lat", "dest_lng", "dest_address",
			"item_type", "weight_kg", "distance", "duration", "cost", "client_ref", "created_at")
	for _, order := range entryEntity.Orders {
		builder = builder.Values(
			order.ID,
			order.EntryID,
			order.Seq,
			order.DestLat,
			order.DestLng,
			order.DestAddress,
			order.ItemType.String(),
			order.WeightKg,
			order.Distance,
			order.Duration,
			order.Cost,
			order.ClientRef,
			order.CreatedAt,
		)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build orders insert: %w", err)
	}
	if _, err := r.querier.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("unexpected entry repository create orders error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Entry, error) {
	query := `
		SELECT id, shipper_id, company_id, courier_id,
			origin_lat, origin_lng, origin_address,
			country, state, vehicle_class,
			total_distance, total_duration, total_cost, status,
			created_at, paid_at, company_at, accepted_at, transit_at, completed_at, cancelled_at
		FROM entries
		WHERE id = $1
	`

	var entryDB EntryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&entryDB.ID,
		&entryDB.ShipperID,
		&entryDB.CompanyID,
		&entryDB.CourierID,
		&entryDB.OriginLat,
		&entryDB.OriginLng,
		&entryDB.OriginAddress,
		&entryDB.Country,
		&entryDB.State,
		&entryDB.VehicleClass,
		&entryDB.TotalDistance,
		&entryDB.TotalDuration,
		&entryDB.TotalCost,
		&entryDB.Status,
		&entryDB.CreatedAt,
		&entryDB.PaidAt,
		&entryDB.CompanyAt,
		&entryDB.AcceptedAt,
		&entryDB.TransitAt,
		&entryDB.CompletedAt,
		&entryDB.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected entry repository get error: %w", err)
	}

	orders, err := r.ordersByEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&entryDB, orders), nil
}

func (r *Repository) ordersByEntry(ctx context.Context, entryID uuid.UUID) ([]OrderDB, error) {
	query := `
		SELECT id, entry_id, seq, dest_lat, dest_lng, dest_address,
			item_type, weight_kg, distance, duration, cost, client_ref, created_at
		FROM orders
		WHERE entry_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.querier.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected entry repository get orders error: %w", err)
	}
	defer rows.Close()

	var orders []OrderDB
	for rows.Next() {
		var o OrderDB
		if err := rows.Scan(
			&o.ID,
			&o.EntryID,
			&o.Seq,
			&o.DestLat,
			&o.DestLng,
			&o.DestAddress,
			&o.ItemType,
			&o.WeightKg,
			&o.Distance,
			&o.Duration,
			&o.Cost,
			&o.ClientRef,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected entry repository scan order error: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected entry repository orders rows error: %w", err)
	}
	return orders, nil
}

// ClaimForCompany проходит только пока заявка никем не взята. Ноль строк
// означает, что другая компания успела раньше.
func (r *Repository) ClaimForCompany(ctx context.Context, entryID uuid.UUID, companyID int64, at time.Time) error {
	query := `
		UPDATE entries
		SET company_id = $1, status = $2, company_at = $3
		WHERE id = $4
		  AND company_id IS NULL
		  AND status IN ($5, $6)
	`
	result, err := r.querier.Exec(ctx, query,
		companyID,
		entities.EntryCompanyAccepted.String(),
		at,
		entryID,
		entities.EntryRequest.String(),
		entities.EntryPending.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected entry repository claim error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.ErrAlreadyTaken
	}
	return nil
}

// AssignCourier это гонка принятия: курьеры бьются за одну строку,
// побеждает ровно один.
func (r *Repository) AssignCourier(ctx context.Context, entryID uuid.UUID, courierID int64, at time.Time) error {
	query := `
		UPDATE entries
		SET courier_id = $1, status = $2, accepted_at = $3
		WHERE id = $4
		  AND courier_id IS NULL
		  AND status = $5
	`
	result, err := r.querier.Exec(ctx, query,
		courierID,
		entities.EntryAccepted.String(),
		at,
		entryID,
		entities.EntryCompanyAccepted.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected entry repository assign error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.ErrAlreadyTaken
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, entryID uuid.UUID, from []entities.EntryStatus, to entities.EntryStatus, at time.Time) error {
	fromStatuses := make([]string, 0, len(from))
	for _, s := range from {
		fromStatuses = append(fromStatuses, s.String())
	}

	builder := qb.
		Update("entries").
		Set("status", to.String()).
		Where(sq.Eq{"id": entryID, "status": fromStatuses})
	if column, ok := statusTimestampColumn[to]; ok {
		builder = builder.Set(column, at)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build status update: %w", err)
	}

	result, err := r.querier.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("unexpected entry repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.ErrIllegalTransition
	}
	return nil
}

// CountActiveByCourier считает заявки, которые курьер обязан довезти.
func (r *Repository) CountActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM entries
		WHERE courier_id = $1
		  AND status IN ($2, $3)
	`

	var count int64
	err := r.querier.QueryRow(ctx, query,
		courierID,
		entities.EntryAccepted.String(),
		entities.EntryOngoing.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected entry repository count active error: %w", err)
	}
	return count, nil
}

func (r *Repository) CancelStaleRequests(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		UPDATE entries
		SET status = $1, cancelled_at = NOW()
		WHERE status = $2
		  AND created_at < $3
	`
	result, err := r.querier.Exec(ctx, query,
		entities.EntryCancelled.String(),
		entities.EntryRequest.String(),
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected entry repository cancel stale error: %w", err)
	}
	return result.RowsAffected(), nil
}
