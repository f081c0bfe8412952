package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/entry"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `
		SELECT id, company_id, name, phone, vehicle_class, verified, active, online, created_at, updated_at
		FROM couriers
		WHERE id = $1
	`

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&courierDB.ID,
		&courierDB.CompanyID,
		&courierDB.Name,
		&courierDB.Phone,
		&courierDB.VehicleClass,
		&courierDB.Verified,
		&courierDB.Active,
		&courierDB.Online,
		&courierDB.CreatedAt,
		&courierDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected accounts repository get courier error: %w", err)
	}

	return ToCourierDomain(&courierDB), nil
}

func (r *Repository) GetCompany(ctx context.Context, id int64) (*entities.Company, error) {
	query := `
		SELECT id, name, country, state, vehicle_classes, verified, active
		FROM companies
		WHERE id = $1
	`

	var companyDB CompanyDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&companyDB.ID,
		&companyDB.Name,
		&companyDB.Country,
		&companyDB.State,
		&companyDB.VehicleClasses,
		&companyDB.Verified,
		&companyDB.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("unexpected accounts repository get company error: %w", err)
	}

	return ToCompanyDomain(&companyDB), nil
}

// EligibleCourierIDs отбирает курьеров компании, которым можно показать оффер.
func (r *Repository) EligibleCourierIDs(ctx context.Context, companyID int64, vehicleClass entities.VehicleClass) ([]int64, error) {
	query := `
		SELECT id
		FROM couriers
		WHERE company_id = $1
		  AND vehicle_class = $2
		  AND verified AND active AND online
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query, companyID, vehicleClass.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected accounts repository eligible couriers error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected accounts repository scan courier id error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected accounts repository eligible couriers rows error: %w", err)
	}
	return ids, nil
}

func (r *Repository) SetOnline(ctx context.Context, courierID int64, online bool, at time.Time) error {
	query := `
		UPDATE couriers
		SET online = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.querier.Exec(ctx, query, online, at, courierID)
	if err != nil {
		return fmt.Errorf("unexpected accounts repository set online error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.ErrCourierNotFound
	}
	return nil
}

func (r *Repository) AppendPresenceRecord(ctx context.Context, record *entities.PresenceRecord) error {
	query := `
		INSERT INTO courier_presence_log (courier_id, online, at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.querier.QueryRow(ctx, query, record.CourierID, record.Online, record.At).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("unexpected accounts repository append presence error: %w", err)
	}
	return nil
}

func (r *Repository) PresenceHistory(ctx context.Context, courierID int64, limit int) ([]entities.PresenceRecord, error) {
	query := `
		SELECT id, courier_id, online, at
		FROM courier_presence_log
		WHERE courier_id = $1
		ORDER BY at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, courierID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected accounts repository presence history error: %w", err)
	}
	defer rows.Close()

	var history []entities.PresenceRecord
	for rows.Next() {
		var recordDB PresenceRecordDB
		if err := rows.Scan(&recordDB.ID, &recordDB.CourierID, &recordDB.Online, &recordDB.At); err != nil {
			return nil, fmt.Errorf("unexpected accounts repository scan presence error: %w", err)
		}
		history = append(history, ToPresenceDomain(&recordDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected accounts repository presence rows error: %w", err)
	}
	return history, nil
}
