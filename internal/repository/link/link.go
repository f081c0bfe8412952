package link

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/link"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create упирается в частичный уникальный индекс по (courier_id, company_id)
// среди не-отклоненных заявок.
func (r *Repository) Create(ctx context.Context, linkEntity *entities.CourierCompanyLink) error {
	query := `
		INSERT INTO courier_company_links (courier_id, company_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.querier.QueryRow(
		ctx,
		query,
		linkEntity.CourierID,
		linkEntity.CompanyID,
		linkEntity.Status.String(),
		linkEntity.CreatedAt,
	).Scan(&linkEntity.ID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return link.ErrLinkConflict
		}
		return fmt.Errorf("unexpected link repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CourierCompanyLink, error) {
	query := `
		SELECT id, courier_id, company_id, status, created_at, decided_at
		FROM courier_company_links
		WHERE id = $1
	`

	var linkDB LinkDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&linkDB.ID,
		&linkDB.CourierID,
		&linkDB.CompanyID,
		&linkDB.Status,
		&linkDB.CreatedAt,
		&linkDB.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, link.ErrLinkNotFound
		}
		return nil, fmt.Errorf("unexpected link repository get error: %w", err)
	}
	return ToDomain(&linkDB), nil
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64) ([]entities.CourierCompanyLink, error) {
	query := `
		SELECT id, courier_id, company_id, status, created_at, decided_at
		FROM courier_company_links
		WHERE courier_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected link repository list error: %w", err)
	}
	defer rows.Close()

	var links []entities.CourierCompanyLink
	for rows.Next() {
		var linkDB LinkDB
		if err := rows.Scan(
			&linkDB.ID,
			&linkDB.CourierID,
			&linkDB.CompanyID,
			&linkDB.Status,
			&linkDB.CreatedAt,
			&linkDB.DecidedAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected link repository scan error: %w", err)
		}
		links = append(links, *ToDomain(&linkDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected link repository rows error: %w", err)
	}
	return links, nil
}

// DecidePending это условное обновление: решение проходит ровно один раз.
func (r *Repository) DecidePending(ctx context.Context, id int64, status entities.LinkStatus, at time.Time) error {
	query := `
		UPDATE courier_company_links
		SET status = $1, decided_at = $2
		WHERE id = $3
		  AND status = $4
	`
	result, err := r.querier.Exec(ctx, query,
		status.String(),
		at,
		id,
		entities.LinkPending.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected link repository decide error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return link.ErrLinkNotPending
	}
	return nil
}

func (r *Repository) AssignCompany(ctx context.Context, courierID, companyID int64) error {
	query := `
		UPDATE couriers
		SET company_id = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.querier.Exec(ctx, query, companyID, courierID)
	if err != nil {
		return fmt.Errorf("unexpected link repository assign company error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return link.ErrCourierNotFound
	}
	return nil
}
