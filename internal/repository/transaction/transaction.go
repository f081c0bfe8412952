package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
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

// Create упирается в частичный уникальный индекс по (entry_id) среди
// не-отклоненных транзакций: вторая живая транзакция на заявку невозможна.
func (r *Repository) Create(ctx context.Context, transactionEntity *entities.Transaction) error {
	query := `
		INSERT INTO transactions (id, entry_id, amount, method, status, reference, created_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.querier.Exec(
		ctx,
		query,
		transactionEntity.ID,
		transactionEntity.EntryID,
		transactionEntity.Amount,
		transactionEntity.Method.String(),
		transactionEntity.Status.String(),
		transactionEntity.Reference,
		transactionEntity.CreatedAt,
		transactionEntity.SettledAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entry.ErrPaymentConflict
		}
		return fmt.Errorf("unexpected transaction repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetActiveByEntry(ctx context.Context, entryID uuid.UUID) (*entities.Transaction, error) {
	query := `
		SELECT id, entry_id, amount, method, status, reference, created_at, settled_at
		FROM transactions
		WHERE entry_id = $1
		  AND status != $2
	`
	return r.get(ctx, query, entryID, entities.TransactionDeclined.String())
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*entities.Transaction, error) {
	query := `
		SELECT id, entry_id, amount, method, status, reference, created_at, settled_at
		FROM transactions
		WHERE reference = $1
	`
	return r.get(ctx, query, reference)
}

func (r *Repository) get(ctx context.Context, query string, args ...interface{}) (*entities.Transaction, error) {
	var transactionDB TransactionDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&transactionDB.ID,
		&transactionDB.EntryID,
		&transactionDB.Amount,
		&transactionDB.Method,
		&transactionDB.Status,
		&transactionDB.Reference,
		&transactionDB.CreatedAt,
		&transactionDB.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("unexpected transaction repository get error: %w", err)
	}
	return ToDomain(&transactionDB), nil
}

// Settle закрывает только pending транзакцию, повторное закрытие не проходит.
func (r *Repository) Settle(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, at time.Time) error {
	query := `
		UPDATE transactions
		SET status = $1, settled_at = $2
		WHERE id = $3
		  AND status = $4
	`
	result, err := r.querier.Exec(ctx, query,
		status.String(),
		at,
		id,
		entities.TransactionPending.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected transaction repository settle error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.ErrPaymentConflict
	}
	return nil
}
