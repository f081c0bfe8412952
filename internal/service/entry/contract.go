//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_test
package entry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dispatch/internal/entities"
)

type Repository interface {
	CreateWithOrders(ctx context.Context, entry *entities.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Entry, error)

	// ClaimForCompany и AssignCourier это условные обновления: они проходят
	// только если заявка все еще свободна, иначе ErrAlreadyTaken.
	ClaimForCompany(ctx context.Context, entryID uuid.UUID, companyID int64, at time.Time) error
	AssignCourier(ctx context.Context, entryID uuid.UUID, courierID int64, at time.Time) error

	UpdateStatus(ctx context.Context, entryID uuid.UUID, from []entities.EntryStatus, to entities.EntryStatus, at time.Time) error
	CancelStaleRequests(ctx context.Context, olderThan time.Time) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entities.Transaction) error
	GetActiveByEntry(ctx context.Context, entryID uuid.UUID) (*entities.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*entities.Transaction, error)

	// Settle переводит pending транзакцию в терминальный статус.
	Settle(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, at time.Time) error
}

// AccountReader это read-only доступ к профилям. Регистрация и верификация
// живут в другом сервисе.
type AccountReader interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
	GetCompany(ctx context.Context, id int64) (*entities.Company, error)
	EligibleCourierIDs(ctx context.Context, companyID int64, vehicleClass entities.VehicleClass) ([]int64, error)
}

type Pricer interface {
	QuoteEntry(ctx context.Context, submission entities.EntrySubmission) (*entities.EntryQuote, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, reference, authToken string, amount decimal.Decimal) (settlementRef string, err error)
}

// Dispatch это best-effort рассылка событий. Ошибки доставки логируются
// реализацией и не останавливают переходы заявки.
type Dispatch interface {
	NotifyOffered(ctx context.Context, entry *entities.Entry, courierIDs []int64)
	NotifyTaken(ctx context.Context, entry *entities.Entry, winnerID int64)
	NotifyBasketUpdated(ctx context.Context, entry *entities.Entry)
}

type EventPublisher interface {
	EntryStatusChanged(ctx context.Context, entry *entities.Entry, from, to entities.EntryStatus)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
