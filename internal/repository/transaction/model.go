package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionDB struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	Amount    decimal.Decimal
	Method    string
	Status    string
	Reference string
	CreatedAt time.Time
	SettledAt *time.Time
}
