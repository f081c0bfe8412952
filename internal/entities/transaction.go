package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction это одна попытка расчета по заявке. Сумма копируется из
// агрегата Entry в момент подтверждения, повторное чтение цены запрещено.
type Transaction struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	Amount    decimal.Decimal
	Method    PaymentMethod
	Status    TransactionStatus
	Reference string
	CreatedAt time.Time
	SettledAt *time.Time
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCash
}

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionDeclined TransactionStatus = "declined"
)

func (s TransactionStatus) String() string {
	return string(s)
}
