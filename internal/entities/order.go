package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order это одна точка (нога) внутри Entry. Создается пакетом вместе с Entry
// в одной транзакции и после этого не обновляется.
type Order struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	Seq         int
	DestLat     float64
	DestLng     float64
	DestAddress string
	ItemType    ItemType
	WeightKg    decimal.Decimal
	Distance    int64 // meters
	Duration    int64 // seconds
	Cost        decimal.Decimal
	ClientRef   string
	CreatedAt   time.Time
}

type ItemType string

const (
	ItemDocument ItemType = "document"
	ItemParcel   ItemType = "parcel"
	ItemFood     ItemType = "food"
	ItemFragile  ItemType = "fragile"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemDocument, ItemParcel, ItemFood, ItemFragile:
		return true
	default:
		return false
	}
}
