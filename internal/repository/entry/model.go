package entry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryDB struct {
	ID            uuid.UUID
	ShipperID     int64
	CompanyID     *int64
	CourierID     *int64
	OriginLat     float64
	OriginLng     float64
	OriginAddress string
	Country       string
	State         string
	VehicleClass  string
	TotalDistance int64
	TotalDuration int64
	TotalCost     decimal.Decimal
	Status        string
	CreatedAt     time.Time
	PaidAt        *time.Time
	CompanyAt     *time.Time
	AcceptedAt    *time.Time
	TransitAt     *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
}

type OrderDB struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	Seq         int
	DestLat     float64
	DestLng     float64
	DestAddress string
	ItemType    string
	WeightKg    decimal.Decimal
	Distance    int64
	Duration    int64
	Cost        decimal.Decimal
	ClientRef   string
	CreatedAt   time.Time
}
