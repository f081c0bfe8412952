package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry это одна заявка на доставку от отправителя, возможно с несколькими точками.
// Стоимость и дистанция агрегируются по валидным точкам и после создания не меняются.
type Entry struct {
	ID            uuid.UUID
	ShipperID     int64
	CompanyID     *int64
	CourierID     *int64
	OriginLat     float64
	OriginLng     float64
	OriginAddress string
	Country       string
	State         string
	VehicleClass  VehicleClass
	TotalDistance int64 // meters
	TotalDuration int64 // seconds
	TotalCost     decimal.Decimal
	Status        EntryStatus
	Orders        []Order
	CreatedAt     time.Time
	PaidAt        *time.Time
	CompanyAt     *time.Time
	AcceptedAt    *time.Time
	TransitAt     *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
}

type EntryStatus string

const (
	EntryRequest         EntryStatus = "request"
	EntryPending         EntryStatus = "pending"
	EntryCompanyAccepted EntryStatus = "companyAccepted"
	EntryAccepted        EntryStatus = "accepted"
	EntryOngoing         EntryStatus = "ongoing"
	EntryCompleted       EntryStatus = "completed"
	EntryCancelled       EntryStatus = "cancelled"
)

func (s EntryStatus) String() string {
	return string(s)
}

// Terminal сообщает, что заявка достигла конечного состояния.
func (s EntryStatus) Terminal() bool {
	return s == EntryCompleted || s == EntryCancelled
}

// CanTransition проверяет допустимость перехода. Любое нетерминальное состояние
// может уйти в cancelled, остальные переходы строго по цепочке.
func (s EntryStatus) CanTransition(to EntryStatus) bool {
	if s.Terminal() {
		return false
	}
	if to == EntryCancelled {
		return true
	}

	switch s {
	case EntryRequest:
		// компания может забрать и неоплаченную заявку (наличный сценарий)
		return to == EntryPending || to == EntryCompanyAccepted
	case EntryPending:
		return to == EntryCompanyAccepted
	case EntryCompanyAccepted:
		return to == EntryAccepted
	case EntryAccepted:
		return to == EntryOngoing
	case EntryOngoing:
		return to == EntryCompleted
	default:
		return false
	}
}

type VehicleClass string

const (
	VehicleBicycle   VehicleClass = "bicycle"
	VehicleMotorbike VehicleClass = "motorbike"
	VehicleCar       VehicleClass = "car"
	VehicleVan       VehicleClass = "van"
)

func (v VehicleClass) String() string {
	return string(v)
}

// EntrySubmission это входные данные заявки до прайсинга.
type EntrySubmission struct {
	ShipperID    int64
	OriginLat    float64
	OriginLng    float64
	Country      string
	State        string
	VehicleClass VehicleClass
	Stops        []StopSubmission
}

type StopSubmission struct {
	Lat       float64
	Lng       float64
	ItemType  ItemType
	WeightKg  decimal.Decimal
	ClientRef string
}
