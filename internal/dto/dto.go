// Package dto содержит тела HTTP запросов и ответов.
package dto

import "github.com/shopspring/decimal"

type PingResponse struct {
	Message string `json:"message"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StopCreate struct {
	Lat       float64         `json:"lat"`
	Lng       float64         `json:"lng"`
	ItemType  string          `json:"item_type"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	ClientRef string          `json:"client_ref,omitempty"`
}

type EntryCreate struct {
	ShipperID    int64        `json:"shipper_id"`
	Origin       Point        `json:"origin"`
	Country      string       `json:"country"`
	State        string       `json:"state"`
	VehicleClass string       `json:"vehicle_class"`
	Stops        []StopCreate `json:"stops"`
}

type Order struct {
	ID          string          `json:"id"`
	Seq         int             `json:"seq"`
	DestAddress string          `json:"dest_address"`
	ItemType    string          `json:"item_type"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
	Distance    int64           `json:"distance_meters"`
	Duration    int64           `json:"duration_seconds"`
	Cost        decimal.Decimal `json:"cost"`
	ClientRef   string          `json:"client_ref,omitempty"`
}

type Entry struct {
	ID            string          `json:"id"`
	ShipperID     int64           `json:"shipper_id"`
	CompanyID     *int64          `json:"company_id,omitempty"`
	CourierID     *int64          `json:"courier_id,omitempty"`
	OriginAddress string          `json:"origin_address"`
	Country       string          `json:"country"`
	State         string          `json:"state"`
	VehicleClass  string          `json:"vehicle_class"`
	TotalDistance int64           `json:"total_distance_meters"`
	TotalDuration int64           `json:"total_duration_seconds"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
	Orders        []Order         `json:"orders"`
	CreatedAt     string          `json:"created_at"`
}

type PaymentConfirm struct {
	Method    string `json:"method"`
	CardToken string `json:"card_token,omitempty"`
}

type Transaction struct {
	ID        string          `json:"id"`
	EntryID   string          `json:"entry_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
}

type CashConfirm struct {
	CourierID *int64 `json:"courier_id,omitempty"`
	CompanyID *int64 `json:"company_id,omitempty"`
	Approve   bool   `json:"approve"`
}

type CompanyAccept struct {
	CompanyID int64 `json:"company_id"`
}

type CourierAction struct {
	CourierID int64 `json:"courier_id"`
}

type PresenceUpdate struct {
	Online bool `json:"online"`
}

type PresenceRecord struct {
	Online bool   `json:"online"`
	At     string `json:"at"`
}

type LinkCreate struct {
	CourierID int64 `json:"courier_id"`
	CompanyID int64 `json:"company_id"`
}

type LinkCreateResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type LinkDecision struct {
	LinkID    int64 `json:"link_id"`
	CompanyID int64 `json:"company_id"`
	Approve   bool  `json:"approve"`
}
