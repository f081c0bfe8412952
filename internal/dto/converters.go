package dto

import (
	"time"

	"dispatch/internal/entities"
)

func FromEntry(e *entities.Entry) Entry {
	orders := make([]Order, 0, len(e.Orders))
	for _, o := range e.Orders {
		orders = append(orders, Order{
			ID:          o.ID.String(),
			Seq:         o.Seq,
			DestAddress: o.DestAddress,
			ItemType:    o.ItemType.String(),
			WeightKg:    o.WeightKg,
			Distance:    o.Distance,
			Duration:    o.Duration,
			Cost:        o.Cost,
			ClientRef:   o.ClientRef,
		})
	}

	return Entry{
		ID:            e.ID.String(),
		ShipperID:     e.ShipperID,
		CompanyID:     e.CompanyID,
		CourierID:     e.CourierID,
		OriginAddress: e.OriginAddress,
		Country:       e.Country,
		State:         e.State,
		VehicleClass:  e.VehicleClass.String(),
		TotalDistance: e.TotalDistance,
		TotalDuration: e.TotalDuration,
		TotalCost:     e.TotalCost,
		Status:        e.Status.String(),
		Orders:        orders,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func FromTransaction(t *entities.Transaction) Transaction {
	return Transaction{
		ID:        t.ID.String(),
		EntryID:   t.EntryID.String(),
		Amount:    t.Amount,
		Method:    t.Method.String(),
		Status:    t.Status.String(),
		Reference: t.Reference,
	}
}
