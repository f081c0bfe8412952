package entry

import "dispatch/internal/entities"

func ToDomain(e *EntryDB, orders []OrderDB) *entities.Entry {
	if e == nil {
		return nil
	}
	entry := &entities.Entry{
		ID:            e.ID,
		ShipperID:     e.ShipperID,
		CompanyID:     e.CompanyID,
		CourierID:     e.CourierID,
		OriginLat:     e.OriginLat,
		OriginLng:     e.OriginLng,
		OriginAddress: e.OriginAddress,
		Country:       e.Country,
		State:         e.State,
		VehicleClass:  entities.VehicleClass(e.VehicleClass),
		TotalDistance: e.TotalDistance,
		TotalDuration: e.TotalDuration,
		TotalCost:     e.TotalCost,
		Status:        entities.EntryStatus(e.Status),
		CreatedAt:     e.CreatedAt,
		PaidAt:        e.PaidAt,
		CompanyAt:     e.CompanyAt,
		AcceptedAt:    e.AcceptedAt,
		TransitAt:     e.TransitAt,
		CompletedAt:   e.CompletedAt,
		CancelledAt:   e.CancelledAt,
	}

	entry.Orders = make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		entry.Orders = append(entry.Orders, ToOrderDomain(&o))
	}
	return entry
}

func ToOrderDomain(o *OrderDB) entities.Order {
	return entities.Order{
		ID:          o.ID,
		EntryID:     o.EntryID,
		Seq:         o.Seq,
		DestLat:     o.DestLat,
		DestLng:     o.DestLng,
		DestAddress: o.DestAddress,
		ItemType:    entities.ItemType(o.ItemType),
		WeightKg:    o.WeightKg,
		Distance:    o.Distance,
		Duration:    o.Duration,
		Cost:        o.Cost,
		ClientRef:   o.ClientRef,
		CreatedAt:   o.CreatedAt,
	}
}
