package accounts

import "dispatch/internal/entities"

func ToCourierDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Phone:        c.Phone,
		VehicleClass: entities.VehicleClass(c.VehicleClass),
		Verified:     c.Verified,
		Active:       c.Active,
		Online:       c.Online,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToCompanyDomain(c *CompanyDB) *entities.Company {
	if c == nil {
		return nil
	}
	classes := make([]entities.VehicleClass, 0, len(c.VehicleClasses))
	for _, class := range c.VehicleClasses {
		classes = append(classes, entities.VehicleClass(class))
	}
	return &entities.Company{
		ID:             c.ID,
		Name:           c.Name,
		Country:        c.Country,
		State:          c.State,
		VehicleClasses: classes,
		Verified:       c.Verified,
		Active:         c.Active,
	}
}

func ToPresenceDomain(p *PresenceRecordDB) entities.PresenceRecord {
	return entities.PresenceRecord{
		ID:        p.ID,
		CourierID: p.CourierID,
		Online:    p.Online,
		At:        p.At,
	}
}
