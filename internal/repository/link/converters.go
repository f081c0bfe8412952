package link

import "dispatch/internal/entities"

func ToDomain(l *LinkDB) *entities.CourierCompanyLink {
	if l == nil {
		return nil
	}
	return &entities.CourierCompanyLink{
		ID:        l.ID,
		CourierID: l.CourierID,
		CompanyID: l.CompanyID,
		Status:    entities.LinkStatus(l.Status),
		CreatedAt: l.CreatedAt,
		DecidedAt: l.DecidedAt,
	}
}
