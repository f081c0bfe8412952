package entities

import "time"

type Courier struct {
	ID           int64
	CompanyID    *int64
	Name         string
	Phone        string
	VehicleClass VehicleClass
	Verified     bool
	Active       bool
	Online       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EligibleFor проверяет, может ли курьер получить оффер по заявке:
// принадлежит компании, онлайн, проверен, активен и совпадает класс транспорта.
func (c Courier) EligibleFor(e *Entry) bool {
	if e.CompanyID == nil || c.CompanyID == nil || *c.CompanyID != *e.CompanyID {
		return false
	}
	return c.Online && c.Verified && c.Active && c.VehicleClass == e.VehicleClass
}

type Company struct {
	ID             int64
	Name           string
	Country        string
	State          string
	VehicleClasses []VehicleClass
	Verified       bool
	Active         bool
}

func (c Company) Supports(v VehicleClass) bool {
	for _, have := range c.VehicleClasses {
		if have == v {
			return true
		}
	}
	return false
}

// OperatesIn сравнивает регион компании с регионом заявки.
func (c Company) OperatesIn(country, state string) bool {
	return c.Country == country && c.State == state
}
