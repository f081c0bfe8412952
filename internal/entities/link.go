package entities

import "time"

// CourierCompanyLink это заявка самостоятельно зарегистрированного курьера
// на привязку к компании. У курьера не более одной не-отклоненной заявки
// к конкретной компании.
type CourierCompanyLink struct {
	ID        int64
	CourierID int64
	CompanyID int64
	Status    LinkStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}

type LinkStatus string

const (
	LinkPending  LinkStatus = "pending"
	LinkApproved LinkStatus = "approved"
	LinkDeclined LinkStatus = "declined"
)

func (s LinkStatus) String() string {
	return string(s)
}
