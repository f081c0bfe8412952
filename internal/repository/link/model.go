package link

import "time"

type LinkDB struct {
	ID        int64
	CourierID int64
	CompanyID int64
	Status    string
	CreatedAt time.Time
	DecidedAt *time.Time
}
