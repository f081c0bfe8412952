package accounts

import "time"

type CourierDB struct {
	ID           int64
	CompanyID    *int64
	Name         string
	Phone        string
	VehicleClass string
	Verified     bool
	Active       bool
	Online       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CompanyDB struct {
	ID             int64
	Name           string
	Country        string
	State          string
	VehicleClasses []string
	Verified       bool
	Active         bool
}

type PresenceRecordDB struct {
	ID        int64
	CourierID int64
	Online    bool
	At        time.Time
}
