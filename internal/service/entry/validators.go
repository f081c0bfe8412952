package entry

import (
	"strings"

	"dispatch/internal/entities"
)

func validateSubmission(submission entities.EntrySubmission) error {
	if submission.ShipperID <= 0 {
		return ErrInvalidShipper
	}
	if len(submission.Stops) == 0 {
		return ErrMissingRequiredFields
	}
	if strings.TrimSpace(submission.Country) == "" || strings.TrimSpace(submission.State) == "" {
		return ErrInvalidRegion
	}
	if !isValidVehicleClass(submission.VehicleClass) {
		return ErrInvalidVehicleClass
	}
	for _, stop := range submission.Stops {
		if !stop.ItemType.Valid() {
			return ErrInvalidItemType
		}
	}
	return nil
}

func isValidVehicleClass(v entities.VehicleClass) bool {
	switch v {
	case entities.VehicleBicycle, entities.VehicleMotorbike, entities.VehicleCar, entities.VehicleVan:
		return true
	default:
		return false
	}
}
