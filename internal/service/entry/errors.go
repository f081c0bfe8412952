package entry

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipper        = errors.New("invalid shipper id")
	ErrInvalidVehicleClass   = errors.New("invalid vehicle class")
	ErrInvalidItemType       = errors.New("invalid item type")
	ErrInvalidRegion         = errors.New("country and state are required")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")

	ErrEntryNotFound       = errors.New("entry not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCourierNotFound     = errors.New("courier not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrAlreadyTaken       = errors.New("entry already taken")
	ErrNotEligible        = errors.New("courier not eligible for entry")
	ErrVehicleUnsupported = errors.New("company does not support required vehicle class")
	ErrOutsideRegion      = errors.New("entry outside company operating region")
	ErrCompanyInactive    = errors.New("company not verified or inactive")
	ErrNotAllowed         = errors.New("actor not allowed for this entry")
	ErrIllegalTransition  = errors.New("illegal entry state transition")
	ErrPaymentConflict    = errors.New("entry already has an active transaction")
	ErrPaymentFailed      = errors.New("payment charge failed")
	ErrNotCashPayment     = errors.New("active transaction is not cash")
)
