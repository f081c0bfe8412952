package pricing

import "errors"

var (
	ErrNoStops       = errors.New("entry has no stops")
	ErrInvalidWeight = errors.New("invalid stop weight")
	ErrNoValidRoute  = errors.New("no valid route for any stop")
	ErrNoRateCard    = errors.New("no rate card for country/state/vehicle class")
	ErrNoFeeSchedule = errors.New("no fee schedule configured")
	ErrNoItemFee     = errors.New("no fee configured for item type")
	ErrOracle        = errors.New("route oracle failure")
)
