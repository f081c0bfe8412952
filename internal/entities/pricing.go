package entities

import "github.com/shopspring/decimal"

// RateCard задает цену за километр для тройки (страна, штат, класс транспорта).
type RateCard struct {
	Country      string
	State        string
	VehicleClass VehicleClass
	PricePerKm   decimal.Decimal
}

// FeeSchedule это административные ставки: базовый тариф, цена за килограмм
// и надбавки по типам груза.
type FeeSchedule struct {
	BaseFare     decimal.Decimal
	PricePerKg   decimal.Decimal
	ItemTypeFees map[ItemType]decimal.Decimal
}

type Point struct {
	Lat float64
	Lng float64
}

// RouteMatrix это ответ оракула на запрос origin -> N destinations.
// Legs идут в порядке запрошенных точек назначения.
type RouteMatrix struct {
	OriginAddress string
	Legs          []RouteLeg
}

// RouteLeg это ответ маршрутного оракула по одной паре точек.
// Статус отличный от OK означает, что нога исключается из расчета целиком.
type RouteLeg struct {
	Status   LegStatus
	Address  string
	Distance int64 // meters
	Duration int64 // seconds
}

type LegStatus string

const (
	LegOK LegStatus = "OK"
)

func (s LegStatus) OK() bool {
	return s == LegOK
}

// LegQuote это посчитанная стоимость одной валидной ноги.
type LegQuote struct {
	StopIndex int
	Address   string
	Distance  int64
	Duration  int64
	Cost      decimal.Decimal
}

// EntryQuote это агрегат по всем валидным ногам заявки.
// Стоимость округляется до двух знаков только на границе агрегата.
type EntryQuote struct {
	OriginAddress string
	Legs          []LegQuote
	TotalDistance int64
	TotalDuration int64
	TotalCost     decimal.Decimal
}
