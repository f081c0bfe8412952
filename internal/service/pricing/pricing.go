package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"dispatch/internal/entities"
)

// aggregatePrecision: копейки/центы. Округление применяется только к агрегату,
// по-ноговые суммы хранятся как есть, чтобы ошибка округления не накапливалась.
const aggregatePrecision = 2

var metersPerKm = decimal.NewFromInt(1000)

type Engine struct {
	rates  RateRepository
	oracle RouteOracle
}

func New(rates RateRepository, oracle RouteOracle) *Engine {
	return &Engine{
		rates:  rates,
		oracle: oracle,
	}
}

// QuoteEntry считает стоимость заявки: один вызов оракула на все точки,
// дальше чистая арифметика. Ноги с не-OK статусом выбрасываются целиком;
// если валидных ног нет — ErrNoValidRoute до какой-либо записи в хранилище.
func (e *Engine) QuoteEntry(ctx context.Context, submission entities.EntrySubmission) (*entities.EntryQuote, error) {
	if len(submission.Stops) == 0 {
		return nil, ErrNoStops
	}
	for _, stop := range submission.Stops {
		if stop.WeightKg.IsNegative() {
			return nil, ErrInvalidWeight
		}
	}

	rateCard, err := e.rates.GetRateCard(ctx, submission.Country, submission.State, submission.VehicleClass)
	if err != nil {
		return nil, fmt.Errorf("rate card: %w", err)
	}

	fees, err := e.rates.GetFeeSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("fee schedule: %w", err)
	}

	for _, stop := range submission.Stops {
		if _, ok := fees.ItemTypeFees[stop.ItemType]; !ok {
			return nil, fmt.Errorf("item type %q: %w", stop.ItemType, ErrNoItemFee)
		}
	}

	origin := entities.Point{Lat: submission.OriginLat, Lng: submission.OriginLng}
	destinations := make([]entities.Point, 0, len(submission.Stops))
	for _, stop := range submission.Stops {
		destinations = append(destinations, entities.Point{Lat: stop.Lat, Lng: stop.Lng})
	}

	matrix, err := e.oracle.Routes(ctx, origin, destinations, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOracle, err)
	}
	if len(matrix.Legs) != len(submission.Stops) {
		return nil, fmt.Errorf("%w: got %d legs for %d stops", ErrOracle, len(matrix.Legs), len(submission.Stops))
	}

	quote := quoteLegs(submission.Stops, matrix, rateCard, fees)
	if len(quote.Legs) == 0 {
		return nil, ErrNoValidRoute
	}

	return quote, nil
}

// quoteLegs это чистая часть движка: стоимость ноги =
// км * цена_за_км + кг * цена_за_кг + надбавка типа груза + базовый тариф.
func quoteLegs(
	stops []entities.StopSubmission,
	matrix entities.RouteMatrix,
	rateCard *entities.RateCard,
	fees *entities.FeeSchedule,
) *entities.EntryQuote {
	quote := &entities.EntryQuote{
		OriginAddress: matrix.OriginAddress,
		Legs:          make([]entities.LegQuote, 0, len(stops)),
		TotalCost:     decimal.Zero,
	}

	for i, stop := range stops {
		leg := matrix.Legs[i]
		if !leg.Status.OK() {
			continue
		}

		distanceKm := decimal.NewFromInt(leg.Distance).Div(metersPerKm)
		cost := distanceKm.Mul(rateCard.PricePerKm).
			Add(stop.WeightKg.Mul(fees.PricePerKg)).
			Add(fees.ItemTypeFees[stop.ItemType]).
			Add(fees.BaseFare)

		quote.Legs = append(quote.Legs, entities.LegQuote{
			StopIndex: i,
			Address:   leg.Address,
			Distance:  leg.Distance,
			Duration:  leg.Duration,
			Cost:      cost,
		})

		quote.TotalDistance += leg.Distance
		quote.TotalDuration += leg.Duration
		quote.TotalCost = quote.TotalCost.Add(cost)
	}

	quote.TotalCost = quote.TotalCost.Round(aggregatePrecision)
	return quote
}
