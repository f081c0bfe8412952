package entry_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/entry"
	"dispatch/internal/service/pricing"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var entryCreateDTO dto.EntryCreate
	err := json.NewDecoder(r.Body).Decode(&entryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stops := make([]entities.StopSubmission, 0, len(entryCreateDTO.Stops))
	for _, stop := range entryCreateDTO.Stops {
		stops = append(stops, entities.StopSubmission{
			Lat:       stop.Lat,
			Lng:       stop.Lng,
			ItemType:  entities.ItemType(stop.ItemType),
			WeightKg:  stop.WeightKg,
			ClientRef: stop.ClientRef,
		})
	}

	submission := entities.EntrySubmission{
		ShipperID:    entryCreateDTO.ShipperID,
		OriginLat:    entryCreateDTO.Origin.Lat,
		OriginLng:    entryCreateDTO.Origin.Lng,
		Country:      entryCreateDTO.Country,
		State:        entryCreateDTO.State,
		VehicleClass: entities.VehicleClass(entryCreateDTO.VehicleClass),
		Stops:        stops,
	}

	entryEntity, err := h.service.SubmitEntry(r.Context(), submission)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrMissingRequiredFields),
			errors.Is(err, entry.ErrInvalidShipper),
			errors.Is(err, entry.ErrInvalidVehicleClass),
			errors.Is(err, entry.ErrInvalidItemType),
			errors.Is(err, entry.ErrInvalidRegion),
			errors.Is(err, pricing.ErrInvalidWeight),
			errors.Is(err, pricing.ErrNoRateCard),
			errors.Is(err, pricing.ErrNoFeeSchedule),
			errors.Is(err, pricing.ErrNoItemFee):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pricing.ErrNoValidRoute):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, pricing.ErrOracle):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromEntry(entryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
