package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/travel"
)

type TripEstimator interface {
	Estimate(req travel.TripRequest) (travel.TravelDetails, error)
}

type TravelService struct {
	estimator TripEstimator
}

func NewTravelService(estimator TripEstimator) *TravelService {
	return &TravelService{
		estimator: estimator,
	}
}

// GetTravelDetails godoc
// @Summary      Estimate flight and hotel prices
// @Tags         Travel
// @Description  Mock flight quotes from three providers and hotel quotes at the destination
// @Param        request  body      dto.TravelDetailsRequest  true  "Trip"
// @Success      200      {object}  travel.TravelDetails
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/travel/travel-details [post]
func (s *TravelService) GetTravelDetails(
	ctx context.Context,
	req dto.TravelDetailsRequest,
) (travel.TravelDetails, error) {
	trip, err := req.ToTripRequest()
	if err != nil {
		return travel.TravelDetails{}, err
	}

	details, err := s.estimator.Estimate(trip)
	if err != nil {
		if errors.Is(err, travel.ErrInvalidRequest) {
			slog.DebugContext(ctx, "rejected trip request", slog.String("reason", err.Error()))
			return travel.TravelDetails{}, err
		}
		return travel.TravelDetails{}, fmt.Errorf("estimate trip: %w", err)
	}

	slog.InfoContext(ctx, "travel details estimated",
		slog.String("flight_id", details.Flight.ID),
		slog.String("source", trip.Source),
		slog.String("destination", trip.Destination),
		slog.Float64("distance_km", details.Flight.DistanceKm),
		slog.Int("rooms", details.Hotel.RoomCount),
	)

	return details, nil
}
