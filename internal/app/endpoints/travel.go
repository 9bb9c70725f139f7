package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/travel"
)

type TravelService interface {
	GetTravelDetails(ctx context.Context, req dto.TravelDetailsRequest) (travel.TravelDetails, error)
}

type TravelEndpoint struct {
	GetTravelDetails endpoint.Endpoint
}

func MakeTravelEndpoint(service TravelService) TravelEndpoint {
	return TravelEndpoint{
		GetTravelDetails: makeGetTravelDetailsEndpoint(service),
	}
}

func makeGetTravelDetailsEndpoint(service TravelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TravelDetailsRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		details, err := service.GetTravelDetails(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("travel service: %w", err)
		}

		return details, nil
	}
}
