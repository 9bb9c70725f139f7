package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
)

type ItineraryService interface {
	CreateItinerary(ctx context.Context, req dto.CreateItineraryRequest) (dto.ItineraryResponse, error)
	ListItineraries(ctx context.Context, req dto.CurrentUserRequest) ([]dto.Itinerary, error)
	GetItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.Itinerary, error)
	UpdateItinerary(ctx context.Context, req dto.UpdateItineraryRequest) (dto.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.Response, error)
	DownloadItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.FileResponse, error)
	ShareItinerary(ctx context.Context, req dto.ShareItineraryRequest) (dto.Response, error)
}

type ItineraryEndpoint struct {
	Create   endpoint.Endpoint
	List     endpoint.Endpoint
	Get      endpoint.Endpoint
	Update   endpoint.Endpoint
	Delete   endpoint.Endpoint
	Download endpoint.Endpoint
	Share    endpoint.Endpoint
}

func MakeItineraryEndpoint(service ItineraryService) ItineraryEndpoint {
	return ItineraryEndpoint{
		Create:   makeCreateItineraryEndpoint(service),
		List:     makeListItinerariesEndpoint(service),
		Get:      makeItineraryEndpoint(service.GetItinerary),
		Update:   makeUpdateItineraryEndpoint(service),
		Delete:   makeItineraryEndpoint(service.DeleteItinerary),
		Download: makeItineraryEndpoint(service.DownloadItinerary),
		Share:    makeShareItineraryEndpoint(service),
	}
}

// makeItineraryEndpoint wraps the service calls addressed by itinerary id alone.
func makeItineraryEndpoint[R any](call func(context.Context, dto.ItineraryRequest) (R, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ItineraryRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := call(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return resp, nil
	}
}

func makeCreateItineraryEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CreateItineraryRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.CreateItinerary(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return resp, nil
	}
}

func makeListItinerariesEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CurrentUserRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		itineraries, err := service.ListItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return itineraries, nil
	}
}

func makeUpdateItineraryEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdateItineraryRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.UpdateItinerary(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return resp, nil
	}
}

func makeShareItineraryEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ShareItineraryRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.ShareItinerary(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return resp, nil
	}
}
