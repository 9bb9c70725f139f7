package endpoints

import "errors"

var errInvalidType = errors.New("invalid type")

// Endpoints groups every go-kit endpoint the HTTP router exposes.
type Endpoints struct {
	TravelEndpoint    TravelEndpoint
	AuthEndpoint      AuthEndpoint
	ItineraryEndpoint ItineraryEndpoint
	DocumentEndpoint  DocumentEndpoint
}
