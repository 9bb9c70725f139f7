package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/travel"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// TravelDetailsRequest is the body of POST /api/travel/travel-details.
type TravelDetailsRequest struct {
	Source       string `json:"source" validate:"required"`
	Destination  string `json:"destination" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Passengers   int    `json:"passengers" validate:"required,gt=0"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	Adults       *int   `json:"adults" validate:"required,gte=0"`
	Kids         *int   `json:"kids" validate:"required,gte=0"`
}

func (t *TravelDetailsRequest) Bind(r *http.Request) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (t *TravelDetailsRequest) Validate() error {
	if err := ValidateSingleError(t); err != nil {
		return exception.WithCause(http.StatusBadRequest, err.Error(), travel.ErrInvalidRequest)
	}

	return nil
}

// ToTripRequest parses the dates and hands the rest over unchanged.
func (t *TravelDetailsRequest) ToTripRequest() (travel.TripRequest, error) {
	date, err := parseDate(t.Date)
	if err != nil {
		return travel.TripRequest{}, exception.WithCause(http.StatusBadRequest,
			fmt.Sprintf("date %q is not a valid date", t.Date), travel.ErrInvalidRequest)
	}

	checkOut, err := parseDate(t.CheckOutDate)
	if err != nil {
		return travel.TripRequest{}, exception.WithCause(http.StatusBadRequest,
			fmt.Sprintf("checkOutDate %q is not a valid date", t.CheckOutDate), travel.ErrInvalidRequest)
	}

	return travel.TripRequest{
		Source:       t.Source,
		Destination:  t.Destination,
		Date:         date,
		CheckOutDate: checkOut,
		Passengers:   t.Passengers,
		Adults:       t.Adults,
		Kids:         t.Kids,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
