package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaceToVisit struct {
	Name      string    `json:"name" bson:"name" validate:"required"`
	StartTime time.Time `json:"startTime" bson:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" bson:"endTime" validate:"required,gtefield=StartTime"`
}

type FlightDetail struct {
	Airline       string    `json:"airline" bson:"airline" validate:"required"`
	FlightNumber  string    `json:"flightNumber" bson:"flightNumber" validate:"required"`
	BoardingTime  time.Time `json:"boardingTime" bson:"boardingTime" validate:"required"`
	DepartureTime time.Time `json:"departureTime" bson:"departureTime" validate:"required"`
	ArrivalTime   time.Time `json:"arrivalTime" bson:"arrivalTime" validate:"required"`
	FromAirport   string    `json:"fromAirport" bson:"fromAirport" validate:"required"`
	ToAirport     string    `json:"toAirport" bson:"toAirport" validate:"required"`
	SeatNumber    string    `json:"seatNumber,omitempty" bson:"seatNumber,omitempty"`
}

type HotelRoom struct {
	RoomNumber string `json:"roomNumber" bson:"roomNumber" validate:"required"`
	Occupants  int    `json:"occupants" bson:"occupants" validate:"required,gt=0"`
}

type HotelDetail struct {
	Name     string      `json:"name" bson:"name" validate:"required"`
	Address  string      `json:"address" bson:"address" validate:"required"`
	CheckIn  time.Time   `json:"checkIn" bson:"checkIn" validate:"required"`
	CheckOut time.Time   `json:"checkOut" bson:"checkOut" validate:"required,gtefield=CheckIn"`
	Rooms    []HotelRoom `json:"rooms" bson:"rooms" validate:"dive"`
}

type CoPassenger struct {
	Name     string `json:"name" bson:"name"`
	Relation string `json:"relation" bson:"relation"`
	Contact  string `json:"contact" bson:"contact"`
}

// ItineraryFields are the client editable parts of an itinerary.
type ItineraryFields struct {
	StartPlace    string         `json:"startPlace" bson:"startPlace" validate:"required"`
	EndPlace      string         `json:"endPlace" bson:"endPlace" validate:"required"`
	StartDate     time.Time      `json:"startDate" bson:"startDate" validate:"required"`
	EndDate       time.Time      `json:"endDate" bson:"endDate" validate:"required,gtefield=StartDate"`
	PlacesToVisit []PlaceToVisit `json:"placesToVisit" bson:"placesToVisit" validate:"dive"`
	FlightDetails []FlightDetail `json:"flightDetails" bson:"flightDetails" validate:"dive"`
	HotelDetails  []HotelDetail  `json:"hotelDetails" bson:"hotelDetails" validate:"dive"`
	CoPassengers  []CoPassenger  `json:"coPassengers" bson:"coPassengers" validate:"dive"`
}

type Itinerary struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	Username        string             `json:"username" bson:"username"`
	ItineraryFields `bson:",inline"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateItineraryRequest struct {
	UserID string `json:"-"`
	ItineraryFields
}

func (c *CreateItineraryRequest) Bind(_ *http.Request) error {
	if err := validateBadRequest(c); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// UpdateItineraryRequest is a partial update: nil fields are left untouched.
type UpdateItineraryRequest struct {
	ID            string         `json:"-"`
	UserID        string         `json:"-"`
	StartPlace    *string        `json:"startPlace,omitempty" validate:"omitempty,min=1"`
	EndPlace      *string        `json:"endPlace,omitempty" validate:"omitempty,min=1"`
	StartDate     *time.Time     `json:"startDate,omitempty"`
	EndDate       *time.Time     `json:"endDate,omitempty"`
	PlacesToVisit []PlaceToVisit `json:"placesToVisit,omitempty" validate:"omitempty,dive"`
	FlightDetails []FlightDetail `json:"flightDetails,omitempty" validate:"omitempty,dive"`
	HotelDetails  []HotelDetail  `json:"hotelDetails,omitempty" validate:"omitempty,dive"`
	CoPassengers  []CoPassenger  `json:"coPassengers,omitempty" validate:"omitempty,dive"`
}

func (u *UpdateItineraryRequest) Bind(_ *http.Request) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (u *UpdateItineraryRequest) Validate() error {
	if err := validateBadRequest(u); err != nil {
		return err
	}

	if u.StartDate != nil && u.EndDate != nil && u.EndDate.Before(*u.StartDate) {
		return exception.BadRequest("endDate must not be before startDate")
	}

	if u.IsEmpty() {
		return exception.BadRequest("nothing to update")
	}

	return nil
}

func (u *UpdateItineraryRequest) IsEmpty() bool {
	return u.StartPlace == nil && u.EndPlace == nil &&
		u.StartDate == nil && u.EndDate == nil &&
		u.PlacesToVisit == nil && u.FlightDetails == nil &&
		u.HotelDetails == nil && u.CoPassengers == nil
}

// ItineraryRequest addresses one itinerary of the caller.
type ItineraryRequest struct {
	ID     string
	UserID string
}

// ShareItineraryRequest asks for the itinerary PDF to be mailed to Email.
type ShareItineraryRequest struct {
	ID     string `json:"-"`
	UserID string `json:"-"`
	Email  string `json:"email" validate:"required,email"`
}

func (s *ShareItineraryRequest) Bind(_ *http.Request) error {
	if err := validateBadRequest(s); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type ItineraryResponse struct {
	Message   string    `json:"msg"`
	Itinerary Itinerary `json:"itinerary"`
}

// FileResponse is written raw rather than as JSON.
type FileResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ApplyTo returns fields with every non-nil change of u applied.
func (u *UpdateItineraryRequest) ApplyTo(fields ItineraryFields) ItineraryFields {
	if u.StartPlace != nil {
		fields.StartPlace = *u.StartPlace
	}
	if u.EndPlace != nil {
		fields.EndPlace = *u.EndPlace
	}
	if u.StartDate != nil {
		fields.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		fields.EndDate = *u.EndDate
	}
	if u.PlacesToVisit != nil {
		fields.PlacesToVisit = u.PlacesToVisit
	}
	if u.FlightDetails != nil {
		fields.FlightDetails = u.FlightDetails
	}
	if u.HotelDetails != nil {
		fields.HotelDetails = u.HotelDetails
	}
	if u.CoPassengers != nil {
		fields.CoPassengers = u.CoPassengers
	}

	return fields
}

// ValidateItineraryFields checks a complete set of fields, e.g. after a partial update was merged.
func ValidateItineraryFields(fields ItineraryFields) error {
	return validateBadRequest(&fields)
}
