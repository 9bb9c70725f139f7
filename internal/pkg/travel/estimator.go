package travel

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RandomSource yields values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts a plain function to RandomSource.
type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }

// TripRequest is the already-decoded estimate request. Adults and Kids are
// pointers because zero is a valid count while absence is not.
type TripRequest struct {
	Source       string
	Destination  string
	Date         time.Time
	CheckOutDate time.Time
	Passengers   int
	Adults       *int
	Kids         *int
}

// TravelDetails is the estimate response.
type TravelDetails struct {
	Flight FlightEstimate `json:"flightDetails"`
	Hotel  HotelEstimate  `json:"hotelDetails"`
}

// Estimator computes synthetic flight and hotel quotes for a trip. It holds no
// mutable state and is safe for concurrent use as long as its random source is.
type Estimator struct {
	resolver PlaceResolver
	random   RandomSource
	newID    func() string
	now      func() time.Time
}

type Option func(*Estimator)

func WithRandomSource(src RandomSource) Option {
	return func(e *Estimator) { e.random = src }
}

func WithIDGenerator(gen func() string) Option {
	return func(e *Estimator) { e.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(e *Estimator) { e.now = now }
}

func NewEstimator(resolver PlaceResolver, opts ...Option) *Estimator {
	e := &Estimator{
		resolver: resolver,
		// top level math/rand functions are safe for concurrent use
		random: RandomFunc(rand.Float64),
		newID:  uuid.NewString,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Estimate validates req and builds the flight and hotel estimate for it.
// Any rejection wraps ErrInvalidRequest; nothing is computed for a rejected request.
func (e *Estimator) Estimate(req TripRequest) (TravelDetails, error) {
	if err := req.Validate(); err != nil {
		return TravelDetails{}, err
	}

	from, ok := e.resolver.Resolve(req.Source)
	if !ok {
		return TravelDetails{}, invalidRequest(fmt.Sprintf("unknown source %q", req.Source))
	}

	to, ok := e.resolver.Resolve(req.Destination)
	if !ok {
		return TravelDetails{}, invalidRequest(fmt.Sprintf("unknown destination %q", req.Destination))
	}

	distance := Distance(from, to)

	flight := e.estimateFlight(req, distance)
	hotel := e.estimateHotel(req, distance)

	return TravelDetails{
		Flight: flight,
		Hotel:  hotel,
	}, nil
}

// Validate checks the request contract: required fields, passenger arithmetic
// and date ordering.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Source) == "" ||
		strings.TrimSpace(r.Destination) == "" ||
		r.Date.IsZero() ||
		r.Passengers == 0 ||
		r.CheckOutDate.IsZero() ||
		r.Adults == nil ||
		r.Kids == nil {
		return invalidRequest("source, destination, date, passengers, checkOutDate, adults, and kids are required")
	}

	if r.Passengers < 0 || *r.Adults < 0 || *r.Kids < 0 {
		return invalidRequest("passengers, adults, and kids must not be negative")
	}

	if r.Passengers != *r.Adults+*r.Kids {
		return invalidRequest("passenger count mismatch: passengers must equal adults + kids")
	}

	if !r.CheckOutDate.After(r.Date) {
		return invalidRequest("checkOutDate must be after date")
	}

	return nil
}
