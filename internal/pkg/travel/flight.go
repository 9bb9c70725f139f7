package travel

import (
	"math"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/utils"
)

const (
	BasePricePerKm   = 3.0
	MinimumBasePrice = 1000.0
)

// FlightProvider is a booking site whose quote is the base fare plus a random
// markup of up to JitterFactor.
type FlightProvider struct {
	Name         string
	Website      string
	JitterFactor float64
}

// FlightProviders is quoted in this order and the order is part of the response contract.
var FlightProviders = []FlightProvider{
	{Name: "Goibibo", Website: "https://www.goibibo.com", JitterFactor: 0.10},
	{Name: "MakeMyTrip", Website: "https://www.makemytrip.com", JitterFactor: 0.12},
	{Name: "Cleartrip", Website: "https://www.cleartrip.com", JitterFactor: 0.08},
}

type FlightQuote struct {
	ProviderName string `json:"name"`
	WebsiteURL   string `json:"website"`
	Price        int64  `json:"price"`
	DisplayPrice string `json:"displayPrice"`
}

type FlightEstimate struct {
	ID          string        `json:"flight_id"`
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Date        time.Time     `json:"date"`
	Passengers  int           `json:"passengers"`
	DistanceKm  float64       `json:"distance"`
	Duration    string        `json:"duration"`
	Quotes      []FlightQuote `json:"providers"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// BasePrice is the per passenger fare before provider markup, floored at MinimumBasePrice.
func BasePrice(distanceKm float64) float64 {
	return math.Max(MinimumBasePrice, distanceKm*BasePricePerKm)
}

func (e *Estimator) estimateFlight(req TripRequest, distance float64) FlightEstimate {
	basePrice := BasePrice(distance)

	quotes := make([]FlightQuote, 0, len(FlightProviders))
	for _, provider := range FlightProviders {
		markup := 1 + e.random.Float64()*provider.JitterFactor
		price := int64(math.Round(basePrice * float64(req.Passengers) * markup))
		quotes = append(quotes, FlightQuote{
			ProviderName: provider.Name,
			WebsiteURL:   provider.Website,
			Price:        price,
			DisplayPrice: utils.FormatRupee(price),
		})
	}

	return FlightEstimate{
		ID:          e.newID(),
		Source:      req.Source,
		Destination: req.Destination,
		Date:        req.Date,
		Passengers:  req.Passengers,
		DistanceKm:  distance,
		Duration:    utils.ConvertHourToDuration(distance / AverageSpeedKmPerHour),
		Quotes:      quotes,
		GeneratedAt: e.now().UTC(),
	}
}
