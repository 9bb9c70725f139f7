package travel

import (
	"time"
)

const (
	AverageSpeedKmPerHour  = 800.0
	RoomCapacityAdults     = 3
	KidsPerRoom            = 2
	BaseHotelPricePerNight = 5000
	dateLayout             = "2006-01-02"
)

type Hotel struct {
	Name        string
	Address     string
	Phone       string
	PriceOffset int64
}

// Hotels is quoted in this order.
var Hotels = []Hotel{
	{Name: "Hotel Sunshine", Address: "123 Main Street, Sunshine City", Phone: "123456789", PriceOffset: 0},
	{Name: "Ocean View Hotel", Address: "456 Beach Road, Ocean City", Phone: "987654321", PriceOffset: 1000},
	{Name: "Mountain Retreat", Address: "789 Hilltop Drive, Mountain City", Phone: "456789123", PriceOffset: -500},
}

// HotelQuote prices are per night. TotalStayPrice covers every room for one
// night; PriceForStay multiplies it by the number of nights.
type HotelQuote struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	PricePerNight  int64  `json:"price_per_day"`
	TotalStayPrice int64  `json:"total_stay_price"`
	PriceForStay   int64  `json:"price_for_stay"`
}

type HotelEstimate struct {
	Destination  string       `json:"destination"`
	CheckInDate  string       `json:"checkInDate"`
	CheckOutDate string       `json:"checkOutDate"`
	RoomCount    int          `json:"rooms"`
	Nights       int          `json:"nights"`
	Quotes       []HotelQuote `json:"hotels"`
}

// RoomsFor allocates adults and kids independently and takes the larger allocation.
func RoomsFor(adults, kids int) int {
	return max(ceilDiv(adults, RoomCapacityAdults), ceilDiv(kids, KidsPerRoom))
}

// ArrivalTime offsets departure by the flight time at cruising speed.
func ArrivalTime(departure time.Time, distanceKm float64) time.Time {
	travelHours := distanceKm / AverageSpeedKmPerHour
	return departure.Add(time.Duration(travelHours * float64(time.Hour)))
}

func (e *Estimator) estimateHotel(req TripRequest, distance float64) HotelEstimate {
	checkIn := truncateToDate(ArrivalTime(req.Date, distance))
	checkOut := truncateToDate(req.CheckOutDate)
	rooms := RoomsFor(*req.Adults, *req.Kids)
	nights := nightsBetween(checkIn, checkOut)

	quotes := make([]HotelQuote, 0, len(Hotels))
	for _, hotel := range Hotels {
		perNight := int64(BaseHotelPricePerNight) + hotel.PriceOffset
		total := perNight * int64(rooms)
		quotes = append(quotes, HotelQuote{
			Name:           hotel.Name,
			Address:        hotel.Address,
			Phone:          hotel.Phone,
			PricePerNight:  perNight,
			TotalStayPrice: total,
			PriceForStay:   total * int64(nights),
		})
	}

	return HotelEstimate{
		Destination:  req.Destination,
		CheckInDate:  checkIn.Format(dateLayout),
		CheckOutDate: checkOut.Format(dateLayout),
		RoomCount:    rooms,
		Nights:       nights,
		Quotes:       quotes,
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// nightsBetween counts at least one night. Check-in is derived from the flight
// arrival and is not clamped, so a late departure with a next-morning checkout can
// arrive after checkOut; the dates are reported as computed and one night is billed.
func nightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	return max(1, nights)
}
