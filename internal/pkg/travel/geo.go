package travel

import (
	"math"
	"strings"
	"sync"
)

const EarthRadiusKm = 6371.0

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a named coordinate, the unit the resolver table is built from.
type Place struct {
	Name string  `json:"name" mapstructure:"name"`
	Lat  float64 `json:"lat" mapstructure:"lat"`
	Lon  float64 `json:"lon" mapstructure:"lon"`
}

// PlaceResolver maps a place identifier to its coordinate.
type PlaceResolver interface {
	Resolve(place string) (GeoPoint, bool)
}

// DefaultPlaces seeds the static resolver. Bengaluru and Mumbai are the
// reference pair older clients were always quoted against.
var DefaultPlaces = []Place{
	{Name: "Bengaluru", Lat: 12.9716, Lon: 77.5946},
	{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
	{Name: "Mumbai", Lat: 19.076, Lon: 72.8777},
	{Name: "Delhi", Lat: 28.6139, Lon: 77.2090},
	{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
	{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
	{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867},
	{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
	{Name: "Goa", Lat: 15.2993, Lon: 74.1240},
	{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873},
	{Name: "Kochi", Lat: 9.9312, Lon: 76.2673},
	{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714},
	{Name: "Lucknow", Lat: 26.8467, Lon: 80.9462},
}

// StaticResolver is an in-memory, case-insensitive place table.
type StaticResolver struct {
	mu     sync.RWMutex
	places map[string]GeoPoint
}

func NewStaticResolver(places ...Place) *StaticResolver {
	r := &StaticResolver{
		places: make(map[string]GeoPoint, len(places)),
	}

	for _, p := range places {
		r.Add(p)
	}

	return r
}

// NewDefaultResolver returns the default table extended (or overridden) by extra.
func NewDefaultResolver(extra ...Place) *StaticResolver {
	r := NewStaticResolver(DefaultPlaces...)
	for _, p := range extra {
		r.Add(p)
	}

	return r
}

func (r *StaticResolver) Add(p Place) {
	key := normalizePlace(p.Name)
	if key == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.places[key] = GeoPoint{Lat: p.Lat, Lon: p.Lon}
}

func (r *StaticResolver) Resolve(place string) (GeoPoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	point, ok := r.places[normalizePlace(place)]
	return point, ok
}

func normalizePlace(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Distance returns the great-circle distance in km between a and b using the
// haversine formula.
func Distance(a, b GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
