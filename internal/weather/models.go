package weather

import (
	"net/url"
	"strconv"
	"strings"
)

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// LocationQuery identifies what to ask the provider for. Exactly one of City or
// Coordinates is set; use ByCity or ByCoordinates to build one.
type LocationQuery struct {
	City        string
	Coordinates *Coordinates
}

func ByCity(city string) LocationQuery {
	return LocationQuery{City: city}
}

func ByCoordinates(c Coordinates) LocationQuery {
	return LocationQuery{Coordinates: &c}
}

// Kind is "coordinates" or "city".
func (q LocationQuery) Kind() string {
	if q.Coordinates != nil {
		return "coordinates"
	}
	return "city"
}

func (q LocationQuery) String() string {
	if q.Coordinates != nil {
		return formatDegrees(q.Coordinates.Latitude) + "," + formatDegrees(q.Coordinates.Longitude)
	}
	return q.City
}

// Values returns the provider query parameters that select the location.
func (q LocationQuery) Values() url.Values {
	values := url.Values{}
	if q.Coordinates != nil {
		values.Set("lat", formatDegrees(q.Coordinates.Latitude))
		values.Set("lon", formatDegrees(q.Coordinates.Longitude))
		return values
	}
	values.Set("q", strings.TrimSpace(q.City))
	return values
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Snapshot holds current conditions for one location as delivered by the
// provider, in metric units. It is replaced wholesale on every successful fetch.
type Snapshot struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
