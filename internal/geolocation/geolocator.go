// Package geolocation resolves the device position as a single call that
// returns either coordinates or a classified failure.
package geolocation

import (
	"context"
	"fmt"
	"ulascansenturk/weather-panel/internal/weather"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Geolocator resolves the current device position. A nil Geolocator stands
// for a host without geolocation support.
type Geolocator interface {
	Locate(ctx context.Context) (weather.Coordinates, error)
}

// Position error codes as reported by browsers.
const (
	PermissionDenied    = 1
	PositionUnavailable = 2
	Timeout             = 3
)

// PositionError is a failure reported by the host while resolving a position.
type PositionError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *PositionError) Error() string {
	name := "unknown error"
	switch e.Code {
	case PermissionDenied:
		name = "permission denied"
	case PositionUnavailable:
		name = "position unavailable"
	case Timeout:
		name = "timeout"
	}
	if e.Message == "" {
		return fmt.Sprintf("geolocation %s (code %d)", name, e.Code)
	}
	return fmt.Sprintf("geolocation %s (code %d): %s", name, e.Code, e.Message)
}

// Reported replays what a host already determined: either a position or
// a failure.
type Reported struct {
	Coordinates *weather.Coordinates
	Failure     *PositionError
}

func FromCoordinates(latitude, longitude float64) *Reported {
	return &Reported{Coordinates: &weather.Coordinates{Latitude: latitude, Longitude: longitude}}
}

func FromFailure(code int, message string) *Reported {
	return &Reported{Failure: &PositionError{Code: code, Message: message}}
}

func (r *Reported) Locate(ctx context.Context) (weather.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, &weather.LocationResolutionError{Cause: err}
	}

	if r.Failure != nil {
		return weather.Coordinates{}, &weather.LocationResolutionError{Cause: r.Failure}
	}

	if r.Coordinates == nil {
		return weather.Coordinates{}, &weather.LocationResolutionError{
			Cause: &PositionError{Code: PositionUnavailable, Message: "no position reported"},
		}
	}

	if err := Validate(*r.Coordinates); err != nil {
		return weather.Coordinates{}, &weather.LocationResolutionError{Cause: err}
	}

	return *r.Coordinates, nil
}

// Validate checks that c is a position on Earth.
func Validate(c weather.Coordinates) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid coordinates %v,%v: %w", c.Latitude, c.Longitude, err)
	}
	return nil
}
