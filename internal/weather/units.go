package weather

import (
	"encoding/json"
	"fmt"
	"math"
)

// DisplayUnit selects how temperatures are shown. The zero value is Celsius.
type DisplayUnit int

const (
	Celsius DisplayUnit = iota
	Fahrenheit
)

func (u DisplayUnit) Toggle() DisplayUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Symbol returns "°C" or "°F".
func (u DisplayUnit) Symbol() string {
	return "°" + u.Letter()
}

func (u DisplayUnit) Letter() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

func (u DisplayUnit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Convert turns a Celsius value into this unit.
func (u DisplayUnit) Convert(celsius float64) float64 {
	if u == Fahrenheit {
		return CelsiusToFahrenheit(celsius)
	}
	return celsius
}

func (u DisplayUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *DisplayUnit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "celsius":
		*u = Celsius
	case "fahrenheit":
		*u = Fahrenheit
	default:
		return fmt.Errorf("unknown display unit %q", s)
	}
	return nil
}

func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// Round rounds to the nearest integer, with halves going toward positive
// infinity (2.5 -> 3, -2.5 -> -2).
func Round(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}
