package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultIconURL is the OpenWeatherMap icon path; %s is the icon code.
const DefaultIconURL = "https://openweathermap.org/img/wn/%s@2x.png"

// Display is what a renderer shows for a snapshot in a given unit.
type Display struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Unit        string `json:"unit"`
	FeelsLike   string `json:"feels_like"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	IconAlt     string `json:"icon_alt"`
}

// Render derives display strings from a metric snapshot. The snapshot is not
// modified; conversion happens here on every call.
func Render(s Snapshot, unit DisplayUnit, iconTemplate string) Display {
	return Display{
		Location:    s.Name + ", " + s.Country,
		Temperature: strconv.Itoa(Round(unit.Convert(s.Temperature))),
		Unit:        unit.Symbol(),
		FeelsLike:   fmt.Sprintf("%d%s", Round(unit.Convert(s.FeelsLike)), unit.Symbol()),
		Humidity:    fmt.Sprintf("%d%%", s.Humidity),
		Wind:        strconv.FormatFloat(s.WindSpeed, 'f', -1, 64) + " m/s",
		Condition:   s.Condition,
		Description: s.Description,
		IconURL:     IconURL(iconTemplate, s.Icon),
		IconAlt:     s.Description,
	}
}

// IconURL fills the icon code into template. An empty code yields an empty URL.
func IconURL(template, code string) string {
	if code == "" {
		return ""
	}
	if template == "" {
		template = DefaultIconURL
	}
	return strings.Replace(template, "%s", code, 1)
}

const clockLayout = "Monday, January 2, 2006 at 03:04 PM"

// FormatClock renders t the way en-US long dates read, e.g.
// "Friday, October 16, 2026 at 11:14 PM".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}
