package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"ulascansenturk/weather-panel/internal/weather"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type WeatherProvider interface {
	CurrentWeather(ctx context.Context, query weather.LocationQuery) (weather.Snapshot, error)
	GetHTTPClient() *http.Client
}

type openWeatherService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenWeatherService builds a client for the OpenWeatherMap current-weather
// endpoint. A zero timeout leaves the platform default in place.
func NewOpenWeatherService(baseURL, apiKey string, timeout time.Duration) WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}

	return &openWeatherService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type OpenWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (s *openWeatherService) CurrentWeather(ctx context.Context, query weather.LocationQuery) (weather.Snapshot, error) {
	values := query.Values()
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")

	separator := "?"
	if strings.Contains(s.baseURL, "?") {
		separator = "&"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+separator+values.Encode(), nil)
	if err != nil {
		return weather.Snapshot{}, weather.NewTransportError("Failed to build weather request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return weather.Snapshot{}, weather.NewTransportError("Failed to fetch weather data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return weather.Snapshot{}, &weather.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var apiResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return weather.Snapshot{}, weather.NewTransportError("Weather provider returned malformed JSON", err)
	}

	return apiResp.toSnapshot(), nil
}

func (r OpenWeatherResponse) toSnapshot() weather.Snapshot {
	snapshot := weather.Snapshot{
		Name:        r.Name,
		Country:     r.Sys.Country,
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		Humidity:    r.Main.Humidity,
		WindSpeed:   r.Wind.Speed,
	}

	if len(r.Weather) > 0 {
		snapshot.Condition = r.Weather[0].Main
		snapshot.Description = r.Weather[0].Description
		snapshot.Icon = r.Weather[0].Icon
	}

	return snapshot
}

func (s *openWeatherService) GetHTTPClient() *http.Client {
	return s.client
}
