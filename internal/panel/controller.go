// Package panel owns the weather panel state: the fetch-and-render cycle, the
// unit toggle, the Loading/Content/Error phase and the clock text. Renderers
// read it through View and never mutate it directly.
package panel

import (
	"context"
	"strings"
	"sync"
	"time"
	"ulascansenturk/weather-panel/internal/db/fetchlog"
	"ulascansenturk/weather-panel/internal/geolocation"
	"ulascansenturk/weather-panel/internal/providers"
	"ulascansenturk/weather-panel/internal/weather"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// APIKeyNotice is shown while no real OpenWeatherMap credential is configured.
const APIKeyNotice = "API Key Needed: Please add your OpenWeatherMap API key to make the app work. " +
	"Set OPENWEATHER_API_KEY in the environment or in .env."

type Options struct {
	DefaultCity string
	IconURL     string

	// APIKeyMissing adds APIKeyNotice to every view. Fetching still happens.
	APIKeyMissing bool

	// DiscardStaleResponses drops a cycle result when a newer cycle was
	// started meanwhile. Off by default: the last response to arrive wins.
	DiscardStaleResponses bool

	Now func() time.Time
}

type Controller struct {
	provider providers.WeatherProvider
	repo     fetchlog.Repository
	opts     Options

	mu       sync.Mutex
	snapshot *weather.Snapshot
	unit     weather.DisplayUnit
	phase    Phase
	message  string
	clock    string
	latest   uint64

	subMu       sync.Mutex
	subscribers map[chan struct{}]struct{}

	pending sync.WaitGroup
}

// NewController builds a controller in the Loading phase. repo may be nil.
func NewController(provider providers.WeatherProvider, repo fetchlog.Repository, opts Options) *Controller {
	if opts.IconURL == "" {
		opts.IconURL = weather.DefaultIconURL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Controller{
		provider:    provider,
		repo:        repo,
		opts:        opts,
		phase:       PhaseLoading,
		clock:       weather.FormatClock(opts.Now()),
		subscribers: make(map[chan struct{}]struct{}),
	}
}

// Start sets the clock and fetches the default city, if one is configured.
func (c *Controller) Start(ctx context.Context) error {
	c.Tick(c.opts.Now())

	if strings.TrimSpace(c.opts.DefaultCity) == "" {
		return nil
	}
	return c.SearchCity(ctx, c.opts.DefaultCity)
}

// SearchCity runs a cycle for a place name. Blank input is rejected without
// a network call.
func (c *Controller) SearchCity(ctx context.Context, raw string) error {
	city := strings.TrimSpace(raw)
	if city == "" {
		c.fail(weather.ErrEmptyCity)
		return weather.ErrEmptyCity
	}

	query := weather.ByCity(city)
	seq := c.enterLoading()
	return c.fetch(ctx, seq, uuid.NewString(), query)
}

// LocateMe resolves the device position and runs a cycle for it. A nil
// geolocator means the host cannot geolocate; that fails before Loading.
func (c *Controller) LocateMe(ctx context.Context, geolocator geolocation.Geolocator) error {
	if geolocator == nil {
		c.fail(weather.ErrGeolocationUnsupported)
		return weather.ErrGeolocationUnsupported
	}

	cycleID := uuid.NewString()
	seq := c.enterLoading()

	coords, err := geolocator.Locate(ctx)
	if err != nil {
		log.Error().Err(err).Str("cycle_id", cycleID).Msg("geolocation error")
		c.complete(ctx, seq, cycleID, weather.LocationQuery{}, weather.Snapshot{}, err)
		return err
	}

	return c.fetch(ctx, seq, cycleID, weather.ByCoordinates(coords))
}

// ToggleUnit flips between Celsius and Fahrenheit. The snapshot and phase
// are left alone; the next View converts with the new unit.
func (c *Controller) ToggleUnit() weather.DisplayUnit {
	c.mu.Lock()
	c.unit = c.unit.Toggle()
	unit := c.unit
	c.mu.Unlock()

	c.notify()
	return unit
}

// Tick updates the clock text only.
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()
	c.clock = weather.FormatClock(now)
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := View{
		Phase:   c.phase,
		Visible: c.phase.Visibility(),
		Unit:    c.unit,
		Clock:   c.clock,
	}

	if c.phase == PhaseError {
		view.ErrorMessage = c.message
	}

	if c.snapshot != nil {
		display := weather.Render(*c.snapshot, c.unit, c.opts.IconURL)
		view.Display = &display
	}

	if c.opts.APIKeyMissing {
		view.Notice = APIKeyNotice
	}

	return view
}

// Subscribe returns a channel that receives a signal after state changes.
// Signals coalesce; read View for the current state. Call the returned func
// to stop receiving.
func (c *Controller) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	c.subMu.Lock()
	c.subscribers[ch] = struct{}{}
	c.subMu.Unlock()

	return ch, func() {
		c.subMu.Lock()
		delete(c.subscribers, ch)
		c.subMu.Unlock()
	}
}

// Wait blocks until every started audit write has finished.
func (c *Controller) Wait() {
	c.pending.Wait()
}

func (c *Controller) notify() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for ch := range c.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (c *Controller) enterLoading() uint64 {
	c.mu.Lock()
	c.latest++
	seq := c.latest
	c.phase = PhaseLoading
	c.message = ""
	c.mu.Unlock()

	c.notify()
	return seq
}

func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.phase = PhaseError
	c.message = weather.UserMessage(err)
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) fetch(ctx context.Context, seq uint64, cycleID string, query weather.LocationQuery) error {
	log.Debug().Str("cycle_id", cycleID).Str("query", query.String()).Str("kind", query.Kind()).Msg("fetching weather")

	snapshot, err := c.provider.CurrentWeather(ctx, query)
	if err != nil {
		log.Error().Err(err).
			Str("cycle_id", cycleID).
			Str("query", query.String()).
			Int("status", weather.StatusCode(err)).
			Msg("failed to get weather data")
	}

	c.complete(ctx, seq, cycleID, query, snapshot, err)
	return err
}

func (c *Controller) complete(ctx context.Context, seq uint64, cycleID string, query weather.LocationQuery, snapshot weather.Snapshot, err error) {
	c.mu.Lock()
	if c.opts.DiscardStaleResponses && seq != c.latest {
		c.mu.Unlock()
		log.Warn().Str("cycle_id", cycleID).Uint64("seq", seq).Msg("discarding stale weather response")
		return
	}

	if err != nil {
		c.phase = PhaseError
		c.message = weather.UserMessage(err)
	} else {
		c.snapshot = &snapshot
		c.phase = PhaseContent
		c.message = ""
	}
	c.mu.Unlock()

	c.notify()
	c.record(ctx, cycleID, query, snapshot, err)
}

func (c *Controller) record(ctx context.Context, cycleID string, query weather.LocationQuery, snapshot weather.Snapshot, err error) {
	if c.repo == nil {
		return
	}

	entry := fetchlog.FetchLog{
		CycleID:    cycleID,
		QueryKind:  query.Kind(),
		Query:      query.String(),
		Outcome:    weather.Outcome(err),
		StatusCode: weather.StatusCode(err),
		CreatedAt:  c.opts.Now(),
	}
	if entry.Outcome == "location_error" {
		entry.QueryKind = "geolocation"
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	} else {
		temperature := snapshot.Temperature
		entry.Temperature = &temperature
	}

	ctx = context.WithoutCancel(ctx)
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		if err := c.repo.LogFetch(ctx, entry); err != nil {
			log.Error().Err(err).Str("cycle_id", cycleID).Msg("Failed to log fetch")
		}
	}()
}
