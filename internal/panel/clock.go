package panel

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

// Ticker receives clock ticks.
type Ticker interface {
	Tick(now time.Time)
}

// Clock refreshes the displayed date and time on a fixed interval. It only
// ever calls Tick.
type Clock struct {
	scheduler *gocron.Scheduler
	ticker    Ticker
	interval  time.Duration
}

func NewClock(ticker Ticker, interval time.Duration, loc *time.Location) *Clock {
	if interval <= 0 {
		interval = time.Minute
	}
	if loc == nil {
		loc = time.Local
	}

	return &Clock{
		scheduler: gocron.NewScheduler(loc),
		ticker:    ticker,
		interval:  interval,
	}
}

func (c *Clock) Start() error {
	_, err := c.scheduler.Every(c.interval).Do(func() {
		c.ticker.Tick(time.Now())
	})
	if err != nil {
		return err
	}

	c.scheduler.StartAsync()
	log.Debug().Dur("interval", c.interval).Msg("clock started")
	return nil
}

func (c *Clock) Stop() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
}
