package panel_test

import (
	"sync/atomic"
	"testing"
	"time"
	"ulascansenturk/weather-panel/internal/mocks"
	"ulascansenturk/weather-panel/internal/panel"
	"ulascansenturk/weather-panel/internal/weather"

	"github.com/stretchr/testify/suite"
)

type countingTicker struct {
	ticks atomic.Int32
}

func (c *countingTicker) Tick(time.Time) {
	c.ticks.Add(1)
}

type ClockTestSuite struct {
	suite.Suite
}

func (s *ClockTestSuite) TestTicksRepeatedly() {
	ticker := &countingTicker{}
	clock := panel.NewClock(ticker, 20*time.Millisecond, time.UTC)

	s.Require().NoError(clock.Start())
	defer clock.Stop()

	s.Eventually(func() bool {
		return ticker.ticks.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *ClockTestSuite) TestStopHaltsTicks() {
	ticker := &countingTicker{}
	clock := panel.NewClock(ticker, 20*time.Millisecond, time.UTC)

	s.Require().NoError(clock.Start())
	s.Eventually(func() bool {
		return ticker.ticks.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	clock.Stop()
	stopped := ticker.ticks.Load()
	time.Sleep(100 * time.Millisecond)

	s.LessOrEqual(ticker.ticks.Load(), stopped+1)
}

func (s *ClockTestSuite) TestDrivesControllerClockOnly() {
	provider := mocks.NewMockWeatherProvider(s.T())
	controller := panel.NewController(provider, nil, panel.Options{
		Now: func() time.Time { return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC) },
	})
	initial := controller.View().Clock

	clock := panel.NewClock(controller, 20*time.Millisecond, time.UTC)
	s.Require().NoError(clock.Start())
	defer clock.Stop()

	s.Eventually(func() bool {
		return controller.View().Clock != initial
	}, 2*time.Second, 10*time.Millisecond)

	view := controller.View()
	s.Equal(panel.PhaseLoading, view.Phase)
	s.Equal(weather.Celsius, view.Unit)
	s.Nil(view.Display)
}

func TestClockTestSuite(t *testing.T) {
	suite.Run(t, new(ClockTestSuite))
}
