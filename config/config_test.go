package config_test

import (
	"os"
	"testing"
	"time"
	"ulascansenturk/weather-panel/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	wd string
}

func (s *ConfigTestSuite) SetupTest() {
	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.wd = wd

	// no .env in the working directory
	s.Require().NoError(os.Chdir(s.T().TempDir()))
}

func (s *ConfigTestSuite) TearDownTest() {
	s.Require().NoError(os.Chdir(s.wd))
}

func (s *ConfigTestSuite) TestDefaults() {
	for _, key := range []string{"OPENWEATHER_API_KEY", "DEFAULT_CITY", "DATABASE_HOST", "CLOCK_INTERVAL", "SERVER_ADDRESS"} {
		s.T().Setenv(key, "")
	}

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("weather-panel", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal("London", conf.DefaultCity)
	s.Equal(time.Minute, conf.ClockInterval)
	s.Equal(time.Duration(0), conf.ProviderTimeout)
	s.Equal("https://api.openweathermap.org/data/2.5/weather", conf.OpenWeatherBaseURL)
	s.Equal(config.PlaceholderAPIKey, conf.OpenWeatherAPIKey)
	s.False(conf.DiscardStaleResponses)
	s.True(conf.APIKeyIsPlaceholder())
	s.False(conf.AuditLogEnabled())
	s.Equal(175*time.Second, conf.HTTPTimeoutDuration())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("OPENWEATHER_API_KEY", "real-key")
	s.T().Setenv("DEFAULT_CITY", "Istanbul")
	s.T().Setenv("CLOCK_INTERVAL", "30s")
	s.T().Setenv("DISCARD_STALE_RESPONSES", "true")
	s.T().Setenv("DATABASE_HOST", "localhost")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("real-key", conf.OpenWeatherAPIKey)
	s.False(conf.APIKeyIsPlaceholder())
	s.Equal("Istanbul", conf.DefaultCity)
	s.Equal(30*time.Second, conf.ClockInterval)
	s.True(conf.DiscardStaleResponses)
	s.True(conf.AuditLogEnabled())
}

func (s *ConfigTestSuite) TestBlankAPIKeyIsPlaceholder() {
	conf := &config.Config{OpenWeatherAPIKey: "   "}
	s.True(conf.APIKeyIsPlaceholder())
}

func (s *ConfigTestSuite) TestIconURLWithoutPlaceholder() {
	s.T().Setenv("OPENWEATHER_ICON_URL", "https://example.com/icon.png")

	_, err := config.LoadConfig()
	s.Require().Error(err)
	s.Contains(err.Error(), "OPENWEATHER_ICON_URL")
}

func (s *ConfigTestSuite) TestDurationsAcceptUnits() {
	s.T().Setenv("PROVIDER_TIMEOUT", "30s")
	s.T().Setenv("CLOCK_INTERVAL", "2m")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal(30*time.Second, conf.ProviderTimeout)
	s.Equal(2*time.Minute, conf.ClockInterval)
}

func (s *ConfigTestSuite) TestBareNumberDurationsAreRejected() {
	s.Run("provider timeout", func() {
		s.T().Setenv("PROVIDER_TIMEOUT", "30")

		_, err := config.LoadConfig()
		s.Require().Error(err)
		s.Contains(err.Error(), "PROVIDER_TIMEOUT")
	})

	s.Run("clock interval", func() {
		s.T().Setenv("CLOCK_INTERVAL", "60")

		_, err := config.LoadConfig()
		s.Require().Error(err)
		s.Contains(err.Error(), "CLOCK_INTERVAL")
	})
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
