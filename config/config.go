package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"strings"
	"time"
)

// PlaceholderAPIKey is the credential shipped in sample configuration.
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherIconURL string
	ProviderTimeout    time.Duration

	DefaultCity           string
	ClockInterval         time.Duration
	DiscardStaleResponses bool
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-panel")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("PROVIDER_TIMEOUT", time.Duration(0))
	v.SetDefault("OPENWEATHER_API_KEY", PlaceholderAPIKey)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("OPENWEATHER_ICON_URL", "https://openweathermap.org/img/wn/%s@2x.png")
	v.SetDefault("DEFAULT_CITY", "London")
	v.SetDefault("CLOCK_INTERVAL", time.Minute)
	v.SetDefault("DISCARD_STALE_RESPONSES", false)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DBName:                v.GetString("DATABASE_NAME"),
		DBPassword:            v.GetString("DATABASE_PASSWORD"),
		DBUser:                v.GetString("DATABASE_USER"),
		DBPort:                v.GetString("DATABASE_PORT"),
		DBHost:                v.GetString("DATABASE_HOST"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:     v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL:    v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherIconURL:    v.GetString("OPENWEATHER_ICON_URL"),
		ProviderTimeout:       v.GetDuration("PROVIDER_TIMEOUT"),
		DefaultCity:           v.GetString("DEFAULT_CITY"),
		ClockInterval:         v.GetDuration("CLOCK_INTERVAL"),
		DiscardStaleResponses: v.GetBool("DISCARD_STALE_RESPONSES"),
	}

	if !strings.Contains(config.OpenWeatherIconURL, "%s") {
		return nil, fmt.Errorf("OPENWEATHER_ICON_URL must contain a %%s placeholder, got %q", config.OpenWeatherIconURL)
	}

	// bare numbers parse as nanoseconds
	if config.ProviderTimeout != 0 && config.ProviderTimeout < time.Second {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT must be 0 or a duration of at least 1s such as \"30s\", got %v", config.ProviderTimeout)
	}
	if config.ClockInterval < time.Second {
		return nil, fmt.Errorf("CLOCK_INTERVAL must be a duration of at least 1s such as \"1m\", got %v", config.ClockInterval)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// APIKeyIsPlaceholder reports whether the OpenWeatherMap credential was never set.
func (c *Config) APIKeyIsPlaceholder() bool {
	key := strings.TrimSpace(c.OpenWeatherAPIKey)
	return key == "" || key == PlaceholderAPIKey
}

// AuditLogEnabled reports whether a database is configured for the fetch audit log.
func (c *Config) AuditLogEnabled() bool {
	return c.DBHost != ""
}
