package main

import (
	"fmt"
	"io"
	"os"
	"ulascansenturk/weather-panel/config"
	"ulascansenturk/weather-panel/internal/db/fetchlog"
	"ulascansenturk/weather-panel/internal/panel"
	"ulascansenturk/weather-panel/internal/providers"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "weather-panel",
		Short:         "Current weather panel",
		Long:          "Shows current conditions from OpenWeatherMap for a city or the device location",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(showCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(conf *config.Config, out io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	logger := zerolog.New(out).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	log.Logger = logger
	return logger
}

func warnPlaceholderKey(logger zerolog.Logger, conf *config.Config) {
	if !conf.APIKeyIsPlaceholder() {
		return
	}

	logger.Warn().Msg("OpenWeatherMap API key is not configured")
	logger.Warn().Msg("Get a free key at https://openweathermap.org/api and set OPENWEATHER_API_KEY in the environment or .env")
}

// newController wires the provider and, when a database is configured, the
// fetch audit log.
func newController(logger zerolog.Logger, conf *config.Config) (*panel.Controller, error) {
	provider := providers.NewOpenWeatherService(conf.OpenWeatherBaseURL, conf.OpenWeatherAPIKey, conf.ProviderTimeout)

	var repo fetchlog.Repository
	if conf.AuditLogEnabled() {
		db, err := initializeDatabase(conf)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = fetchlog.NewRepository(db)
		logger.Info().Str("host", conf.DBHost).Msg("fetch audit log enabled")
	}

	return panel.NewController(provider, repo, panel.Options{
		DefaultCity:           conf.DefaultCity,
		IconURL:               conf.OpenWeatherIconURL,
		APIKeyMissing:         conf.APIKeyIsPlaceholder(),
		DiscardStaleResponses: conf.DiscardStaleResponses,
	}), nil
}
