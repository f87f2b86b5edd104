package main

import (
	"context"
	"errors"
	"os"
	"ulascansenturk/weather-panel/config"
	"ulascansenturk/weather-panel/internal/geolocation"
	"ulascansenturk/weather-panel/internal/panel"
	"ulascansenturk/weather-panel/internal/terminal"

	"github.com/spf13/cobra"
)

var errPanelFailed = errors.New("weather panel ended in error")

func showCmd() *cobra.Command {
	var (
		city       string
		latitude   float64
		longitude  float64
		fahrenheit bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch once and print the panel",
		Long:  "Run a single fetch for a city or coordinates and print the result to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfig()
			if err != nil {
				return err
			}

			logger := setupLogger(conf, os.Stderr)
			warnPlaceholderKey(logger, conf)

			controller, err := newController(logger, conf)
			if err != nil {
				return err
			}
			defer controller.Wait()

			if fahrenheit {
				controller.ToggleUnit()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			switch {
			case cmd.Flags().Changed("lat"):
				err = controller.LocateMe(ctx, geolocation.FromCoordinates(latitude, longitude))
			case cmd.Flags().Changed("city"):
				err = controller.SearchCity(ctx, city)
			default:
				err = controller.SearchCity(ctx, conf.DefaultCity)
			}
			if err != nil {
				logger.Debug().Err(err).Msg("fetch failed")
			}

			view := controller.View()
			if err := terminal.Render(cmd.OutOrStdout(), view); err != nil {
				return err
			}

			if view.Phase == panel.PhaseError {
				return errPanelFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to look up (defaults to DEFAULT_CITY)")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude for a coordinate lookup")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "longitude for a coordinate lookup")
	cmd.Flags().BoolVar(&fahrenheit, "fahrenheit", false, "show temperatures in Fahrenheit")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	cmd.MarkFlagsMutuallyExclusive("city", "lat")

	return cmd
}
