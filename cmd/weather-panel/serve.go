package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-panel/config"
	"ulascansenturk/weather-panel/internal/api/v1/handlers"
	"ulascansenturk/weather-panel/internal/panel"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the weather panel over HTTP",
		Long:  "Start the HTTP panel, fetch the default city and keep the clock running",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfig()
			if err != nil {
				return err
			}

			logger := setupLogger(conf, os.Stdout)
			warnPlaceholderKey(logger, conf)

			controller, err := newController(logger, conf)
			if err != nil {
				return err
			}

			ctx, mainCtxStop := context.WithCancel(context.Background())

			clock := panel.NewClock(controller, conf.ClockInterval, time.Local)
			if err := clock.Start(); err != nil {
				mainCtxStop()
				return err
			}

			go func() {
				if err := controller.Start(ctx); err != nil {
					logger.Warn().Err(err).Str("city", conf.DefaultCity).Msg("initial fetch failed")
				}
			}()

			handler := handlers.NewPanelHandler(controller)

			// event streams only end when their request context does
			streamCtx, stopStreams := context.WithCancel(ctx)

			httpServer := &http.Server{
				Addr:              conf.ServerAddress,
				Handler:           handler,
				ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
				BaseContext:       func(net.Listener) context.Context { return streamCtx },
			}
			httpServer.RegisterOnShutdown(stopStreams)

			handleSignals(ctx, mainCtxStop, func() {
				clock.Stop()

				shutdownErr := httpServer.Shutdown(ctx)
				if shutdownErr != nil {
					log.Error().Err(shutdownErr).Msg("server shutdown failed")
				}

				controller.Wait()
			})

			logger.Info().Msgf("started server on %s", conf.ServerAddress)

			serverErr := httpServer.ListenAndServe()
			if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
				stopStreams()
				mainCtxStop()
				return serverErr
			}
			<-ctx.Done()

			return nil
		},
	}
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
