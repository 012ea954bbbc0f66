package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/weathersynth/cmd/api"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var serveAddr string

// serveCmd exposes the current series over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated series as JSON, CSV and TSV over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		if serveAddr != "" {
			settings.ServeAddr = serveAddr
		}
		logger := newLogger(cmd.ErrOrStderr(), settings.LogLevel)

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv, err := api.NewServer(weather.NewService(), settings.Params, filepath.Base(settings.ExportFile), logger, api.NewMetrics(reg))
		if err != nil {
			return err
		}

		router := mux.NewRouter()
		srv.RegisterRoutes(router)
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

		server := &http.Server{
			Addr:         settings.ServeAddr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from serve.addr)")
}
