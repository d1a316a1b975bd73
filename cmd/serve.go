package main

import (
	"checkups/internal/api"
	"checkups/internal/api/handler"
	"checkups/internal/config"
	"checkups/internal/history"
	"checkups/internal/worker"
	"checkups/pkg/logger"
	"checkups/pkg/metrics"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, server *http.Server) func(ctx context.Context) {
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupHistory connects to postgres and starts the River workers that
// persist search records. The returned function stops both.
func setupHistory(ctx context.Context, cfg *config.Config) (history.History, func(ctx context.Context)) {
	pgsql, closeStrg := getPostgres(ctx, cfg)

	riverClient, err := worker.Start(ctx, pgsql.Pool, pgsql, worker.Options{
		MaxWorkers: cfg.History.Workers,
		Retention:  cfg.History.Retention,
	})
	if err != nil {
		closeStrg()
		logger.Fatal(ctx, "could not start history workers", zap.Error(err))
	}

	return history.New(pgsql), func(ctx context.Context) {
		logger.Info(ctx, "stopping history workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop history workers", zap.Error(err))
		}
		closeStrg()
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the search API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			searchMetrics, err := metrics.NewSearch(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not register search metrics", zap.Error(err))
			}

			up, closeUpstream := getUpstream(ctx, cfg, mp)
			defer closeUpstream()

			deps := handler.Deps{Upstream: up, Metrics: searchMetrics}
			stopHistory := func(context.Context) {}
			if cfg.History.Enabled {
				deps.History, stopHistory = setupHistory(ctx, cfg)
			}

			opts, err := api.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create server options", zap.Error(err))
			}
			stopWebserver := setupServer(ctx, api.NewServer(deps, opts))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopHistory(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
