package main

import (
	"checkups/internal/api"
	"checkups/internal/api/handler"
	"checkups/internal/config"
	"checkups/pkg/logger"
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func kbCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Serves the local knowledge base the way the API Gateway calls it",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			engine, closeEngine := getEngine(ctx, cfg)
			defer closeEngine()

			opts, err := api.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create server options", zap.Error(err))
			}
			stopWebserver := setupServer(ctx, api.NewKnowledgeBaseServer(handler.NewKnowledgeBase(engine), opts))

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
