package main

import (
	"checkups/internal/config"
	"checkups/pkg/knowledgebase"
	"checkups/pkg/knowledgebase/gemini"
	"checkups/pkg/logger"
	"checkups/pkg/upstream"
	"checkups/pkg/upstream/apigateway"
	"context"
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getEngine creates the local knowledge base engine along with a cleanup
// function that closes the generator client.
func getEngine(ctx context.Context, cfg *config.Config) (*knowledgebase.Engine, func()) {
	gen, err := gemini.New(ctx, gemini.Options{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create gemini generator", zap.Error(err))
	}

	return knowledgebase.NewEngine(gen), func() {
		if err := gen.Close(); err != nil {
			logger.Warn(ctx, "could not close gemini client", zap.Error(err))
		}
	}
}

// getUpstream creates the upstream selected by cfg.Upstream.Mode.
func getUpstream(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) (upstream.Client, func()) {
	if cfg.Upstream.Mode == config.UpstreamLocal {
		logger.Info(ctx, "answering searches with the local knowledge base")

		return getEngine(ctx, cfg)
	}

	client, err := apigateway.New(&http.Client{}, apigateway.Options{
		URL:           cfg.Upstream.URL,
		Timeout:       cfg.Upstream.Timeout,
		MeterProvider: mp,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create api gateway client", zap.Error(err))
	}
	logger.Info(ctx, "proxying searches to the api gateway", zap.String("url", cfg.Upstream.URL))

	return client, func() {}
}
