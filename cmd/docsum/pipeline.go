package main

import (
	"context"

	"github.com/sweetpotato0/docsum/config"
	contribprovider "github.com/sweetpotato0/docsum/contrib/provider"
	"github.com/sweetpotato0/docsum/contrib/tokenizer/tiktoken"
	"github.com/sweetpotato0/docsum/pkg/logging"
	"github.com/sweetpotato0/docsum/pkg/telemetry"
	"github.com/sweetpotato0/docsum/summary"
)

// buildPipeline assembles the configured backend and pipeline. The returned
// cleanup releases the provider and flushes telemetry.
func buildPipeline(ctx context.Context) (*summary.Pipeline, func(context.Context), error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceVersion: version,
		Disable:        settings.DisableTelemetry,
	})
	if err != nil {
		return nil, nil, err
	}

	client, closeProvider, err := contribprovider.FromSettings(ctx, settings)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}

	opts := []summary.Option{}
	if counter, err := tiktoken.NewCounter("gpt-4o"); err == nil {
		opts = append(opts, summary.WithTokenCounter(counter))
	} else {
		logging.WithComponent("cli").Debug("token counter unavailable", "error", err)
	}

	cleanup := func(ctx context.Context) {
		_ = closeProvider()
		_ = shutdown(ctx)
	}
	return summary.New(client, opts...), cleanup, nil
}
