package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/fittrack/internal/buildinfo"
	"github.com/dmitrijs2005/fittrack/internal/client/cli"
	"github.com/dmitrijs2005/fittrack/internal/client/config"
	"github.com/dmitrijs2005/fittrack/internal/client/observability"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

func loadConfig() (cfg *config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return config.LoadConfig(), nil
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	reg := prometheus.NewRegistry()

	app, err := cli.NewApp(ctx, cfg, logger, reg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

	if summary, err := observability.Summary(reg); err == nil && len(summary) > 0 {
		logger.Debug(ctx, "api requests", "by_status", summary)
	}
	if err := app.Close(); err != nil {
		logger.Error(ctx, "closing session database", "error", err)
	}
}
