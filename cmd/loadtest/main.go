package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/5aradise/loadprobe/probe"
	"github.com/5aradise/loadprobe/signal"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background())
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("stopped", "target", cfg.Target, "err", err)
	}
	logger.Info("interrupted, shutting down")
}

// run enumerates the target and probes it until ctx is cancelled, which is
// not treated as an error.
func run(ctx context.Context, cfg Config, logger *log.Logger, stdout io.Writer) error {
	client := newClient(cfg, logger)

	enumerator := &probe.Enumerator{Client: client, BaseURL: cfg.Target, Out: stdout}
	catalog, err := enumerator.Enumerate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("cannot enumerate paths: %w", err)
	}
	paths := catalog.Paths()
	logger.Info("paths enumerated",
		"tags", len(catalog.Tags),
		"categories", len(catalog.Categories),
		"authors", len(catalog.Authors),
		"items", len(catalog.Items),
		"paths", len(paths),
	)

	runner := &probe.Runner{
		Client:                 client,
		BaseURL:                cfg.Target,
		Paths:                  paths,
		Interval:               cfg.Interval,
		Out:                    stdout,
		RecoverTransportErrors: cfg.KeepGoing,
		Logger:                 logger,
	}
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("probing stopped: %w", err)
	}
	return nil
}

func newLogger(cfg Config) *log.Logger {
	level, _ := log.ParseLevel(cfg.LogLevel)
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "loadtest",
		ReportTimestamp: true,
	})
}

func newClient(cfg Config, logger *log.Logger) *resty.Client {
	return resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetLogger(logger)
}
