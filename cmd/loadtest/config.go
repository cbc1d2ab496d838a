package main

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "loadtest"

// Config is read from LOADTEST_* variables first; flags override it.
type Config struct {
	Target    string        `default:"http://localhost:9000"`
	Interval  time.Duration `default:"1s"`
	Timeout   time.Duration `default:"10s"`
	UserAgent string        `split_words:"true" default:"loadprobe/1.0"`
	KeepGoing bool          `split_words:"true"`
	LogLevel  string        `split_words:"true" default:"info"`
}

func loadConfig(args []string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.StringVar(&cfg.Target, "target", cfg.Target, "request target")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "pause between two probes")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "http client timeout, 0 disables it")
	fs.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header of every request")
	fs.BoolVar(&cfg.KeepGoing, "keep-going", cfg.KeepGoing, "keep probing after connection-level errors")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	u, err := url.Parse(c.Target)
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid target %q: want http(s)://host[:port]", c.Target)
	}
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
