package main

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Target:    "http://localhost:9000",
		Interval:  time.Second,
		Timeout:   10 * time.Second,
		UserAgent: "loadprobe/1.0",
		LogLevel:  "info",
	}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LOADTEST_TARGET", "http://192.168.56.102:9000")
	t.Setenv("LOADTEST_INTERVAL", "250ms")
	t.Setenv("LOADTEST_KEEP_GOING", "true")
	t.Setenv("LOADTEST_LOG_LEVEL", "debug")

	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.56.102:9000", cfg.Target)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LOADTEST_TARGET", "http://from-env:9000")
	t.Setenv("LOADTEST_TIMEOUT", "3s")

	cfg, err := loadConfig([]string{"-target", "https://from-flag", "-timeout", "0", "-user-agent", "probe"})
	require.NoError(t, err)

	assert.Equal(t, "https://from-flag", cfg.Target)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "probe", cfg.UserAgent)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for name, args := range map[string][]string{
		"NoScheme":        {"-target", "localhost:9000"},
		"FtpScheme":       {"-target", "ftp://host"},
		"ZeroInterval":    {"-interval", "0s"},
		"NegativeTimeout": {"-timeout", "-1s"},
		"BadLevel":        {"-log-level", "loud"},
		"UnknownFlag":     {"-rate", "5"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(args)
			assert.Error(t, err)
		})
	}

	t.Run("BadEnv", func(t *testing.T) {
		t.Setenv("LOADTEST_INTERVAL", "soon")
		_, err := loadConfig(nil)
		assert.Error(t, err)
	})

	t.Run("Help", func(t *testing.T) {
		_, err := loadConfig([]string{"-h"})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}
