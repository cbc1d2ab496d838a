package integration

import (
	"context"
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5aradise/loadprobe/probe"
)

const defaultTarget = "http://fakesite:9000"

var client = resty.New().SetTimeout(3 * time.Second)

func target() string {
	if t, ok := os.LookupEnv("LOADTEST_TARGET"); ok {
		return t
	}
	return defaultTarget
}

func enumerate(tb testing.TB) []string {
	e := &probe.Enumerator{Client: client, BaseURL: target(), Out: io.Discard}
	c, err := e.Enumerate(context.Background())
	require.NoError(tb, err, "Failed to enumerate %s", target())
	return c.Paths()
}

func TestLoadtest(t *testing.T) {
	if _, exists := os.LookupEnv("INTEGRATION_TEST"); !exists {
		t.Skip("Integration test is not enabled")
	}

	t.Run("Enumeration", checkEnumeration)
	t.Run("Probing", checkProbing)
}

func checkEnumeration(t *testing.T) {
	paths := enumerate(t)

	assert.Greater(t, len(paths), len(probe.StaticPaths), "Expected enumerated paths besides the static ones")
	assert.Equal(t, probe.StaticPaths, paths[:len(probe.StaticPaths)])
}

func checkProbing(t *testing.T) {
	paths := enumerate(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var out strings.Builder
	r := &probe.Runner{
		Client:   client,
		BaseURL:  target(),
		Paths:    paths,
		Interval: 100 * time.Millisecond,
		Out:      &out,
	}
	require.NoError(t, r.Run(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 10)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "[200, OK]"), "Expected a successful probe, got %q", line)
	}
}

func BenchmarkProbe(b *testing.B) {
	if _, exists := os.LookupEnv("INTEGRATION_TEST"); !exists {
		b.Skip("Integration test is not enabled")
	}

	paths := enumerate(b)
	r := &probe.Runner{Client: client, BaseURL: target(), Paths: paths}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := r.Probe(context.Background(), paths[rand.Intn(len(paths))])
		require.NoError(b, err)
	}
}
