package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const DefaultInterval = time.Second

var ErrNoPaths = errors.New("no paths to probe")

// Runner probes random paths of the target site until its context is done.
type Runner struct {
	Client  *resty.Client
	BaseURL string
	Paths   []string

	// Interval is the pause after each probe, counted from the moment its
	// response arrived.
	Interval time.Duration

	// Out receives one line per probe. Defaults to os.Stdout.
	Out io.Writer

	// RecoverTransportErrors keeps the loop running when a probe fails
	// below HTTP (refused connection, DNS, timeout).
	RecoverTransportErrors bool

	// Pick returns an index in [0, n). Defaults to rand.Intn.
	Pick func(n int) int

	Logger *log.Logger
}

// Probe issues a single GET for path.
func (r *Runner) Probe(ctx context.Context, path string) (Outcome, error) {
	rid := uuid.NewString()
	if r.Logger != nil {
		r.Logger.Debug("probe", "path", path, "request_id", rid)
	}

	resp, err := r.Client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", rid).
		Get(strings.TrimRight(r.BaseURL, "/") + path)
	if err != nil {
		return Outcome{}, fmt.Errorf("request %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return Outcome{}, newStatusError(resp)
	}
	return Outcome{Path: path, StatusCode: resp.StatusCode(), Reason: reasonPhrase(resp)}, nil
}

// Run probes one random path, reports it and pauses for Interval, until ctx
// is done, in which case it returns nil. A transport error ends the loop
// unless RecoverTransportErrors is set.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.Paths) == 0 {
		return ErrNoPaths
	}
	pick := r.Pick
	if pick == nil {
		pick = rand.Intn
	}
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	for ctx.Err() == nil {
		path := r.Paths[pick(len(r.Paths))]

		outcome, err := r.Probe(ctx, path)
		switch {
		case err == nil:
			fmt.Fprintln(out, outcome)
		case ctx.Err() != nil:
			return nil
		default:
			var statusErr *StatusError
			if !errors.As(err, &statusErr) && !r.RecoverTransportErrors {
				return err
			}
			fmt.Fprintf(out, "Request %s: %s\n", path, unwrapRequest(err))
		}

		if !pause(ctx, interval) {
			return nil
		}
	}
	return nil
}

// pause waits for d and reports false if ctx ended first.
func pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// unwrapRequest drops the "request <path>" prefix Probe adds, since the
// reported line already carries the path.
func unwrapRequest(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
