package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WaitForTerminationSignal blocks until the process receives SIGINT or SIGTERM.
func WaitForTerminationSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, terminationSignals...)
	<-ch
	signal.Stop(ch)
}

// NotifyContext returns a copy of parent that is cancelled on SIGINT or SIGTERM.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, terminationSignals...)
}
