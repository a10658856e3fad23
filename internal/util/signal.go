// Package util provides small internal helpers for clusterctl.
package util

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext returns a context that is canceled when an interrupt or
// termination signal is received, plus a cleanup function that stops the
// signal handling.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-signalCh:
			cancel()
		case <-ctx.Done():
			// Context was canceled elsewhere
		}
	}()

	return ctx, func() {
		signal.Stop(signalCh)
		cancel()
	}
}
