// Package shutdown cancels in-flight work when the process receives a
// termination signal.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Context derives a context from parent that is cancelled on SIGINT or
// SIGTERM. onSignal, when non-nil, runs before the cancellation, so
// callers can log why the work stopped. Cancelling the returned
// context releases the signal subscription.
func Context(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
