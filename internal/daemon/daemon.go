// Package daemon repeats scan cycles on an interval, isolating per-cycle
// failures from the process lifetime.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// defaultBackoff is how long the loop waits after an unexpected cycle
// failure before trying again.
const defaultBackoff = 60 * time.Second

// Runner is one executable scan cycle.
type Runner interface {
	Run(ctx context.Context)
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context) { f(ctx) }

// Daemon drives a Runner on a timer. There is no internal parallelism: one
// cycle, one sleep, repeat. The only terminal transition is context
// cancellation from an external interrupt.
type Daemon struct {
	Runner   Runner
	Interval time.Duration
	Logger   *slog.Logger

	// Backoff overrides the wait after a failed cycle. Zero means the
	// default of 60 seconds.
	Backoff time.Duration

	// Kick, when non-nil, triggers an early cycle (watch mode). A nil
	// channel never fires.
	Kick <-chan struct{}
}

// Run loops until ctx is canceled. An unexpected failure in a cycle — a
// panic not handled by its sub-components — is logged and followed by a
// fixed backoff instead of terminating the daemon.
func (d *Daemon) Run(ctx context.Context) {
	d.Logger.Info("daemon started", "interval", d.Interval)

	backoff := d.Backoff
	if backoff == 0 {
		backoff = defaultBackoff
	}

	for {
		wait := d.Interval
		if err := d.runCycle(ctx); err != nil {
			d.Logger.Error("unexpected cycle failure", "error", err)
			wait = backoff
		}

		select {
		case <-ctx.Done():
			d.Logger.Info("daemon stopped")
			return
		case <-time.After(wait):
		case <-d.Kick:
			d.Logger.Info("documents changed, rescanning")
		}
	}
}

// runCycle executes one cycle, converting a panic into an error so the loop
// survives it.
func (d *Daemon) runCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panicked: %v", r)
		}
	}()
	d.Runner.Run(ctx)
	return nil
}
