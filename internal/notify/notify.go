// Package notify sends best-effort desktop notifications.
package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// timeoutMS is the fixed on-screen duration passed to notify-send.
const timeoutMS = "10000"

// Level is the notification urgency passed to the desktop tool.
type Level string

const (
	// Normal is the default urgency.
	Normal Level = "normal"
	// Critical marks an alert the desktop should keep visible.
	Critical Level = "critical"
)

// Notifier is a thing that can send a single fire-and-forget alert.
// Delivery is at-most-once: no retry, no queueing.
type Notifier interface {
	Send(ctx context.Context, level Level, title, body string) error
}

// Desktop sends notifications through the notify-send binary.
type Desktop struct {
	// run executes the prepared command. Overridable in tests.
	run func(*exec.Cmd) error
}

// NewDesktop creates a Desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{run: (*exec.Cmd).Run}
}

// Send invokes notify-send with the fixed 10 second timeout. A missing
// binary or non-zero exit is returned as an error; callers log it and move
// on — a failed notification never interrupts the rest of a cycle.
func (d *Desktop) Send(ctx context.Context, level Level, title, body string) error {
	cmd := exec.CommandContext(ctx, "notify-send",
		"-u", string(level),
		"-t", timeoutMS,
		title, body)
	if err := d.run(cmd); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
