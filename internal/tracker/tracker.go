// Package tracker reconciles extracted annotations against an external task
// tracker. The tracker is the only durable store; this package only probes,
// checks existence, and appends.
package tracker

import "context"

// Task is one entry to be created in the external tracker.
type Task struct {
	Description string
	Due         string // ISO YYYY-MM-DD
	Project     string
	Annotation  string
}

// Tracker is a thing that can check for and create task entries.
type Tracker interface {
	// Ping reports whether the tracker is usable this cycle.
	Ping(ctx context.Context) error

	// Exists reports whether a task with the given description (and a due
	// date) is already present. Failures are treated as "does not exist".
	Exists(ctx context.Context, description string) bool

	// Add creates a new task entry.
	Add(ctx context.Context, t Task) error
}
