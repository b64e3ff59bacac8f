// Package cycle runs one locate, extract, classify, notify, sync pass.
package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/twiced-technology-gmbh/todowatch/internal/date"
	"github.com/twiced-technology-gmbh/todowatch/internal/notify"
	"github.com/twiced-technology-gmbh/todowatch/internal/scan"
	"github.com/twiced-technology-gmbh/todowatch/internal/todo"
	"github.com/twiced-technology-gmbh/todowatch/internal/tracker"
	"github.com/twiced-technology-gmbh/todowatch/internal/urgency"
)

// Summary is the ephemeral result of one pass, used for the end-of-cycle
// log line.
type Summary struct {
	Total   int
	Overdue int
	DueSoon int
	Synced  int
}

// Runner executes scan cycles against fixed collaborators. It holds no
// state between cycles beyond configuration.
type Runner struct {
	Roots    []string
	Project  string
	Notifier notify.Notifier
	Tracker  tracker.Tracker
	Logger   *slog.Logger

	// Now is the clock used for classification. Defaults to time.Now.
	Now func() time.Time
}

// Run performs exactly one pass and returns its summary.
func (r *Runner) Run(ctx context.Context) Summary {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	all := r.collect()
	if len(all) == 0 {
		r.Logger.Info("no TODOs found")
		return Summary{}
	}

	valid, buckets := r.classify(all, now)

	for _, t := range buckets[urgency.Overdue] {
		r.send(ctx, notify.Critical, "TODO Overdue!",
			fmt.Sprintf("%s\nWas due: %s\nFile: %s", t.Text, t.Due, t.Basename()))
	}
	for _, t := range buckets[urgency.DueSoon] {
		r.send(ctx, notify.Normal, "TODO Due Soon",
			fmt.Sprintf("%s\nDue: %s\nFile: %s", t.Text, t.Due, t.Basename()))
	}

	s := Summary{
		Total:   len(all),
		Overdue: len(buckets[urgency.Overdue]),
		DueSoon: len(buckets[urgency.DueSoon]),
	}

	// Sync the full valid set, not just the urgent buckets.
	if err := r.Tracker.Ping(ctx); err != nil {
		r.Logger.Info("tracker not available, skipping sync", "error", err)
	} else {
		s.Synced = tracker.Sync(ctx, r.Tracker, r.Notifier, r.Project, valid, r.Logger)
	}

	r.Logger.Info("cycle complete",
		"total", s.Total, "overdue", s.Overdue, "due_soon", s.DueSoon, "synced", s.Synced)

	return s
}

// collect locates documents and extracts annotations from each. A read
// failure contributes zero records for that document and never aborts the
// pass for the others.
func (r *Runner) collect() []todo.Todo {
	var all []todo.Todo
	for _, file := range scan.FindMarkdownFiles(r.Roots) {
		todos, err := todo.ParseFile(file)
		if err != nil {
			r.Logger.Error("failed to read document", "file", file, "error", err)
			continue
		}
		all = append(all, todos...)
	}
	return all
}

// classify validates each record's due date and buckets the valid ones by
// urgency. Records with malformed dates are logged and excluded from both
// the buckets and the returned valid set, so they never reach notification
// or sync.
func (r *Runner) classify(all []todo.Todo, now time.Time) ([]todo.Todo, map[urgency.Category][]todo.Todo) {
	valid := make([]todo.Todo, 0, len(all))
	buckets := make(map[urgency.Category][]todo.Todo)

	for _, t := range all {
		due, err := date.Parse(t.Due)
		if err != nil {
			r.Logger.Error("invalid due date", "todo", t.Text, "source", t.Source(), "error", err)
			continue
		}
		valid = append(valid, t)
		cat := urgency.Classify(due, now)
		buckets[cat] = append(buckets[cat], t)
	}

	return valid, buckets
}

func (r *Runner) send(ctx context.Context, level notify.Level, title, body string) {
	if err := r.Notifier.Send(ctx, level, title, body); err != nil {
		r.Logger.Error("failed to send notification", "error", err)
	}
}
