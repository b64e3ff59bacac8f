package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twiced-technology-gmbh/todowatch/internal/notify"
	"github.com/twiced-technology-gmbh/todowatch/internal/todo"
)

// Sync reconciles the cycle's annotations against the tracker, creating
// entries that are missing. Two records with the same trimmed text are the
// same task regardless of file and line. The check-then-create sequence has
// a race window when another actor adds the same description concurrently;
// the external tracker is trusted to absorb that.
//
// An empty input makes no external calls. A per-record create failure is
// logged and the pass continues. If anything was created, one summary
// notification is sent. Returns the number of newly created tasks.
func Sync(ctx context.Context, tr Tracker, notifier notify.Notifier, project string, todos []todo.Todo, logger *slog.Logger) int {
	if len(todos) == 0 {
		return 0
	}

	synced := 0
	for _, t := range todos {
		if tr.Exists(ctx, t.Text) {
			continue
		}
		err := tr.Add(ctx, Task{
			Description: t.Text,
			Due:         t.Due,
			Project:     project,
			Annotation:  "From " + t.Source(),
		})
		if err != nil {
			logger.Error("tracker sync failed", "todo", t.Text, "error", err)
			continue
		}
		synced++
	}

	if synced > 0 {
		msg := fmt.Sprintf("Synced %d new TODOs", synced)
		if err := notifier.Send(ctx, notify.Normal, "TaskWarrior", msg); err != nil {
			logger.Error("failed to send notification", "error", err)
		}
	}

	return synced
}
