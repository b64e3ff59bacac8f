package tracker

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Taskwarrior talks to the task binary.
type Taskwarrior struct {
	// run executes the prepared command. Overridable in tests.
	run func(*exec.Cmd) error
}

// NewTaskwarrior creates a Taskwarrior client.
func NewTaskwarrior() *Taskwarrior {
	return &Taskwarrior{run: (*exec.Cmd).Run}
}

// Ping runs a lightweight version check. An error means Taskwarrior is not
// installed or not working, and sync should be skipped for the cycle.
func (c *Taskwarrior) Ping(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "task", "--version")
	if err := c.run(cmd); err != nil {
		return fmt.Errorf("taskwarrior unavailable: %w", err)
	}
	return nil
}

// Exists checks whether a task with the given description and a due date is
// already present. Any failure, including a non-zero exit, counts as absent.
func (c *Taskwarrior) Exists(ctx context.Context, description string) bool {
	cmd := exec.CommandContext(ctx, "task", "_get", "description:"+description, "due")
	return c.run(cmd) == nil
}

// Add creates a new task entry.
func (c *Taskwarrior) Add(ctx context.Context, t Task) error {
	cmd := exec.CommandContext(ctx, "task", "add", t.Description,
		"due:"+t.Due,
		"project:"+t.Project,
		"annotation:"+t.Annotation)
	if err := c.run(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("task add failed: exit code %d, stderr: %s",
				exitErr.ExitCode(), exitErr.Stderr)
		}
		return fmt.Errorf("task add failed: %w", err)
	}
	return nil
}
