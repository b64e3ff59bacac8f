package tracker

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recording(calls *[][]string, err error) func(*exec.Cmd) error {
	return func(cmd *exec.Cmd) error {
		*calls = append(*calls, cmd.Args)
		return err
	}
}

func TestTaskwarriorPing(t *testing.T) {
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, nil)}

	require.NoError(t, c.Ping(context.Background()))
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"task", "--version"}, calls[0])
}

func TestTaskwarriorPingUnavailable(t *testing.T) {
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, errors.New("not found"))}

	assert.Error(t, c.Ping(context.Background()))
}

func TestTaskwarriorExists(t *testing.T) {
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, nil)}

	assert.True(t, c.Exists(context.Background(), "Pay rent"))
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"task", "_get", "description:Pay rent", "due"}, calls[0])
}

func TestTaskwarriorExistsNonZeroExit(t *testing.T) {
	// A non-zero exit from the existence check means "does not exist".
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, errors.New("exit status 1"))}

	assert.False(t, c.Exists(context.Background(), "Pay rent"))
}

func TestTaskwarriorAdd(t *testing.T) {
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, nil)}

	err := c.Add(context.Background(), Task{
		Description: "Pay rent",
		Due:         "2024-01-01",
		Project:     "TODO",
		Annotation:  "From /home/me/notes.md:5",
	})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{
		"task", "add", "Pay rent",
		"due:2024-01-01",
		"project:TODO",
		"annotation:From /home/me/notes.md:5",
	}, calls[0])
}

func TestTaskwarriorAddFailure(t *testing.T) {
	var calls [][]string
	c := &Taskwarrior{run: recording(&calls, errors.New("exit status 2"))}

	err := c.Add(context.Background(), Task{Description: "x", Due: "2024-01-01", Project: "TODO"})
	assert.Error(t, err)
}
