package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
directories:
  - /srv/notes
  - /srv/wiki
interval: 600
project: Inbox
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/notes", "/srv/wiki"}, cfg.Directories)
	assert.Equal(t, 600, cfg.Interval)
	assert.Equal(t, "Inbox", cfg.Project)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Watch)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "directories: [/srv/notes]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Equal(t, DefaultProject, cfg.Project)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "directories: [\"~/notes\"]\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "notes")}, cfg.Directories)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "directories: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) { c.Directories = []string{"/srv/notes"} }},
		{name: "no directories", mutate: func(*Config) {}, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) {
			c.Directories = []string{"/srv/notes"}
			c.Interval = 0
		}, wantErr: true},
		{name: "empty project", mutate: func(c *Config) {
			c.Directories = []string{"/srv/notes"}
			c.Project = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIntervalDuration(t *testing.T) {
	cfg := &Config{Interval: 90}
	assert.Equal(t, 90*time.Second, cfg.IntervalDuration())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "notes"), ExpandHome("~/notes"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/absolute/path", ExpandHome("/absolute/path"))
	assert.Equal(t, "relative/~path", ExpandHome("relative/~path"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
