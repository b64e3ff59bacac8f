// Package config handles todowatch configuration.
package config

const (
	// DefaultInterval is the seconds between daemon cycles.
	DefaultInterval = 3600
	// DefaultProject is the project label attached to synced tracker tasks.
	DefaultProject = "TODO"
	// DefaultLogLevel is the log level when none is configured.
	DefaultLogLevel = "info"

	// ConfigFileName is the name of the config file within the config
	// directory.
	ConfigFileName = "config.yml"
)
