// Package config loads commentscan configuration from file, environment
// variables, and flags.
package config

// Defaults.
const (
	DefaultOutput = "text"
	DefaultAddr   = "localhost:8422"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Language is the default dialect for extract; empty means guess.
	Language string `koanf:"language"`
	// Output selects the render format: text, json, or table.
	Output string `koanf:"output"`
	// Addr is the listen address for serve.
	Addr string `koanf:"addr"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
