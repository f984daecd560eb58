// Package config resolves the store file path and CLI settings.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name.
	AppName = "doru"

	// PathEnv is the environment variable that overrides the store path.
	PathEnv = "DORU_PATH"

	// StoreDir is the store directory under the user's home directory.
	StoreDir = ".doru"

	// StoreFile is the default store filename.
	StoreFile = "todos.json"
)

// Config holds the store path and settings.
type Config struct {
	// Path is the store file path. Empty until resolved.
	Path string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger receives debug logs. Never nil after New.
	Logger *slog.Logger
}

// New creates a Config for the given store path.
// An empty path is filled in by ResolvePath.
func New(path string) *Config {
	return &Config{
		Path:   path,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// ResolvePath sets Path to DefaultPath if no path was given.
// Only commands that open the store need a resolved path.
func (c *Config) ResolvePath() error {
	if c.Path != "" {
		return nil
	}
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	c.Path = path
	return nil
}

// DefaultPath returns the store path used when none is given.
// Uses DORU_PATH if set, otherwise $HOME/.doru/todos.json.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine home directory (set %s): %w", PathEnv, err)
	}
	return filepath.Join(home, StoreDir, StoreFile), nil
}

// SetDebug enables or disables debug logging to w.
func (c *Config) SetDebug(debug bool, w io.Writer) {
	c.Debug = debug
	if !debug {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	c.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
