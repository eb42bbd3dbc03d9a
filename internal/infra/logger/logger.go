// Package logger owns the process-wide structured log. Until Setup runs,
// everything logged through L is discarded.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config controls where the structured log lives and how chatty it is.
type Config struct {
	Root  string
	Debug bool
}

// sink is the active logger and the file behind it, swapped as a unit.
type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu      sync.RWMutex
	current = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// FilePath is where Setup writes the log for a project root.
func FilePath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), ".solidbots", "logs", "solidbots.log")
}

// Setup opens the log under cfg.Root and installs a JSON logger.
// The returned cleanup closes the file and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		swap(discardSink())
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardSink())
		return nil, fmt.Errorf("open log: %w", err)
	}

	l := slog.New(slog.NewJSONHandler(f, handlerOptions(cfg.Debug)))
	swap(sink{log: l, file: f, path: path})

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		prev := swap(discardSink())
		if prev.file == nil {
			return nil
		}
		return prev.file.Close()
	}
	return cleanup, nil
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return opts
}

func swap(next sink) sink {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = next
	return prev
}

// L returns the process logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Component tags every record with the part of the program that wrote it.
func Component(name string) *slog.Logger {
	return L().With("component", name)
}

// Path is the active log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}
