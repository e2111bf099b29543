package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/weekly/internal/config"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// debugLog receives TUI state, keystrokes, and events. It discards
// everything until InitDebugLogger enables it.
var (
	debugLog  = log.New(io.Discard)
	debugFile *os.File
)

// InitDebugLogger starts JSON logging to cfg.Path when enabled.
// The file is truncated on every start so it only holds the last session.
func InitDebugLogger(cfg config.LogConfig, enabled bool) error {
	if !enabled {
		debugLog = log.New(io.Discard)
		return nil
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "weekly",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Formatter:       log.JSONFormatter,
	})
	debugLog.Info("debug start", "log_file", cfg.Path)
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Info("debug end")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = log.New(io.Discard)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	debugLog.Debug("key press", "key", msg.String(), "mode", mode.String())
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	debugLog.Debug("mode change", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(day todo.Weekday, item int, reason string) {
	debugLog.Debug("cursor move", "day", string(day), "item", item, "reason", reason)
}

// LogLoaded logs a finished load.
func LogLoaded(count int) {
	debugLog.Info("todos loaded", "count", count)
}

// LogMalformedCounts warns about days whose counts no real day can have.
func LogMalformedCounts(days []view.DisplayDay) {
	for _, d := range days {
		if d.Malformed() {
			debugLog.Warn("malformed day counts",
				"day", string(d.Day.Key),
				"total", d.Total,
				"completed", d.Completed,
			)
		}
	}
}

// LogError logs an error with context.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.Error(context, "err", err)
}
