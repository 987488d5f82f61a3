package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, raw)
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component stamps every record with component and operation attrs.
type Component struct {
	logger *slog.Logger
	name   string
}

func With(logger *slog.Logger, component string) Component {
	if logger == nil {
		logger = Discard()
	}
	return Component{logger: logger, name: strings.TrimSpace(component)}
}

func (c Component) Debug(operation, message string, attrs ...any) {
	c.logger.Debug(message, c.base(operation, attrs)...)
}

func (c Component) Info(operation, message string, attrs ...any) {
	c.logger.Info(message, c.base(operation, attrs)...)
}

func (c Component) Warn(operation, message string, attrs ...any) {
	c.logger.Warn(message, c.base(operation, attrs)...)
}

func (c Component) Error(operation string, err error, attrs ...any) {
	if err == nil {
		return
	}
	base := c.base(operation, attrs)
	c.logger.Error("operation failed", append(base, "error", err.Error())...)
}

func (c Component) base(operation string, attrs []any) []any {
	base := []any{
		"component", c.name,
		"operation", strings.TrimSpace(operation),
	}
	return append(base, attrs...)
}
