package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level mirrors slog levels under the names used across the codebase
type Level = slog.Level

const (
	LevelDebug Level = slog.LevelDebug
	LevelInfo  Level = slog.LevelInfo
	LevelWarn  Level = slog.LevelWarn
	LevelError Level = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stdout)
}

// SetLevel changes the minimum level for every logger
func SetLevel(l Level) {
	level.Set(l)
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetOutput redirects log output, mostly for tests
func SetOutput(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger.Store(slog.New(h))
}

// Fields are structured key/values attached to a log line
type Fields map[string]any

// Entry is a logger carrying fields
type Entry struct {
	l *slog.Logger
}

// WithFields returns an entry that adds fields to every line it writes
func WithFields(fields Fields) *Entry {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Entry{l: logger.Load().With(args...)}
}

func (e *Entry) Debug(msg string) { e.l.Debug(msg) }
func (e *Entry) Info(msg string)  { e.l.Info(msg) }
func (e *Entry) Warn(msg string)  { e.l.Warn(msg) }
func (e *Entry) Error(msg string) { e.l.Error(msg) }

func (e *Entry) Infof(format string, args ...any)  { e.l.Info(fmt.Sprintf(format, args...)) }
func (e *Entry) Warnf(format string, args ...any)  { e.l.Warn(fmt.Sprintf(format, args...)) }
func (e *Entry) Errorf(format string, args ...any) { e.l.Error(fmt.Sprintf(format, args...)) }

func Debug(msg string) { logger.Load().Debug(msg) }
func Info(msg string)  { logger.Load().Info(msg) }
func Warn(msg string)  { logger.Load().Warn(msg) }
func Error(msg string) { logger.Load().Error(msg) }

func Debugf(format string, args ...any) { logger.Load().Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { logger.Load().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { logger.Load().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { logger.Load().Error(fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits the process
func Fatal(msg string) {
	logger.Load().Log(context.Background(), LevelError, msg)
	os.Exit(1)
}

// Fatalf logs at error level and exits the process
func Fatalf(format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...))
}
