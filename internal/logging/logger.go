// Package logging provides the explicitly-passed diagnostic channel
// that replaces a process-wide write-only error sink: a *Logger is
// threaded through the clone driver and the HTTP collaborator instead
// of being reached for as a global.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger carrying a per-operation correlation id so
// a single clone invocation's log lines can be grepped together.
type Logger struct {
	*zap.Logger
	correlationID string
}

// New builds a production-configured Logger at the given level
// ("debug", "info", "warn", "error").
func New(level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	return &Logger{Logger: base.With(zap.String("correlation_id", id)), correlationID: id}, nil
}

// NewNop returns a Logger that discards everything, for callers (and
// tests) that don't want log output.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop(), correlationID: uuid.Nil.String()}
}

// CorrelationID returns the UUID attached to every line this logger
// emits.
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

// WithOp returns a child logger tagged with the operation name, e.g.
// "clone" or "cat-file".
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("op", op)), correlationID: l.correlationID}
}
