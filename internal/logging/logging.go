// Package logging builds the zap loggers used across crashkit.
//
// Logging is diagnostics only: no code path makes decisions based on
// whether a message was emitted.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger. With verbose set, debug-level
// diagnostics (directory repairs, delete misses) are included.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything. Used by tests and by
// embedders that bring their own sink.
func Nop() *zap.Logger { return zap.NewNop() }
