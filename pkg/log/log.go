// Package log provides the process-wide zap logger used by the CLI.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// Init builds the package logger. debug selects the development encoder and
// enables debug level output.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		l, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	base = l
	sugar = l.Sugar()
	return nil
}

// L returns the sugared logger, falling back to a no-op logger when Init has
// not been called (tests, library use).
func L() *zap.SugaredLogger {
	if sugar == nil {
		return zap.NewNop().Sugar()
	}
	return sugar
}

// Sync flushes buffered log entries.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}
