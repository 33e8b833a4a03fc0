// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger used by the pipeline and
// the CLI. Library packages never log.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global sugared logger; a no-op until Initialize.
	Logger *zap.SugaredLogger
	// JSONOutput records the flavor chosen by Initialize.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Standard field names.
const (
	FieldRunID      = "run_id"
	FieldStep       = "step"
	FieldAtoms      = "atoms"
	FieldGhosts     = "ghosts"
	FieldMethod     = "method"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldPath       = "path"
	FieldCount      = "count"
)

// Initialize replaces Logger: JSON production output or a console encoder on
// stderr, at the given level ("debug", "info", "warn", "error"; empty is
// info).
func Initialize(jsonOutput bool, level string) error {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return errors.Wrapf(err, "logger: level %q", level)
		}
	}

	var zl *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		built, err := cfg.Build()
		if err != nil {
			return errors.Wrap(err, "logger: build")
		}
		zl = built
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zl = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stderr), lvl))
	}

	JSONOutput = jsonOutput
	Logger = zl.Sugar()
	return nil
}

// With returns a child of Logger with a component field.
func With(component string) *zap.SugaredLogger {
	return Logger.With("component", component)
}
