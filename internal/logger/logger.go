// Package logger builds the structured loggers used across typeshed2spec.
package logger

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured log records.
const (
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldPackage    = "package"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldComponent  = "component"
)

// Options selects the log format and minimum level.
type Options struct {
	JSON  bool
	Level string // debug, info, warn, error; empty means info
}

// New returns a sugared logger writing to w. Console output omits
// timestamps; JSON output uses zap's production encoder.
func New(opts Options, w io.Writer) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", opts.Level)
		}
		level = parsed
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Component returns a child logger tagged with a component name.
func Component(l *zap.SugaredLogger, name string) *zap.SugaredLogger {
	return l.Named(name).With(FieldComponent, name)
}
