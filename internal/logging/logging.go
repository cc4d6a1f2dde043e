// Package logging builds the logr loggers used by the command line tools.
package logging

import (
	"errors"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TextFormat writes human readable console lines. It is the default.
	TextFormat = "text"
	// JSONFormat writes one JSON object per line.
	JSONFormat = "json"
)

// New returns a logger named name writing to w in the given format. verbosity
// enables logr V-levels up to that value.
func New(name, format string, verbosity int, w io.Writer) (logr.Logger, error) {
	var encoder zapcore.Encoder
	switch format {
	case "", TextFormat:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	case JSONFormat:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return logr.Discard(), errors.New("log format not recognized, pass `text` for text mode or `json` to enable JSON logging")
	}
	if verbosity < 0 {
		verbosity = 0
	}
	level := zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zapr.NewLogger(zap.New(core)).WithName(name), nil
}
