// Package logger builds the zerolog loggers used across intentsync. Every
// long-lived worker logs through a component sub-logger derived from the root
// one, so a single line of output always carries which part of the engine
// produced it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// sampleEvery thins high-frequency logs to one in N events when sampling
// is enabled.
const sampleEvery = 5

// New builds the process-wide root logger. Format "json" writes raw JSON to
// stdout for log shippers; anything else gets the human console writer.
func New(logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	root := zerolog.New(writerFor(logFormat)).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		root = root.Sample(&zerolog.BasicSampler{N: sampleEvery})
	}
	return root
}

// Component derives a sub-logger tagged with the worker name, e.g.
// "reconciler" or "evm_syncer".
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}

func writerFor(format string) io.Writer {
	if format == "json" {
		return os.Stdout
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}
