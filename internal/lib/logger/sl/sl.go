package sl

import (
	"io"
	"log/slog"
	"os"
)

// Environments understood by Setup
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Err wraps an error into a slog attribute
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Setup builds the logger for an environment: text at debug level for local,
// JSON at debug for dev and JSON at info for prod.
func Setup(env string) *slog.Logger {
	return SetupWriter(env, os.Stdout)
}

// SetupWriter is Setup writing to w
func SetupWriter(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
