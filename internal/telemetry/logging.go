package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger builds the service-wide structured JSON logger and installs
// it as the slog default.
func InitLogger(serviceName string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(handler).With(
		slog.String("service", serviceName),
	)

	slog.SetDefault(logger)
	return logger
}
