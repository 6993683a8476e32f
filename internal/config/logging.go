// internal/config/logging.go
package config

import (
	"io"
	"log/slog"
)

// SetupLogger ставит текстовый slog-обработчик уровнем из настроек
// и делает его логгером по умолчанию.
func SetupLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := ParseLogLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("falling back to info log level", "err", err)
	}
	return logger
}

// Resolve загружает настройки из явного пути или из CONFIG_PATH
func Resolve(path string) (*Settings, error) {
	if path != "" {
		return Load(path)
	}
	return LoadFromEnv()
}
