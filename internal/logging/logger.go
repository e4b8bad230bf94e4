package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"depositbri/config"

	"github.com/charmbracelet/log"
)

// New builds a slog.Logger backed by charmbracelet/log and installs it as the default.
func New(cfg *config.LogConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

func NewWithWriter(w io.Writer, cfg *config.LogConfig) *slog.Logger {
	formatter := log.TextFormatter
	if strings.EqualFold(cfg.Format, "json") {
		formatter = log.JSONFormatter
	}
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
