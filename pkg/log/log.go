// Package log provides the process-wide logger used by helm-installer.
package log

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// ConfigureLogger initializes the logger based on the provided log level.
func ConfigureLogger(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Default to InfoLevel if parsing fails
	}

	logger = logrus.New()
	logger.SetLevel(level)
	DefaultFormat()
	logger.SetOutput(os.Stdout)
}

// GetLogger returns the configured logger instance.
func GetLogger() *logrus.Logger {
	if logger == nil {
		// Fallback to a default logger if not configured
		ConfigureLogger("info")
	}
	return logger
}

// Apply sets the level and formatter of l from their flag values.
func Apply(l *logrus.Logger, logLevel string, logFormatter string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	l.SetLevel(level)

	switch logFormatter {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		// keep whatever text formatter is installed
	default:
		return fmt.Errorf("invalid log formatter: %s", logFormatter)
	}
	return nil
}

// DefaultFormat sets the default log format. Colors are only used when
// stdout is a terminal.
func DefaultFormat() {
	colors := isTerminal(os.Stdout)
	GetLogger().SetFormatter(&logrus.TextFormatter{
		ForceColors:   colors,
		DisableColors: !colors,
		FullTimestamp: true,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// MiniLogFormat sets the minimal log format mostly used for testing purpose
func MiniLogFormat() {
	GetLogger().SetFormatter(&logrus.TextFormatter{
		DisableColors:          true,
		DisableQuote:           true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
}
