// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// Setup sets the level and formatter of the standard logrus logger.
// Production output is JSON; everything else gets timestamped text.
func Setup(level string, production bool) {
	if production {
		logger.SetFormatter(&logger.JSONFormatter{})
	} else {
		logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	}
	logger.SetOutput(os.Stdout)
	logger.SetLevel(ParseLevel(level))
}

// ParseLevel maps a configured level name to a logrus level, defaulting to info.
func ParseLevel(level string) logger.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
