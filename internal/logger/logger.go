// Package logger configures zerolog for the worker process, the way the
// teacher's node_executors.go and factory.go reach for
// github.com/rs/zerolog/log as the package-level logger rather than rolling
// a bespoke logging type.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger at the given level and
// installs it as the package-level default, mirroring the teacher's
// Setup(level) returning a ready-to-use logger.
func Setup(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
