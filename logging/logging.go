// Package logging holds the zerolog logger shared by the command line and the
// interactive browser. The spl packages themselves never log.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	logger = &l
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init configures the global logger. debug lowers the level to Debug; human
// selects the console writer instead of JSON lines.
func Init(debug bool, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stderr
	if human {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	l := zerolog.New(output).With().Timestamp().Logger()
	logger = &l
}

func L() *zerolog.Logger {
	return logger
}

// WithFile returns a logger tagged with the image or payload file name.
func WithFile(path string) zerolog.Logger {
	return logger.With().Str("file", path).Logger()
}

// SetLogger overrides the global logger, mostly for tests.
func SetLogger(l zerolog.Logger) {
	logger = &l
}
