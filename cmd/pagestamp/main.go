// Command pagestamp batch-applies a translucent watermark onto comic or
// manga page scans, steering placements away from operator-marked avoid
// zones such as speech bubbles.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a console logger on stderr; stdout stays free for
// machine-readable output like the zones table.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}
