// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init replaces the global logger. In "dev" it writes human-readable console
// output, otherwise JSON lines. level is a zerolog level name; unknown or empty
// values fall back to info.
func Init(env, level string) {
	InitWithWriter(env, level, os.Stdout)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(env, level string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if env == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	// log.Ctx falls back to the global logger outside of a request.
	zerolog.DefaultContextLogger = &log.Logger
}
