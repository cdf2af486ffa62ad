// Package logging configures the global zerolog logger.
//
// Logs always go to a diagnostics stream (stderr in production), never to
// the game's stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/config"
)

// Setup installs the global logger writing to w. An unparsable level falls
// back to warn and is reported once the logger is ready.
func Setup(cfg config.Config, w io.Writer) {
	lvl, lvlErr := zerolog.ParseLevel(cfg.LogLevel)
	if lvlErr != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty(cfg.LogFormat, w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	if lvlErr != nil {
		log.Warn().Err(lvlErr).Str("level", cfg.LogLevel).Msg("invalid log level, using warn")
	}
}

func pretty(format string, w io.Writer) bool {
	switch format {
	case "console":
		return true
	case "json":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
