package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the application logger and sets the global level. The format
// switch picks the output style: "pretty" renders a human-readable console
// stream for development, anything else emits raw JSON for production.
// Unparseable levels fall back to info.
func Setup(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(os.Stdout)
	if format == "pretty" {
		log = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return log.With().
		Timestamp().
		Caller().
		Logger()
}
