package initialize

import (
	"board-guard/backend/config"
	"board-guard/backend/global"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// InitLogger builds global.Logger from the log section; console output unless format is json.
func InitLogger(cfg config.Log, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	SetLogLevel(cfg.Level)
	logger := zerolog.New(out).With().Timestamp().Logger()
	global.Logger = logger
	return logger
}

// SetLogLevel switches the process-wide level; unknown values fall back to info.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
