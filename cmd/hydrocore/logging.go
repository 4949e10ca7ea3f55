package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/config"
)

// newLogger builds the process logger. With log_file set, output goes to a
// size-rotated file instead of stderr.
func newLogger(cfg config.Config, stderr io.Writer) zerolog.Logger {
	var out io.Writer = stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			Compress:   true,
		}
	} else if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.ConsoleWriter{Out: stderr, NoColor: stderr != os.Stderr}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "hydrocore").Logger()
}
