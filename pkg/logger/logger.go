// Package logger is a thin global wrapper around zerolog with an
// alternating key/value argument style.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var root = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger configures the process-wide logger. Safe to call once at
// startup; the zero value logs JSON at info level.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if cfg.Pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stderr)
	}

	root = l.Level(level).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) {
	emit(root.Debug(), msg, kv)
}

func Info(msg string, kv ...any) {
	emit(root.Info(), msg, kv)
}

func Warn(msg string, kv ...any) {
	emit(root.Warn(), msg, kv)
}

func Error(msg string, kv ...any) {
	emit(root.Error(), msg, kv)
}

func emit(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = "arg"
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
