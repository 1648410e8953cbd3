package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Package-level logger with a key-value API so call sites stay one-liners.
// Before Init it is a no-op, which keeps unit tests quiet.

var log = zerolog.Nop()

// Init configures the process logger. Development gets console output at
// debug level; everything else gets JSON at info level.
func Init(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
		return
	}

	log = zerolog.New(os.Stdout).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
}

func Debug(msg string, kv ...any) { emit(log.Debug(), msg, kv) }
func Info(msg string, kv ...any)  { emit(log.Info(), msg, kv) }
func Warn(msg string, kv ...any)  { emit(log.Warn(), msg, kv) }
func Error(msg string, kv ...any) { emit(log.Error(), msg, kv) }

// Fatal logs and exits the process.
func Fatal(msg string, kv ...any) { emit(log.Fatal(), msg, kv) }

func emit(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	// A dangling value (e.g. a bare error) is logged under "error".
	if len(kv)%2 == 1 {
		e = e.Interface("error", kv[len(kv)-1])
	}
	e.Msg(msg)
}
