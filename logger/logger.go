package logger

import (
	"github.com/rs/zerolog"
	"os"
	"strings"
)

const LevelEnv = "VENDLER_LOGLEVEL"

var levels = map[string]zerolog.Level{
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
	"PANIC": zerolog.PanicLevel,
}

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// Level reads the level from the environment; unknown values mean info.
func Level() zerolog.Level {
	if level, ok := levels[strings.ToUpper(strings.TrimSpace(os.Getenv(LevelEnv)))]; ok {
		return level
	}
	return zerolog.InfoLevel
}

func NewLogger(component string) zerolog.Logger {
	return zerolog.New(os.Stderr).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(Level())
}
