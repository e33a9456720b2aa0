package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shapes/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level parses a level name, falling back to info.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(name)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Setup points the global logger at the configured file. The terminal
// belongs to the UI, so without a file logs are discarded. The returned
// func closes the file.
func Setup(cfg config.Log) (func(), error) {
	zerolog.SetGlobalLevel(Level(cfg.Level))
	if cfg.File == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() {
		_ = f.Close()
	}, nil
}
