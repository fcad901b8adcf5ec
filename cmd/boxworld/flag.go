package main

import (
	"fmt"
	"log/slog"
	"strings"
)

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// logLevelFlag parses -loglevel, case-insensitive
type logLevelFlag struct {
	level slog.Level
}

func (f *logLevelFlag) String() string {
	return f.level.String()
}

func (f *logLevelFlag) Set(name string) error {
	level, ok := logLevels[strings.ToUpper(name)]
	if !ok {
		return fmt.Errorf("unknown log level %q", name)
	}
	f.level = level
	return nil
}
