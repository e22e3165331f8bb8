package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

const programName = "cluster-port-checker"

// New builds the JSON logger shared by all commands.
func New(w io.Writer, level string) (*slog.Logger, error) {
	logLevel, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to log level: %w", err)
	}

	return slog.New(NewTraceHandler(
		slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: logLevel,
		}),
	)).With(NewProgramAttr()), nil
}

func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.Level(-1), fmt.Errorf("invalid log level: %s", levelStr)
	}
}

func NewProgramAttr() slog.Attr {
	var version string
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		version = buildInfo.Main.Version
	}

	hostname, _ := os.Hostname()

	return slog.Group("program",
		slog.String("name", programName),
		slog.Int("pid", os.Getpid()),
		slog.String("machine", hostname),
		slog.String("version", version),
	)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
