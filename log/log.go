package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	console "github.com/ansel1/console-slog"
)

// Handler is the [slog.Handler] type returned by this package's
// constructors.
type Handler = slog.Handler

// Level is a parsed log severity.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects, one per line.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt key=value format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs using [slog.TextHandler]'s default layout.
	FormatText Format = "text"
	// FormatConsole outputs colorized, human-oriented logs for an
	// interactive terminal, via [console-slog].
	//
	// [console-slog]: https://github.com/ansel1/console-slog
	FormatConsole Format = "console"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// slogLevel maps l to its [slog.Level].
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a log level string, case-insensitively. "warning" is
// accepted as an alias for "warn".
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(GetAllFormats(), f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevels returns every recognized [Level], in ascending severity.
func GetAllLevels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// GetAllLevelStrings returns every recognized level name, for flag help
// text and shell completion.
func GetAllLevelStrings() []string {
	levels := GetAllLevels()
	out := make([]string, len(levels))

	for i, l := range levels {
		out[i] = string(l)
	}

	return out
}

// GetAllFormats returns every recognized [Format].
func GetAllFormats() []Format {
	return []Format{FormatJSON, FormatLogfmt, FormatText, FormatConsole}
}

// GetAllFormatStrings returns every recognized format name, for flag help
// text and shell completion.
func GetAllFormatStrings() []string {
	formats := GetAllFormats()
	out := make([]string, len(formats))

	for i, f := range formats {
		out[i] = string(f)
	}

	return out
}

// NewHandlerFromStrings parses level and format and delegates to
// [NewHandler].
func NewHandlerFromStrings(w io.Writer, level, format string) (Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	fmtv, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, fmtv), nil
}

// NewHandler creates a [Handler] writing to w at the given level and
// format.
func NewHandler(w io.Writer, lvl Level, format Format) Handler {
	slogLvl := lvl.slogLevel()

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     slogLvl,
		})
	case FormatLogfmt, FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     slogLvl,
		})
	case FormatConsole:
		return console.NewHandler(w, &console.HandlerOptions{
			Level:      slogLvl,
			TimeFormat: "15:04:05.000",
		})
	}

	return nil
}
