// Package logger is the application's slog setup: custom levels, tagged
// messages, a colored console handler and a plain log file.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mcbanner/internal/console"
	"mcbanner/internal/paths"

	"github.com/lmittmann/tint"
)

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

const timeFormat = "2006-01-02 15:04:05"

var (
	// LevelVar is the console level, Notice unless -v or -x is given.
	LevelVar = new(slog.LevelVar)
	// FileLevelVar is the log file level. It never goes above Info.
	FileLevelVar = new(slog.LevelVar)

	logFile *os.File
)

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel sets the console level. The log file follows it below Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	FileLevelVar.Set(min(level, LevelInfo))
}

// NewLogger builds the application logger: colored output on stderr and
// a plain copy in the log file under the state directory.
func NewLogger() *slog.Logger {
	Cleanup()

	var file io.Writer
	logFilePath := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err == nil {
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFile, file = f, f
		}
	}
	return newLogger(os.Stderr, console.IsTerminal(os.Stderr), file)
}

// Cleanup closes the log file opened by NewLogger.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func newLogger(w io.Writer, color bool, file io.Writer) *slog.Logger {
	fanout := &FanoutHandler{}
	fanout.handlers = append(fanout.handlers, tint.NewHandler(w, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  timeFormat,
		NoColor:     !color,
		ReplaceAttr: replaceLevel(color),
	}))
	if file != nil {
		fanout.handlers = append(fanout.handlers, tint.NewHandler(file, &tint.Options{
			Level:       FileLevelVar,
			TimeFormat:  timeFormat,
			NoColor:     true,
			ReplaceAttr: replaceLevel(false),
		}))
	}
	return slog.New(fanout)
}

var levelLabels = map[slog.Level]string{
	LevelTrace:  "[TRACE ]",
	LevelDebug:  "[DEBUG ]",
	LevelInfo:   "[INFO  ]",
	LevelNotice: "[NOTICE]",
	LevelWarn:   "[WARN  ]",
	LevelError:  "[ERROR ]",
	LevelFatal:  "[FATAL ]",
}

// levelTags are the console color tags for each label.
var levelTags = map[slog.Level]string{
	LevelTrace:  "{{_Trace_}}",
	LevelDebug:  "{{_Debug_}}",
	LevelInfo:   "{{_Info_}}",
	LevelNotice: "{{_Notice_}}",
	LevelWarn:   "{{_Warn_}}",
	LevelError:  "{{_Error_}}",
	LevelFatal:  "{{_Fatal_}}",
}

// replaceLevel renders levels as fixed width labels. Without color the
// message is stripped of escape sequences as well.
func replaceLevel(color bool) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.LevelKey:
			level, _ := a.Value.Any().(slog.Level)
			label, ok := levelLabels[level]
			if !ok {
				label = "[" + level.String() + "]"
			}
			if color {
				label = console.ForceANSI(levelTags[level]+label) + console.CodeReset
			}
			a.Value = slog.StringValue(label + "  ")
		case slog.MessageKey:
			if !color {
				a.Value = slog.StringValue(console.StripANSI(a.Value.String()))
			}
		}
		return a
	}
}

// flatten turns a message of lines, possibly nested, into one string.
func flatten(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, flatten(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// logAt formats msg with args when it holds verbs, converts its tags and
// emits one record per line so every line gets its own level label.
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	text := flatten(msg)
	if len(args) > 0 && strings.Contains(text, "%") {
		text = fmt.Sprintf(text, args...)
		args = nil
	}
	text = console.Parse(text)

	for i, line := range strings.Split(text, "\n") {
		// Reset at the end of each line so color never bleeds into the next timestamp
		r := slog.NewRecord(t, level, line+console.CodeReset, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Trace logs at LevelTrace.
func Trace(ctx context.Context, msg any, args ...any) { log(ctx, LevelTrace, msg, args...) }

// Debug logs at LevelDebug.
func Debug(ctx context.Context, msg any, args ...any) { log(ctx, LevelDebug, msg, args...) }

// Info logs at LevelInfo, shown with -v.
func Info(ctx context.Context, msg any, args ...any) { log(ctx, LevelInfo, msg, args...) }

// Notice logs at LevelNotice, the default console level.
func Notice(ctx context.Context, msg any, args ...any) { log(ctx, LevelNotice, msg, args...) }

// Warn logs at LevelWarn.
func Warn(ctx context.Context, msg any, args ...any) { log(ctx, LevelWarn, msg, args...) }

// Error logs at LevelError.
func Error(ctx context.Context, msg any, args ...any) { log(ctx, LevelError, msg, args...) }
