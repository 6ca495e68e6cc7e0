package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"mcbanner/internal/paths"
	"mcbanner/internal/version"
)

// FatalError is the panic value of Fatal. main recovers it, runs its
// cleanup and exits with status 1.
type FatalError struct{}

// Fatal logs msg with system information and a stack trace, then panics
// with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	FatalWithStackSkip(ctx, 1, msg, args...)
}

// FatalWithStackSkip is Fatal with skip extra frames left off the top of
// the trace.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()
	report := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		indent(systemInfo()),
		"",
		stackLines(skip),
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
		"",
		"{{_FatalFooter_}}Please report this error.",
		fmt.Sprintf("{{_FatalFooter_}}It has been written to {{|-|}}'{{_File_}}%s{{|-|}}'{{_FatalFooter_}}.", paths.GetLogFilePath()),
	}
	logAt(ctx, now, LevelFatal, report, args...)
	panic(FatalError{})
}

func systemInfo() []string {
	executable, _ := os.Executable()
	return []string{
		fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}] (%s, %s)", version.ApplicationName, version.Version, version.Commit, version.BuildDate),
		"",
		fmt.Sprintf("Binary:   %s (PID %d)", executable, os.Getpid()),
		fmt.Sprintf("Platform: %s/%s, %s", runtime.GOOS, runtime.GOARCH, runtime.Version()),
		fmt.Sprintf("Config:   %s", paths.GetConfigFilePath()),
		fmt.Sprintf("Assets:   %s", paths.GetAssetsDir()),
	}
}

// stackLines formats the stack of FatalWithStackSkip's caller, outermost
// frame first, each call nested one step under its caller.
func stackLines(skip int) []string {
	pc := make([]uintptr, 32)
	// Skip runtime.Callers, stackLines and FatalWithStackSkip
	n := runtime.Callers(3+skip, pc)
	iter := runtime.CallersFrames(pc[:n])

	var frames []runtime.Frame
	for {
		frame, more := iter.Next()
		frames = append(frames, frame)
		if !more {
			break
		}
	}

	wd, _ := os.Getwd()
	width := len(strconv.Itoa(len(frames) - 1))
	lines := make([]string, 0, len(frames))
	for depth := range frames {
		i := len(frames) - 1 - depth
		frame := frames[i]
		arrow := ""
		if depth > 0 {
			arrow = strings.Repeat("  ", depth-1) + "└>"
		}
		lines = append(lines, fmt.Sprintf(
			"  {{_TraceFrameNumber_}}%*d{{|-|}}: {{_TraceFrameLines_}}%s{{|-|}}{{_TraceSourceFile_}}%s{{|-|}}:{{_TraceLineNumber_}}%d{{|-|}} ({{_TraceFunction_}}%s{{|-|}})",
			width, i, arrow, relativeTo(wd, frame.File), frame.Line, filepath.Base(frame.Function),
		))
	}
	return lines
}

// relativeTo shortens file to a ./ path when it is under dir.
func relativeTo(dir, file string) string {
	if dir == "" {
		return file
	}
	rel, err := filepath.Rel(dir, file)
	if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return file
	}
	return "./" + filepath.ToSlash(rel)
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = "  " + line
		}
	}
	return out
}
