package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func withLogger(t *testing.T, color bool) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, file bytes.Buffer
	old := slog.Default()
	oldLevel := LevelVar.Level()
	slog.SetDefault(newLogger(&out, color, &file))
	t.Cleanup(func() {
		slog.SetDefault(old)
		SetLevel(oldLevel)
	})
	return &out, &file
}

func TestLevels(t *testing.T) {
	out, file := withLogger(t, false)
	SetLevel(LevelNotice)
	ctx := context.Background()

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Notice(ctx, "notice message")
	Warn(ctx, "warn %d", 42)

	console := out.String()
	if strings.Contains(console, "info message") || strings.Contains(console, "debug message") {
		t.Errorf("console shows messages below notice:\n%s", console)
	}
	if !hasLine(console, "[NOTICE]", "notice message") {
		t.Errorf("console missing notice line:\n%s", console)
	}
	if !hasLine(console, "[WARN  ]", "warn 42") {
		t.Errorf("console missing formatted warning:\n%s", console)
	}

	logged := file.String()
	if !hasLine(logged, "[INFO  ]", "info message") {
		t.Errorf("log file should record info:\n%s", logged)
	}
	if strings.Contains(logged, "debug message") {
		t.Errorf("log file should not record debug at notice level:\n%s", logged)
	}
}

func TestSetLevelDebugReachesFile(t *testing.T) {
	_, file := withLogger(t, false)
	SetLevel(LevelDebug)

	Debug(context.Background(), "details")
	if !hasLine(file.String(), "[DEBUG ]", "details") {
		t.Errorf("log file missing debug line:\n%s", file.String())
	}
}

func TestMultilineMessage(t *testing.T) {
	out, _ := withLogger(t, false)
	SetLevel(LevelNotice)

	Notice(context.Background(), []string{"first", "second"})
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[1], "second") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestNoColorStripsEscapes(t *testing.T) {
	out, _ := withLogger(t, false)
	SetLevel(LevelNotice)

	Notice(context.Background(), "\x1b[31mred\x1b[0m text")
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("escape sequences left in plain output: %q", out.String())
	}
}

func TestFatalPanics(t *testing.T) {
	out, _ := withLogger(t, false)

	defer func() {
		r := recover()
		if _, ok := r.(FatalError); !ok {
			t.Fatalf("recovered %v; want FatalError", r)
		}
		logged := out.String()
		if !hasLine(logged, "[FATAL ]", "boom 7") {
			t.Errorf("fatal message not logged:\n%s", logged)
		}
		if !strings.Contains(logged, "TestFatalPanics") {
			t.Errorf("stack trace does not name the caller:\n%s", logged)
		}
		if !strings.Contains(logged, "BEGIN SYSTEM INFORMATION") {
			t.Errorf("system information missing:\n%s", logged)
		}
	}()
	Fatal(context.Background(), "boom %d", 7)
}

func TestRecover(t *testing.T) {
	out, _ := withLogger(t, false)

	defer func() {
		if _, ok := recover().(FatalError); !ok {
			t.Fatal("Recover did not convert the panic into FatalError")
		}
		if !hasLine(out.String(), "[FATAL ]", "panic: kaboom") {
			t.Errorf("panic not reported:\n%s", out.String())
		}
	}()
	func() {
		defer Recover(context.Background())
		panic("kaboom")
	}()
}

func TestFanoutHandlerLevels(t *testing.T) {
	var verbose, quiet bytes.Buffer
	h := &FanoutHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: LevelDebug}),
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: LevelWarn}),
	}}
	l := slog.New(h).With("banner", "lobby")

	l.Debug("drawing")
	l.Warn("slow")

	if !strings.Contains(verbose.String(), "drawing") || !strings.Contains(verbose.String(), "banner=lobby") {
		t.Errorf("verbose handler missing records:\n%s", verbose.String())
	}
	if strings.Contains(quiet.String(), "drawing") || !strings.Contains(quiet.String(), "slow") {
		t.Errorf("quiet handler got the wrong records:\n%s", quiet.String())
	}
	if h.Enabled(context.Background(), LevelTrace) {
		t.Error("no handler accepts trace")
	}
}

// hasLine reports whether some line of out carries label followed by msg.
func hasLine(out, label, msg string) bool {
	for _, line := range strings.Split(out, "\n") {
		i := strings.Index(line, label)
		if i >= 0 && strings.HasSuffix(strings.TrimRight(line, " "), msg) {
			return true
		}
	}
	return false
}
