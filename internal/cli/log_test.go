package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, log.InfoLevel)
	logger.Info("catalog loaded", "tools", 28)

	out := buf.String()
	if !strings.Contains(out, "catalog loaded") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "tools") {
		t.Errorf("output missing key-value field: %q", out)
	}
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info passes info level", log.InfoLevel, func(l *log.Logger) { l.Info("generating") }, true},
		{"debug dropped at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("stage timing") }, false},
		{"debug passes debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("stage timing") }, true},
		{"warn passes info level", log.InfoLevel, func(l *log.Logger) { l.Warn("spindle not found") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(5 * time.Millisecond)
	prog.done("Generated 3 programs")

	out := buf.String()
	if !strings.Contains(out, "Generated 3 programs") {
		t.Errorf("output missing message: %q", out)
	}
	// The elapsed duration is appended in parentheses.
	if !strings.Contains(out, "(") || !strings.Contains(out, "s)") {
		t.Errorf("output missing elapsed duration: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Fatal("loggerFromContext() returned a different logger")
	}

	loggerFromContext(ctx).Debug("batch start")
	if buf.Len() == 0 {
		t.Error("retrieved logger did not write to its buffer")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext() must fall back to a usable logger")
	}
}
