package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered 3 tags")

	if !strings.Contains(buf.String(), "Rendered 3 tags") {
		t.Errorf("progress.done() output = %q, want message", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}

	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should return the default logger when none set")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	hooks.OnConfigLoad(ctx, "seo.toml", "toml", time.Millisecond, nil)
	hooks.OnConfigLoad(ctx, "bad.toml", "toml", time.Millisecond, errors.New("boom"))
	hooks.OnRenderStart(ctx, []string{"meta"})
	hooks.OnRenderComplete(ctx, []string{"meta"}, 4, time.Millisecond, nil)
	hooks.OnRequest(ctx, "GET", "/head")
	hooks.OnResponse(ctx, "GET", "/head", 200, time.Millisecond)
	hooks.OnError(ctx, "GET", "/head", errors.New("broken pipe"))

	out := buf.String()
	for _, want := range []string{"config loaded", "config load failed", "rendered", "served", "request failed", "/head"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	hooks := &logHooks{logger: newLogger(&buf, log.InfoLevel)}

	hooks.OnRenderComplete(context.Background(), nil, 4, time.Millisecond, nil)
	if buf.Len() != 0 {
		t.Errorf("render events should be debug-only, got %q", buf.String())
	}
}
