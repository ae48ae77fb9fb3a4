package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seohelper/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 12 tags (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// =============================================================================
// Observability Backend
// =============================================================================

// logHooks implements every observability hook by logging at debug level.
// HTTP responses are logged at info level so `serve` shows traffic.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnConfigLoad(_ context.Context, path, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("config load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("config loaded", "path", path, "format", format, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, blocks []string) {
	h.logger.Debug("render", "blocks", blocks)
}

func (h *logHooks) OnRenderComplete(_ context.Context, _ []string, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "err", err)
		return
	}
	h.logger.Debug("rendered", "elements", elements, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("served", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "err", err)
}

var (
	_ observability.ConfigHooks = (*logHooks)(nil)
	_ observability.RenderHooks = (*logHooks)(nil)
	_ observability.HTTPHooks   = (*logHooks)(nil)
)
