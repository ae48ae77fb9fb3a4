// Package cli implements the seohelper command-line interface.
//
// The commands render SEO heads from a configuration file, list and inspect
// the resulting tags, run a preview server, and write configuration files.
// The CLI is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Render the head as HTML or as a JSON snapshot
//   - list: Print every tag as a table
//   - inspect: Browse the tags interactively
//   - serve: Serve a live preview over HTTP
//   - config: Write or show configuration files
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and library events (configuration loads,
// renders, HTTP requests) reach the logger through observability hooks.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/seo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "seohelper"

	// defaultAddr is the default listen address of the preview server.
	defaultAddr = "127.0.0.1:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig loads the configuration at path. An empty path falls back to
// seohelper.toml in the working directory, then to the built-in defaults.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFilename); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
			logger.Debug("no configuration file, using defaults")
			return config.Default(), nil
		}
		path = config.DefaultConfigFilename
	}
	return config.LoadContext(ctx, path)
}

// =============================================================================
// Page Options
// =============================================================================

// pageOpts holds per-page values that override the configuration.
// They come from render flags or preview query parameters.
type pageOpts struct {
	title       string
	siteName    string
	separator   string
	description string
	keywords    string // comma-separated
	url         string
	image       string
}

// newHelper builds a helper from cfg and applies the page overrides.
func newHelper(cfg *config.Config, p pageOpts) (*seo.Helper, error) {
	h, err := seo.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.apply(h); err != nil {
		return nil, err
	}
	return h, nil
}

// apply writes the non-empty overrides to h.
func (p pageOpts) apply(h *seo.Helper) error {
	if p.title != "" || p.siteName != "" || p.separator != "" {
		title := p.title
		if title == "" {
			title = h.Meta().Title().Get()
		}
		if err := h.SetTitle(title, p.siteName, p.separator); err != nil {
			return err
		}
	}
	if p.description != "" {
		h.SetDescription(p.description)
	}
	if p.keywords != "" {
		h.SetKeywords(splitList(p.keywords))
	}
	if p.url != "" {
		if err := h.SetURL(p.url); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "url")
		}
	}
	if p.image != "" {
		if err := h.SetImage(p.image); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "image")
		}
	}
	return nil
}

// splitList splits a comma-separated list, trimming entries and dropping
// blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
