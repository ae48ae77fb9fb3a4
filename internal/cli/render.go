package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/seohelper/pkg/errors"
	seoio "github.com/matzehuels/seohelper/pkg/io"
)

const (
	formatHTML = "html" // rendered markup
	formatJSON = "json" // snapshot, see pkg/io
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	page        pageOpts
	output      string // output file path, stdout when empty
	format      string // formatHTML or formatJSON
	noOpenGraph bool   // drop the Open Graph block
	noTwitter   bool   // drop the Twitter Card block
}

// renderCommand creates the render command.
//
// The input is a TOML/YAML configuration or a JSON snapshot written by
// `render --format json`. Without an argument, seohelper.toml in the working
// directory is used when present, and the built-in defaults otherwise.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatHTML}

	cmd := &cobra.Command{
		Use:   "render [config|snapshot.json]",
		Short: "Render the SEO head as HTML or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), input, &opts)
		},
	}

	addPageFlags(cmd, &opts.page)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: html, json")
	cmd.Flags().BoolVar(&opts.noOpenGraph, "no-opengraph", false, "omit Open Graph tags")
	cmd.Flags().BoolVar(&opts.noTwitter, "no-twitter", false, "omit Twitter Card tags")

	return cmd
}

// addPageFlags registers the per-page override flags shared by render, list
// and inspect.
func addPageFlags(cmd *cobra.Command, p *pageOpts) {
	cmd.Flags().StringVarP(&p.title, "title", "t", "", "page title")
	cmd.Flags().StringVar(&p.siteName, "site-name", "", "site name appended to the title")
	cmd.Flags().StringVar(&p.separator, "separator", "", "separator between title and site name")
	cmd.Flags().StringVarP(&p.description, "description", "d", "", "page description")
	cmd.Flags().StringVarP(&p.keywords, "keywords", "k", "", "comma-separated keywords")
	cmd.Flags().StringVar(&p.url, "url", "", "canonical URL (also og:url)")
	cmd.Flags().StringVar(&p.image, "image", "", "image URL for og:image and twitter:image")
}

// validateFormat checks the --format flag.
func validateFormat(format string) error {
	switch format {
	case formatHTML, formatJSON:
		return nil
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported output format %q (must be html or json)", format)
	}
}

// isSnapshot reports whether path names a JSON snapshot rather than a
// configuration file.
func isSnapshot(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// buildSnapshot turns the input into a snapshot: snapshots are imported,
// configurations are rendered through a helper with the page overrides.
func buildSnapshot(ctx context.Context, input string, page pageOpts, noOpenGraph, noTwitter bool) (*seoio.Snapshot, error) {
	if isSnapshot(input) {
		if page != (pageOpts{}) {
			printWarning("page flags are ignored for snapshot input")
		}
		return seoio.ImportJSON(input)
	}

	cfg, err := loadConfig(ctx, input)
	if err != nil {
		return nil, err
	}
	h, err := newHelper(cfg, page)
	if err != nil {
		return nil, err
	}
	if noOpenGraph {
		h.DisableOpenGraph()
	}
	if noTwitter {
		h.DisableTwitter()
	}
	h.RenderContext(ctx) // report the render; the snapshot renders identically
	return h.Snapshot(), nil
}

func runRender(ctx context.Context, stdout io.Writer, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	snap, err := buildSnapshot(ctx, input, opts.page, opts.noOpenGraph, opts.noTwitter)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch opts.format {
	case formatJSON:
		if err := seoio.WriteJSON(snap, &buf); err != nil {
			return err
		}
	default:
		buf.WriteString(snap.Render())
		buf.WriteByte('\n')
	}

	if opts.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %d tags", snap.Len()))
	printSuccess("Wrote %s", opts.format)
	printFile(opts.output)
	return nil
}
