// Package seo is the entry point of seohelper: a [Helper] bundles the
// generic header block, Open Graph and Twitter Cards, and broadcasts the
// shared values (title, description) to all three.
//
// # Quick Start
//
//	h := seo.Default()
//	if err := h.SetTitle("Home", "Company", "|"); err != nil {
//	    return err
//	}
//	h.SetDescription("Welcome to Company")
//	fmt.Println(h.Render())
//
// # Configuration
//
// [New] builds a Helper from a [config.Config], typically loaded with
// [config.Load]. The configuration is only read during construction, so one
// loaded configuration can back any number of helpers.
//
// # Concurrency
//
// A Helper is not safe for concurrent use. Build one per page or request.
package seo

import (
	"context"
	"time"

	"github.com/matzehuels/seohelper/pkg/config"
	"github.com/matzehuels/seohelper/pkg/head"
	"github.com/matzehuels/seohelper/pkg/io"
	"github.com/matzehuels/seohelper/pkg/meta"
	"github.com/matzehuels/seohelper/pkg/observability"
	"github.com/matzehuels/seohelper/pkg/social"
)

// Helper renders a complete SEO head.
type Helper struct {
	meta      *head.Meta
	openGraph *social.OpenGraph
	twitter   *social.Twitter
}

// New builds a Helper from configuration. A nil cfg means config.Default().
// It fails when the Twitter card type is unknown.
func New(cfg *config.Config) (*Helper, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	tw, err := social.NewTwitter(cfg.Twitter)
	if err != nil {
		return nil, err
	}
	return &Helper{
		meta:      head.New(cfg),
		openGraph: social.NewOpenGraph(cfg.OpenGraph),
		twitter:   tw,
	}, nil
}

// Default builds a Helper from config.Default().
func Default() *Helper {
	h, err := New(config.Default())
	if err != nil {
		// the default card type is always valid
		panic(err)
	}
	return h
}

func (h *Helper) Meta() *head.Meta             { return h.meta }
func (h *Helper) OpenGraph() *social.OpenGraph { return h.openGraph }
func (h *Helper) Twitter() *social.Twitter     { return h.twitter }

// OG is an alias for OpenGraph.
func (h *Helper) OG() *social.OpenGraph { return h.openGraph }

// SetTitle sets the page title everywhere: the <title> element, og:title
// and og:site_name, and twitter:title. Empty siteName or separator keep the
// current <title> settings.
func (h *Helper) SetTitle(title, siteName, separator string) error {
	if err := h.meta.SetTitle(title, siteName, separator); err != nil {
		return err
	}
	h.openGraph.SetTitle(title).SetSiteName(siteName)
	h.twitter.SetTitle(title)
	return nil
}

// SetDescription sets the description everywhere.
func (h *Helper) SetDescription(description string) *Helper {
	h.meta.SetDescription(description)
	h.openGraph.SetDescription(description)
	h.twitter.SetDescription(description)
	return h
}

// SetKeywords replaces the keywords. Only the generic block has keywords.
func (h *Helper) SetKeywords(keywords []string) *Helper {
	h.meta.SetKeywords(keywords)
	return h
}

// SetURL sets the canonical URL and og:url.
func (h *Helper) SetURL(url string) error {
	if err := h.meta.SetURL(url); err != nil {
		return err
	}
	return h.openGraph.SetURL(url)
}

// SetImage sets og:image and twitter:image.
func (h *Helper) SetImage(url string) error {
	if err := h.openGraph.SetImage(url); err != nil {
		return err
	}
	return h.twitter.AddImage(url)
}

func (h *Helper) EnableOpenGraph() *Helper  { h.openGraph.Enable(); return h }
func (h *Helper) DisableOpenGraph() *Helper { h.openGraph.Disable(); return h }
func (h *Helper) EnableTwitter() *Helper    { h.twitter.Enable(); return h }
func (h *Helper) DisableTwitter() *Helper   { h.twitter.Disable(); return h }

// Blocks returns the names of the blocks Render currently emits.
func (h *Helper) Blocks() []string {
	blocks := []string{io.GroupMeta}
	if h.openGraph.IsEnabled() {
		blocks = append(blocks, io.GroupOpenGraph)
	}
	if h.twitter.IsEnabled() {
		blocks = append(blocks, io.GroupTwitter)
	}
	return blocks
}

// Render renders the generic block, Open Graph and Twitter, skipping empty
// and disabled blocks.
func (h *Helper) Render() string {
	return meta.RenderAll(h.meta, h.openGraph, h.twitter)
}

// RenderContext is Render reporting to the observability render hooks.
func (h *Helper) RenderContext(ctx context.Context) string {
	blocks := h.Blocks()
	start := time.Now()
	observability.Render().OnRenderStart(ctx, blocks)

	out := h.Render()
	observability.Render().OnRenderComplete(ctx, blocks, h.Snapshot().Len(), time.Since(start), nil)
	return out
}

// String implements fmt.Stringer.
func (h *Helper) String() string { return h.Render() }

// Snapshot captures the rendered head as data. Disabled blocks are left out.
func (h *Helper) Snapshot() *io.Snapshot {
	m := h.meta
	g := io.NewGroup(io.GroupMeta).AddHTML(m.Title().Render())
	if tag, ok := m.Description().Tag(); ok {
		g.AddMeta(tag)
	}
	if tag, ok := m.Keywords().Tag(); ok {
		g.AddMeta(tag)
	}
	g.AddHTML(m.Misc().CanonicalLink()).
		AddCollection(m.Misc().Metas()).
		AddCollection(m.Webmasters().Metas()).
		AddCollection(m.Metas())

	s := (&io.Snapshot{Groups: []io.Group{}}).Add(g)
	if h.openGraph.IsEnabled() {
		s.Add(io.NewGroup(io.GroupOpenGraph).AddCollection(h.openGraph.Metas()))
	}
	if h.twitter.IsEnabled() {
		s.Add(io.NewGroup(io.GroupTwitter).AddCollection(h.twitter.Metas()))
	}
	return s
}

var _ meta.Renderable = (*Helper)(nil)
