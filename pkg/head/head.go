// Package head renders the generic part of a page header: the <title>
// element, description, keywords, canonical link, robots and webmaster
// verification tags, and any other <meta name="..."> tag.
//
// Each entity is a [meta.Renderable] on its own; [Meta] composes them in a
// fixed order:
//
//	title, description, keywords, misc (canonical, robots, defaults),
//	webmasters, other metas
//
// Description and keywords have dedicated entities, so the generic metas
// collection ignores them. Title and description text is stripped of HTML
// tags before it is length-limited and escaped.
package head

import (
	"github.com/matzehuels/seohelper/pkg/config"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Meta is the generic header block.
type Meta struct {
	title       *Title
	description *Description
	keywords    *Keywords
	misc        *Misc
	webmasters  *Webmasters
	metas       *meta.Collection
}

// New creates the header block from configuration.
func New(cfg *config.Config) *Meta {
	return &Meta{
		title:       NewTitle(cfg.Title),
		description: NewDescription(cfg.Description),
		keywords:    NewKeywords(cfg.Keywords),
		misc:        NewMisc(cfg.Misc),
		webmasters:  NewWebmasters(cfg.Webmasters),
		metas:       meta.NewGeneric(),
	}
}

func (m *Meta) Title() *Title             { return m.title }
func (m *Meta) Description() *Description { return m.description }
func (m *Meta) Keywords() *Keywords       { return m.keywords }
func (m *Meta) Misc() *Misc               { return m.misc }
func (m *Meta) Webmasters() *Webmasters   { return m.webmasters }
func (m *Meta) Metas() *meta.Collection   { return m.metas }

// SetTitle sets the page title. Empty siteName or separator keep the current
// values.
func (m *Meta) SetTitle(title, siteName, separator string) error {
	if err := m.title.Set(title); err != nil {
		return err
	}
	if siteName != "" {
		m.title.SetSiteName(siteName)
	}
	if separator != "" {
		m.title.SetSeparator(separator)
	}
	return nil
}

// SetDescription sets the description.
func (m *Meta) SetDescription(description string) *Meta {
	m.description.Set(description)
	return m
}

// SetKeywords replaces the keywords.
func (m *Meta) SetKeywords(keywords []string) *Meta {
	m.keywords.Set(keywords)
	return m
}

// AddKeyword appends a keyword.
func (m *Meta) AddKeyword(keyword string) *Meta {
	m.keywords.Add(keyword)
	return m
}

// AddMeta adds a generic meta tag. Description and keywords are ignored.
func (m *Meta) AddMeta(name, content string) *Meta {
	m.metas.Add(name, content)
	return m
}

// AddMetas adds generic meta tags in order.
func (m *Meta) AddMetas(pairs ...meta.Pair) *Meta {
	m.metas.AddMany(pairs...)
	return m
}

// RemoveMeta removes generic meta tags by key.
func (m *Meta) RemoveMeta(names ...string) *Meta {
	m.metas.Remove(names...)
	return m
}

// SetURL sets the canonical URL.
func (m *Meta) SetURL(url string) error {
	return m.misc.SetURL(url)
}

// AddWebmaster adds a site verification code.
func (m *Meta) AddWebmaster(tool, code string) *Meta {
	m.webmasters.Add(tool, code)
	return m
}

// Render renders the whole block.
func (m *Meta) Render() string {
	return meta.RenderAll(m.title, m.description, m.keywords, m.misc, m.webmasters, m.metas)
}

// String implements fmt.Stringer.
func (m *Meta) String() string { return m.Render() }

var (
	_ meta.Renderable = (*Meta)(nil)
	_ meta.Renderable = (*Title)(nil)
	_ meta.Renderable = (*Description)(nil)
	_ meta.Renderable = (*Keywords)(nil)
	_ meta.Renderable = (*Misc)(nil)
	_ meta.Renderable = (*Webmasters)(nil)
)
