package head

import (
	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Misc renders the canonical link, the robots tag and site-wide default
// metas.
type Misc struct {
	canonical bool
	url       string
	metas     *meta.Collection
}

// NewMisc creates the misc tags from configuration. When cfg.Robots is set
// the page is marked "noindex, nofollow".
func NewMisc(cfg config.Misc) *Misc {
	m := &Misc{
		canonical: cfg.Canonical,
		metas:     meta.NewGeneric(),
	}
	if cfg.Robots {
		m.metas.Add("robots", config.DefaultRobotsDirectives)
	}
	m.metas.AddMap(cfg.Default)
	return m
}

// SetURL sets the canonical URL. Only http and https URLs are accepted.
func (m *Misc) SetURL(url string) error {
	if err := errs.ValidateURL(url); err != nil {
		return err
	}
	m.url = url
	return nil
}

// URL returns the canonical URL.
func (m *Misc) URL() string { return m.url }

// EnableCanonical turns the canonical link on or off.
func (m *Misc) EnableCanonical(enabled bool) *Misc {
	m.canonical = enabled
	return m
}

// Add adds a meta tag.
func (m *Misc) Add(name, content string) *Misc {
	m.metas.Add(name, content)
	return m
}

// AddMany adds meta tags in order.
func (m *Misc) AddMany(pairs ...meta.Pair) *Misc {
	m.metas.AddMany(pairs...)
	return m
}

// Remove removes meta tags by key.
func (m *Misc) Remove(names ...string) *Misc {
	m.metas.Remove(names...)
	return m
}

// Metas returns the underlying collection.
func (m *Misc) Metas() *meta.Collection { return m.metas }

// CanonicalLink returns the canonical <link> element, or "" when disabled or
// no URL is set.
func (m *Misc) CanonicalLink() string {
	if !m.canonical || m.url == "" {
		return ""
	}
	return `<link rel="canonical" href="` + meta.Escape(m.url) + `">`
}

// Render returns the canonical link followed by the metas.
func (m *Misc) Render() string {
	return meta.Join(m.CanonicalLink(), m.metas.Render())
}

// String implements fmt.Stringer.
func (m *Misc) String() string { return m.Render() }
