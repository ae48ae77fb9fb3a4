// Package social renders the Open Graph and Twitter Card blocks.
//
// Both blocks are thin wrappers around a prefixed [meta.Collection]: Open
// Graph tags use the "property" attribute under "og:", Twitter tags use
// "name" under "twitter:". A disabled block keeps its tags but renders
// nothing.
package social

import (
	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// OpenGraph is the Open Graph block.
type OpenGraph struct {
	enabled bool
	metas   *meta.Collection
}

// NewOpenGraph creates the block from configuration. Known fields are added
// first (type, title, description, site_name), then extra properties in
// sorted order.
func NewOpenGraph(cfg config.OpenGraph) *OpenGraph {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultOpenGraphPrefix
	}
	og := &OpenGraph{
		enabled: cfg.Enabled,
		metas:   meta.NewSocial(prefix, meta.AttrProperty),
	}
	og.SetType(cfg.Type).
		SetTitle(cfg.Title).
		SetDescription(cfg.Description).
		SetSiteName(cfg.SiteName)
	og.metas.AddMap(cfg.Properties)
	return og
}

// SetType sets og:type.
func (og *OpenGraph) SetType(typ string) *OpenGraph { return og.AddProperty("type", typ) }

// SetTitle sets og:title.
func (og *OpenGraph) SetTitle(title string) *OpenGraph { return og.AddProperty("title", title) }

// SetDescription sets og:description.
func (og *OpenGraph) SetDescription(description string) *OpenGraph {
	return og.AddProperty("description", description)
}

// SetSiteName sets og:site_name.
func (og *OpenGraph) SetSiteName(siteName string) *OpenGraph {
	return og.AddProperty("site_name", siteName)
}

// SetURL sets og:url. Only http and https URLs are accepted.
func (og *OpenGraph) SetURL(url string) error {
	if err := errs.ValidateURL(url); err != nil {
		return err
	}
	og.AddProperty("url", url)
	return nil
}

// SetImage sets og:image. Only http and https URLs are accepted.
func (og *OpenGraph) SetImage(url string) error {
	if err := errs.ValidateURL(url); err != nil {
		return err
	}
	og.AddProperty("image", url)
	return nil
}

// SetLocale sets og:locale, e.g. "en_US".
func (og *OpenGraph) SetLocale(locale string) *OpenGraph { return og.AddProperty("locale", locale) }

// AddProperty adds or replaces a property. Empty values are ignored.
func (og *OpenGraph) AddProperty(property, content string) *OpenGraph {
	og.metas.Add(property, content)
	return og
}

// AddProperties adds properties in order.
func (og *OpenGraph) AddProperties(pairs ...meta.Pair) *OpenGraph {
	og.metas.AddMany(pairs...)
	return og
}

// RemoveProperty removes properties by full key ("og:image").
func (og *OpenGraph) RemoveProperty(keys ...string) *OpenGraph {
	og.metas.Remove(keys...)
	return og
}

// SetPrefix changes the prefix of every property.
func (og *OpenGraph) SetPrefix(prefix string) *OpenGraph {
	og.metas.SetPrefix(prefix)
	return og
}

func (og *OpenGraph) Enable() *OpenGraph  { og.enabled = true; return og }
func (og *OpenGraph) Disable() *OpenGraph { og.enabled = false; return og }
func (og *OpenGraph) IsEnabled() bool     { return og.enabled }

// Metas returns the underlying collection.
func (og *OpenGraph) Metas() *meta.Collection { return og.metas }

// Render returns the Open Graph tags, or "" when disabled.
func (og *OpenGraph) Render() string {
	if !og.enabled {
		return ""
	}
	return og.metas.Render()
}

// String implements fmt.Stringer.
func (og *OpenGraph) String() string { return og.Render() }
