package meta

import (
	"strings"

	errs "github.com/matzehuels/seohelper/pkg/errors"
)

// Attribute is the HTML attribute that carries a meta key.
type Attribute string

const (
	AttrName     Attribute = "name"     // <meta name="...">, generic and Twitter tags
	AttrProperty Attribute = "property" // <meta property="...">, Open Graph tags
)

// Renderable is implemented by everything that produces markup.
type Renderable interface {
	Render() string
}

// attrEscaper escapes content for a double-quoted attribute value.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape escapes s for use inside a double-quoted HTML attribute.
func Escape(s string) string {
	return attrEscaper.Replace(s)
}

// Key derives the lookup key for name under prefix.
// The prefix is concatenated before trimming and lowercasing.
func Key(prefix, name string) string {
	return strings.ToLower(strings.TrimSpace(prefix + name))
}

// Meta is a single meta tag. Only the owning collection changes its key.
type Meta struct {
	name    string
	key     string
	content string
	attr    Attribute
}

// New creates a meta tag. It returns an INVALID_INPUT error when name or
// content is empty after trimming. An empty attr defaults to AttrName.
func New(name, content string, attr Attribute, prefix string) (*Meta, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "meta name is required and must not be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "meta content for %q is required and must not be empty", name)
	}
	if attr == "" {
		attr = AttrName
	}

	m := &Meta{name: name, content: content, attr: attr}
	return m.SetPrefix(prefix), nil
}

// Key returns the (possibly prefixed) lookup key.
func (m *Meta) Key() string { return m.key }

// Name returns the name the tag was created with, without prefix.
func (m *Meta) Name() string { return m.name }

// Content returns the raw, unescaped content.
func (m *Meta) Content() string { return m.content }

// Attribute returns the attribute that carries the key.
func (m *Meta) Attribute() Attribute { return m.attr }

// SetPrefix re-derives the key from the original name and prefix.
func (m *Meta) SetPrefix(prefix string) *Meta {
	m.key = Key(prefix, m.name)
	return m
}

// Render returns the tag as a single <meta> element.
func (m *Meta) Render() string {
	return `<meta ` + string(m.attr) + `="` + m.key + `" content="` + Escape(m.content) + `">`
}

// String implements fmt.Stringer.
func (m *Meta) String() string { return m.Render() }
