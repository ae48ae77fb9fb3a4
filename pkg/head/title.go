package head

import (
	"strings"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Title renders the <title> element from a page title, an optional site name
// and a separator.
type Title struct {
	title     string
	siteName  string
	separator string
	first     bool
	max       int
}

// NewTitle creates a title from configuration. A non-positive max falls back
// to config.DefaultTitleMax.
func NewTitle(cfg config.Title) *Title {
	t := &Title{
		title:    strings.TrimSpace(cfg.Default),
		siteName: cfg.SiteName,
		first:    cfg.First,
		max:      cfg.Max,
	}
	if t.max <= 0 {
		t.max = config.DefaultTitleMax
	}
	t.SetSeparator(cfg.Separator)
	return t
}

// MakeTitle creates a title-first Title with the default max length.
func MakeTitle(title, siteName, separator string) (*Title, error) {
	t := NewTitle(config.Title{SiteName: siteName, Separator: separator, First: true})
	if err := t.Set(title); err != nil {
		return nil, err
	}
	return t, nil
}

// Set replaces the page title. Blank titles are rejected.
func (t *Title) Set(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.New(errs.ErrCodeInvalidInput, "title is required and must not be empty")
	}
	t.title = title
	return nil
}

// Get returns the page title without site name.
func (t *Title) Get() string { return t.title }

// SiteName returns the site name.
func (t *Title) SiteName() string { return t.siteName }

// SetSiteName sets the site name; empty omits it from the output.
func (t *Title) SetSiteName(siteName string) *Title {
	t.siteName = siteName
	return t
}

// Separator returns the trimmed separator.
func (t *Title) Separator() string { return t.separator }

// SetSeparator sets the separator between title and site name.
func (t *Title) SetSeparator(separator string) *Title {
	t.separator = strings.TrimSpace(separator)
	return t
}

// SetFirst places the page title before the site name.
func (t *Title) SetFirst() *Title {
	t.first = true
	return t
}

// SetLast places the page title after the site name.
func (t *Title) SetLast() *Title {
	t.first = false
	return t
}

// IsTitleFirst reports whether the page title comes before the site name.
func (t *Title) IsTitleFirst() bool { return t.first }

// Max returns the maximum rendered length in runes.
func (t *Title) Max() int { return t.max }

// SetMax sets the maximum rendered length in runes.
func (t *Title) SetMax(max int) error {
	if max <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "title maximum length must be greater than 0, got %d", max)
	}
	t.max = max
	return nil
}

// Text returns the combined, unescaped title text.
func (t *Title) Text() string {
	if t.siteName == "" {
		return t.title
	}

	parts := []string{t.title, t.siteName}
	if !t.first {
		parts[0], parts[1] = parts[1], parts[0]
	}

	sep := " "
	if t.separator != "" {
		sep = " " + t.separator + " "
	}
	return parts[0] + sep + parts[1]
}

// Render returns the <title> element, or "" when there is no text.
func (t *Title) Render() string {
	text := plain(t.Text())
	if text == "" {
		return ""
	}
	return "<title>" + meta.Escape(limit(text, t.max)) + "</title>"
}

// String implements fmt.Stringer.
func (t *Title) String() string { return t.Render() }
