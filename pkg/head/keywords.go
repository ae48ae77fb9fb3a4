package head

import (
	"strings"

	"github.com/matzehuels/seohelper/pkg/config"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Keywords renders the keywords meta tag.
type Keywords struct {
	keywords []string
}

// NewKeywords creates keywords from configuration.
func NewKeywords(cfg config.Keywords) *Keywords {
	return (&Keywords{}).Set(cfg.Default)
}

// Set replaces the keywords. Entries are trimmed and blanks dropped.
func (k *Keywords) Set(keywords []string) *Keywords {
	k.keywords = nil
	for _, kw := range keywords {
		k.Add(kw)
	}
	return k
}

// SetString replaces the keywords with a comma-separated list.
func (k *Keywords) SetString(keywords string) *Keywords {
	return k.Set(strings.Split(keywords, ","))
}

// Add appends a keyword unless it is blank.
func (k *Keywords) Add(keyword string) *Keywords {
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		k.keywords = append(k.keywords, keyword)
	}
	return k
}

// Get returns a copy of the keywords.
func (k *Keywords) Get() []string {
	return append([]string(nil), k.keywords...)
}

// Tag returns the tag that Render emits, if any.
func (k *Keywords) Tag() (*meta.Meta, bool) {
	m, err := meta.New("keywords", strings.Join(k.keywords, ", "), meta.AttrName, "")
	if err != nil {
		return nil, false
	}
	return m, true
}

// Render returns the keywords <meta> element, or "" when there are none.
func (k *Keywords) Render() string {
	if m, ok := k.Tag(); ok {
		return m.Render()
	}
	return ""
}

// String implements fmt.Stringer.
func (k *Keywords) String() string { return k.Render() }
