package head

import (
	"sort"
	"strings"

	"github.com/matzehuels/seohelper/pkg/meta"
)

// webmasterNames maps webmaster tools to their verification meta name.
var webmasterNames = map[string]string{
	"google":    "google-site-verification",
	"bing":      "msvalidate.01",
	"alexa":     "alexaVerifyID",
	"pinterest": "p:domain_verify",
	"yandex":    "yandex-verification",
}

// WebmasterTools returns the supported webmaster tool names, sorted.
func WebmasterTools() []string {
	names := make([]string, 0, len(webmasterNames))
	for name := range webmasterNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Webmasters renders site verification tags.
type Webmasters struct {
	metas *meta.Collection
}

// NewWebmasters creates verification tags from a tool → code map.
// Unknown tools are ignored.
func NewWebmasters(codes map[string]string) *Webmasters {
	w := &Webmasters{metas: meta.NewCollection(meta.Options{Attribute: meta.AttrName})}

	tools := make([]string, 0, len(codes))
	for tool := range codes {
		tools = append(tools, tool)
	}
	sort.Strings(tools)
	for _, tool := range tools {
		w.Add(tool, codes[tool])
	}
	return w
}

// Add adds the verification code for a webmaster tool. Unknown tools are
// ignored.
func (w *Webmasters) Add(tool, code string) *Webmasters {
	if name, ok := webmasterNames[strings.ToLower(strings.TrimSpace(tool))]; ok {
		w.metas.Add(name, code)
	}
	return w
}

// Metas returns the underlying collection.
func (w *Webmasters) Metas() *meta.Collection { return w.metas }

// Render returns the verification tags.
func (w *Webmasters) Render() string { return w.metas.Render() }

// String implements fmt.Stringer.
func (w *Webmasters) String() string { return w.Render() }
