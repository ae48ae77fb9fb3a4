package meta

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is a name/content couple for AddMany.
type Pair struct {
	Name    string
	Content string
}

// Options configures a Collection.
type Options struct {
	Prefix    string    // prepended to every name before key derivation
	Attribute Attribute // attribute carrying the key, defaults to AttrName
	Ignored   []string  // names Add refuses, matched case-sensitively after trimming
}

// Collection is an ordered, keyed set of meta tags.
//
// Re-adding an existing key replaces its content but keeps its position.
type Collection struct {
	prefix  string
	attr    Attribute
	ignored map[string]struct{}
	entries *orderedmap.OrderedMap[string, *Meta]
}

// NewCollection creates an empty collection configured by opts.
func NewCollection(opts Options) *Collection {
	attr := opts.Attribute
	if attr == "" {
		attr = AttrName
	}
	ignored := make(map[string]struct{}, len(opts.Ignored))
	for _, name := range opts.Ignored {
		ignored[name] = struct{}{}
	}
	return &Collection{
		prefix:  opts.Prefix,
		attr:    attr,
		ignored: ignored,
		entries: orderedmap.New[string, *Meta](),
	}
}

// GenericIgnored lists the names the generic collection leaves to dedicated
// entities.
var GenericIgnored = []string{"description", "keywords"}

// NewGeneric creates the collection for plain <meta name="..."> tags.
// Description and keywords are ignored; they have their own entities.
func NewGeneric() *Collection {
	return NewCollection(Options{Attribute: AttrName, Ignored: GenericIgnored})
}

// NewSocial creates a prefixed collection for Open Graph or Twitter tags.
func NewSocial(prefix string, attr Attribute) *Collection {
	return NewCollection(Options{Prefix: prefix, Attribute: attr})
}

// Prefix returns the current key prefix.
func (c *Collection) Prefix() string { return c.prefix }

// Attribute returns the attribute used for new entries.
func (c *Collection) Attribute() Attribute { return c.attr }

// SetPrefix changes the prefix and re-derives the key of every entry.
// Relative order is preserved. If two entries collapse onto the same key,
// the later one wins at the earlier position.
func (c *Collection) SetPrefix(prefix string) *Collection {
	c.prefix = prefix

	rekeyed := orderedmap.New[string, *Meta]()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		m := pair.Value.SetPrefix(prefix)
		rekeyed.Set(m.Key(), m)
	}
	c.entries = rekeyed
	return c
}

// Add inserts a tag, or replaces the content of an existing key.
// It is a no-op when the trimmed name is empty, the content is empty, or the
// name is ignored by this collection.
func (c *Collection) Add(name, content string) *Collection {
	if strings.TrimSpace(name) == "" || content == "" || c.IsIgnored(name) {
		return c
	}

	m, err := New(name, content, c.attr, c.prefix)
	if err != nil {
		// whitespace-only content
		return c
	}
	c.entries.Set(m.Key(), m)
	return c
}

// AddMany adds every pair in argument order.
func (c *Collection) AddMany(pairs ...Pair) *Collection {
	for _, p := range pairs {
		c.Add(p.Name, p.Content)
	}
	return c
}

// AddMap adds every entry of metas in sorted name order.
func (c *Collection) AddMap(metas map[string]string) *Collection {
	names := make([]string, 0, len(metas))
	for name := range metas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.Add(name, metas[name])
	}
	return c
}

// Remove deletes the given keys. Names are lowercased and trimmed but not
// prefixed, so prefixed collections expect the full key ("og:title").
// Missing keys are ignored.
func (c *Collection) Remove(names ...string) *Collection {
	for _, name := range names {
		c.entries.Delete(normalize(name))
	}
	return c
}

// Has reports whether key is present.
func (c *Collection) Has(key string) bool {
	_, ok := c.entries.Get(normalize(key))
	return ok
}

// Get returns the tag stored under key.
func (c *Collection) Get(key string) (*Meta, bool) {
	return c.entries.Get(normalize(key))
}

// Len returns the number of tags.
func (c *Collection) Len() int { return c.entries.Len() }

// Entries returns the tags in render order.
func (c *Collection) Entries() []*Meta {
	out := make([]*Meta, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Reset drops every tag and keeps the configuration.
func (c *Collection) Reset() *Collection {
	c.entries = orderedmap.New[string, *Meta]()
	return c
}

// IsIgnored reports whether name is reserved for a dedicated entity.
func (c *Collection) IsIgnored(name string) bool {
	_, ok := c.ignored[strings.TrimSpace(name)]
	return ok
}

// Render renders every tag in insertion order, one per line.
func (c *Collection) Render() string {
	lines := make([]string, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if out := pair.Value.Render(); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (c *Collection) String() string { return c.Render() }

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var (
	_ Renderable = (*Meta)(nil)
	_ Renderable = (*Collection)(nil)
)
