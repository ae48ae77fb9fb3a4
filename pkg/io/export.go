package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/seohelper/pkg/meta"
)

// Group names used by seo.Helper snapshots.
const (
	GroupMeta      = "meta"
	GroupOpenGraph = "opengraph"
	GroupTwitter   = "twitter"
)

// Snapshot is the serializable form of a rendered head.
type Snapshot struct {
	Groups []Group `json:"groups"`
}

// Group is one rendered block, e.g. the generic metas or Open Graph.
type Group struct {
	Name string `json:"name"`
	Tags []Tag  `json:"tags"`
}

// Tag is either a <meta> element (Attribute, Key, Content) or a verbatim
// HTML fragment such as <title> or the canonical <link>.
type Tag struct {
	Attribute string `json:"attribute,omitempty"`
	Key       string `json:"key,omitempty"`
	Content   string `json:"content,omitempty"`
	HTML      string `json:"html,omitempty"`
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name, Tags: []Tag{}}
}

// AddHTML appends a verbatim fragment. Empty fragments are skipped.
func (g *Group) AddHTML(fragment string) *Group {
	if fragment != "" {
		g.Tags = append(g.Tags, Tag{HTML: fragment})
	}
	return g
}

// AddMeta appends a meta tag. Nil tags are skipped.
func (g *Group) AddMeta(m *meta.Meta) *Group {
	if m != nil {
		g.Tags = append(g.Tags, Tag{
			Attribute: string(m.Attribute()),
			Key:       m.Key(),
			Content:   m.Content(),
		})
	}
	return g
}

// AddCollection appends every tag of c in render order.
func (g *Group) AddCollection(c *meta.Collection) *Group {
	for _, m := range c.Entries() {
		g.AddMeta(m)
	}
	return g
}

// Add appends g to the snapshot unless it holds no tags.
func (s *Snapshot) Add(g *Group) *Snapshot {
	if g != nil && len(g.Tags) > 0 {
		s.Groups = append(s.Groups, *g)
	}
	return s
}

// Len returns the number of tags across all groups.
func (s *Snapshot) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Tags)
	}
	return n
}

// Render renders the snapshot exactly as the head it was taken from.
func (s *Snapshot) Render() string {
	fragments := make([]string, 0, s.Len())
	for _, g := range s.Groups {
		for _, t := range g.Tags {
			fragments = append(fragments, t.Render())
		}
	}
	return meta.Join(fragments...)
}

// String implements fmt.Stringer.
func (s *Snapshot) String() string { return s.Render() }

// Render renders a single tag. Invalid meta tags render as "".
func (t Tag) Render() string {
	if t.HTML != "" {
		return t.HTML
	}
	m, err := meta.New(t.Key, t.Content, meta.Attribute(t.Attribute), "")
	if err != nil {
		return ""
	}
	return m.Render()
}

// WriteJSON encodes a snapshot as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(s *Snapshot, w io.Writer) error {
	out := *s
	if out.Groups == nil {
		out.Groups = []Group{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s *Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

var _ meta.Renderable = (*Snapshot)(nil)
