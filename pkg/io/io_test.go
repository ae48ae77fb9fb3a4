package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

func sampleSnapshot() *Snapshot {
	generic := meta.NewGeneric().
		Add("robots", "noindex").
		Add("author", `"Q" & A`)
	og := meta.NewSocial("og:", meta.AttrProperty).Add("title", "Home")

	s := &Snapshot{}
	s.Add(NewGroup(GroupMeta).
		AddHTML("<title>Home</title>").
		AddCollection(generic).
		AddHTML(`<link rel="canonical" href="https://example.com/">`))
	s.Add(NewGroup(GroupOpenGraph).AddCollection(og))
	s.Add(NewGroup(GroupTwitter))
	return s
}

func TestSnapshotRender(t *testing.T) {
	s := sampleSnapshot()

	want := strings.Join([]string{
		`<title>Home</title>`,
		`<meta name="robots" content="noindex">`,
		`<meta name="author" content="&quot;Q&quot; &amp; A">`,
		`<link rel="canonical" href="https://example.com/">`,
		`<meta property="og:title" content="Home">`,
	}, "\n")
	if got := s.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if len(s.Groups) != 2 {
		t.Errorf("empty group was kept: %d groups", len(s.Groups))
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	src := sampleSnapshot()

	var buf bytes.Buffer
	if err := WriteJSON(src, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"html": "<title>Home</title>"`) {
		t.Errorf("WriteJSON escaped HTML:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Render() != src.Render() {
		t.Errorf("round trip render =\n%s\nwant\n%s", got.Render(), src.Render())
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.json")
	src := sampleSnapshot()

	if err := ExportJSON(src, path); err != nil {
		t.Fatal(err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Render() != src.Render() {
		t.Errorf("ImportJSON() render =\n%s\nwant\n%s", got.Render(), src.Render())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&Snapshot{}, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "{\n  \"groups\": []\n}" {
		t.Errorf("WriteJSON(empty) = %q", got)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"groups": [`},
		{"unknown field", `{"groups": [], "extra": 1}`},
		{"missing group name", `{"groups": [{"tags": []}]}`},
		{"bad attribute", `{"groups": [{"name": "meta", "tags": [{"attribute": "http-equiv", "key": "refresh", "content": "5"}]}]}`},
		{"missing content", `{"groups": [{"name": "meta", "tags": [{"attribute": "name", "key": "robots"}]}]}`},
		{"mixed tag", `{"groups": [{"name": "meta", "tags": [{"html": "<title>x</title>", "key": "robots"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
