package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	seoio "github.com/matzehuels/seohelper/pkg/io"
	"github.com/matzehuels/seohelper/pkg/seo"
)

func sampleRows(t *testing.T) []tagRow {
	t.Helper()
	h := seo.Default()
	if err := h.SetURL("https://example.com/"); err != nil {
		t.Fatal(err)
	}
	return tagRows(h.Snapshot())
}

func TestTagRows(t *testing.T) {
	rows := sampleRows(t)

	first := rows[0]
	if first.group != seoio.GroupMeta || first.attribute != "html" || first.content != "<title>Default Title</title>" {
		t.Errorf("rows[0] = %+v", first)
	}

	var og *tagRow
	for i := range rows {
		if rows[i].key == "og:type" {
			og = &rows[i]
		}
	}
	if og == nil {
		t.Fatal("og:type row missing")
	}
	if og.attribute != "property" || og.rendered != `<meta property="og:type" content="website">` {
		t.Errorf("og:type row = %+v", *og)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		row  tagRow
		want string
	}{
		{tagRow{attribute: "name", key: "robots"}, "robots"},
		{tagRow{attribute: "html", content: "<title>Home</title>"}, "<title>"},
		{tagRow{attribute: "html", content: `<link rel="canonical" href="/">`}, "<link>"},
	}
	for _, tt := range tests {
		if got := label(tt.row); got != tt.want {
			t.Errorf("label(%+v) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdef", 0); got != "abcdef" {
		t.Errorf("truncate without limit = %q", got)
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--title", "Home")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Group", "og:title", "twitter:card", "<title>"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestTagListModelNavigation(t *testing.T) {
	rows := sampleRows(t)
	var m tea.Model = NewTagListModel(rows)

	key := func(s string) tea.KeyMsg {
		switch s {
		case "down":
			return tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			return tea.KeyMsg{Type: tea.KeyUp}
		default:
			return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
	}

	m, _ = m.Update(key("up"))
	if got := m.(TagListModel).Cursor; got != 0 {
		t.Errorf("cursor after up at top = %d, want 0", got)
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("j"))
	if got := m.(TagListModel).Cursor; got != 2 {
		t.Errorf("cursor = %d, want 2", got)
	}

	m, _ = m.Update(key("G"))
	if got := m.(TagListModel).Cursor; got != len(rows)-1 {
		t.Errorf("cursor after G = %d, want %d", got, len(rows)-1)
	}
	if !strings.Contains(m.View(), rows[len(rows)-1].rendered) {
		t.Error("View() does not show the selected tag")
	}

	m, _ = m.Update(key("g"))
	if got := m.(TagListModel).Cursor; got != 0 {
		t.Errorf("cursor after g = %d, want 0", got)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestTagListModelScrolls(t *testing.T) {
	m := NewTagListModel(sampleRows(t))
	m.Height = 2

	var model tea.Model = m
	for i := 0; i < 3; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	got := model.(TagListModel)
	if got.Cursor != 3 || got.Offset != 2 {
		t.Errorf("cursor/offset = %d/%d, want 3/2", got.Cursor, got.Offset)
	}
}

func TestTagListModelEmpty(t *testing.T) {
	if !strings.Contains(NewTagListModel(nil).View(), "no tags") {
		t.Error("empty View() should say no tags")
	}
}
