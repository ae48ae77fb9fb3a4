package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/seo"
)

func TestRenderDefaults(t *testing.T) {
	out, err := execute(t, "render")
	if err != nil {
		t.Fatal(err)
	}
	if want := seo.Default().Render() + "\n"; out != want {
		t.Errorf("render output =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderPageFlags(t *testing.T) {
	out, err := execute(t, "render",
		"--title", "Home", "--site-name", "Company", "--separator", "|",
		"-d", "Welcome", "-k", "seo, go", "--url", "https://example.com/",
		"--no-twitter")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`<title>Home | Company</title>`,
		`<meta name="description" content="Welcome">`,
		`<meta name="keywords" content="seo, go">`,
		`<link rel="canonical" href="https://example.com/">`,
		`<meta property="og:site_name" content="Company">`,
		`<meta property="og:url" content="https://example.com/">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %s", want)
		}
	}
	if strings.Contains(out, "twitter:") {
		t.Error("--no-twitter output contains twitter tags")
	}
}

func TestRenderConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.yaml")
	yaml := "title:\n  default: From YAML\nopen_graph:\n  enabled: false\ntwitter:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "<title>From YAML</title>\n<meta name=\"description\" content=\"Default description\">\n"
	if out != want {
		t.Errorf("render output = %q, want %q", out, want)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "tags.json")

	if _, err := execute(t, "render", "-f", "json", "-o", snapshot, "--title", "Home"); err != nil {
		t.Fatal(err)
	}
	html, err := execute(t, "render", "--title", "Home")
	if err != nil {
		t.Fatal(err)
	}
	fromSnapshot, err := execute(t, "render", snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if fromSnapshot != html {
		t.Errorf("snapshot render =\n%s\nwant\n%s", fromSnapshot, html)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want errs.Code
	}{
		{"bad format", []string{"render", "-f", "xml"}, errs.ErrCodeInvalidFormat},
		{"bad url", []string{"render", "--url", "example.com"}, errs.ErrCodeInvalidInput},
		{"missing config", []string{"render", "missing.toml"}, errs.ErrCodeFileNotFound},
		{"missing snapshot", []string{"render", "missing.json"}, errs.ErrCodeFileNotFound},
		{"unknown extension", []string{"render", "seo.ini"}, errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if got := errs.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err = %v)", got, tt.want, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b,,c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPageOptsSiteNameOnly(t *testing.T) {
	h := seo.Default()
	if err := (pageOpts{siteName: "Company"}).apply(h); err != nil {
		t.Fatal(err)
	}
	if got, want := h.Meta().Title().Render(), "<title>Default Title - Company</title>"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}
