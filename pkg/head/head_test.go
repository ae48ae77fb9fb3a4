package head

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

func TestDescription(t *testing.T) {
	d := NewDescription(config.Default().Description)

	want := `<meta name="description" content="Default description">`
	if got := d.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	d.Set("  A page about <em>Go</em> & SEO  ")
	if d.Get() != "A page about <em>Go</em> & SEO" {
		t.Errorf("Get() = %q", d.Get())
	}
	want = `<meta name="description" content="A page about Go &amp; SEO">`
	if got := d.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if err := d.SetMax(10); err != nil {
		t.Fatal(err)
	}
	want = `<meta name="description" content="A page abo...">`
	if got := d.Render(); got != want {
		t.Errorf("Render() limited = %q, want %q", got, want)
	}

	d.Set("")
	if got := d.Render(); got != "" {
		t.Errorf("Render() empty = %q, want empty", got)
	}
	if _, ok := d.Tag(); ok {
		t.Error("Tag() ok = true for empty description")
	}

	if err := d.SetMax(0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("SetMax(0) error = %v, want INVALID_INPUT", err)
	}
}

func TestKeywords(t *testing.T) {
	k := NewKeywords(config.Keywords{})
	if got := k.Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}

	k.Set([]string{"seo", " helper ", "", "go"})
	if got, want := k.Get(), []string{"seo", "helper", "go"}; !slices.Equal(got, want) {
		t.Errorf("Get() = %v, want %v", got, want)
	}
	want := `<meta name="keywords" content="seo, helper, go">`
	if got := k.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	k.SetString("one,two , ,three").Add("four").Add("  ")
	if got, want := k.Get(), []string{"one", "two", "three", "four"}; !slices.Equal(got, want) {
		t.Errorf("Get() after SetString = %v, want %v", got, want)
	}

	got := k.Get()
	got[0] = "mutated"
	if k.Get()[0] != "one" {
		t.Error("Get() exposes internal slice")
	}
}

func TestMisc(t *testing.T) {
	t.Run("canonical and robots", func(t *testing.T) {
		m := NewMisc(config.Misc{
			Canonical: true,
			Robots:    true,
			Default:   map[string]string{"viewport": "width=device-width"},
		})
		if err := m.SetURL("https://example.com/page?a=1&b=2"); err != nil {
			t.Fatal(err)
		}

		want := strings.Join([]string{
			`<link rel="canonical" href="https://example.com/page?a=1&amp;b=2">`,
			`<meta name="robots" content="noindex, nofollow">`,
			`<meta name="viewport" content="width=device-width">`,
		}, "\n")
		if got := m.Render(); got != want {
			t.Errorf("Render() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("canonical disabled", func(t *testing.T) {
		m := NewMisc(config.Misc{Canonical: false})
		if err := m.SetURL("https://example.com"); err != nil {
			t.Fatal(err)
		}
		if got := m.Render(); got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
		m.EnableCanonical(true)
		if got := m.CanonicalLink(); got != `<link rel="canonical" href="https://example.com">` {
			t.Errorf("CanonicalLink() = %q", got)
		}
	})

	t.Run("no url", func(t *testing.T) {
		m := NewMisc(config.Misc{Canonical: true})
		if got := m.Render(); got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		m := NewMisc(config.Misc{Canonical: true})
		if err := m.SetURL("javascript:alert(1)"); !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("SetURL() error = %v, want INVALID_INPUT", err)
		}
		if m.URL() != "" {
			t.Errorf("URL() = %q after rejected SetURL", m.URL())
		}
	})

	t.Run("add and remove", func(t *testing.T) {
		m := NewMisc(config.Misc{}).
			Add("author", "me").
			AddMany(meta.Pair{Name: "generator", Content: "seohelper"}).
			Remove("author")
		want := `<meta name="generator" content="seohelper">`
		if got := m.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})
}

func TestWebmasters(t *testing.T) {
	w := NewWebmasters(map[string]string{
		"yandex":  "y-code",
		"google":  "g-code",
		"myspace": "ignored",
	})
	w.Add(" Bing ", "b-code")

	want := strings.Join([]string{
		`<meta name="google-site-verification" content="g-code">`,
		`<meta name="yandex-verification" content="y-code">`,
		`<meta name="msvalidate.01" content="b-code">`,
	}, "\n")
	if got := w.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}

	if got, want := WebmasterTools(), []string{"alexa", "bing", "google", "pinterest", "yandex"}; !slices.Equal(got, want) {
		t.Errorf("WebmasterTools() = %v, want %v", got, want)
	}
}

func TestMetaBlock(t *testing.T) {
	cfg := config.Default()
	cfg.Keywords.Default = []string{"seo"}
	cfg.Webmasters["google"] = "g-code"

	m := New(cfg)
	if err := m.SetTitle("Home", "Company", "|"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetURL("https://example.com/"); err != nil {
		t.Fatal(err)
	}
	m.SetDescription("Welcome home").
		AddKeyword("go").
		AddMeta("author", "me").
		AddMeta("description", "ignored").
		AddMetas(meta.Pair{Name: "generator", Content: "seohelper"}, meta.Pair{Name: "keywords", Content: "ignored"}).
		AddWebmaster("bing", "b-code")

	want := strings.Join([]string{
		`<title>Home | Company</title>`,
		`<meta name="description" content="Welcome home">`,
		`<meta name="keywords" content="seo, go">`,
		`<link rel="canonical" href="https://example.com/">`,
		`<meta name="google-site-verification" content="g-code">`,
		`<meta name="msvalidate.01" content="b-code">`,
		`<meta name="author" content="me">`,
		`<meta name="generator" content="seohelper">`,
	}, "\n")
	if got := m.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}

	m.RemoveMeta("author", "generator").SetKeywords(nil).SetDescription("")
	want = strings.Join([]string{
		`<title>Home | Company</title>`,
		`<link rel="canonical" href="https://example.com/">`,
		`<meta name="google-site-verification" content="g-code">`,
		`<meta name="msvalidate.01" content="b-code">`,
	}, "\n")
	if got := m.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestMetaBlockSetTitleKeepsSiteName(t *testing.T) {
	m := New(config.Default())
	if err := m.SetTitle("First", "Site", "/"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetTitle("Second", "", ""); err != nil {
		t.Fatal(err)
	}
	if got, want := m.Title().Render(), "<title>Second / Site</title>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if err := m.SetTitle("", "", ""); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("SetTitle(empty) error = %v, want INVALID_INPUT", err)
	}
}
