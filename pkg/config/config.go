// Package config defines seohelper's configuration and its file loaders.
//
// A Config is plain data: every block of output (title, description,
// keywords, misc tags, webmasters, Open Graph, Twitter) has a section with
// the defaults returned by [Default]. Files are decoded on top of those
// defaults, so a file only needs the keys it changes:
//
//	[title]
//	default   = "Home"
//	site_name = "Company"
//	separator = "|"
//
//	[twitter]
//	site = "company"
//
// TOML (.toml) and YAML (.yaml, .yml) files are supported; unknown keys are
// rejected so typos surface as INVALID_CONFIG errors instead of silently
// falling back to defaults.
package config

import (
	"strings"

	errs "github.com/matzehuels/seohelper/pkg/errors"
)

// Default values, matching the behavior of the original seo-helper package.
const (
	DefaultTitle            = "Default Title"
	DefaultSeparator        = "-"
	DefaultTitleMax         = 55
	DefaultDescription      = "Default description"
	DefaultDescriptionMax   = 155
	DefaultOpenGraphPrefix  = "og:"
	DefaultOpenGraphType    = "website"
	DefaultOpenGraphTitle   = "Default Open Graph title"
	DefaultOpenGraphDesc    = "Default Open Graph description"
	DefaultTwitterPrefix    = "twitter:"
	DefaultTwitterCard      = "summary"
	DefaultTwitterSite      = "Username"
	DefaultTwitterTitle     = "Default Twitter Title"
	DefaultConfigFilename   = "seohelper.toml"
	DefaultRobotsDirectives = "noindex, nofollow"
)

// Config is the complete seohelper configuration.
type Config struct {
	Title       Title             `toml:"title" yaml:"title"`
	Description Description       `toml:"description" yaml:"description"`
	Keywords    Keywords          `toml:"keywords" yaml:"keywords"`
	Misc        Misc              `toml:"misc" yaml:"misc"`
	Webmasters  map[string]string `toml:"webmasters" yaml:"webmasters"`
	OpenGraph   OpenGraph         `toml:"open_graph" yaml:"open_graph"`
	Twitter     Twitter           `toml:"twitter" yaml:"twitter"`
}

// Title configures the <title> element.
type Title struct {
	Default   string `toml:"default" yaml:"default"`
	SiteName  string `toml:"site_name" yaml:"site_name"`
	Separator string `toml:"separator" yaml:"separator"`
	First     bool   `toml:"first" yaml:"first"`
	Max       int    `toml:"max" yaml:"max"`
}

// Description configures the description meta tag.
type Description struct {
	Default string `toml:"default" yaml:"default"`
	Max     int    `toml:"max" yaml:"max"`
}

// Keywords configures the keywords meta tag.
type Keywords struct {
	Default []string `toml:"default" yaml:"default"`
}

// Misc configures the canonical link, robots tag and extra metas.
type Misc struct {
	Canonical bool              `toml:"canonical" yaml:"canonical"`
	Robots    bool              `toml:"robots" yaml:"robots"`
	Default   map[string]string `toml:"default" yaml:"default"`
}

// OpenGraph configures the Open Graph block.
type OpenGraph struct {
	Enabled     bool              `toml:"enabled" yaml:"enabled"`
	Prefix      string            `toml:"prefix" yaml:"prefix"`
	Type        string            `toml:"type" yaml:"type"`
	Title       string            `toml:"title" yaml:"title"`
	Description string            `toml:"description" yaml:"description"`
	SiteName    string            `toml:"site_name" yaml:"site_name"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
}

// Twitter configures the Twitter Card block.
type Twitter struct {
	Enabled bool              `toml:"enabled" yaml:"enabled"`
	Prefix  string            `toml:"prefix" yaml:"prefix"`
	Card    string            `toml:"card" yaml:"card"`
	Site    string            `toml:"site" yaml:"site"`
	Title   string            `toml:"title" yaml:"title"`
	Metas   map[string]string `toml:"metas" yaml:"metas"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title: Title{
			Default:   DefaultTitle,
			Separator: DefaultSeparator,
			First:     true,
			Max:       DefaultTitleMax,
		},
		Description: Description{
			Default: DefaultDescription,
			Max:     DefaultDescriptionMax,
		},
		Keywords: Keywords{Default: []string{}},
		Misc: Misc{
			Canonical: true,
			Default:   map[string]string{},
		},
		Webmasters: map[string]string{},
		OpenGraph: OpenGraph{
			Enabled:     true,
			Prefix:      DefaultOpenGraphPrefix,
			Type:        DefaultOpenGraphType,
			Title:       DefaultOpenGraphTitle,
			Description: DefaultOpenGraphDesc,
			Properties:  map[string]string{},
		},
		Twitter: Twitter{
			Enabled: true,
			Prefix:  DefaultTwitterPrefix,
			Card:    DefaultTwitterCard,
			Site:    DefaultTwitterSite,
			Title:   DefaultTwitterTitle,
			Metas:   map[string]string{},
		},
	}
}

// Validate checks the values the entities would otherwise reject at render
// setup time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title.Default) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "title.default is required and must not be empty")
	}
	if c.Title.Max <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "title.max must be greater than 0, got %d", c.Title.Max)
	}
	if c.Description.Max <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "description.max must be greater than 0, got %d", c.Description.Max)
	}
	return nil
}
