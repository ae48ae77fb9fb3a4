package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/observability"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the configuration format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported configuration file %q (must be .toml, .yaml or .yml)", path)
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	return LoadContext(context.Background(), path)
}

// LoadContext is Load with a context for the observability hooks.
func LoadContext(ctx context.Context, path string) (cfg *Config, err error) {
	var format Format
	start := time.Now()
	defer func() {
		observability.Config().OnConfigLoad(ctx, path, string(format), time.Since(start), err)
	}()

	if err := errs.ValidateConfigPath(path); err != nil {
		return nil, err
	}
	if format, err = FormatOf(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "configuration file %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a configuration in the given format from r, on top of
// Default().
func Decode(r io.Reader, format Format) (*Config, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown configuration format %q", format)
	}
}

func decodeTOML(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode TOML")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown configuration keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	// An empty document leaves the defaults untouched.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode YAML")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *Config, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown configuration format %q", format)
	}
}
