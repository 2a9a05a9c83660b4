// Package config loads the graphtool CLI configuration from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/strtable"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the CLI settings. Zero fields fall back to Default.
type Config struct {
	// Buckets is the string-table bucket count used for loaded graphs.
	Buckets uint32 `yaml:"buckets" toml:"buckets" validate:"min=1,max=65536"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level" validate:"loglevel"`
	// DefaultEdges is the traversal filter used when a command gets no
	// --edge flag, as "name" or "name:direction". Empty means every edge
	// type of the loaded graph.
	DefaultEdges []string `yaml:"default_edges,omitempty" toml:"default_edges,omitempty" validate:"dive,edgetype"`
	// Zipped selects the deflate-compressed file layout.
	Zipped bool `yaml:"zipped" toml:"zipped"`
	// CatalogDir is the snapshot catalog directory. Empty means
	// $HOME/.graphtool/catalog.
	CatalogDir string `yaml:"catalog_dir,omitempty" toml:"catalog_dir,omitempty"`
}

// validate is shared by every Config.Validate call.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		var lvl slog.Level
		return lvl.UnmarshalText([]byte(fl.Field().String())) == nil
	})
	_ = v.RegisterValidation("edgetype", func(fl validator.FieldLevel) bool {
		_, err := ParseEdgeType(fl.Field().String())
		return err == nil
	})

	return v
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Buckets:  strtable.DefaultBuckets,
		LogLevel: "info",
	}
}

// Load reads the file at path over the defaults and validates the result.
// Files ending in .toml are decoded as TOML, anything else as YAML. An empty
// path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if isTOML(path) {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if cfg.Buckets == 0 {
		cfg.Buckets = strtable.DefaultBuckets
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes cfg to path in the format its extension selects, creating
// parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		err = toml.NewEncoder(f).Encode(cfg)
	} else {
		enc := yaml.NewEncoder(f)
		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// EdgeTypes parses DefaultEdges; nil when the list is empty.
func (c Config) EdgeTypes() ([]core.EdgeType, error) {
	if len(c.DefaultEdges) == 0 {
		return nil, nil
	}
	out := make([]core.EdgeType, 0, len(c.DefaultEdges))
	for _, s := range c.DefaultEdges {
		t, err := ParseEdgeType(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// CatalogPath resolves CatalogDir.
func (c Config) CatalogPath() (string, error) {
	if c.CatalogDir != "" {
		return c.CatalogDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}

	return filepath.Join(home, ".graphtool", "catalog"), nil
}

// ParseEdgeType parses "name" or "name:direction". A missing direction means
// directional.
func ParseEdgeType(s string) (core.EdgeType, error) {
	name, dir, _ := strings.Cut(s, ":")
	if name == "" {
		return core.EdgeType{}, fmt.Errorf("%w: empty edge type in %q", ErrInvalid, s)
	}
	d, err := core.ParseDirection(dir)
	if err != nil {
		return core.EdgeType{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return core.EdgeType{Name: name, Dir: d}, nil
}
