// Package config loads splitter settings for the command line tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/abbrev"
)

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("config: invalid setting")

// Output formats.
const (
	FormatVertical = "vertical"
	FormatText     = "text"
	FormatBinary   = "binary"
)

// Config mirrors the YAML file.
type Config struct {
	Language      string   `yaml:"language"`
	Abbreviations string   `yaml:"abbreviations,omitempty"` // path to a word list
	EOSTags       []string `yaml:"eos_tags,omitempty"`
	SentenceTag   string   `yaml:"sentence_tag,omitempty"`
	Format        string   `yaml:"format,omitempty"`
	XML           bool     `yaml:"xml,omitempty"`
	CacheSize     *int     `yaml:"cache_size,omitempty"`

	// dir is the directory of the loaded file; relative paths resolve
	// against it.
	dir string
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Language:    "de_CMC",
		SentenceTag: "sentence",
		Format:      FormatVertical,
	}
}

// Load reads a YAML file on top of Default. The result is not validated;
// callers apply their overrides first and then call Validate.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Validate checks the values that can be checked without building a splitter.
func (c Config) Validate() error {
	switch c.Format {
	case FormatVertical, FormatText, FormatBinary:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if !sentsplit.ValidTagName(c.SentenceTag) {
		return fmt.Errorf("%w: sentence_tag %q", ErrInvalid, c.SentenceTag)
	}
	if c.CacheSize != nil && *c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size %d", ErrInvalid, *c.CacheSize)
	}
	if len(c.EOSTags) > 0 && !c.XML {
		return fmt.Errorf("%w: eos_tags require xml", ErrInvalid)
	}
	return nil
}

// AbbreviationsPath returns the word list path resolved against the
// config file's directory.
func (c Config) AbbreviationsPath() string {
	if c.Abbreviations == "" || filepath.IsAbs(c.Abbreviations) || c.dir == "" {
		return c.Abbreviations
	}
	return filepath.Join(c.dir, c.Abbreviations)
}

// Options converts the settings into splitter options. The abbreviation
// list is loaded here so a missing file is reported before any input is
// read.
func (c Config) Options() ([]sentsplit.Option, error) {
	opts := []sentsplit.Option{sentsplit.WithLanguage(c.Language)}

	if path := c.AbbreviationsPath(); path != "" {
		set, err := abbrev.LoadFile(path, c.Language)
		if err != nil {
			return nil, fmt.Errorf("abbreviations: %w", err)
		}
		opts = append(opts, sentsplit.WithAbbreviations(set))
	}
	opts = append(opts, sentsplit.WithSentenceTag(c.SentenceTag))
	if c.CacheSize != nil {
		opts = append(opts, sentsplit.WithShapeCacheSize(*c.CacheSize))
	}
	return opts, nil
}
