package sentsplit

import (
	"log/slog"

	"github.com/jamesainslie/go-sentsplit/abbrev"
)

// Option configures a Splitter.
type Option func(*config)

type config struct {
	language      string
	abbreviations *abbrev.Set
	sentenceTag   string
	cacheSize     int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		language:    "de_CMC",
		sentenceTag: "sentence",
		cacheSize:   4096,
		logger:      slog.Default(),
	}
}

// WithLanguage selects the quote handling and built-in abbreviation list
// (default: "de_CMC"). "de" and "de_CMC" treat typographic quotes as
// ambiguous; every other value only treats '"' as ambiguous.
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = lang
	}
}

// WithAbbreviations replaces the built-in abbreviation list for the language.
func WithAbbreviations(s abbrev.Set) Option {
	return func(c *config) {
		c.abbreviations = &s
	}
}

// WithSentenceTag sets the element name of inserted sentence tags (default: "sentence").
func WithSentenceTag(name string) Option {
	return func(c *config) {
		c.sentenceTag = name
	}
}

// WithShapeCacheSize sets how many token classifications are memoized
// (default: 4096). Zero disables the cache.
func WithShapeCacheSize(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
