package sentsplit

import (
	"fmt"
	"log/slog"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jamesainslie/go-sentsplit/abbrev"
)

// Splitter partitions token streams into sentences.
// It is safe for concurrent use.
type Splitter struct {
	language    string
	abbrevs     abbrev.Set
	quotes      map[string]struct{}
	sentenceTag string
	shapes      *lru.Cache[string, tokenShape]
	logger      *slog.Logger
}

// ncName matches an XML name without a namespace prefix.
var ncName = regexp.MustCompile(`^[\p{L}_][\p{L}\p{M}\p{N}_.\-]*$`)

// ValidTagName reports whether name can be used as a sentence element name.
func ValidTagName(name string) bool {
	return ncName.MatchString(name)
}

// New creates a Splitter.
func New(opts ...Option) (*Splitter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !ValidTagName(cfg.sentenceTag) {
		return nil, fmt.Errorf("%w: sentence tag %q", ErrInvalidOption, cfg.sentenceTag)
	}

	var abbrevs abbrev.Set
	if cfg.abbreviations != nil {
		abbrevs = *cfg.abbreviations
	} else {
		set, err := abbrev.ForLanguage(cfg.language)
		if err != nil {
			return nil, fmt.Errorf("loading abbreviations: %w", err)
		}
		abbrevs = set
	}

	s := &Splitter{
		language:    cfg.language,
		abbrevs:     abbrevs,
		quotes:      problematicQuotes(cfg.language),
		sentenceTag: cfg.sentenceTag,
		logger:      cfg.logger,
	}

	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, tokenShape](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating shape cache: %w", err)
		}
		s.shapes = cache
	}

	return s, nil
}

// problematicQuotes returns the quote characters whose direction has to be
// guessed from the surrounding whitespace.
func problematicQuotes(lang string) map[string]struct{} {
	quotes := map[string]struct{}{`"`: {}}
	if lang == "de" || lang == "de_CMC" {
		for _, q := range []string{"“", "”", "‘", "’"} {
			quotes[q] = struct{}{}
		}
	}
	return quotes
}

// Split partitions tokens into sentences. Markup tokens are kept in place;
// no sentence tags are inserted. Empty input yields one empty sentence.
func (s *Splitter) Split(tokens []Token) ([][]Token, error) {
	work := append([]Token(nil), tokens...)
	s.markBoundaries(work, abbrev.Lowerer(s.language))

	return mergeEmpty(slice(work, boundaries(work))), nil
}

// SplitXML partitions a stream containing inline markup and wraps every
// sentence in a sentence element. Any element named in eosTags forces a
// sentence boundary. Elements crossing a sentence boundary are closed
// before it and reopened after it, so the output nests correctly whenever
// the input does.
func (s *Splitter) SplitXML(tokens []Token, eosTags []string) ([][]Token, error) {
	work := append([]Token(nil), tokens...)

	if len(eosTags) > 0 {
		eos := make(map[string]struct{}, len(eosTags))
		for _, tag := range eosTags {
			eos[tag] = struct{}{}
		}
		markEOSTags(work, eos)
	}
	s.markBoundaries(work, abbrev.Lowerer(s.language))

	sentences := mergeEmpty(slice(work, boundaries(work)))

	r := newReflower(s.sentenceTag, s.logger)
	for i, sent := range sentences {
		tagged, err := r.sentence(sent)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}
		sentences[i] = tagged
	}
	if err := r.finish(); err != nil {
		return nil, err
	}

	return sentences, nil
}

// SplitFunc splits items of any type, using token to read the text and
// spacing of each item. Sentences are returned as sub-slices of items.
func SplitFunc[T any](s *Splitter, items []T, token func(T) Token) ([][]T, error) {
	tokens := make([]Token, len(items))
	for i, item := range items {
		tokens[i] = token(item)
	}

	sentences, err := s.Split(tokens)
	if err != nil {
		return nil, err
	}

	out := make([][]T, 0, len(sentences))
	start := 0
	for _, sent := range sentences {
		end := start + len(sent)
		out = append(out, items[start:end:end])
		start = end
	}
	return out, nil
}
