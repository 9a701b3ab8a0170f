// Package abbrev loads abbreviation lists used as sentence boundary candidates.
package abbrev

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotFound indicates the abbreviation file does not exist.
var ErrNotFound = errors.New("abbrev: file not found")

//go:embed data/*.txt
var data embed.FS

// Set is an immutable set of lowercase abbreviations.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from words, lowercasing each entry.
func NewSet(words ...string) Set {
	lower := lowerer("")
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[lower.String(w)] = struct{}{}
	}
	return s
}

// Contains reports whether the lowercase word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.words)
}

// Load reads one abbreviation per line. Blank lines and lines starting with
// '#' are skipped. Entries are lowercased using the rules of lang.
func Load(r io.Reader, lang string) (Set, error) {
	lower := lowerer(lang)
	s := Set{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.words[lower.String(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return Set{}, fmt.Errorf("scan abbreviations: %w", err)
	}

	return s, nil
}

// LoadFile reads an abbreviation file from disk.
func LoadFile(path, lang string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Set{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Set{}, fmt.Errorf("open abbreviations: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, lang)
}

// ForLanguage returns the built-in list for lang. German variants ("de",
// "de_CMC") share one list; every other language gets the English list.
func ForLanguage(lang string) (Set, error) {
	name := "data/en.txt"
	if isGerman(lang) {
		name = "data/de.txt"
	}

	f, err := data.Open(name)
	if err != nil {
		return Set{}, fmt.Errorf("open embedded %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, lang)
}

func isGerman(lang string) bool {
	return lang == "de" || strings.HasPrefix(lang, "de_") || strings.HasPrefix(lang, "de-")
}

// Lowerer returns the lowercasing used for lang, so callers match tokens
// exactly the way entries were stored.
func Lowerer(lang string) cases.Caser {
	return lowerer(lang)
}

func lowerer(lang string) cases.Caser {
	tag := language.Und
	if isGerman(lang) {
		tag = language.German
	} else if lang != "" {
		if t, err := language.Parse(strings.ReplaceAll(lang, "_", "-")); err == nil {
			tag = t
		}
	}
	return cases.Lower(tag)
}
