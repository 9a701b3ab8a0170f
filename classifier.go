package sentsplit

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var (
	sentenceEnding = regexp.MustCompile(`^(?:\.+|…+\.*|[!?]+)$`)
	openingPunct   = regexp.MustCompile(`^(?:['"¿¡\p{Pi}\p{Ps}–—]|-{2,})$`)
	closingPunct   = regexp.MustCompile(`^(?:['"\p{Pf}\p{Pe}])$`)
)

// tokenShape holds the context-free facts about a token text.
type tokenShape struct {
	ending   bool // sentence-ending punctuation
	opening  bool // opening bracket, quote or dash
	closing  bool // closing bracket or quote
	terminal bool // uppercase initial or all digits
}

func computeShape(text string) tokenShape {
	return tokenShape{
		ending:   sentenceEnding.MatchString(text),
		opening:  openingPunct.MatchString(text),
		closing:  closingPunct.MatchString(text),
		terminal: startsUpper(text) || isNumeric(text),
	}
}

func startsUpper(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func isNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func (s *Splitter) shape(text string) tokenShape {
	if s.shapes == nil {
		return computeShape(text)
	}
	if sh, ok := s.shapes.Get(text); ok {
		return sh
	}
	sh := computeShape(text)
	s.shapes.Add(text, sh)
	return sh
}

// category is what a token following a boundary candidate says about it.
type category uint8

const (
	continuation category = iota // lowercase word or unresolved symbol: no boundary
	terminal                     // next sentence starts here
	opening                      // opening punctuation, keep looking
	closing                      // closing punctuation, belongs to the candidate's sentence
)

type quoteDirection uint8

const (
	quoteUnknown quoteDirection = iota
	quoteOpening
	quoteClosing
)

// quoteDirection resolves an ambiguous quote at j from its neighbours.
// j is always greater than zero when called from classify.
func (s *Splitter) quoteDirection(tokens []Token, j int) quoteDirection {
	if _, ok := s.quotes[tokens[j].Text]; !ok {
		return quoteUnknown
	}
	prev := tokens[j-1]
	if prev.SpaceAfter || s.shape(prev.Text).opening {
		return quoteOpening
	}
	if j == len(tokens)-1 || tokens[j].SpaceAfter || s.shape(tokens[j+1].Text).closing {
		return quoteClosing
	}
	return quoteUnknown
}

func (s *Splitter) categorize(tokens []Token, j int) category {
	sh := s.shape(tokens[j].Text)
	quote := s.quoteDirection(tokens, j)

	switch {
	case sh.terminal:
		return terminal
	case quote == quoteOpening || (sh.opening && quote != quoteClosing):
		return opening
	case quote == quoteClosing || sh.closing:
		return closing
	default:
		return continuation
	}
}

// isCandidate reports whether t might end a sentence.
func (s *Splitter) isCandidate(t Token, lower cases.Caser) bool {
	if t.Markup || t.LastInSentence {
		return false
	}
	return s.shape(t.Text).ending || s.abbrevs.Contains(lower.String(t.Text))
}

// classify looks past the candidate at i and flags a sentence boundary when
// the following tokens confirm one. Closing punctuation directly after the
// candidate is pulled into the ending sentence. A candidate that is never
// confirmed leaves all flags untouched.
func (s *Splitter) classify(tokens []Token, i int) {
	last, first := i, -1
	state := continuation

	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].Markup {
			continue
		}
		if first < 0 {
			first = j
		}

		switch cat := s.categorize(tokens, j); {
		case cat == terminal:
			tokens[last].LastInSentence = true
			tokens[first].FirstInSentence = true
			s.logger.Debug("sentence boundary", "after", tokens[last].Text, "index", last)
			return
		case cat == opening:
			state = opening
		case cat == closing && state != opening:
			last, first = j, -1
			state = closing
		default:
			return
		}
	}
}
