package sentsplit

import "strings"

// MarkupClass tells whether a markup token opens or closes an element.
type MarkupClass uint8

const (
	// None is used for words, punctuation and markup that neither opens nor
	// closes an element (comments, self-closing tags).
	None MarkupClass = iota
	Start
	End
)

func (c MarkupClass) String() string {
	switch c {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "none"
	}
}

// Token is one unit of an already tokenized stream.
//
// FirstInSentence and LastInSentence are decisions made by the splitter.
// Locked marks tokens the splitter synthesized while inserting sentence
// tags; they do not exist in the input.
type Token struct {
	Text            string
	Markup          bool
	Class           MarkupClass
	SpaceAfter      bool
	FirstInSentence bool
	LastInSentence  bool
	Locked          bool
}

// Word returns a non-markup token followed by whitespace.
func Word(text string) Token {
	return Token{Text: text, SpaceAfter: true}
}

// WordNoSpace returns a non-markup token directly followed by the next token.
func WordNoSpace(text string) Token {
	return Token{Text: text}
}

// StartTag returns a markup token opening an element, e.g. `<b>`.
func StartTag(text string) Token {
	return Token{Text: text, Markup: true, Class: Start}
}

// EndTag returns a markup token closing an element, e.g. `</b>`.
func EndTag(text string) Token {
	return Token{Text: text, Markup: true, Class: End}
}

// TagName returns the element name of a markup token, or "" for other tokens.
func (t Token) TagName() string {
	if !t.Markup {
		return ""
	}
	return tagName(t.Text)
}

func tagName(text string) string {
	name := strings.TrimPrefix(text, "<")
	name = strings.TrimPrefix(name, "/")
	if i := strings.IndexAny(name, " \t\n\r/>"); i >= 0 {
		name = name[:i]
	}
	return name
}

// isContent reports whether t is a word or punctuation token.
func (t Token) isContent() bool {
	return !t.Markup
}

func lockedStart(text string) Token {
	return Token{Text: text, Markup: true, Class: Start, Locked: true}
}

func lockedEnd(name string) Token {
	return Token{Text: "</" + name + ">", Markup: true, Class: End, Locked: true}
}
