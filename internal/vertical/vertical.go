// Package vertical reads and writes the one-token-per-line format used by
// the command line tools and the gold corpus.
//
// Each non-blank line holds one token. Lines starting with "<" and ending
// with ">" are markup: "</" opens an end tag, a trailing "/>" marks an empty
// element and anything else is a start tag. Other lines are words, so
// tokens like "<3" or "<=" stay words. A word may carry a tab separated "SpaceAfter=No"
// field. Blank lines separate sentences.
package vertical

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// ErrSyntax is returned for lines that cannot be parsed.
var ErrSyntax = errors.New("vertical: syntax error")

const noSpace = "SpaceAfter=No"

// maxLine bounds a single token line; markup with long attribute lists can
// exceed bufio's default.
const maxLine = 1 << 20

// ParseLine converts one non-blank line into a token.
func ParseLine(line string) (sentsplit.Token, error) {
	text, field, hasField := strings.Cut(line, "\t")
	if text == "" {
		return sentsplit.Token{}, fmt.Errorf("%w: empty token in %q", ErrSyntax, line)
	}

	if len(text) > 2 && strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
		if hasField {
			return sentsplit.Token{}, fmt.Errorf("%w: markup %q has a field", ErrSyntax, text)
		}
		switch {
		case strings.HasPrefix(text, "</"):
			return sentsplit.EndTag(text), nil
		case strings.HasSuffix(text, "/>") || strings.HasPrefix(text, "<!") || strings.HasPrefix(text, "<?"):
			return sentsplit.Token{Text: text, Markup: true, Class: sentsplit.None}, nil
		default:
			return sentsplit.StartTag(text), nil
		}
	}

	switch field {
	case "":
		return sentsplit.Word(text), nil
	case noSpace:
		return sentsplit.WordNoSpace(text), nil
	default:
		return sentsplit.Token{}, fmt.Errorf("%w: unknown field %q", ErrSyntax, field)
	}
}

// ReadSentences reads r and groups tokens at blank lines.
func ReadSentences(r io.Reader) ([][]sentsplit.Token, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		sentences [][]sentsplit.Token
		current   []sentsplit.Token
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}
		tok, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current = append(current, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

// Read reads r as one token stream, ignoring blank lines.
func Read(r io.Reader) ([]sentsplit.Token, error) {
	sentences, err := ReadSentences(r)
	if err != nil {
		return nil, err
	}
	var tokens []sentsplit.Token
	for _, sent := range sentences {
		tokens = append(tokens, sent...)
	}
	return tokens, nil
}

// Write emits sentences one token per line with a blank line after each
// sentence.
func Write(w io.Writer, sentences [][]sentsplit.Token) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sentences {
		if len(sent) == 0 {
			continue
		}
		for _, tok := range sent {
			bw.WriteString(tok.Text)
			if !tok.Markup && !tok.SpaceAfter {
				bw.WriteString("\t" + noSpace)
			}
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Render returns display text with one sentence per line. Tokens are
// separated by a space unless SpaceAfter is false; markup is attached to
// its neighbours.
func Render(sentences [][]sentsplit.Token) string {
	var b strings.Builder
	for _, sent := range sentences {
		if len(sent) == 0 {
			continue
		}
		renderSentence(&b, sent)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderSentence(b *strings.Builder, sent []sentsplit.Token) {
	for i, tok := range sent {
		b.WriteString(tok.Text)
		if i == len(sent)-1 || !tok.SpaceAfter {
			continue
		}
		if next := sent[i+1]; next.Markup && next.Class == sentsplit.End {
			continue
		}
		b.WriteByte(' ')
	}
}
