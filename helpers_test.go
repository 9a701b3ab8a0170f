package sentsplit

import (
	"strings"
	"testing"
)

// toks builds tokens from a space separated string. Fields in angle
// brackets are markup; a field ending in "^" has no space after it.
func toks(s string) []Token {
	var out []Token
	for _, f := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(f, "</"):
			out = append(out, EndTag(f))
		case strings.HasPrefix(f, "<") && len(f) > 1:
			out = append(out, StartTag(f))
		case strings.HasSuffix(f, "^") && len(f) > 1:
			out = append(out, WordNoSpace(strings.TrimSuffix(f, "^")))
		default:
			out = append(out, Word(f))
		}
	}
	return out
}

func texts(sentences [][]Token) []string {
	out := make([]string, len(sentences))
	for i, sent := range sentences {
		parts := make([]string, len(sent))
		for j, tok := range sent {
			parts[j] = tok.Text
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}

func newSplitter(t *testing.T, opts ...Option) *Splitter {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func assertSentences(t *testing.T, got [][]Token, want []string) {
	t.Helper()
	gotTexts := texts(got)
	if len(gotTexts) != len(want) {
		t.Errorf("got %d sentences, want %d", len(gotTexts), len(want))
		for i, s := range gotTexts {
			t.Logf("  got[%d]: %q", i, s)
		}
		return
	}
	for i := range want {
		if gotTexts[i] != want[i] {
			t.Errorf("sentence[%d] = %q, want %q", i, gotTexts[i], want[i])
		}
	}
}

// assertRoundTrip checks that dropping synthesized tokens restores input.
func assertRoundTrip(t *testing.T, input []Token, sentences [][]Token) {
	t.Helper()
	var got []string
	for _, sent := range sentences {
		for _, tok := range sent {
			if !tok.Locked {
				got = append(got, tok.Text)
			}
		}
	}
	if len(got) != len(input) {
		t.Fatalf("round trip has %d tokens, input has %d", len(got), len(input))
	}
	for i := range input {
		if got[i] != input[i].Text {
			t.Errorf("round trip token[%d] = %q, want %q", i, got[i], input[i].Text)
		}
	}
}
