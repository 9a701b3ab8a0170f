package sentsplit

import (
	"errors"
	"sync"
	"testing"

	"github.com/jamesainslie/go-sentsplit/abbrev"
)

func TestNew(t *testing.T) {
	s := newSplitter(t)

	if s.language != "de_CMC" {
		t.Errorf("language = %q, want de_CMC", s.language)
	}
	if s.sentenceTag != "sentence" {
		t.Errorf("sentenceTag = %q, want sentence", s.sentenceTag)
	}
	if s.shapes == nil {
		t.Error("expected shape cache")
	}
	if s.abbrevs.Len() == 0 {
		t.Error("expected built-in abbreviations")
	}
}

func TestNew_WithOptions(t *testing.T) {
	s := newSplitter(t,
		WithLanguage("en"),
		WithAbbreviations(abbrev.NewSet("etc")),
		WithSentenceTag("s"),
		WithShapeCacheSize(0),
		WithLogger(nil),
	)

	if s.language != "en" {
		t.Errorf("language = %q, want en", s.language)
	}
	if s.abbrevs.Len() != 1 {
		t.Errorf("abbreviations = %d, want 1", s.abbrevs.Len())
	}
	if s.sentenceTag != "s" {
		t.Errorf("sentenceTag = %q, want s", s.sentenceTag)
	}
	if s.shapes != nil {
		t.Error("expected shape cache to be disabled")
	}
	if s.logger == nil {
		t.Error("nil logger should keep the default")
	}
}

func TestNew_InvalidSentenceTag(t *testing.T) {
	for _, tag := range []string{"", "a b", "<s>", "a[", "1s", "x:s", "s/"} {
		_, err := New(WithSentenceTag(tag))
		if !errors.Is(err, ErrInvalidOption) {
			t.Errorf("WithSentenceTag(%q): expected ErrInvalidOption, got: %v", tag, err)
		}
	}
}

func TestValidTagName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sentence", true},
		{"s", true},
		{"_s-1.x", true},
		{"Satz", true},
		{"", false},
		{"a[", false},
		{"-s", false},
		{"s]", false},
		{"x:s", false},
	}

	for _, tc := range tests {
		if got := ValidTagName(tc.name); got != tc.want {
			t.Errorf("ValidTagName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSplitter_Split(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "capitalization boundary",
			input: "hello . World",
			want:  []string{"hello .", "World"},
		},
		{
			name:  "lowercase continuation",
			input: "version 2 . x is out",
			want:  []string{"version 2 . x is out"},
		},
		{
			name:  "numeric next token",
			input: "it ended in 1990 . 1991 began",
			want:  []string{"it ended in 1990 .", "1991 began"},
		},
		{
			name:  "closing quote rides along",
			input: `He said " Hi .^ " Bye`,
			want:  []string{`He said " Hi . "`, "Bye"},
		},
		{
			name:  "closing bracket rides along",
			input: "see below .^ ) The end",
			want:  []string{"see below . )", "The end"},
		},
		{
			name:  "opening bracket starts next sentence",
			input: "done . ( The end )",
			want:  []string{"done .", "( The end )"},
		},
		{
			name:  "closing after opening is not absorbed",
			input: "done . ( ) The end",
			want:  []string{"done . ( ) The end"},
		},
		{
			name:  "multiple punctuation",
			input: "Wait !^ ?^ Really",
			want:  []string{"Wait ! ?", "Really"},
		},
		{
			name:  "ellipsis before lowercase",
			input: "and so …^ on it went",
			want:  []string{"and so … on it went"},
		},
		{
			name:  "ellipsis before uppercase",
			input: "and so … Then it went",
			want:  []string{"and so …", "Then it went"},
		},
		{
			name:  "no terminal punctuation",
			input: "just some words",
			want:  []string{"just some words"},
		},
		{
			name:  "final punctuation",
			input: "One . Two .",
			want:  []string{"One .", "Two ."},
		},
		{
			name:  "markup stays with its sentence",
			input: "<p> Hi . </p> <p> Yo . </p>",
			want:  []string{"<p> Hi . </p>", "<p> Yo . </p>"},
		},
	}

	s := newSplitter(t, WithLanguage("en"))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := toks(tc.input)
			got, err := s.Split(input)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			assertSentences(t, got, tc.want)
			assertRoundTrip(t, input, got)
		})
	}
}

func TestSplitter_Split_Abbreviation(t *testing.T) {
	s := newSplitter(t, WithAbbreviations(abbrev.NewSet("etc")))

	input := toks("items etc . more stuff")
	got, err := s.Split(input)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	assertSentences(t, got, []string{"items etc . more stuff"})
}

func TestSplitter_Split_AbbreviationBoundary(t *testing.T) {
	s := newSplitter(t, WithAbbreviations(abbrev.NewSet("usw.")))

	// The abbreviation is matched case-insensitively and confirmed by the
	// uppercase token after it.
	got, err := s.Split(toks("Äpfel , Birnen Usw. Dann kam nichts"))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	assertSentences(t, got, []string{"Äpfel , Birnen Usw.", "Dann kam nichts"})
}

func TestSplitter_Split_GermanQuotes(t *testing.T) {
	input := toks("Er sagte „ Hallo .^ “ Dann ging er")

	de := newSplitter(t, WithLanguage("de"))
	got, err := de.Split(input)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	assertSentences(t, got, []string{"Er sagte „ Hallo . “", "Dann ging er"})

	// Outside German, “ is an opening quote and starts the next sentence.
	en := newSplitter(t, WithLanguage("en"))
	got, err = en.Split(input)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	assertSentences(t, got, []string{"Er sagte „ Hallo .", "“ Dann ging er"})
}

func TestSplitter_Split_Empty(t *testing.T) {
	s := newSplitter(t)

	got, err := s.Split(nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Split(nil) = %v, want one empty sentence", got)
	}
}

func TestSplitter_Split_Idempotent(t *testing.T) {
	s := newSplitter(t, WithLanguage("en"))

	got, err := s.Split(toks("Hello world ."))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	again, err := s.Split(got[0])
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	assertSentences(t, again, []string{"Hello world ."})
}

func TestSplitter_Split_DoesNotMutateInput(t *testing.T) {
	s := newSplitter(t)
	input := toks("One . Two .")

	if _, err := s.Split(input); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for i, tok := range input {
		if tok.FirstInSentence || tok.LastInSentence {
			t.Errorf("input token %d (%q) was flagged", i, tok.Text)
		}
	}
}

func TestSplitter_Split_Flags(t *testing.T) {
	s := newSplitter(t)

	got, err := s.Split(toks("One . Two ."))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for i, sent := range got {
		if !sent[0].FirstInSentence {
			t.Errorf("sentence %d: first token not flagged", i)
		}
		if !sent[len(sent)-1].LastInSentence {
			t.Errorf("sentence %d: last token not flagged", i)
		}
	}
}

func TestSplitter_Split_Concurrent(t *testing.T) {
	s := newSplitter(t, WithShapeCacheSize(8))
	input := toks(`He said " Hi .^ " Bye . and more . Then done !`)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Split(input)
			if err != nil {
				errs <- err
				return
			}
			if len(got) != 3 {
				errs <- errors.New("unexpected sentence count")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

type tagged struct {
	word string
	pos  string
}

func TestSplitFunc(t *testing.T) {
	s := newSplitter(t)
	items := []tagged{
		{"Es", "PPER"}, {"regnet", "VVFIN"}, {".", "$."},
		{"Wir", "PPER"}, {"bleiben", "VVFIN"}, {".", "$."},
	}

	got, err := SplitFunc(s, items, func(it tagged) Token { return Word(it.word) })
	if err != nil {
		t.Fatalf("SplitFunc() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	if got[1][0] != items[3] {
		t.Errorf("second sentence starts with %+v, want %+v", got[1][0], items[3])
	}
	if got[0][2].pos != "$." {
		t.Errorf("first sentence ends with %+v", got[0][2])
	}
}

func TestSplitFunc_Empty(t *testing.T) {
	s := newSplitter(t)

	got, err := SplitFunc(s, []tagged{}, func(it tagged) Token { return Word(it.word) })
	if err != nil {
		t.Fatalf("SplitFunc() error = %v", err)
	}
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("SplitFunc(empty) = %v, want one empty sentence", got)
	}
}
