// Package sentsplit provides rule-based sentence boundary detection for
// already tokenized text, with optional insertion of sentence tags into
// streams that carry inline XML markup.
//
// # Quick Start
//
//	s, err := sentsplit.New(sentsplit.WithLanguage("en"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens := []sentsplit.Token{
//	    sentsplit.Word("Hello"), sentsplit.WordNoSpace("world"), sentsplit.Word("."),
//	    sentsplit.Word("Bye"), sentsplit.WordNoSpace("now"), sentsplit.Word("!"),
//	}
//	sentences, err := s.Split(tokens)
//
// # Markup
//
// SplitXML wraps every sentence in a sentence element (see WithSentenceTag).
// Elements that cross a sentence boundary are closed before the boundary
// and reopened after it, using tokens with Locked set. Removing all Locked
// tokens from the output restores the input sequence.
//
// # Thread Safety
//
// Splitter is safe for concurrent use. All per-call state lives in the call;
// the only shared mutable structure is an internally synchronized cache of
// token classifications, configurable via WithShapeCacheSize.
package sentsplit
