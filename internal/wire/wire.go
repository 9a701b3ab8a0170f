// Package wire encodes split documents in protobuf wire format so they can
// be exchanged with tools that speak the schema below without generated
// code:
//
//	message Document { repeated Sentence sentence = 1; }
//	message Sentence { repeated Token token = 1; }
//	message Token {
//	  string text = 1;
//	  bool markup = 2;
//	  int32 class = 3;
//	  bool locked = 4;
//	  bool space_after = 5;
//	  bool first = 6;
//	  bool last = 7;
//	}
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// ErrMalformed is returned when a message cannot be decoded.
var ErrMalformed = errors.New("wire: malformed message")

const (
	docSentence protowire.Number = 1

	sentToken protowire.Number = 1

	tokText       protowire.Number = 1
	tokMarkup     protowire.Number = 2
	tokClass      protowire.Number = 3
	tokLocked     protowire.Number = 4
	tokSpaceAfter protowire.Number = 5
	tokFirst      protowire.Number = 6
	tokLast       protowire.Number = 7
)

// Marshal encodes sentences as a Document message.
func Marshal(sentences [][]sentsplit.Token) []byte {
	var doc, sent, tok []byte
	for _, s := range sentences {
		sent = sent[:0]
		for _, t := range s {
			tok = appendToken(tok[:0], t)
			sent = protowire.AppendTag(sent, sentToken, protowire.BytesType)
			sent = protowire.AppendBytes(sent, tok)
		}
		doc = protowire.AppendTag(doc, docSentence, protowire.BytesType)
		doc = protowire.AppendBytes(doc, sent)
	}
	return doc
}

func appendToken(b []byte, t sentsplit.Token) []byte {
	if t.Text != "" {
		b = protowire.AppendTag(b, tokText, protowire.BytesType)
		b = protowire.AppendString(b, t.Text)
	}
	b = appendBool(b, tokMarkup, t.Markup)
	if t.Class != sentsplit.None {
		b = protowire.AppendTag(b, tokClass, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(t.Class))
	}
	b = appendBool(b, tokLocked, t.Locked)
	b = appendBool(b, tokSpaceAfter, t.SpaceAfter)
	b = appendBool(b, tokFirst, t.FirstInSentence)
	b = appendBool(b, tokLast, t.LastInSentence)
	return b
}

// appendBool writes v only when set, matching proto3 default omission.
func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// Unmarshal decodes a Document message. Unknown fields are skipped.
func Unmarshal(b []byte) ([][]sentsplit.Token, error) {
	sentences := [][]sentsplit.Token{}
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		if num != docSentence || typ != protowire.BytesType {
			return nil
		}
		sent, err := unmarshalSentence(v)
		if err != nil {
			return fmt.Errorf("sentence %d: %w", len(sentences)+1, err)
		}
		sentences = append(sentences, sent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sentences, nil
}

func unmarshalSentence(b []byte) ([]sentsplit.Token, error) {
	tokens := []sentsplit.Token{}
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		if num != sentToken || typ != protowire.BytesType {
			return nil
		}
		tok, err := unmarshalToken(v)
		if err != nil {
			return fmt.Errorf("token %d: %w", len(tokens)+1, err)
		}
		tokens = append(tokens, tok)
		return nil
	})
	return tokens, err
}

func unmarshalToken(b []byte) (sentsplit.Token, error) {
	var t sentsplit.Token
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case tokText:
			if typ != protowire.BytesType {
				return fmt.Errorf("%w: text has wire type %d", ErrMalformed, typ)
			}
			t.Text = string(v)
			return nil
		case tokClass:
			if typ != protowire.VarintType {
				return fmt.Errorf("%w: class has wire type %d", ErrMalformed, typ)
			}
			if x > uint64(sentsplit.End) {
				return fmt.Errorf("%w: unknown markup class %d", ErrMalformed, x)
			}
			t.Class = sentsplit.MarkupClass(x)
			return nil
		}

		var dst *bool
		switch num {
		case tokMarkup:
			dst = &t.Markup
		case tokLocked:
			dst = &t.Locked
		case tokSpaceAfter:
			dst = &t.SpaceAfter
		case tokFirst:
			dst = &t.FirstInSentence
		case tokLast:
			dst = &t.LastInSentence
		default:
			return nil
		}
		if typ != protowire.VarintType {
			return fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
		}
		*dst = protowire.DecodeBool(x)
		return nil
	})
	return t, err
}

// walk calls fn for every field in b. Length-delimited values are passed in
// v, varints in x; other wire types are skipped.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		var (
			v []byte
			x uint64
		)
		switch typ {
		case protowire.BytesType:
			v, n = protowire.ConsumeBytes(b)
		case protowire.VarintType:
			x, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(num, typ, v, x); err != nil {
			return err
		}
	}
	return nil
}
