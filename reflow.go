package sentsplit

import (
	"fmt"
	"log/slog"
	"strings"
)

// position locates a tag boundary relative to the content of one sentence.
type position uint8

const (
	posUnknown position = iota // not in this sentence
	posStart                   // before the first content token
	posInside                  // between the first and last content token
	posEnd                     // after the last content token
)

func (p position) String() string {
	switch p {
	case posStart:
		return "start"
	case posInside:
		return "inside"
	case posEnd:
		return "end"
	default:
		return "unknown"
	}
}

// openTag tracks one element while sentence tags are inserted. Positions
// are indices into the current sentence, -1 when the tag was opened in an
// earlier sentence or is not closed yet.
type openTag struct {
	name     string
	start    Token
	startPos int
	endPos   int
	startAt  position
	endAt    position

	// reopen is set when the tag was force-closed at the end of the
	// previous sentence and a copy must open the current one.
	reopen bool
}

// reflower inserts sentence tags into a stream of sentences, splitting
// elements that cross a sentence boundary. The open tag stack carries over
// from one sentence to the next.
type reflower struct {
	tag    string
	stack  []*openTag
	logger *slog.Logger
}

func newReflower(tag string, logger *slog.Logger) *reflower {
	return &reflower{tag: tag, logger: logger}
}

// sentence returns sent with sentence tags and repair tags inserted.
func (r *reflower) sentence(sent []Token) ([]Token, error) {
	first, last := contentBounds(sent)

	at := func(i int) position {
		switch {
		case i < first:
			return posStart
		case i > last:
			return posEnd
		default:
			return posInside
		}
	}

	touched := make([]*openTag, 0, len(r.stack))
	for _, t := range r.stack {
		t.startPos, t.endPos = -1, -1
		t.startAt, t.endAt = posUnknown, posUnknown
		touched = append(touched, t)
	}

	for i, tok := range sent {
		if !tok.Markup {
			continue
		}
		switch tok.Class {
		case Start:
			t := &openTag{
				name:     tok.TagName(),
				start:    tok,
				startPos: i,
				endPos:   -1,
				startAt:  at(i),
				endAt:    posUnknown,
			}
			r.stack = append(r.stack, t)
			touched = append(touched, t)
		case End:
			if len(r.stack) == 0 {
				return nil, fmt.Errorf("%w: %s without open element", ErrMismatchedTag, tok.Text)
			}
			top := r.stack[len(r.stack)-1]
			if name := tok.TagName(); name != top.name {
				return nil, fmt.Errorf("%w: %s while <%s> is open", ErrMismatchedTag, tok.Text, top.name)
			}
			top.endPos, top.endAt = i, at(i)
			r.stack = r.stack[:len(r.stack)-1]
		}
	}

	if first < 0 {
		return sent, nil
	}

	left, right := widen(touched, first, last+1)

	var split, closeAtEnd, reopened []*openTag
	for _, t := range touched {
		switch {
		case t.startPos < 0 && !t.reopen && t.endPos >= left && t.endPos < right:
			// Opened before this sentence, closes inside it.
			split = append(split, t)
			reopened = append(reopened, t)
		case t.reopen:
			reopened = append(reopened, t)
			if t.endPos < 0 {
				closeAtEnd = append(closeAtEnd, t)
			}
		case t.startPos >= left && t.startPos < right && t.endPos < 0:
			// Opens inside this sentence, closes in a later one.
			closeAtEnd = append(closeAtEnd, t)
		}
	}

	out := make([]Token, 0, len(sent)+2+len(split)+len(reopened)+len(closeAtEnd))
	out = append(out, sent[:left]...)
	for i := len(split) - 1; i >= 0; i-- {
		out = append(out, lockedEnd(split[i].name))
	}
	out = append(out, lockedStart("<"+r.tag+">"))
	for _, t := range reopened {
		out = append(out, lockedStart(t.start.Text))
	}
	out = append(out, sent[left:right]...)
	for i := len(closeAtEnd) - 1; i >= 0; i-- {
		out = append(out, lockedEnd(closeAtEnd[i].name))
	}
	out = append(out, lockedEnd(r.tag))
	out = append(out, sent[right:]...)

	for _, t := range r.stack {
		t.reopen = false
	}
	for _, t := range closeAtEnd {
		t.reopen = true
	}

	for _, t := range split {
		r.logger.Debug("split element at sentence start", "tag", t.name, "start", t.startAt.String(), "end", t.endAt.String())
	}
	for _, t := range closeAtEnd {
		r.logger.Debug("split element at sentence end", "tag", t.name, "start", t.startAt.String(), "end", t.endAt.String())
	}

	return out, nil
}

// widen widens the sentence element [left, right) until no element opened
// in this sentence crosses one of its edges. Elements that enclose the whole
// sentence are left outside.
func widen(touched []*openTag, left, right int) (int, int) {
	for changed := true; changed; {
		changed = false
		for _, t := range touched {
			if t.endPos < 0 {
				continue
			}
			if t.reopen {
				// The copy opens right after the sentence tag, so its real
				// end tag has to be inside as well.
				switch {
				case t.endPos < left:
					left, changed = t.endPos, true
				case t.endPos >= right:
					right, changed = t.endPos+1, true
				}
				continue
			}
			switch {
			case t.startPos < 0:
				// Opened in an earlier sentence; split instead of widened.
			case t.startPos < left && t.endPos >= left && t.endPos < right:
				// (start, inside): the sentence starts before the tag.
				left, changed = t.startPos, true
			case t.startPos >= left && t.startPos < right && t.endPos >= right:
				// (inside, end): the sentence ends after the tag.
				right, changed = t.endPos+1, true
			}
		}
	}
	return left, right
}

// finish reports elements left open after the last sentence.
func (r *reflower) finish() error {
	if len(r.stack) == 0 {
		return nil
	}
	names := make([]string, len(r.stack))
	for i, t := range r.stack {
		names[i] = "<" + t.name + ">"
	}
	return fmt.Errorf("%w: %s never closed", ErrUnbalancedMarkup, strings.Join(names, ", "))
}
