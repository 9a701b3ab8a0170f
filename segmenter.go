package sentsplit

import "golang.org/x/text/cases"

// contentBounds returns the indices of the first and last non-markup
// tokens, or -1, -1 when there are none.
func contentBounds(tokens []Token) (first, last int) {
	first, last = -1, -1
	for i := range tokens {
		if tokens[i].isContent() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last
}

// markBoundaries sets FirstInSentence and LastInSentence on tokens.
func (s *Splitter) markBoundaries(tokens []Token, lower cases.Caser) {
	first, last := contentBounds(tokens)
	if first < 0 {
		return
	}
	tokens[first].FirstInSentence = true
	tokens[last].LastInSentence = true

	for i := range tokens {
		if s.isCandidate(tokens[i], lower) {
			s.classify(tokens, i)
		}
	}
}

// markEOSTags forces a boundary around every markup token whose element name
// is in eos: the nearest content token before it ends a sentence and the
// nearest content token after it starts one.
func markEOSTags(tokens []Token, eos map[string]struct{}) {
	for i := range tokens {
		if !tokens[i].Markup {
			continue
		}
		if _, ok := eos[tokens[i].TagName()]; !ok {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if tokens[j].isContent() {
				tokens[j].LastInSentence = true
				break
			}
		}
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].isContent() {
				tokens[j].FirstInSentence = true
				break
			}
		}
	}
}

// boundaries returns the exclusive end offset of every sentence. End tags
// directly after a sentence-final token stay with that sentence, and the
// last sentence always runs to the end of the input.
func boundaries(tokens []Token) []int {
	var bounds []int
	for i := range tokens {
		if !tokens[i].LastInSentence {
			continue
		}
		end := i + 1
		for end < len(tokens) && tokens[end].Markup && tokens[end].Class == End {
			end++
		}
		bounds = append(bounds, end)
	}

	if len(bounds) == 0 {
		return []int{len(tokens)}
	}
	bounds[len(bounds)-1] = len(tokens)
	return bounds
}

// slice cuts tokens at bounds. Each sentence is capacity-limited so that
// appending to one never overwrites the next.
func slice(tokens []Token, bounds []int) [][]Token {
	sentences := make([][]Token, 0, len(bounds))
	start := 0
	for _, end := range bounds {
		sentences = append(sentences, tokens[start:end:end])
		start = end
	}
	return sentences
}
