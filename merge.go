package sentsplit

func hasContent(sentence []Token) bool {
	for i := range sentence {
		if sentence[i].FirstInSentence {
			return true
		}
	}
	return false
}

// mergeEmpty folds sentences without a sentence-initial token into the
// preceding sentence. Empty sentences at the very beginning are carried
// forward into the first real one instead.
func mergeEmpty(sentences [][]Token) [][]Token {
	merged := make([][]Token, 0, len(sentences))
	var leading []Token

	for _, sent := range sentences {
		if !hasContent(sent) {
			if len(merged) == 0 {
				leading = append(leading, sent...)
			} else {
				merged[len(merged)-1] = append(merged[len(merged)-1], sent...)
			}
			continue
		}
		if len(leading) > 0 {
			sent = append(leading, sent...)
			leading = nil
		}
		merged = append(merged, sent)
	}

	if len(merged) == 0 {
		if leading == nil {
			leading = []Token{}
		}
		return [][]Token{leading}
	}
	return merged
}
