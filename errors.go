package sentsplit

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMismatchedTag indicates an end tag that does not close the innermost open tag.
	ErrMismatchedTag = errors.New("sentsplit: mismatched end tag")

	// ErrUnbalancedMarkup indicates tags still open after the last sentence.
	ErrUnbalancedMarkup = errors.New("sentsplit: unbalanced markup")

	// ErrInvalidOption indicates an option value the splitter cannot use.
	ErrInvalidOption = errors.New("sentsplit: invalid option")
)
