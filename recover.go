package mathbraille

import (
	"strings"
	"unicode/utf8"
)

// truncationCells open or close a multi-part construct. They are the cells
// most likely to be left dangling when input is cut short.
var truncationCells = map[rune]bool{
	FractionOpen:         true,
	RadicalStart:         true,
	RadicalEnd:           true,
	SuperscriptIndicator: true,
	SubscriptIndicator:   true,
}

// trimTruncation strips a trailing run of truncation cells (and any
// whitespace mixed into it) from src. It reports false when no truncation
// cell was removed or nothing but whitespace would remain.
func trimTruncation(src string) (string, bool) {
	removed := false
	trimmed := strings.TrimRightFunc(src, func(ch rune) bool {
		if truncationCells[ch] {
			removed = true
			return true
		}
		return IsWhitespace(ch)
	})
	if !removed || isBlank(trimmed) {
		return src, false
	}
	return trimmed, true
}

// parseWithRecovery parses src, retrying once on a trimmed copy when the
// first attempt fails. The original parse error is returned when the retry
// is not possible or also fails.
func (t *Translator) parseWithRecovery(src string) (*Node, []Warning, error) {
	tree, err := ParseString(src)
	if err == nil {
		return tree, nil, nil
	}
	trimmed, ok := trimTruncation(src)
	if !ok {
		return nil, nil, err
	}
	t.log.Debug("retrying parse without trailing structural cells", "error", err, "trimmed", trimmed)
	tree, retryErr := ParseString(trimmed)
	if retryErr != nil {
		t.log.Debug("recovery failed", "error", retryErr)
		return nil, nil, err
	}
	warning := Warning{
		Kind:     AutoInserted,
		Position: utf8.RuneCountInString(trimmed),
		Message:  "truncated incomplete structure",
	}
	return tree, []Warning{warning}, nil
}
