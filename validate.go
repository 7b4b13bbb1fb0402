package mathbraille

// Validate checks that every character of src is a braille cell or
// whitespace. Empty or all-whitespace input yields a single EmptyInput error;
// otherwise every offending character yields an UnrecognizedSymbol error, in
// input order. A nil result means the input may be parsed.
func Validate(src string) []*Error {
	if isBlank(src) {
		return []*Error{{Kind: EmptyInput, Message: "input is empty"}}
	}
	var errs []*Error
	pos := 0
	for _, ch := range src {
		if !IsCell(ch) && !isASCIISpace(ch) {
			errs = append(errs, unrecognized(pos, ch))
		}
		pos++
	}
	return errs
}

func unrecognized(pos int, ch rune) *Error {
	return &Error{
		Kind:     UnrecognizedSymbol,
		Position: pos,
		Symbol:   ch,
		Message:  "not a braille cell",
	}
}

func isASCIISpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isBlank(src string) bool {
	for _, ch := range src {
		if !IsWhitespace(ch) {
			return false
		}
	}
	return true
}
