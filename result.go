package mathbraille

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	EmptyInput ErrorKind = iota
	UnrecognizedSymbol
	ParseFailure
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnrecognizedSymbol:
		return "UnrecognizedSymbol"
	case ParseFailure:
		return "ParseError"
	}
	return "?"
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(text []byte) error {
	for _, kind := range []ErrorKind{EmptyInput, UnrecognizedSymbol, ParseFailure} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}

// Error is one translation diagnostic. Position counts characters from the
// start of the input. Symbol is the offending character, or zero when the
// error points past the end of the input.
type Error struct {
	Kind     ErrorKind `json:"kind"`
	Position int       `json:"position"`
	Symbol   rune      `json:"symbol,omitempty"`
	Message  string    `json:"message"`
}

func (e *Error) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "empty input"
	case UnrecognizedSymbol:
		return fmt.Sprintf("unrecognized symbol %s at position %d", describeRune(e.Symbol), e.Position)
	}
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// errorJSON is the wire form of an Error: the symbol travels as a string.
type errorJSON struct {
	Kind     ErrorKind `json:"kind"`
	Position int       `json:"position"`
	Symbol   string    `json:"symbol,omitempty"`
	Message  string    `json:"message"`
}

func (e *Error) MarshalJSON() ([]byte, error) {
	v := errorJSON{Kind: e.Kind, Position: e.Position, Message: e.Message}
	if e.Symbol != 0 {
		v.Symbol = string(e.Symbol)
	}
	return json.Marshal(v)
}

func (e *Error) UnmarshalJSON(data []byte) error {
	var v errorJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = Error{Kind: v.Kind, Position: v.Position, Message: v.Message}
	for _, ch := range v.Symbol {
		e.Symbol = ch
		break
	}
	return nil
}

// ErrorList is the error returned for a failed translation.
type ErrorList []*Error

func (list ErrorList) Error() string {
	switch len(list) {
	case 0:
		return "no errors"
	case 1:
		return list[0].Error()
	}
	msgs := make([]string, len(list))
	for i, e := range list {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(list), strings.Join(msgs, "; "))
}

type WarningKind int

const (
	AutoInserted WarningKind = iota
)

func (k WarningKind) String() string {
	switch k {
	case AutoInserted:
		return "auto-inserted"
	}
	return "?"
}

func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *WarningKind) UnmarshalText(text []byte) error {
	if string(text) != AutoInserted.String() {
		return fmt.Errorf("unknown warning kind %q", text)
	}
	*k = AutoInserted
	return nil
}

// Warning is advisory: the translation produced output anyway.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Position int         `json:"position"`
	Message  string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%v: %s (position %d)", w.Kind, w.Message, w.Position)
}

// Result is the outcome of one translation. Exactly one of these holds:
// MathML is empty and Errors is not (failure), MathML is set and both lists
// are empty (success), or MathML is set along with Warnings (partial success).
type Result struct {
	MathML   string    `json:"mathml,omitempty"`
	Errors   []*Error  `json:"errors,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

func failed(errs ...*Error) *Result {
	return &Result{Errors: errs}
}

func succeeded(markup string, warnings []Warning) *Result {
	return &Result{MathML: markup, Warnings: warnings}
}

// IsSuccess reports a clean translation: output with no warnings.
func (r *Result) IsSuccess() bool {
	return r.HasOutput() && len(r.Warnings) == 0
}

// IsPartial reports output that needed recovery to produce.
func (r *Result) IsPartial() bool {
	return r.HasOutput() && len(r.Warnings) > 0
}

func (r *Result) Failed() bool {
	return !r.HasOutput()
}

func (r *Result) HasOutput() bool {
	return r.MathML != "" && len(r.Errors) == 0
}

// Err returns the errors as an ErrorList, or nil when there are none.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return ErrorList(r.Errors)
}
