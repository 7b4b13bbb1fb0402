package mathbraille

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Translator converts braille math to markup. It holds no per-call state and
// is safe for concurrent use.
type Translator struct {
	log       *slog.Logger
	generator MarkupGenerator
	maxCells  int
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.log = log
		}
	}
}

// WithGenerator replaces the MathML generator.
func WithGenerator(gen MarkupGenerator) Option {
	return func(t *Translator) {
		if gen != nil {
			t.generator = gen
		}
	}
}

// WithConfig configures the default MathML generator.
func WithConfig(conf *Data) Option {
	return func(t *Translator) {
		t.generator = NewMathMLGenerator(conf)
	}
}

// WithMaxCells bounds the input length in characters. Zero means no bound.
func WithMaxCells(n int) Option {
	return func(t *Translator) {
		t.maxCells = n
	}
}

func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		log:       discardLogger,
		generator: NewMathMLGenerator(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTranslator = NewTranslator()

// Translate converts src with the default configuration.
func Translate(src string) *Result {
	return defaultTranslator.Translate(src)
}

// Translate validates, parses and builds src, then renders the tree as markup.
func (t *Translator) Translate(src string) *Result {
	node, warnings, err := t.Parse(src)
	if err != nil {
		var list ErrorList
		if errors.As(err, &list) {
			return failed(list...)
		}
		return failed(&Error{Kind: ParseFailure, Message: err.Error()})
	}
	return succeeded(t.generator.Generate(node, src), warnings)
}

// Parse validates and parses src into a semantic tree without generating
// markup. Errors are always of type ErrorList.
func (t *Translator) Parse(src string) (MathNode, []Warning, error) {
	if errs := Validate(src); len(errs) > 0 {
		t.log.Debug("input rejected", "errors", len(errs))
		return nil, nil, ErrorList(errs)
	}
	if t.maxCells > 0 {
		if n := utf8.RuneCountInString(src); n > t.maxCells {
			return nil, nil, ErrorList{{
				Kind:     ParseFailure,
				Position: t.maxCells,
				Message:  fmt.Sprintf("input too long: %d characters exceeds the limit of %d", n, t.maxCells),
			}}
		}
	}
	tree, warnings, err := t.parseWithRecovery(src)
	if err != nil {
		return nil, nil, asErrorList(err)
	}
	b := &builder{log: t.log, warnings: warnings}
	node, err := b.build(tree)
	if err != nil {
		return nil, nil, ErrorList{{
			Kind:    ParseFailure,
			Message: fmt.Sprintf("malformed parse tree: %v", err),
		}}
	}
	return node, b.warnings, nil
}

func asErrorList(err error) ErrorList {
	var e *Error
	if errors.As(err, &e) {
		return ErrorList{e}
	}
	return ErrorList{{Kind: ParseFailure, Message: err.Error()}}
}
