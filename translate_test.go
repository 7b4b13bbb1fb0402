package mathbraille

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestTranslateFailures(test *testing.T) {
	res := Translate("")
	if !res.Failed() || len(res.Errors) != 1 || res.Errors[0].Kind != EmptyInput || res.MathML != "" {
		test.Errorf("unexpected result for empty input: %+v", res)
	}
	res = Translate("abc")
	if !res.Failed() || len(res.Errors) != 3 {
		test.Errorf("expected three unrecognized symbols: %+v", res)
	}
	res = Translate("⠼⠁⠌")
	if !res.Failed() || len(res.Errors) != 1 || res.Errors[0].Kind != ParseFailure || res.Errors[0].Position != 2 {
		test.Errorf("expected a parse error at 2: %+v", res)
	}
	var list ErrorList
	if !errors.As(res.Err(), &list) || len(list) != 1 {
		test.Errorf("Err should return an ErrorList: %v", res.Err())
	}
	if s := res.Errors[0].Kind.String(); s != "ParseError" {
		test.Errorf("unexpected kind name %q", s)
	}
}

func TestTranslateRecovery(test *testing.T) {
	tests := []struct {
		src     string
		trimmed string
	}{
		{"⠼⠁⠔", "⠼⠁"},
		{"⠰⠭⠐⠖⠷", "⠰⠭⠐⠖"},
		{"⠰⠭⠢ ⠩", "⠰⠭"},
		{"⠷⠼⠁⠌⠼⠃⠾⠩", "⠷⠼⠁⠌⠼⠃⠾"},
	}
	for _, tt := range tests {
		res := Translate(tt.src)
		if !res.IsPartial() {
			test.Errorf("%s: expected partial success, got %+v", tt.src, res)
			continue
		}
		if len(res.Warnings) != 1 || res.Warnings[0].Kind != AutoInserted {
			test.Errorf("%s: expected one auto-inserted warning, got %v", tt.src, res.Warnings)
		}
		clean := Translate(tt.trimmed)
		if !clean.IsSuccess() || clean.MathML != res.MathML {
			test.Errorf("%s: recovered output differs from %s:\n%s\n%s", tt.src, tt.trimmed, res.MathML, clean.MathML)
		}
	}
	res := Translate("⠼⠁⠔")
	if w := res.Warnings[0]; w.Position != 2 || w.String() != "auto-inserted: truncated incomplete structure (position 2)" {
		test.Errorf("unexpected warning %v", w)
	}
}

func TestTranslateNoRecovery(test *testing.T) {
	for _, src := range []string{
		"⠔",      // nothing left after trimming
		"⠩⠰⠭",    // no trailing structural cell
		"⠼⠁⠌⠔",   // still broken after trimming
		"⠐⠣⠼⠁⠩⠬", // trimming exposes an unclosed group
	} {
		res := Translate(src)
		if !res.Failed() || len(res.Warnings) != 0 {
			test.Errorf("%s: expected failure without warnings, got %+v", src, res)
		}
	}
	// the reported error belongs to the original input
	res := Translate("⠼⠁⠌⠔")
	if res.Errors[0].Position != 2 {
		test.Errorf("unexpected error position %d", res.Errors[0].Position)
	}
}

func TestTranslateMaxCells(test *testing.T) {
	t := NewTranslator(WithMaxCells(2))
	res := t.Translate("⠼⠁⠃")
	if !res.Failed() || !strings.Contains(res.Errors[0].Message, "input too long") {
		test.Errorf("expected length error, got %+v", res)
	}
	if res := t.Translate("⠼⠁"); !res.IsSuccess() {
		test.Errorf("input at the limit should translate: %+v", res)
	}
}

func TestTranslateLogger(test *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t := NewTranslator(WithLogger(log))
	t.Translate("⠼⠁⠔")
	if !strings.Contains(buf.String(), "retrying parse") {
		test.Errorf("expected recovery to be logged, got: %s", buf.String())
	}
}

type fixedGenerator string

func (g fixedGenerator) Generate(node MathNode, source string) string {
	return string(g) + ":" + node.Kind().String()
}

func TestTranslateGenerator(test *testing.T) {
	t := NewTranslator(WithGenerator(fixedGenerator("test")))
	if res := t.Translate("⠷⠼⠁⠌⠼⠃⠾"); res.MathML != "test:Fraction" {
		test.Errorf("custom generator not used: %+v", res)
	}
}

func TestTranslateConfig(test *testing.T) {
	conf, err := DataFromBytes([]byte("display: inline\nxmlns: false\n"), true)
	if err != nil {
		test.Fatalf("%v", err)
	}
	res := NewTranslator(WithConfig(conf)).Translate("⠼⠁")
	if res.MathML != `<math display="inline"><mn>1</mn></math>` {
		test.Errorf("unexpected output %s", res.MathML)
	}
}

func TestTranslateConcurrent(test *testing.T) {
	t := NewTranslator()
	inputs := []string{"⠼⠁", "⠰⠭⠔⠼⠃⠱", "⠷⠼⠁⠌⠼⠃⠾", "⠩⠰⠭⠬", "abc"}
	want := make([]string, len(inputs))
	for i, src := range inputs {
		want[i] = Pretty(t.Translate(src))
	}
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, src := range inputs {
				if got := Pretty(t.Translate(src)); got != want[i] {
					test.Errorf("%s: result differs under concurrency", src)
				}
			}
		}()
	}
	wg.Wait()
}

func TestAnnotate(test *testing.T) {
	res := Translate("⠼⠁⠌")
	s := Annotate("eq.brl", "⠼⠁⠌", res.Errors[0], "")
	if !strings.HasPrefix(s, "eq.brl:1:3: parse error at position 2") || !strings.Contains(s, "\t⠼⠁⠌") {
		test.Errorf("unexpected annotation: %q", s)
	}
	res = Translate(" ")
	if s := Annotate("", " ", res.Errors[0], ""); s != "1:1: empty input" {
		test.Errorf("unexpected annotation: %q", s)
	}
}
