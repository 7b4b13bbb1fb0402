package document

import (
	"testing"

	"github.com/boynton/mathbraille"
)

const sample = "# Fractions\n" +
	"\n" +
	"One half:\n" +
	"\n" +
	"```braille-math\n" +
	"⠷⠼⠁⠌⠼⠃⠾\n" +
	"```\n" +
	"\n" +
	"## Not math\n" +
	"\n" +
	"```go\n" +
	"x := 1\n" +
	"```\n" +
	"\n" +
	"```brl\n" +
	"abc\n" +
	"```\n"

func TestExtract(t *testing.T) {
	blocks := Extract([]byte(sample))
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Braille != "⠷⠼⠁⠌⠼⠃⠾" || blocks[0].Line != 6 || blocks[0].Section != "Fractions" {
		t.Errorf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].Braille != "abc" || blocks[1].Line != 16 || blocks[1].Section != "Not math" {
		t.Errorf("unexpected second block: %+v", blocks[1])
	}
}

func TestExtractNone(t *testing.T) {
	if blocks := Extract([]byte("plain text\n\n    indented code\n")); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %+v", blocks)
	}
}

func TestTranslateAll(t *testing.T) {
	out := TranslateAll(mathbraille.NewTranslator(), []byte(sample))
	if len(out) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(out))
	}
	want := `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mfrac><mn>1</mn><mn>2</mn></mfrac></math>`
	if out[0].Result.MathML != want {
		t.Errorf("unexpected markup: %s", out[0].Result.MathML)
	}
	if !out[1].Result.Failed() || len(out[1].Result.Errors) != 3 {
		t.Errorf("expected three unrecognized symbols: %+v", out[1].Result)
	}
}
