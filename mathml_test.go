package mathbraille

import (
	"testing"
)

const mathOpen = `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">`

func TestMathML(test *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"⠼⠁⠃", `<mn>12</mn>`},
		{"⠰⠭⠐⠖⠼⠁", `<mi>x</mi><mo>+</mo><mn>1</mn>`},
		{"⠠⠰⠁⠐⠶⠰⠃", `<mi>A</mi><mo>=</mo><mi>b</mi>`},
		{"⠰⠭⠔⠼⠃⠱", `<msup><mi>x</mi><mn>2</mn></msup>`},
		{"⠰⠭⠔⠼⠃⠱⠢⠼⠁⠱", `<msub><msup><mi>x</mi><mn>2</mn></msup><mn>1</mn></msub>`},
		{"⠰⠭⠔⠰⠝⠐⠤⠼⠁⠱", `<msup><mi>x</mi><mrow><mi>n</mi><mo>−</mo><mn>1</mn></mrow></msup>`},
		{"⠷⠼⠁⠌⠼⠃⠾", `<mfrac><mn>1</mn><mn>2</mn></mfrac>`},
		{"⠷⠌⠼⠃⠾", `<mfrac><mrow></mrow><mn>2</mn></mfrac>`},
		{"⠩⠰⠭⠐⠖⠼⠁⠬", `<msqrt><mi>x</mi><mo>+</mo><mn>1</mn></msqrt>`},
		{"⠫⠼⠉⠩⠰⠭⠬", `<mroot><mi>x</mi><mn>3</mn></mroot>`},
		{"⠐⠣⠰⠁⠐⠜", `<mrow><mo>(</mo><mi>a</mi><mo>)</mo></mrow>`},
		{"⠸⠣⠸⠜", `<mrow><mo>{</mo><mo>}</mo></mrow>`},
		{"⠨⠠⠙", `<mi>Δ</mi>`},
		{"⠠⠿", `<mi>∞</mi>`},
		{"⠈⠙⠰⠭", `<mi>∂</mi><mi>x</mi>`},
		{"⠰⠁⠸⠈⠣⠰⠃", `<mi>a</mi><mo>≤</mo><mi>b</mi>`},
		{"⠰⠏⠸⠳⠕⠰⠟", `<mi>p</mi><mo>⇒</mo><mi>q</mi>`},
		{"⠈⠣", `<mo>&lt;</mo>`},
	}
	for _, tt := range tests {
		res := Translate(tt.src)
		if !res.IsSuccess() {
			test.Errorf("%s: unexpected failure %v", tt.src, res.Err())
			continue
		}
		want := mathOpen + tt.want + "</math>"
		if res.MathML != want {
			test.Errorf("%s:\n got: %s\nwant: %s", tt.src, res.MathML, want)
		}
	}
}

func TestMathMLConfig(test *testing.T) {
	node := Identifier{Letter: 'x'}
	conf := NewData()
	conf.Put("display", "inline")
	conf.Put("xmlns", false)
	if s := NewMathMLGenerator(conf).Generate(node, "⠰⠭"); s != `<math display="inline"><mi>x</mi></math>` {
		test.Errorf("unexpected inline output %s", s)
	}

	conf = NewData()
	conf.Put("display", "")
	conf.Put("alttext", true)
	want := `<math xmlns="http://www.w3.org/1998/Math/MathML" alttext="⠰⠭"><mi>x</mi></math>`
	if s := NewMathMLGenerator(conf).Generate(node, "⠰⠭"); s != want {
		test.Errorf("unexpected alttext output %s", s)
	}

	conf = NewData()
	conf.Put("annotate", true)
	want = mathOpen + `<semantics><mrow><mi>x</mi></mrow><annotation encoding="application/x-unicode-braille">⠰⠭</annotation></semantics></math>`
	if s := NewMathMLGenerator(conf).Generate(node, "⠰⠭"); s != want {
		test.Errorf("unexpected annotated output %s", s)
	}

	conf = NewData()
	conf.Put("xml-declaration", true)
	want = `<?xml version="1.0" encoding="UTF-8"?>` + mathOpen + `<mi>x</mi></math>`
	if s := NewMathMLGenerator(conf).Generate(node, "⠰⠭"); s != want {
		test.Errorf("unexpected declaration output %s", s)
	}
}

func TestMathMLNestedRows(test *testing.T) {
	node := Grouped{Open: "(", Close: ")", Content: Row{Children: []MathNode{
		Number{Text: "1"},
		Operator{Symbol: "+"},
		Fraction{Numerator: Empty{}, Denominator: Row{Children: []MathNode{Identifier{Letter: 'a'}, Identifier{Letter: 'b'}}}},
	}}}
	want := mathOpen + `<mrow><mo>(</mo><mn>1</mn><mo>+</mo><mfrac><mrow></mrow><mrow><mi>a</mi><mi>b</mi></mrow></mfrac><mo>)</mo></mrow></math>`
	if s := NewMathMLGenerator(nil).Generate(node, ""); s != want {
		test.Errorf("unexpected output\n got: %s\nwant: %s", s, want)
	}
	if s := NewMathMLGenerator(nil).Generate(Empty{}, ""); s != mathOpen+"</math>" {
		test.Errorf("unexpected empty output %s", s)
	}
}
