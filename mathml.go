package mathbraille

import (
	"golang.org/x/net/html"
)

const MathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// BrailleEncoding labels the braille source when it is attached as an annotation.
const BrailleEncoding = "application/x-unicode-braille"

// MarkupGenerator renders a semantic tree. source is the braille input the
// tree was built from.
type MarkupGenerator interface {
	Generate(node MathNode, source string) string
}

// MathMLGenerator renders presentation MathML. Recognized configuration:
//
//	display          "block" (default) or "inline"; "" omits the attribute
//	xmlns            emit the MathML namespace (default true)
//	alttext          copy the braille source into an alttext attribute
//	annotate         wrap the output in <semantics> with the braille source
//	xml-declaration  prefix the output with an XML declaration
type MathMLGenerator struct {
	Config *Data
}

func NewMathMLGenerator(conf *Data) *MathMLGenerator {
	return &MathMLGenerator{Config: conf}
}

// symbols that read as identifiers rather than operators
var identifierSymbols = map[string]bool{
	"∞": true,
	"∅": true,
	"∂": true,
	"∇": true,
	"°": true,
	"%": true,
	"′": true,
	"″": true,
}

func (g *MathMLGenerator) Generate(node MathNode, source string) string {
	gen := &Generator{Config: g.Config}
	root := element("math")
	if gen.GetConfigBool("xmlns", true) {
		setAttr(root, "xmlns", MathMLNamespace)
	}
	if display := gen.GetConfigString("display", "block"); display != "" {
		setAttr(root, "display", display)
	}
	if gen.GetConfigBool("alttext", false) {
		setAttr(root, "alttext", source)
	}
	if gen.GetConfigBool("annotate", false) {
		semantics := element("semantics")
		row := element("mrow")
		appendInline(row, node)
		semantics.AppendChild(row)
		annotation := element("annotation")
		setAttr(annotation, "encoding", BrailleEncoding)
		annotation.AppendChild(text(source))
		semantics.AppendChild(annotation)
		root.AppendChild(semantics)
	} else {
		appendInline(root, node)
	}
	gen.Begin()
	if gen.GetConfigBool("xml-declaration", false) {
		gen.Emit(`<?xml version="1.0" encoding="UTF-8"?>`)
	}
	gen.Render(root)
	return gen.End()
}

func element(name string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: name}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func token(name, s string) *html.Node {
	return element(name, text(s))
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// appendInline adds node to parent, splicing a row's children in directly
// since parent already lays out its content as a row.
func appendInline(parent *html.Node, node MathNode) {
	switch v := node.(type) {
	case Row:
		for _, c := range v.Children {
			parent.AppendChild(mathml(c))
		}
	case Empty, nil:
	default:
		parent.AppendChild(mathml(node))
	}
}

// mathml converts node to exactly one element, so it can fill a positional
// slot of mfrac, mroot, msup or msub.
func mathml(node MathNode) *html.Node {
	switch v := node.(type) {
	case Number:
		return token("mn", v.Text)
	case Identifier:
		return token("mi", v.Name())
	case Greek:
		return token("mi", string(v.Letter))
	case Operator:
		if identifierSymbols[v.Symbol] {
			return token("mi", v.Symbol)
		}
		return token("mo", v.Symbol)
	case Fraction:
		return element("mfrac", mathml(v.Numerator), mathml(v.Denominator))
	case Radical:
		if v.Index == nil {
			sqrt := element("msqrt")
			appendInline(sqrt, v.Radicand)
			return sqrt
		}
		return element("mroot", mathml(v.Radicand), mathml(v.Index))
	case Grouped:
		row := element("mrow", token("mo", v.Open))
		appendInline(row, v.Content)
		row.AppendChild(token("mo", v.Close))
		return row
	case Superscript:
		return element("msup", mathml(v.Base), mathml(v.Script))
	case Subscript:
		return element("msub", mathml(v.Base), mathml(v.Script))
	case Row:
		row := element("mrow")
		appendInline(row, v)
		return row
	}
	return element("mrow")
}
