// Package document finds braille math embedded in Markdown and translates it.
package document

import (
	"bytes"
	"strings"

	"github.com/boynton/mathbraille"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Languages are the fenced code block info strings that mark braille math.
var Languages = []string{"braille-math", "brl"}

// Block is one fenced braille math block. Line is the 1-based line of the
// block's first content line. Section is the text of the closest preceding
// heading, if any.
type Block struct {
	Line    int    `json:"line"`
	Section string `json:"section,omitempty"`
	Braille string `json:"braille"`
}

// Translation pairs a block with its translation result.
type Translation struct {
	Block
	Result *mathbraille.Result `json:"result"`
}

func isBrailleLanguage(lang string) bool {
	for _, l := range Languages {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}

// Extract returns the braille math blocks of a Markdown document, in document
// order. Blocks with no content lines are skipped.
func Extract(src []byte) []Block {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var blocks []Block
	section := ""
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			section = headingText(node, src)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if !isBrailleLanguage(string(node.Language(src))) {
				return ast.WalkSkipChildren, nil
			}
			lines := node.Lines()
			if lines.Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			blocks = append(blocks, Block{
				Line:    lineOf(src, lines.At(0).Start),
				Section: section,
				Braille: strings.TrimRight(buf.String(), "\n"),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// TranslateAll extracts and translates every braille math block.
func TranslateAll(t *mathbraille.Translator, src []byte) []Translation {
	blocks := Extract(src)
	out := make([]Translation, len(blocks))
	for i, b := range blocks {
		out[i] = Translation{Block: b, Result: t.Translate(b.Braille)}
	}
	return out
}

func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}

func lineOf(src []byte, offset int) int {
	return bytes.Count(src[:offset], []byte("\n")) + 1
}
