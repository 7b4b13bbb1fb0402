package mathbraille

import (
	"bufio"
	"bytes"

	"golang.org/x/net/html"
)

// Generator holds the output buffer and configuration shared by markup
// generators. A Generator is used for a single document.
type Generator struct {
	Config *Data
	Err    error
	buf    bytes.Buffer
	writer *bufio.Writer
}

func (gen *Generator) GetConfigString(k string, defaultValue string) string {
	if !gen.Config.Has(k) {
		return defaultValue
	}
	return gen.Config.GetString(k)
}

func (gen *Generator) GetConfigBool(k string, defaultValue bool) bool {
	if !gen.Config.Has(k) {
		return defaultValue
	}
	return gen.Config.GetBool(k)
}

func (gen *Generator) Emit(s string) {
	if gen.Err == nil && gen.writer != nil {
		_, gen.Err = gen.writer.WriteString(s)
	}
}

// Render serializes an element tree into the output.
func (gen *Generator) Render(n *html.Node) {
	if gen.Err == nil && gen.writer != nil {
		gen.Err = html.Render(gen.writer, n)
	}
}

func (gen *Generator) Begin() {
	if gen.Err != nil {
		return
	}
	gen.buf.Reset()
	gen.writer = bufio.NewWriter(&gen.buf)
}

func (gen *Generator) End() string {
	if gen.Err != nil || gen.writer == nil {
		return ""
	}
	gen.writer.Flush()
	return gen.buf.String()
}
