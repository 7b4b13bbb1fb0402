package mathbraille

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Node is a node of the concrete parse tree. Text holds the cells the node
// matched (whitespace excluded) and Offset the character position of its
// first cell.
type Node struct {
	Rule     Rule    `json:"rule"`
	Text     string  `json:"text,omitempty"`
	Offset   int     `json:"offset"`
	Children []*Node `json:"children,omitempty"`
}

func (n *Node) String() string {
	return fmt.Sprintf("%v(%q)", n.Rule, n.Text)
}

// ParseString parses braille source into a concrete parse tree rooted at a
// RuleMath node. The source is expected to have passed Validate.
func ParseString(src string) (*Node, error) {
	p := &Parser{
		cells:   NewScanner(strings.NewReader(src)).ScanAll(),
		failPos: -1,
	}
	return p.Parse()
}

//----------------

type Parser struct {
	cells    []Cell
	pos      int
	failPos  int
	expected []Rule
}

func (p *Parser) Parse() (*Node, error) {
	start := p.pos
	expr := p.parseExpression(eof)
	if !p.atEnd() {
		p.fail(RuleEOI)
		return nil, p.syntaxError()
	}
	return p.node(RuleMath, start, expr), nil
}

func (p *Parser) atEnd() bool {
	return p.cells[p.pos].Type == EOF
}

// peekRune returns the current cell, or eof when the current position holds
// anything other than a braille cell.
func (p *Parser) peekRune() rune {
	c := p.cells[p.pos]
	if c.Type != CELL {
		return eof
	}
	return c.Rune
}

func (p *Parser) peekAt(i int) rune {
	if p.pos+i >= len(p.cells) {
		return eof
	}
	c := p.cells[p.pos+i]
	if c.Type != CELL {
		return eof
	}
	return c.Rune
}

// fail records that rule was expected at the current position. Only the
// rules expected at the furthest failing position are kept.
func (p *Parser) fail(rule Rule) {
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos < p.failPos {
		return
	}
	for _, r := range p.expected {
		if r == rule {
			return
		}
	}
	p.expected = append(p.expected, rule)
}

func (p *Parser) text(from, to int) string {
	var b strings.Builder
	for _, c := range p.cells[from:to] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

func (p *Parser) node(rule Rule, start int, children ...*Node) *Node {
	return &Node{
		Rule:     rule,
		Text:     p.text(start, p.pos),
		Offset:   p.cells[start].Offset,
		Children: children,
	}
}

func (p *Parser) leaf(rule Rule, from, to int) *Node {
	return &Node{Rule: rule, Text: p.text(from, to), Offset: p.cells[from].Offset}
}

func (p *Parser) matchCell(ch rune, rule Rule) *Node {
	if ch == eof || p.peekRune() != ch {
		return nil
	}
	p.pos++
	return p.leaf(rule, p.pos-1, p.pos)
}

func (p *Parser) matchSequence(cells string) bool {
	i := 0
	for _, ch := range cells {
		if p.peekAt(i) != ch {
			return false
		}
		i++
	}
	return true
}

func (p *Parser) consume(rule Rule, cells string) *Node {
	from := p.pos
	p.pos += utf8.RuneCountInString(cells)
	return p.leaf(rule, from, p.pos)
}

func (p *Parser) longestMatch(table []symbol) *symbol {
	var best *symbol
	bestLen := 0
	for i := range table {
		sym := &table[i]
		if n := utf8.RuneCountInString(sym.cells); n > bestLen && p.matchSequence(sym.cells) {
			best = sym
			bestLen = n
		}
	}
	return best
}

// parseExpression consumes terms until none matches. A non-eof stop cell
// also ends the expression when it appears at the start of a term.
func (p *Parser) parseExpression(stop rune) *Node {
	start := p.pos
	var terms []*Node
	for !p.atEnd() {
		if stop != eof && p.peekRune() == stop {
			break
		}
		term := p.parseTerm()
		if term == nil {
			break
		}
		terms = append(terms, term)
	}
	return p.node(RuleExpression, start, terms...)
}

func (p *Parser) parseTerm() *Node {
	start := p.pos
	if atom := p.parseAtom(); atom != nil {
		return p.node(RuleTerm, start, atom)
	}
	if op := p.parseOperator(); op != nil {
		return p.node(RuleTerm, start, op)
	}
	p.fail(RuleTerm)
	return nil
}

func (p *Parser) parseAtom() *Node {
	start := p.pos
	primary := p.parsePrimary()
	if primary == nil {
		return nil
	}
	base := p.node(RuleAtom, start, primary)
	var scripts []*Node
	for {
		ch := p.peekRune()
		if ch != SuperscriptIndicator && ch != SubscriptIndicator {
			break
		}
		script := p.parseScript()
		if script == nil {
			break
		}
		scripts = append(scripts, script)
	}
	if len(scripts) == 0 {
		return base
	}
	scripted := p.node(RuleScriptedAtom, start, append([]*Node{base}, scripts...)...)
	return p.node(RuleAtom, start, scripted)
}

func (p *Parser) parsePrimary() *Node {
	if n := p.parseNumber(); n != nil {
		return n
	}
	if n := p.parseLetter(); n != nil {
		return n
	}
	if n := p.parseGreekLetter(); n != nil {
		return n
	}
	if n := p.parseSpecialSymbol(); n != nil {
		return n
	}
	if n := p.parseFraction(); n != nil {
		return n
	}
	if n := p.parseRadical(); n != nil {
		return n
	}
	return p.parseGrouped()
}

func (p *Parser) parseScript() *Node {
	start := p.pos
	indicator := p.matchCell(SuperscriptIndicator, RuleSuperscriptIndicator)
	if indicator == nil {
		indicator = p.matchCell(SubscriptIndicator, RuleSubscriptIndicator)
	}
	if indicator == nil {
		return nil
	}
	children := []*Node{indicator}
	contentStart := p.pos
	expr := p.parseExpression(eof)
	if len(expr.Children) > 0 {
		children = append(children, p.node(RuleScriptContent, contentStart, expr))
	}
	end := p.matchCell(ScriptEnd, RuleScriptEnd)
	if end == nil {
		p.fail(RuleScriptEnd)
		p.pos = start
		return nil
	}
	children = append(children, end)
	return p.node(RuleScript, start, children...)
}

func (p *Parser) parseNumber() *Node {
	start := p.pos
	indicator := p.matchCell(NumericIndicator, RuleNumericIndicator)
	if indicator == nil {
		return nil
	}
	children := []*Node{indicator}
	digits, points := 0, 0
	for {
		ch := p.peekRune()
		if _, ok := DigitFor(ch); ok {
			children = append(children, p.matchCell(ch, RuleDigit))
			digits++
		} else if ch == DecimalPoint && points == 0 {
			children = append(children, p.matchCell(ch, RuleDecimalPoint))
			points++
		} else {
			break
		}
	}
	if digits == 0 {
		p.fail(RuleDigit)
		p.pos = start
		return nil
	}
	return p.node(RuleNumber, start, children...)
}

func (p *Parser) parseLetter() *Node {
	start := p.pos
	var children []*Node
	if capital := p.matchCell(CapitalIndicator, RuleCapitalIndicator); capital != nil {
		children = append(children, capital)
	}
	var signs []int
	for p.peekRune() == LetterSign {
		signs = append(signs, p.pos)
		p.pos++
	}
	if len(signs) == 0 {
		if len(children) > 0 {
			p.fail(RuleLetterSign)
		}
		p.pos = start
		return nil
	}
	for i, at := range signs {
		rule := RuleGrade1Indicator
		if i == len(signs)-1 {
			rule = RuleLetterSign
		}
		children = append(children, p.leaf(rule, at, at+1))
	}
	ch := p.peekRune()
	if _, ok := LetterFor(ch); !ok {
		p.fail(RuleLetterChar)
		p.pos = start
		return nil
	}
	children = append(children, p.matchCell(ch, RuleLetterChar))
	return p.node(RuleLetter, start, children...)
}

func (p *Parser) parseGreekLetter() *Node {
	start := p.pos
	indicator := p.matchCell(GreekIndicator, RuleGreekIndicator)
	if indicator == nil {
		return nil
	}
	children := []*Node{indicator}
	if capital := p.matchCell(CapitalIndicator, RuleCapitalIndicator); capital != nil {
		children = append(children, capital)
	}
	ch := p.peekRune()
	if _, ok := GreekFor(ch); !ok {
		p.fail(RuleGreekChar)
		p.pos = start
		return nil
	}
	children = append(children, p.matchCell(ch, RuleGreekChar))
	return p.node(RuleGreekLetter, start, children...)
}

func (p *Parser) parseSpecialSymbol() *Node {
	start := p.pos
	sym := p.longestMatch(specialSymbols)
	if sym == nil {
		return nil
	}
	leaf := p.consume(sym.rule, sym.cells)
	return p.node(RuleSpecialSymbol, start, leaf)
}

func (p *Parser) parseFraction() *Node {
	start := p.pos
	open := p.matchCell(FractionOpen, RuleFractionOpen)
	if open == nil {
		return nil
	}
	numerator := p.parseExpression(eof)
	line := p.matchCell(FractionLine, RuleFractionLine)
	if line == nil {
		p.fail(RuleFractionLine)
		p.pos = start
		return nil
	}
	denominator := p.parseExpression(eof)
	closing := p.matchCell(FractionClose, RuleFractionClose)
	if closing == nil {
		p.fail(RuleFractionClose)
		p.pos = start
		return nil
	}
	return p.node(RuleFraction, start, open, numerator, line, denominator, closing)
}

func (p *Parser) parseRadical() *Node {
	start := p.pos
	var children []*Node
	if indicator := p.matchCell(IndexIndicator, RuleIndexIndicator); indicator != nil {
		// the index runs up to the radical start cell
		index := p.parseExpression(RadicalStart)
		children = append(children, p.node(RuleRadicalIndex, start, indicator, index))
	}
	open := p.matchCell(RadicalStart, RuleRadicalStart)
	if open == nil {
		if len(children) > 0 {
			p.fail(RuleRadicalStart)
		}
		p.pos = start
		return nil
	}
	radicand := p.parseExpression(eof)
	closing := p.matchCell(RadicalEnd, RuleRadicalEnd)
	if closing == nil {
		p.fail(RuleRadicalEnd)
		p.pos = start
		return nil
	}
	children = append(children, open, radicand, closing)
	return p.node(RuleRadical, start, children...)
}

func (p *Parser) parseGrouped() *Node {
	start := p.pos
	for _, b := range brackets {
		if !p.matchSequence(b.openCells) {
			continue
		}
		open := p.consume(b.open, b.openCells)
		content := p.parseExpression(eof)
		if !p.matchSequence(b.closeCells) {
			p.fail(b.close)
			p.pos = start
			return nil
		}
		closing := p.consume(b.close, b.closeCells)
		return p.node(RuleGrouped, start, open, content, closing)
	}
	return nil
}

func (p *Parser) parseOperator() *Node {
	start := p.pos
	var best *symbol
	var category Rule
	for _, cat := range operatorCategories {
		sym := p.longestMatch(cat.symbols)
		if sym != nil && (best == nil || utf8.RuneCountInString(sym.cells) > utf8.RuneCountInString(best.cells)) {
			best = sym
			category = cat.rule
		}
	}
	if best == nil {
		return nil
	}
	leaf := p.consume(best.rule, best.cells)
	return p.node(RuleOperator, start, p.node(category, start, leaf))
}

func (p *Parser) syntaxError() error {
	at := p.cells[p.failPos]
	var names []string
	seen := make(map[string]bool)
	for _, r := range p.expected {
		d := r.Description()
		if !seen[d] {
			seen[d] = true
			names = append(names, d)
		}
	}
	found := "end of input"
	if at.Type != EOF {
		found = describeRune(at.Rune)
	}
	return &Error{
		Kind:     ParseFailure,
		Position: at.Offset,
		Symbol:   at.Rune,
		Message:  fmt.Sprintf("expected %s, found %s", alternatives(names), found),
	}
}

func describeRune(ch rune) string {
	name := runenames.Name(ch)
	if name == "" {
		return fmt.Sprintf("%q", ch)
	}
	return fmt.Sprintf("%q (%s)", ch, name)
}

func alternatives(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
