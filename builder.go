package mathbraille

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// errMissingChild reports a parse tree node without a child its rule requires.
var errMissingChild = errors.New("expected child absent")

// builder turns a concrete parse tree into a MathNode tree. Warnings
// collected on the way are appended in traversal order.
type builder struct {
	log      *slog.Logger
	warnings []Warning
}

// Build translates a parse tree into its semantic tree.
func Build(root *Node) (MathNode, error) {
	b := &builder{log: discardLogger}
	return b.build(root)
}

func (b *builder) build(n *Node) (MathNode, error) {
	if n == nil {
		return nil, errMissingChild
	}
	switch n.Rule {
	case RuleMath, RuleTerm, RuleAtom, RuleScriptContent:
		return b.buildFirstChild(n)
	case RuleScript:
		return b.buildScriptContent(n)
	case RuleExpression:
		return b.buildExpression(n)
	case RuleScriptedAtom:
		return b.buildScriptedAtom(n)
	case RuleNumber:
		return b.buildNumber(n), nil
	case RuleLetter:
		return b.buildLetter(n)
	case RuleGreekLetter:
		return b.buildGreekLetter(n)
	case RuleSpecialSymbol:
		return b.buildSpecialSymbol(n)
	case RuleFraction:
		return b.buildFraction(n)
	case RuleRadical:
		return b.buildRadical(n)
	case RuleGrouped:
		return b.buildGrouped(n)
	case RuleOperator, RuleArithmeticOperator, RuleComparisonOperator,
		RuleSetOperator, RuleLogicalOperator, RuleArrowOperator:
		return b.buildOperator(n)
	case RuleNumericIndicator, RuleCapitalIndicator, RuleGrade1Indicator, RuleLetterSign,
		RuleGreekIndicator, RuleFractionOpen, RuleFractionLine, RuleFractionClose,
		RuleRadicalStart, RuleRadicalEnd, RuleIndexIndicator,
		RuleSuperscriptIndicator, RuleSubscriptIndicator, RuleScriptEnd:
		return Empty{}, nil
	}
	if display, ok := operatorDisplay[n.Rule]; ok {
		return Operator{Symbol: display}, nil
	}
	if display, ok := specialDisplay[n.Rule]; ok {
		return Operator{Symbol: display}, nil
	}
	// Rules with no translation of their own (digit, letter_char, brackets,
	// radical_index seen out of context, and any rule added to the grammar
	// before the builder learns about it) contribute nothing.
	b.log.Debug("no translation for rule", "rule", n.Rule.String(), "offset", n.Offset)
	return Empty{}, nil
}

func (b *builder) buildFirstChild(n *Node) (MathNode, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	return b.build(n.Children[0])
}

func (b *builder) buildScriptContent(n *Node) (MathNode, error) {
	if content := scriptContent(n); content != nil {
		return b.build(content)
	}
	return Empty{}, nil
}

func (b *builder) buildExpression(n *Node) (MathNode, error) {
	nodes := make([]MathNode, 0, len(n.Children))
	for _, child := range n.Children {
		node, err := b.build(child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return NewRow(nodes), nil
}

// scriptContent returns the second child of a script when it holds content.
// The first child is always the superscript or subscript indicator.
func scriptContent(script *Node) *Node {
	if len(script.Children) < 2 || script.Children[1].Rule != RuleScriptContent {
		return nil
	}
	return script.Children[1]
}

func (b *builder) buildScriptedAtom(n *Node) (MathNode, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	result, err := b.build(n.Children[0])
	if err != nil {
		return nil, err
	}
	for _, script := range n.Children[1:] {
		if script.Rule != RuleScript || len(script.Children) == 0 {
			continue
		}
		content := scriptContent(script)
		if content == nil {
			continue
		}
		node, err := b.build(content)
		if err != nil {
			return nil, err
		}
		if IsEmpty(node) {
			continue
		}
		switch script.Children[0].Rule {
		case RuleSuperscriptIndicator:
			result = Superscript{Base: result, Script: node}
		case RuleSubscriptIndicator:
			result = Subscript{Base: result, Script: node}
		}
	}
	return result, nil
}

func (b *builder) buildNumber(n *Node) MathNode {
	var text strings.Builder
	for _, child := range n.Children {
		switch child.Rule {
		case RuleDigit:
			d, ok := DigitFor(firstRune(child.Text))
			if !ok {
				d = '?'
			}
			text.WriteByte(d)
		case RuleDecimalPoint:
			text.WriteByte('.')
		}
	}
	return Number{Text: text.String()}
}

func (b *builder) buildLetter(n *Node) (MathNode, error) {
	capital := false
	var letter rune
	for _, child := range n.Children {
		switch child.Rule {
		case RuleCapitalIndicator:
			capital = true
		case RuleLetterChar:
			l, ok := LetterFor(firstRune(child.Text))
			if !ok {
				l = '?'
			}
			letter = l
		}
	}
	if letter == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	return Identifier{Letter: letter, Capital: capital}, nil
}

func (b *builder) buildGreekLetter(n *Node) (MathNode, error) {
	capital := false
	var letter rune
	for _, child := range n.Children {
		switch child.Rule {
		case RuleCapitalIndicator:
			capital = true
		case RuleGreekChar:
			g, ok := GreekFor(firstRune(child.Text))
			if !ok {
				g = '?'
			}
			letter = g
		}
	}
	if letter == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	if capital && hasGreekCapital(letter) {
		letter -= 0x20
	}
	return Greek{Letter: letter}, nil
}

func (b *builder) buildSpecialSymbol(n *Node) (MathNode, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	rule := n.Children[0].Rule
	display, ok := specialDisplay[rule]
	if !ok {
		b.log.Debug("placeholder for unmapped special symbol", "rule", rule.String(), "offset", n.Offset)
		display = "?"
	}
	return Operator{Symbol: display}, nil
}

func (b *builder) buildOperator(n *Node) (MathNode, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	concrete := n.Children[0]
	if n.Rule == RuleOperator {
		if len(concrete.Children) == 0 {
			return nil, fmt.Errorf("%v: %w", concrete.Rule, errMissingChild)
		}
		concrete = concrete.Children[0]
	}
	display, ok := operatorDisplay[concrete.Rule]
	if !ok {
		b.log.Debug("placeholder for unmapped operator", "rule", concrete.Rule.String(), "offset", n.Offset)
		display = "?"
	}
	return Operator{Symbol: display}, nil
}

// contentChildren returns the children of n that are not delimiters.
func contentChildren(n *Node) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Rule.IsIndicator() {
			continue
		}
		result = append(result, child)
	}
	return result
}

func (b *builder) buildFraction(n *Node) (MathNode, error) {
	parts := contentChildren(n)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	numerator, err := b.build(parts[0])
	if err != nil {
		return nil, err
	}
	denominator, err := b.build(parts[1])
	if err != nil {
		return nil, err
	}
	return Fraction{Numerator: numerator, Denominator: denominator}, nil
}

func (b *builder) buildRadical(n *Node) (MathNode, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	var index MathNode
	rest := n.Children
	if first := n.Children[0]; first.Rule == RuleRadicalIndex {
		if len(first.Children) < 2 {
			return nil, fmt.Errorf("%v: %w", first.Rule, errMissingChild)
		}
		var err error
		index, err = b.build(first.Children[1])
		if err != nil {
			return nil, err
		}
		if IsEmpty(index) {
			index = nil
		}
		rest = n.Children[1:]
	}
	var radicandNode *Node
	for _, child := range rest {
		if !child.Rule.IsIndicator() {
			radicandNode = child
			break
		}
	}
	if radicandNode == nil {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	radicand, err := b.build(radicandNode)
	if err != nil {
		return nil, err
	}
	return Radical{Index: index, Radicand: radicand}, nil
}

func (b *builder) buildGrouped(n *Node) (MathNode, error) {
	if len(n.Children) < 2 {
		return nil, fmt.Errorf("%v: %w", n.Rule, errMissingChild)
	}
	open, close := "?", "?"
	if pair, ok := bracketPairs[n.Children[0].Rule]; ok {
		open, close = pair.openText, pair.closeText
	}
	content, err := b.build(n.Children[1])
	if err != nil {
		return nil, err
	}
	return Grouped{Open: open, Close: close, Content: content}, nil
}

func firstRune(s string) rune {
	for _, ch := range s {
		return ch
	}
	return eof
}
