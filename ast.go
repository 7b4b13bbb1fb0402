package mathbraille

import (
	"unicode"
)

type NodeKind int

const (
	EmptyKind NodeKind = iota
	NumberKind
	IdentifierKind
	GreekKind
	OperatorKind
	FractionKind
	RadicalKind
	GroupedKind
	SuperscriptKind
	SubscriptKind
	RowKind
)

func (k NodeKind) String() string {
	switch k {
	case EmptyKind:
		return "Empty"
	case NumberKind:
		return "Number"
	case IdentifierKind:
		return "Identifier"
	case GreekKind:
		return "Greek"
	case OperatorKind:
		return "Operator"
	case FractionKind:
		return "Fraction"
	case RadicalKind:
		return "Radical"
	case GroupedKind:
		return "Grouped"
	case SuperscriptKind:
		return "Superscript"
	case SubscriptKind:
		return "Subscript"
	case RowKind:
		return "Row"
	}
	return "?"
}

// MathNode is a node of the semantic tree. Nodes are values: a tree is
// built once and never modified.
type MathNode interface {
	Kind() NodeKind
	mathNode()
}

type Empty struct{}

// Number is a run of decimal digits, possibly containing one decimal point.
type Number struct {
	Text string
}

// Identifier is a single Latin letter variable. Letter is always lower case;
// Capital records the capital indicator.
type Identifier struct {
	Letter  rune
	Capital bool
}

// Name returns the letter as displayed.
func (id Identifier) Name() string {
	if id.Capital {
		return string(unicode.ToUpper(id.Letter))
	}
	return string(id.Letter)
}

// Greek holds a Greek letter in its displayed case.
type Greek struct {
	Letter rune
}

func (g Greek) IsUpper() bool {
	return unicode.IsUpper(g.Letter)
}

// Operator is an operator, relation or symbol already mapped to its display form.
type Operator struct {
	Symbol string
}

type Fraction struct {
	Numerator   MathNode
	Denominator MathNode
}

// Radical is a square root when Index is nil, otherwise an n-th root.
type Radical struct {
	Index    MathNode
	Radicand MathNode
}

type Grouped struct {
	Open    string
	Close   string
	Content MathNode
}

type Superscript struct {
	Base   MathNode
	Script MathNode
}

type Subscript struct {
	Base   MathNode
	Script MathNode
}

// Row is a sequence of two or more siblings. Use NewRow to build one.
type Row struct {
	Children []MathNode
}

func (Empty) Kind() NodeKind       { return EmptyKind }
func (Number) Kind() NodeKind      { return NumberKind }
func (Identifier) Kind() NodeKind  { return IdentifierKind }
func (Greek) Kind() NodeKind       { return GreekKind }
func (Operator) Kind() NodeKind    { return OperatorKind }
func (Fraction) Kind() NodeKind    { return FractionKind }
func (Radical) Kind() NodeKind     { return RadicalKind }
func (Grouped) Kind() NodeKind     { return GroupedKind }
func (Superscript) Kind() NodeKind { return SuperscriptKind }
func (Subscript) Kind() NodeKind   { return SubscriptKind }
func (Row) Kind() NodeKind         { return RowKind }

func (Empty) mathNode()       {}
func (Number) mathNode()      {}
func (Identifier) mathNode()  {}
func (Greek) mathNode()       {}
func (Operator) mathNode()    {}
func (Fraction) mathNode()    {}
func (Radical) mathNode()     {}
func (Grouped) mathNode()     {}
func (Superscript) mathNode() {}
func (Subscript) mathNode()   {}
func (Row) mathNode()         {}

// NewRow drops Empty nodes and folds what remains: nothing becomes Empty,
// a single node is returned as is, and anything longer becomes a Row.
func NewRow(nodes []MathNode) MathNode {
	var children []MathNode
	for _, n := range nodes {
		if IsEmpty(n) {
			continue
		}
		children = append(children, n)
	}
	switch len(children) {
	case 0:
		return Empty{}
	case 1:
		return children[0]
	}
	return Row{Children: children}
}

func IsEmpty(n MathNode) bool {
	return n == nil || n.Kind() == EmptyKind
}

// Dump converts a tree to plain maps and slices, suitable for Pretty.
func Dump(n MathNode) interface{} {
	if n == nil {
		return nil
	}
	m := map[string]interface{}{"kind": n.Kind().String()}
	switch v := n.(type) {
	case Number:
		m["text"] = v.Text
	case Identifier:
		m["letter"] = string(v.Letter)
		if v.Capital {
			m["capital"] = true
		}
	case Greek:
		m["letter"] = string(v.Letter)
	case Operator:
		m["symbol"] = v.Symbol
	case Fraction:
		m["numerator"] = Dump(v.Numerator)
		m["denominator"] = Dump(v.Denominator)
	case Radical:
		if v.Index != nil {
			m["index"] = Dump(v.Index)
		}
		m["radicand"] = Dump(v.Radicand)
	case Grouped:
		m["open"] = v.Open
		m["close"] = v.Close
		m["content"] = Dump(v.Content)
	case Superscript:
		m["base"] = Dump(v.Base)
		m["superscript"] = Dump(v.Script)
	case Subscript:
		m["base"] = Dump(v.Base)
		m["subscript"] = Dump(v.Script)
	case Row:
		var children []interface{}
		for _, c := range v.Children {
			children = append(children, Dump(c))
		}
		m["children"] = children
	}
	return m
}
