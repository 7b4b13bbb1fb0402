package mathbraille

// Indicator and delimiter cells.
const (
	NumericIndicator     = '⠼'
	CapitalIndicator     = '⠠'
	LetterSign           = '⠰'
	GreekIndicator       = '⠨'
	FractionOpen         = '⠷'
	FractionLine         = '⠌'
	FractionClose        = '⠾'
	RadicalStart         = '⠩'
	RadicalEnd           = '⠬'
	IndexIndicator       = '⠫'
	SuperscriptIndicator = '⠔'
	SubscriptIndicator   = '⠢'
	ScriptEnd            = '⠱'
	DecimalPoint         = '⠲'
	BlankCell            = '⠀'
)

// The braille patterns block.
const (
	FirstCell = '⠀'
	LastCell  = '⣿'
)

// IsCell reports whether ch is a braille pattern.
func IsCell(ch rune) bool {
	return ch >= FirstCell && ch <= LastCell
}

// IsWhitespace reports whether ch is insignificant between terms: ASCII
// space, tab, newline, carriage return, or the blank braille cell.
func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == BlankCell
}

var digits = map[rune]byte{
	'⠁': '1',
	'⠃': '2',
	'⠉': '3',
	'⠙': '4',
	'⠑': '5',
	'⠋': '6',
	'⠛': '7',
	'⠓': '8',
	'⠊': '9',
	'⠚': '0',
}

var letters = map[rune]rune{
	'⠁': 'a', '⠃': 'b', '⠉': 'c', '⠙': 'd', '⠑': 'e',
	'⠋': 'f', '⠛': 'g', '⠓': 'h', '⠊': 'i', '⠚': 'j',
	'⠅': 'k', '⠇': 'l', '⠍': 'm', '⠝': 'n', '⠕': 'o',
	'⠏': 'p', '⠟': 'q', '⠗': 'r', '⠎': 's', '⠞': 't',
	'⠥': 'u', '⠧': 'v', '⠺': 'w', '⠭': 'x', '⠽': 'y',
	'⠵': 'z',
}

var greekLetters = map[rune]rune{
	'⠁': 'α', '⠃': 'β', '⠛': 'γ', '⠙': 'δ', '⠑': 'ε',
	'⠵': 'ζ', '⠱': 'η', '⠹': 'θ', '⠊': 'ι', '⠅': 'κ',
	'⠇': 'λ', '⠍': 'μ', '⠝': 'ν', '⠭': 'ξ', '⠕': 'ο',
	'⠏': 'π', '⠗': 'ρ', '⠎': 'σ', '⠞': 'τ', '⠥': 'υ',
	'⠋': 'φ', '⠯': 'χ', '⠽': 'ψ', '⠺': 'ω',
	'⠫': '∂', '⠻': 'ϖ',
}

// DigitFor maps a cell read in numeric mode to its ASCII digit.
func DigitFor(cell rune) (byte, bool) {
	d, ok := digits[cell]
	return d, ok
}

// LetterFor maps a cell following the letter sign to its lower case Latin letter.
func LetterFor(cell rune) (rune, bool) {
	l, ok := letters[cell]
	return l, ok
}

// GreekFor maps a cell following the Greek indicator to its lower case Greek letter.
func GreekFor(cell rune) (rune, bool) {
	g, ok := greekLetters[cell]
	return g, ok
}

// Lower case Greek letters in these ranges have their capital 0x20 below.
// Final sigma (U+03C2) sits between them and has no capital.
func hasGreekCapital(ch rune) bool {
	return (ch >= 'α' && ch <= 'ρ') || (ch >= 'σ' && ch <= 'ω')
}

// symbol is a fixed cell sequence that matches one concrete rule.
type symbol struct {
	rule    Rule
	cells   string
	display string
}

var specialSymbols = []symbol{
	{RuleInfinity, "⠠⠿", "∞"},
	{RuleEmptySet, "⠸⠚", "∅"},
	{RuleElementOf, "⠘⠑", "∈"},
	{RuleNotElementOf, "⠘⠑⠈⠱", "∉"},
	{RuleForAll, "⠘⠁", "∀"},
	{RuleExists, "⠘⠢", "∃"},
	{RuleNabla, "⠈⠫", "∇"},
	{RulePartial, "⠈⠙", "∂"},
	{RuleDegree, "⠘⠚", "°"},
	{RulePercent, "⠨⠴", "%"},
	{RuleTherefore, "⠠⠡", "∴"},
	{RuleBecause, "⠈⠌", "∵"},
	{RulePrime, "⠶", "′"},
	{RuleDoublePrime, "⠶⠶", "″"},
}

var arithmeticOperators = []symbol{
	{RulePlus, "⠐⠖", "+"},
	{RuleMinus, "⠐⠤", "−"},
	{RuleTimes, "⠐⠦", "×"},
	{RuleDivide, "⠐⠌", "÷"},
	{RulePlusMinus, "⠸⠖", "±"},
	{RuleMinusPlus, "⠸⠤", "∓"},
	{RuleDotOperator, "⠐⠲", "⋅"},
}

var comparisonOperators = []symbol{
	{RuleEquals, "⠐⠶", "="},
	{RuleNotEqual, "⠐⠶⠈⠱", "≠"},
	{RuleLess, "⠈⠣", "<"},
	{RuleGreater, "⠈⠜", ">"},
	{RuleLessEqual, "⠸⠈⠣", "≤"},
	{RuleGreaterEqual, "⠸⠈⠜", "≥"},
	{RuleApprox, "⠘⠶", "≈"},
	{RuleCongruent, "⠐⠘⠶", "≅"},
	{RuleEquivalent, "⠸⠶", "≡"},
}

var setOperators = []symbol{
	{RuleSubset, "⠘⠣", "⊂"},
	{RuleSubsetEqual, "⠸⠘⠣", "⊆"},
	{RuleSuperset, "⠘⠜", "⊃"},
	{RuleSupersetEqual, "⠸⠘⠜", "⊇"},
	{RuleSetElementOf, "⠘⠑", "∈"},
	{RuleUnion, "⠨⠖", "∪"},
	{RuleIntersection, "⠨⠦", "∩"},
}

var logicalOperators = []symbol{
	{RuleAnd, "⠈⠩", "∧"},
	{RuleOr, "⠈⠬", "∨"},
	{RuleNot, "⠈⠹", "¬"},
	{RuleImplies, "⠸⠳⠕", "⇒"},
	{RuleIff, "⠸⠳⠪⠕", "⇔"},
	{RuleLogicalForAll, "⠘⠁", "∀"},
	{RuleLogicalExists, "⠘⠢", "∃"},
}

var arrowOperators = []symbol{
	{RuleArrowRight, "⠳⠕", "→"},
	{RuleArrowLeft, "⠳⠪", "←"},
	{RuleArrowUp, "⠳⠬", "↑"},
	{RuleArrowDown, "⠳⠩", "↓"},
}

// operatorCategories lists the operator classes in the order the parser
// tries them.
var operatorCategories = []struct {
	rule    Rule
	symbols []symbol
}{
	{RuleArithmeticOperator, arithmeticOperators},
	{RuleComparisonOperator, comparisonOperators},
	{RuleSetOperator, setOperators},
	{RuleLogicalOperator, logicalOperators},
	{RuleArrowOperator, arrowOperators},
}

// bracket is a grouping pair, matched by its opening cells.
type bracket struct {
	open, close           Rule
	openCells, closeCells string
	openText, closeText   string
}

var brackets = []bracket{
	{RuleOpenParen, RuleCloseParen, "⠐⠣", "⠐⠜", "(", ")"},
	{RuleOpenBracket, RuleCloseBracket, "⠨⠣", "⠨⠜", "[", "]"},
	{RuleOpenBrace, RuleCloseBrace, "⠸⠣", "⠸⠜", "{", "}"},
	{RuleOpenAngle, RuleCloseAngle, "⠈⠨⠣", "⠈⠨⠜", "⟨", "⟩"},
}

var (
	specialDisplay  = displayTable(specialSymbols)
	operatorDisplay = displayTable(arithmeticOperators, comparisonOperators, setOperators, logicalOperators, arrowOperators)
	bracketPairs    = bracketTable()
)

func displayTable(tables ...[]symbol) map[Rule]string {
	m := make(map[Rule]string)
	for _, table := range tables {
		for _, sym := range table {
			m[sym.rule] = sym.display
		}
	}
	return m
}

func bracketTable() map[Rule]bracket {
	m := make(map[Rule]bracket, len(brackets))
	for _, b := range brackets {
		m[b.open] = b
	}
	return m
}
