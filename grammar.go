package mathbraille

// Rule identifies a grammar rule. Every node of the concrete parse tree is
// tagged with the rule that produced it.
//
//	math           = expression EOI
//	expression     = term*
//	term           = atom | operator
//	atom           = scripted_atom | number | letter | greek_letter
//	               | special_symbol | fraction | radical | grouped
//	scripted_atom  = atom script*
//	script         = (superscript_indicator | subscript_indicator) script_content script_end
//	script_content = expression
//	number         = numeric_indicator (digit | decimal_point)+
//	letter         = [capital_indicator] grade1_indicator* letter_sign letter_char
//	greek_letter   = greek_indicator [capital_indicator] greek_char
//	special_symbol = infinity | empty_set | element_of | ... | double_prime
//	fraction       = fraction_open expression fraction_line expression fraction_close
//	radical        = [radical_index] radical_start expression radical_end
//	radical_index  = index_indicator expression
//	grouped        = open_paren expression close_paren | open_bracket ... | open_brace ... | open_angle ...
//	operator       = arithmetic_operator | comparison_operator | set_operator
//	               | logical_operator | arrow_operator
type Rule int

const (
	RuleMath Rule = iota
	RuleExpression
	RuleTerm
	RuleAtom
	RuleScriptedAtom
	RuleScript
	RuleScriptContent
	RuleSuperscriptIndicator
	RuleSubscriptIndicator
	RuleScriptEnd

	RuleNumber
	RuleNumericIndicator
	RuleDigit
	RuleDecimalPoint

	RuleLetter
	RuleCapitalIndicator
	RuleGrade1Indicator
	RuleLetterSign
	RuleLetterChar

	RuleGreekLetter
	RuleGreekIndicator
	RuleGreekChar

	RuleSpecialSymbol
	RuleInfinity
	RuleEmptySet
	RuleElementOf
	RuleNotElementOf
	RuleForAll
	RuleExists
	RuleNabla
	RulePartial
	RuleDegree
	RulePercent
	RuleTherefore
	RuleBecause
	RulePrime
	RuleDoublePrime

	RuleFraction
	RuleFractionOpen
	RuleFractionLine
	RuleFractionClose

	RuleRadical
	RuleRadicalIndex
	RuleIndexIndicator
	RuleRadicalStart
	RuleRadicalEnd

	RuleGrouped
	RuleOpenParen
	RuleCloseParen
	RuleOpenBracket
	RuleCloseBracket
	RuleOpenBrace
	RuleCloseBrace
	RuleOpenAngle
	RuleCloseAngle

	RuleOperator
	RuleArithmeticOperator
	RuleComparisonOperator
	RuleSetOperator
	RuleLogicalOperator
	RuleArrowOperator

	RulePlus
	RuleMinus
	RuleTimes
	RuleDivide
	RulePlusMinus
	RuleMinusPlus
	RuleDotOperator

	RuleEquals
	RuleNotEqual
	RuleLess
	RuleGreater
	RuleLessEqual
	RuleGreaterEqual
	RuleApprox
	RuleCongruent
	RuleEquivalent

	RuleSubset
	RuleSubsetEqual
	RuleSuperset
	RuleSupersetEqual
	RuleSetElementOf
	RuleUnion
	RuleIntersection

	RuleAnd
	RuleOr
	RuleNot
	RuleImplies
	RuleIff
	RuleLogicalForAll
	RuleLogicalExists

	RuleArrowRight
	RuleArrowLeft
	RuleArrowUp
	RuleArrowDown

	RuleEOI

	ruleCount
)

type ruleInfo struct {
	name        string
	description string
}

var rules = [ruleCount]ruleInfo{
	RuleMath:                 {"math", "math expression"},
	RuleExpression:           {"expression", "expression"},
	RuleTerm:                 {"term", "math term"},
	RuleAtom:                 {"atom", "atom"},
	RuleScriptedAtom:         {"scripted_atom", "scripted atom"},
	RuleScript:               {"script", "superscript or subscript"},
	RuleScriptContent:        {"script_content", "script content"},
	RuleSuperscriptIndicator: {"superscript_indicator", "superscript indicator"},
	RuleSubscriptIndicator:   {"subscript_indicator", "subscript indicator"},
	RuleScriptEnd:            {"script_end", "end of script indicator"},

	RuleNumber:           {"number", "number"},
	RuleNumericIndicator: {"numeric_indicator", "numeric indicator"},
	RuleDigit:            {"digit", "digit"},
	RuleDecimalPoint:     {"decimal_point", "decimal point"},

	RuleLetter:           {"letter", "letter"},
	RuleCapitalIndicator: {"capital_indicator", "capital indicator"},
	RuleGrade1Indicator:  {"grade1_indicator", "grade 1 indicator"},
	RuleLetterSign:       {"letter_sign", "letter sign"},
	RuleLetterChar:       {"letter_char", "letter"},

	RuleGreekLetter:    {"greek_letter", "Greek letter"},
	RuleGreekIndicator: {"greek_indicator", "Greek indicator"},
	RuleGreekChar:      {"greek_char", "Greek letter"},

	RuleSpecialSymbol: {"special_symbol", "special symbol"},
	RuleInfinity:      {"infinity", "infinity"},
	RuleEmptySet:      {"empty_set", "empty set"},
	RuleElementOf:     {"element_of", "element of"},
	RuleNotElementOf:  {"not_element_of", "not element of"},
	RuleForAll:        {"for_all", "for all"},
	RuleExists:        {"exists", "exists"},
	RuleNabla:         {"nabla", "nabla"},
	RulePartial:       {"partial", "partial derivative"},
	RuleDegree:        {"degree", "degree sign"},
	RulePercent:       {"percent", "percent sign"},
	RuleTherefore:     {"therefore", "therefore"},
	RuleBecause:       {"because", "because"},
	RulePrime:         {"prime", "prime"},
	RuleDoublePrime:   {"double_prime", "double prime"},

	RuleFraction:      {"fraction", "fraction"},
	RuleFractionOpen:  {"fraction_open", "fraction opening indicator"},
	RuleFractionLine:  {"fraction_line", "fraction line"},
	RuleFractionClose: {"fraction_close", "fraction closing indicator"},

	RuleRadical:        {"radical", "radical"},
	RuleRadicalIndex:   {"radical_index", "radical index"},
	RuleIndexIndicator: {"index_indicator", "radical index indicator"},
	RuleRadicalStart:   {"radical_start", "radical start"},
	RuleRadicalEnd:     {"radical_end", "radical end"},

	RuleGrouped:      {"grouped", "grouped expression"},
	RuleOpenParen:    {"open_paren", "opening parenthesis"},
	RuleCloseParen:   {"close_paren", "closing parenthesis"},
	RuleOpenBracket:  {"open_bracket", "opening bracket"},
	RuleCloseBracket: {"close_bracket", "closing bracket"},
	RuleOpenBrace:    {"open_brace", "opening brace"},
	RuleCloseBrace:   {"close_brace", "closing brace"},
	RuleOpenAngle:    {"open_angle", "opening angle bracket"},
	RuleCloseAngle:   {"close_angle", "closing angle bracket"},

	RuleOperator:           {"operator", "operator"},
	RuleArithmeticOperator: {"arithmetic_operator", "arithmetic operator"},
	RuleComparisonOperator: {"comparison_operator", "comparison operator"},
	RuleSetOperator:        {"set_operator", "set operator"},
	RuleLogicalOperator:    {"logical_operator", "logical operator"},
	RuleArrowOperator:      {"arrow_operator", "arrow"},

	RulePlus:        {"plus", "plus sign"},
	RuleMinus:       {"minus", "minus sign"},
	RuleTimes:       {"times", "times sign"},
	RuleDivide:      {"divide", "division sign"},
	RulePlusMinus:   {"plus_minus", "plus or minus sign"},
	RuleMinusPlus:   {"minus_plus", "minus or plus sign"},
	RuleDotOperator: {"dot_operator", "dot operator"},

	RuleEquals:       {"equals", "equals sign"},
	RuleNotEqual:     {"not_equal", "not equal sign"},
	RuleLess:         {"less", "less than sign"},
	RuleGreater:      {"greater", "greater than sign"},
	RuleLessEqual:    {"less_equal", "less than or equal sign"},
	RuleGreaterEqual: {"greater_equal", "greater than or equal sign"},
	RuleApprox:       {"approx", "approximately equal sign"},
	RuleCongruent:    {"congruent", "congruent sign"},
	RuleEquivalent:   {"equivalent", "equivalent sign"},

	RuleSubset:        {"subset", "subset"},
	RuleSubsetEqual:   {"subset_equal", "subset or equal"},
	RuleSuperset:      {"superset", "superset"},
	RuleSupersetEqual: {"superset_equal", "superset or equal"},
	RuleSetElementOf:  {"set_element_of", "element of"},
	RuleUnion:         {"union", "union"},
	RuleIntersection:  {"intersection", "intersection"},

	RuleAnd:           {"and", "logical and"},
	RuleOr:            {"or", "logical or"},
	RuleNot:           {"not", "logical not"},
	RuleImplies:       {"implies", "implies"},
	RuleIff:           {"iff", "if and only if"},
	RuleLogicalForAll: {"logical_for_all", "for all"},
	RuleLogicalExists: {"logical_exists", "exists"},

	RuleArrowRight: {"arrow_right", "right arrow"},
	RuleArrowLeft:  {"arrow_left", "left arrow"},
	RuleArrowUp:    {"arrow_up", "up arrow"},
	RuleArrowDown:  {"arrow_down", "down arrow"},

	RuleEOI: {"EOI", "end of input"},
}

// String returns the rule identifier as written in the grammar.
func (r Rule) String() string {
	if r < 0 || r >= ruleCount {
		return "?"
	}
	return rules[r].name
}

// Description returns a human readable name for the rule, used in parse
// error messages.
func (r Rule) Description() string {
	if r < 0 || r >= ruleCount {
		return "unknown construct"
	}
	return rules[r].description
}

// IsIndicator reports whether the rule matches a mode indicator or a
// structural delimiter that carries no content of its own.
func (r Rule) IsIndicator() bool {
	switch r {
	case RuleNumericIndicator, RuleCapitalIndicator, RuleGrade1Indicator, RuleLetterSign,
		RuleGreekIndicator, RuleFractionOpen, RuleFractionLine, RuleFractionClose,
		RuleRadicalStart, RuleRadicalEnd, RuleIndexIndicator,
		RuleSuperscriptIndicator, RuleSubscriptIndicator, RuleScriptEnd:
		return true
	}
	return false
}
