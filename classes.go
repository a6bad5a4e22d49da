package gramma

// This file is the glossary utilities component (spec.md §2.6 / §6):
// the character-class catalogue backing \d \w \s and their negations,
// and the Unicode general-category catalogue backing \p{...}/\P{...}.

// DigitClass returns the node for \d: [0-9].
func DigitClass() Node {
	return &CharacterSet{Nodes: []Node{&CharacterRange{Range: CharRange{'0', '9'}}}}
}

// NonDigitClass returns the node for \D: the negation of \d.
func NonDigitClass() Node {
	return &NegatedCharacterSet{Nodes: []Node{&CharacterRange{Range: CharRange{'0', '9'}}}}
}

// WordClass returns the node for \w: [A-Za-z0-9_].
func WordClass() Node {
	return &CharacterSet{Nodes: []Node{
		&CharacterRange{Range: CharRange{'A', 'Z'}},
		&CharacterRange{Range: CharRange{'a', 'z'}},
		&CharacterRange{Range: CharRange{'0', '9'}},
		&CharacterTerminal{Value: '_'},
	}}
}

// NonWordClass returns the node for \W: the negation of \w.
func NonWordClass() Node {
	return &NegatedCharacterSet{Nodes: []Node{
		&CharacterRange{Range: CharRange{'A', 'Z'}},
		&CharacterRange{Range: CharRange{'a', 'z'}},
		&CharacterRange{Range: CharRange{'0', '9'}},
		&CharacterTerminal{Value: '_'},
	}}
}

// whitespaceChars lists the characters \s matches: space, tab,
// newline, carriage return, form feed, vertical tab, per spec.md §6.
var whitespaceChars = []rune{' ', '\t', '\n', '\r', '\f', '\v'}

// WhitespaceClass returns the node for \s.
func WhitespaceClass() Node {
	nodes := make([]Node, len(whitespaceChars))
	for i, r := range whitespaceChars {
		nodes[i] = &CharacterTerminal{Value: r}
	}
	return &CharacterSet{Nodes: nodes}
}

// NonWhitespaceClass returns the node for \S: the negation of \s.
func NonWhitespaceClass() Node {
	nodes := make([]Node, len(whitespaceChars))
	for i, r := range whitespaceChars {
		nodes[i] = &CharacterTerminal{Value: r}
	}
	return &NegatedCharacterSet{Nodes: nodes}
}

// unicodeCategories is the published catalogue of two-letter Unicode
// general categories plus the common one-letter aggregates, per
// spec.md §6.
var unicodeCategories = map[string]bool{
	"Lu": true, "Ll": true, "Lt": true, "Lm": true, "Lo": true,
	"Mn": true, "Mc": true, "Me": true,
	"Nd": true, "Nl": true, "No": true,
	"Pc": true, "Pd": true, "Ps": true, "Pe": true, "Pi": true, "Pf": true, "Po": true,
	"Sm": true, "Sc": true, "Sk": true, "So": true,
	"Zs": true, "Zl": true, "Zp": true,
	"Cc": true, "Cf": true, "Cs": true, "Co": true, "Cn": true,
	"L": true, "M": true, "N": true, "P": true, "S": true, "Z": true, "C": true,
}

// IsKnownUnicodeCategory reports whether name is a recognized Unicode
// general category or aggregate name.
func IsKnownUnicodeCategory(name string) bool {
	return unicodeCategories[name]
}

// rangeTablesForCategory maps the catalogue's two-letter categories
// and one-letter aggregates onto the unicode package's *RangeTables,
// used by the interpreter to test category membership.
var rangeTablesForCategory = buildRangeTableIndex()
