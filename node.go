// Package gramma implements a composable grammar engine: an algebraic
// tree of grammar nodes (this file), a regex-like front-end parser
// (regexparser.go) that compiles a pattern string into such a tree, and
// a backtracking interpreter (interpreter.go) that matches a tree
// against a Reader, producing match lengths and named/numbered capture
// groups.
package gramma

import "fmt"

// Kind identifies which of the closed set of grammar node variants a
// Node is. The set is closed: every Node implementation in this
// package has exactly one Kind, and no other package can add a new one
// (Node's marker method is unexported).
type Kind int

const (
	KindAny Kind = iota
	KindCharacterTerminal
	KindNegatedCharacterTerminal
	KindStringTerminal
	KindCharacterRange
	KindNegatedCharacterRange
	KindCharacterSet
	KindNegatedCharacterSet
	KindUnicodeCategoryTerminal
	KindNegatedUnicodeCategoryTerminal
	KindSequence
	KindAlternation
	KindNegatedAlternation
	KindRepetition
	KindLookahead
	KindNegativeLookahead
	KindNumberedCapture
	KindNamedCapture
	KindNumberedBackreference
	KindNamedBackreference
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindCharacterTerminal:
		return "CharacterTerminal"
	case KindNegatedCharacterTerminal:
		return "NegatedCharacterTerminal"
	case KindStringTerminal:
		return "StringTerminal"
	case KindCharacterRange:
		return "CharacterRange"
	case KindNegatedCharacterRange:
		return "NegatedCharacterRange"
	case KindCharacterSet:
		return "CharacterSet"
	case KindNegatedCharacterSet:
		return "NegatedCharacterSet"
	case KindUnicodeCategoryTerminal:
		return "UnicodeCategoryTerminal"
	case KindNegatedUnicodeCategoryTerminal:
		return "NegatedUnicodeCategoryTerminal"
	case KindSequence:
		return "Sequence"
	case KindAlternation:
		return "Alternation"
	case KindNegatedAlternation:
		return "NegatedAlternation"
	case KindRepetition:
		return "Repetition"
	case KindLookahead:
		return "Lookahead"
	case KindNegativeLookahead:
		return "NegativeLookahead"
	case KindNumberedCapture:
		return "NumberedCapture"
	case KindNamedCapture:
		return "NamedCapture"
	case KindNumberedBackreference:
		return "NumberedBackreference"
	case KindNamedBackreference:
		return "NamedBackreference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is the base interface for every grammar tree node. Grammar trees
// are immutable and finite; implementations live only in this package.
type Node interface {
	Kind() Kind
	node()
}

// Any matches a single arbitrary character.
type Any struct{}

func (n *Any) Kind() Kind { return KindAny }
func (n *Any) node()      {}

// CharacterTerminal matches a single given character.
type CharacterTerminal struct {
	Value rune
}

func (n *CharacterTerminal) Kind() Kind { return KindCharacterTerminal }
func (n *CharacterTerminal) node()      {}

// NegatedCharacterTerminal is a zero-width assertion that succeeds iff
// a character exists at the current position and differs from Value.
// It deliberately reports length 0 on success, unlike every
// non-negated terminal in this package — see SPEC_FULL.md Open
// Question 1.
type NegatedCharacterTerminal struct {
	Value rune
}

func (n *NegatedCharacterTerminal) Kind() Kind { return KindNegatedCharacterTerminal }
func (n *NegatedCharacterTerminal) node()      {}

// StringTerminal matches an exact, non-empty sequence of characters.
type StringTerminal struct {
	Text string
}

func (n *StringTerminal) Kind() Kind { return KindStringTerminal }
func (n *StringTerminal) node()      {}

// CharacterRange matches any character within an inclusive range.
type CharacterRange struct {
	Range CharRange
}

func (n *CharacterRange) Kind() Kind { return KindCharacterRange }
func (n *CharacterRange) node()      {}

// NegatedCharacterRange matches any character outside the range.
type NegatedCharacterRange struct {
	Range CharRange
}

func (n *NegatedCharacterRange) Kind() Kind { return KindNegatedCharacterRange }
func (n *NegatedCharacterRange) node()      {}

// CharacterSet matches a character that is either a member of Chars,
// or accepted by any one of Nodes matching with length >= 1 at the
// current position. Nodes lets a set embed nested classes (e.g. \d
// inside a user-defined [...] class) without flattening them.
type CharacterSet struct {
	Chars map[rune]struct{}
	Nodes []Node
}

func (n *CharacterSet) Kind() Kind { return KindCharacterSet }
func (n *CharacterSet) node()      {}

// NegatedCharacterSet is the complement of CharacterSet over
// length-one matches.
type NegatedCharacterSet struct {
	Chars map[rune]struct{}
	Nodes []Node
}

func (n *NegatedCharacterSet) Kind() Kind { return KindNegatedCharacterSet }
func (n *NegatedCharacterSet) node()      {}

// UnicodeCategoryTerminal matches a character whose Unicode general
// category equals Category (see the catalogue in classes.go).
type UnicodeCategoryTerminal struct {
	Category string
}

func (n *UnicodeCategoryTerminal) Kind() Kind { return KindUnicodeCategoryTerminal }
func (n *UnicodeCategoryTerminal) node()      {}

// NegatedUnicodeCategoryTerminal is a zero-width assertion, like
// NegatedCharacterTerminal, that succeeds iff a character exists and
// its category differs from Category.
type NegatedUnicodeCategoryTerminal struct {
	Category string
}

func (n *NegatedUnicodeCategoryTerminal) Kind() Kind { return KindNegatedUnicodeCategoryTerminal }
func (n *NegatedUnicodeCategoryTerminal) node()      {}

// Sequence matches each of Nodes in order, at increasing offsets,
// concatenating their lengths. Nodes must be non-empty.
type Sequence struct {
	Nodes []Node
}

func (n *Sequence) Kind() Kind { return KindSequence }
func (n *Sequence) node()      {}

// Alternation matches the first of Nodes that matches at the current
// position (left-biased). Nodes must be non-empty.
type Alternation struct {
	Nodes []Node
}

func (n *Alternation) Kind() Kind { return KindAlternation }
func (n *Alternation) node()      {}

// NegatedAlternation is a zero-width assertion that succeeds iff none
// of Nodes matches at the current position. Nodes may be empty (an
// always-succeeding assertion).
type NegatedAlternation struct {
	Nodes []Node
}

func (n *NegatedAlternation) Kind() Kind { return KindNegatedAlternation }
func (n *NegatedAlternation) node()      {}

// Repetition repeats Inner greedily, accepting between Min and Max
// occurrences. Max of -1 means unbounded. IsLazy marks a lazy
// quantifier, which the interpreter rejects at match time (lazy
// repetition is not implemented; see SPEC_FULL.md Open Question 2).
type Repetition struct {
	Inner  Node
	Min    int
	Max    int
	IsLazy bool
}

func (n *Repetition) Kind() Kind { return KindRepetition }
func (n *Repetition) node()      {}

// Lookahead is a zero-width assertion that succeeds iff Inner matches
// at the current position; it never consumes input.
type Lookahead struct {
	Inner Node
}

func (n *Lookahead) Kind() Kind { return KindLookahead }
func (n *Lookahead) node()      {}

// NegativeLookahead is the complement of Lookahead.
type NegativeLookahead struct {
	Inner Node
}

func (n *NegativeLookahead) Kind() Kind { return KindNegativeLookahead }
func (n *NegativeLookahead) node()      {}

// NumberedCapture delegates to Inner and, on success, records the
// matched span under the reserved key NumberedCaptureKey(Position).
type NumberedCapture struct {
	Position int
	Inner    Node
}

func (n *NumberedCapture) Kind() Kind { return KindNumberedCapture }
func (n *NumberedCapture) node()      {}

// NamedCapture delegates to Inner and, on success, records the matched
// span under the key Name.
type NamedCapture struct {
	Name  string
	Inner Node
}

func (n *NamedCapture) Kind() Kind { return KindNamedCapture }
func (n *NamedCapture) node()      {}

// NumberedBackreference matches the literal text previously captured
// under NumberedCaptureKey(Position).
type NumberedBackreference struct {
	Position int
}

func (n *NumberedBackreference) Kind() Kind { return KindNumberedBackreference }
func (n *NumberedBackreference) node()      {}

// NamedBackreference matches the literal text previously captured
// under the given name.
type NamedBackreference struct {
	Name string
}

func (n *NamedBackreference) Kind() Kind { return KindNamedBackreference }
func (n *NamedBackreference) node()      {}

// Constructors below validate the invariants listed in SPEC_FULL.md /
// spec.md §3 and return an error rather than building a malformed
// tree.

// NewStringTerminal builds a StringTerminal, rejecting an empty text.
func NewStringTerminal(text string) (Node, error) {
	if text == "" {
		return nil, fmt.Errorf("gramma: StringTerminal text must be non-empty")
	}
	return &StringTerminal{Text: text}, nil
}

// NewCharacterRange builds a CharacterRange, validating lo <= hi.
func NewCharacterRange(lo, hi rune) (Node, error) {
	rg, err := NewCharRange(lo, hi)
	if err != nil {
		return nil, err
	}
	return &CharacterRange{Range: rg}, nil
}

// NewNegatedCharacterRange builds a NegatedCharacterRange, validating
// lo <= hi.
func NewNegatedCharacterRange(lo, hi rune) (Node, error) {
	rg, err := NewCharRange(lo, hi)
	if err != nil {
		return nil, err
	}
	return &NegatedCharacterRange{Range: rg}, nil
}

// NewCharacterSet builds a CharacterSet from a slice of member
// characters and a slice of nested nodes (either may be empty).
func NewCharacterSet(chars []rune, nodes []Node) Node {
	return &CharacterSet{Chars: runeSet(chars), Nodes: nodes}
}

// NewNegatedCharacterSet builds a NegatedCharacterSet.
func NewNegatedCharacterSet(chars []rune, nodes []Node) Node {
	return &NegatedCharacterSet{Chars: runeSet(chars), Nodes: nodes}
}

func runeSet(rs []rune) map[rune]struct{} {
	if len(rs) == 0 {
		return nil
	}
	set := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// NewUnicodeCategoryTerminal builds a UnicodeCategoryTerminal,
// validating the category name against the catalogue in classes.go.
func NewUnicodeCategoryTerminal(category string) (Node, error) {
	if !IsKnownUnicodeCategory(category) {
		return nil, fmt.Errorf("gramma: unknown unicode category %q", category)
	}
	return &UnicodeCategoryTerminal{Category: category}, nil
}

// NewNegatedUnicodeCategoryTerminal builds a
// NegatedUnicodeCategoryTerminal, validating the category name.
func NewNegatedUnicodeCategoryTerminal(category string) (Node, error) {
	if !IsKnownUnicodeCategory(category) {
		return nil, fmt.Errorf("gramma: unknown unicode category %q", category)
	}
	return &NegatedUnicodeCategoryTerminal{Category: category}, nil
}

// NewSequence builds a Sequence, rejecting an empty node list.
func NewSequence(nodes ...Node) (Node, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("gramma: Sequence requires at least one node")
	}
	return &Sequence{Nodes: nodes}, nil
}

// NewAlternation builds an Alternation, rejecting an empty node list.
func NewAlternation(nodes ...Node) (Node, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("gramma: Alternation requires at least one node")
	}
	return &Alternation{Nodes: nodes}, nil
}

// NewNegatedAlternation builds a NegatedAlternation; an empty node list
// is a valid, always-succeeding assertion.
func NewNegatedAlternation(nodes ...Node) Node {
	return &NegatedAlternation{Nodes: nodes}
}

// NewRepetition builds a Repetition, validating 0 <= min, max is -1 or
// >= 1, and min <= max when max is bounded.
func NewRepetition(inner Node, min, max int, lazy bool) (Node, error) {
	if min < 0 {
		return nil, fmt.Errorf("gramma: Repetition min must be >= 0, got %d", min)
	}
	if max != -1 && max < 1 {
		return nil, fmt.Errorf("gramma: Repetition max must be -1 or >= 1, got %d", max)
	}
	if max != -1 && min > max {
		return nil, fmt.Errorf("gramma: Repetition min (%d) exceeds max (%d)", min, max)
	}
	return &Repetition{Inner: inner, Min: min, Max: max, IsLazy: lazy}, nil
}

// NewLookahead builds a Lookahead.
func NewLookahead(inner Node) Node { return &Lookahead{Inner: inner} }

// NewNegativeLookahead builds a NegativeLookahead.
func NewNegativeLookahead(inner Node) Node { return &NegativeLookahead{Inner: inner} }

// NewNumberedCapture builds a NumberedCapture.
func NewNumberedCapture(position int, inner Node) Node {
	return &NumberedCapture{Position: position, Inner: inner}
}

// NewNamedCapture builds a NamedCapture.
func NewNamedCapture(name string, inner Node) Node {
	return &NamedCapture{Name: name, Inner: inner}
}

// NewNumberedBackreference builds a NumberedBackreference.
func NewNumberedBackreference(position int) Node {
	return &NumberedBackreference{Position: position}
}

// NewNamedBackreference builds a NamedBackreference.
func NewNamedBackreference(name string) Node {
	return &NamedBackreference{Name: name}
}
