package gramma

import "fmt"

// Then implements the `then` operator from spec.md §4.2: if a is
// already a Sequence, b is appended to it; otherwise a new two-element
// Sequence is built.
func Then(a, b Node) Node {
	if seq, ok := a.(*Sequence); ok {
		nodes := make([]Node, 0, len(seq.Nodes)+1)
		nodes = append(nodes, seq.Nodes...)
		nodes = append(nodes, b)
		return &Sequence{Nodes: nodes}
	}
	return &Sequence{Nodes: []Node{a, b}}
}

// Or implements the `or` operator from spec.md §4.2, the Alternation
// analogue of Then.
func Or(a, b Node) Node {
	if alt, ok := a.(*Alternation); ok {
		nodes := make([]Node, 0, len(alt.Nodes)+1)
		nodes = append(nodes, alt.Nodes...)
		nodes = append(nodes, b)
		return &Alternation{Nodes: nodes}
	}
	return &Alternation{Nodes: []Node{a, b}}
}

// Negate returns the canonical negation of node for every variant that
// has one, or an error otherwise. Negation is involutive: Negate of a
// negated variant returns the corresponding non-negated variant.
func Negate(node Node) (Node, error) {
	switch n := node.(type) {
	case *CharacterTerminal:
		return &NegatedCharacterTerminal{Value: n.Value}, nil
	case *NegatedCharacterTerminal:
		return &CharacterTerminal{Value: n.Value}, nil
	case *CharacterRange:
		return &NegatedCharacterRange{Range: n.Range}, nil
	case *NegatedCharacterRange:
		return &CharacterRange{Range: n.Range}, nil
	case *CharacterSet:
		return &NegatedCharacterSet{Chars: n.Chars, Nodes: n.Nodes}, nil
	case *NegatedCharacterSet:
		return &CharacterSet{Chars: n.Chars, Nodes: n.Nodes}, nil
	case *UnicodeCategoryTerminal:
		return &NegatedUnicodeCategoryTerminal{Category: n.Category}, nil
	case *NegatedUnicodeCategoryTerminal:
		return &UnicodeCategoryTerminal{Category: n.Category}, nil
	case *Alternation:
		return &NegatedAlternation{Nodes: n.Nodes}, nil
	case *NegatedAlternation:
		if len(n.Nodes) == 0 {
			return nil, fmt.Errorf("gramma: cannot negate an empty NegatedAlternation back into an Alternation")
		}
		return &Alternation{Nodes: n.Nodes}, nil
	case *Lookahead:
		return &NegativeLookahead{Inner: n.Inner}, nil
	case *NegativeLookahead:
		return &Lookahead{Inner: n.Inner}, nil
	default:
		return nil, fmt.Errorf("gramma: %s has no canonical negation", node.Kind())
	}
}

// Repeat is the `repeat` convenience constructor from spec.md §4.2: a
// greedy Repetition of node within [min, max] (max == -1 for
// unbounded).
func Repeat(node Node, min, max int) (Node, error) {
	return NewRepetition(node, min, max, false)
}

// Optional builds `node?`: zero or one greedy repetition.
func Optional(node Node) Node {
	n, _ := NewRepetition(node, 0, 1, false)
	return n
}

// Infinite builds `node*`: zero or more greedy repetitions.
func Infinite(node Node) Node {
	n, _ := NewRepetition(node, 0, -1, false)
	return n
}
