package gramma

// Equal reports whether a and b are structurally equal per spec.md
// §3: same variant, pairwise-equal attributes, order-sensitive for
// Sequence/Alternation/NegatedAlternation children and for Repetition
// bounds.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Any:
		return true
	case *CharacterTerminal:
		return x.Value == b.(*CharacterTerminal).Value
	case *NegatedCharacterTerminal:
		return x.Value == b.(*NegatedCharacterTerminal).Value
	case *StringTerminal:
		return x.Text == b.(*StringTerminal).Text
	case *CharacterRange:
		return x.Range == b.(*CharacterRange).Range
	case *NegatedCharacterRange:
		return x.Range == b.(*NegatedCharacterRange).Range
	case *CharacterSet:
		y := b.(*CharacterSet)
		return runeSetEqual(x.Chars, y.Chars) && nodeListEqual(x.Nodes, y.Nodes)
	case *NegatedCharacterSet:
		y := b.(*NegatedCharacterSet)
		return runeSetEqual(x.Chars, y.Chars) && nodeListEqual(x.Nodes, y.Nodes)
	case *UnicodeCategoryTerminal:
		return x.Category == b.(*UnicodeCategoryTerminal).Category
	case *NegatedUnicodeCategoryTerminal:
		return x.Category == b.(*NegatedUnicodeCategoryTerminal).Category
	case *Sequence:
		return nodeListEqual(x.Nodes, b.(*Sequence).Nodes)
	case *Alternation:
		return nodeListEqual(x.Nodes, b.(*Alternation).Nodes)
	case *NegatedAlternation:
		return nodeListEqual(x.Nodes, b.(*NegatedAlternation).Nodes)
	case *Repetition:
		y := b.(*Repetition)
		return x.Min == y.Min && x.Max == y.Max && x.IsLazy == y.IsLazy && Equal(x.Inner, y.Inner)
	case *Lookahead:
		return Equal(x.Inner, b.(*Lookahead).Inner)
	case *NegativeLookahead:
		return Equal(x.Inner, b.(*NegativeLookahead).Inner)
	case *NumberedCapture:
		y := b.(*NumberedCapture)
		return x.Position == y.Position && Equal(x.Inner, y.Inner)
	case *NamedCapture:
		y := b.(*NamedCapture)
		return x.Name == y.Name && Equal(x.Inner, y.Inner)
	case *NumberedBackreference:
		return x.Position == b.(*NumberedBackreference).Position
	case *NamedBackreference:
		return x.Name == b.(*NamedBackreference).Name
	default:
		return false
	}
}

func nodeListEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func runeSetEqual(a, b map[rune]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if _, ok := b[r]; !ok {
			return false
		}
	}
	return true
}

// GrammarTreeStructuralComparer is the §6 equality helper used in test
// assertions, wrapping Equal in a value so table-driven tests can
// store it alongside other fixtures.
type GrammarTreeStructuralComparer struct{}

// Equal reports whether a and b are structurally equal.
func (GrammarTreeStructuralComparer) Equal(a, b Node) bool {
	return Equal(a, b)
}
