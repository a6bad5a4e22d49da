package gramma

import "testing"

func TestEqualStructural(t *testing.T) {
	a, _ := NewSequence(&CharacterTerminal{Value: 'a'}, &CharacterTerminal{Value: 'b'})
	b, _ := NewSequence(&CharacterTerminal{Value: 'a'}, &CharacterTerminal{Value: 'b'})
	c, _ := NewSequence(&CharacterTerminal{Value: 'b'}, &CharacterTerminal{Value: 'a'})

	if !Equal(a, b) {
		t.Errorf("expected structurally identical sequences to be Equal")
	}
	if Equal(a, c) {
		t.Errorf("expected differently-ordered sequences to not be Equal")
	}
}

func TestEqualDifferentKinds(t *testing.T) {
	if Equal(&Any{}, &CharacterTerminal{Value: 'a'}) {
		t.Errorf("expected different Kinds to not be Equal")
	}
}

func TestEqualRepetitionBounds(t *testing.T) {
	a, _ := NewRepetition(&Any{}, 0, -1, false)
	b, _ := NewRepetition(&Any{}, 0, 1, false)
	if Equal(a, b) {
		t.Errorf("expected differing repetition bounds to not be Equal")
	}
}

func TestGrammarTreeStructuralComparer(t *testing.T) {
	var cmp GrammarTreeStructuralComparer
	if !cmp.Equal(&Any{}, &Any{}) {
		t.Errorf("expected two Any nodes to be Equal via the comparer")
	}
}
