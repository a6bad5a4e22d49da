package gramma

import "testing"

func mustMatch(t *testing.T, node Node, input string) (bool, int, Captures) {
	t.Helper()
	reader := NewReader(input)
	interp := &Interpreter{}
	ok, length, caps, err := interp.Match(node, reader, 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	return ok, length, caps
}

func TestInterpreterCharacterTerminal(t *testing.T) {
	node := &CharacterTerminal{Value: 'a'}
	if ok, length, _ := mustMatch(t, node, "abc"); !ok || length != 1 {
		t.Errorf("got ok=%v length=%d; want true, 1", ok, length)
	}
	if ok, _, _ := mustMatch(t, node, "xyz"); ok {
		t.Errorf("expected no match against xyz")
	}
}

func TestInterpreterNegatedCharacterTerminalZeroWidth(t *testing.T) {
	node := &NegatedCharacterTerminal{Value: 'a'}
	ok, length, _ := mustMatch(t, node, "bcd")
	if !ok || length != 0 {
		t.Errorf("got ok=%v length=%d; want true, 0 (zero-width on success)", ok, length)
	}
	if ok, _, _ := mustMatch(t, node, "abc"); ok {
		t.Errorf("expected no match when the excluded character is present")
	}
	if ok, _, _ := mustMatch(t, node, ""); ok {
		t.Errorf("expected no match at end of input")
	}
}

func TestInterpreterNegatedCharacterRangeConsumes(t *testing.T) {
	rg, _ := NewCharRange('0', '9')
	node := &NegatedCharacterRange{Range: rg}
	ok, length, _ := mustMatch(t, node, "x")
	if !ok || length != 1 {
		t.Errorf("got ok=%v length=%d; want true, 1 (consumes, unlike negated terminals)", ok, length)
	}
	if ok, _, _ := mustMatch(t, node, "5"); ok {
		t.Errorf("expected no match against a digit")
	}
}

func TestInterpreterSequenceBacktracksThroughRepetition(t *testing.T) {
	// a*a matching "aaa": the leading a* must give back characters for
	// the trailing literal a to succeed.
	star, _ := NewRepetition(&CharacterTerminal{Value: 'a'}, 0, -1, false)
	seq, _ := NewSequence(star, &CharacterTerminal{Value: 'a'})
	ok, length, _ := mustMatch(t, seq, "aaa")
	if !ok || length != 3 {
		t.Errorf("got ok=%v length=%d; want true, 3", ok, length)
	}
}

func TestInterpreterAlternationLeftBiased(t *testing.T) {
	alt, _ := NewAlternation(&StringTerminal{Text: "a"}, &StringTerminal{Text: "ab"})
	ok, length, _ := mustMatch(t, alt, "ab")
	if !ok || length != 1 {
		t.Errorf("got ok=%v length=%d; want true, 1 (left-biased alternation picks the first match)", ok, length)
	}
}

func TestInterpreterNumberedCapture(t *testing.T) {
	capture := &NumberedCapture{Position: 1, Inner: &StringTerminal{Text: "ab"}}
	ok, _, caps := mustMatch(t, capture, "abc")
	if !ok {
		t.Fatalf("expected match")
	}
	got, recorded := caps[NumberedCaptureKey(1)]
	if !recorded || got.Start != 0 || got.Length != 2 {
		t.Errorf("got capture %+v recorded=%v; want {0 2} true", got, recorded)
	}
}

func TestInterpreterBackreference(t *testing.T) {
	capture := &NumberedCapture{Position: 1, Inner: &StringTerminal{Text: "ab"}}
	seq, _ := NewSequence(capture, &NumberedBackreference{Position: 1})
	if ok, length, _ := mustMatch(t, seq, "abab"); !ok || length != 4 {
		t.Errorf("got ok=%v length=%d; want true, 4", ok, length)
	}
	if ok, _, _ := mustMatch(t, seq, "abcd"); ok {
		t.Errorf("expected no match when the backreference text differs")
	}
}

func TestInterpreterBackreferenceToEmptyCaptureFails(t *testing.T) {
	rep, _ := NewRepetition(&CharacterTerminal{Value: 'a'}, 0, 1, false)
	capture := &NumberedCapture{Position: 1, Inner: rep}
	seq, _ := NewSequence(capture, &NumberedBackreference{Position: 1})
	// The capture matches zero 'a's (an empty span) against "bb"; the
	// backreference must fail rather than trivially match "".
	if ok, _, _ := mustMatch(t, seq, "bb"); ok {
		t.Errorf("expected no match: a backreference to an empty capture must fail")
	}
}

func TestInterpreterLookaheadIsZeroWidth(t *testing.T) {
	la := NewLookahead(&StringTerminal{Text: "bc"})
	seq, _ := NewSequence(&CharacterTerminal{Value: 'a'}, la)
	ok, length, _ := mustMatch(t, seq, "abc")
	if !ok || length != 1 {
		t.Errorf("got ok=%v length=%d; want true, 1 (lookahead consumes nothing)", ok, length)
	}
}

func TestInterpreterNegativeLookahead(t *testing.T) {
	nla := NewNegativeLookahead(&StringTerminal{Text: "bc"})
	seq, _ := NewSequence(&CharacterTerminal{Value: 'a'}, nla)
	if ok, _, _ := mustMatch(t, seq, "abc"); ok {
		t.Errorf("expected no match: the excluded text is present")
	}
	if ok, length, _ := mustMatch(t, seq, "abd"); !ok || length != 1 {
		t.Errorf("got ok=%v length=%d; want true, 1", ok, length)
	}
}

func TestInterpreterNegatedAlternationEmptyAlwaysSucceeds(t *testing.T) {
	node := NewNegatedAlternation()
	ok, length, _ := mustMatch(t, node, "anything")
	if !ok || length != 0 {
		t.Errorf("got ok=%v length=%d; want true, 0", ok, length)
	}
}

func TestInterpreterLazyRepetitionUnsupported(t *testing.T) {
	rep, _ := NewRepetition(&CharacterTerminal{Value: 'a'}, 0, -1, true)
	reader := NewReader("aaa")
	interp := &Interpreter{}
	_, _, _, err := interp.Match(rep, reader, 0)
	if err != ErrLazyRepetitionUnsupported {
		t.Errorf("got err=%v; want ErrLazyRepetitionUnsupported", err)
	}
}

func TestInterpreterRepetitionBounds(t *testing.T) {
	rep, _ := NewRepetition(&CharacterTerminal{Value: 'a'}, 2, 3, false)
	if ok, length, _ := mustMatch(t, rep, "a"); ok {
		t.Errorf("got ok=%v length=%d; want no match (below min)", ok, length)
	}
	if ok, length, _ := mustMatch(t, rep, "aa"); !ok || length != 2 {
		t.Errorf("got ok=%v length=%d; want true, 2", ok, length)
	}
	if ok, length, _ := mustMatch(t, rep, "aaaa"); !ok || length != 3 {
		t.Errorf("got ok=%v length=%d; want true, 3 (greedy, capped at max)", ok, length)
	}
}
