package gramma

// Interpreter walks a grammar tree against a Reader's buffer at an
// absolute offset, producing a match length and a capture table. It is
// a direct tree-walker rather than a compiled bytecode machine: every
// Node variant is its own case, and alternation/repetition backtrack by
// trying continuations until one succeeds or every option is
// exhausted, in the manner of a recursive-descent matcher rather than
// the Split/Jmp instruction set a bytecode VM would use.
//
// Captures are threaded as a single map mutated in place for the
// duration of a Match call: every construct that can backtrack
// (Alternation, NegatedAlternation, Repetition, Lookahead,
// NegativeLookahead, NumberedCapture, NamedCapture) snapshots the
// table before trying a candidate and restores it if that candidate's
// continuation ultimately fails, which is what lets a capture recorded
// partway through a match be visible to a backreference later in the
// same alternative while still being undone cleanly on backtrack.
//
// An Interpreter is stateless between calls to Match and safe to reuse
// (but not to share across goroutines mid-match, since StepLimit
// bookkeeping is per-call but stored on the receiver during a Match).
type Interpreter struct {
	// StepLimit bounds the number of match attempts a single Match call
	// may take before it aborts with ErrEngineLimitExceeded. Zero (the
	// default) means unbounded. This is a defensive circuit breaker
	// against pathological backtracking, not part of the matching
	// semantics themselves (spec.md §5 describes no such limit).
	StepLimit int

	steps int
}

// Match attempts to match node against reader's buffer starting at the
// given absolute offset. It returns whether the match succeeded, the
// length consumed, and the capture table recorded along the way. caps
// is non-nil whenever the returned error is nil.
func (in *Interpreter) Match(node Node, reader *Reader, offset int) (bool, int, Captures, error) {
	in.steps = 0
	caps := make(Captures)
	ok, length, err := in.matchNode(node, reader, offset, caps, func(end int) (bool, int) {
		return true, end - offset
	})
	if err != nil {
		return false, 0, nil, err
	}
	return ok, length, caps, nil
}

// cont is a success continuation: given the absolute offset reached so
// far, it reports whether the overall match succeeds from there, and
// if so, how many characters beyond the original start offset were
// ultimately consumed. Backtracking constructs call cont once per
// candidate and keep trying until cont itself reports success, which is
// what lets a later sibling's failure unwind an earlier greedy choice.
type cont func(end int) (bool, int)

// snapshotCaptures returns a copy of caps suitable for restoreCaptures.
func snapshotCaptures(caps Captures) Captures { return caps.clone() }

// restoreCaptures mutates caps in place back to exactly the state
// snapshot recorded: entries snapshot doesn't have are deleted, and
// every entry snapshot does have is rewritten. caps is restored rather
// than replaced so that every holder of this same map (closures
// further up the call stack) observes the rollback.
func restoreCaptures(caps, snapshot Captures) {
	for k := range caps {
		if _, ok := snapshot[k]; !ok {
			delete(caps, k)
		}
	}
	for k, v := range snapshot {
		caps[k] = v
	}
}

// matchNode matches node at the given absolute offset, invoking k with
// the offset reached on success. It returns whether some continuation
// of k eventually succeeded, and the length that the continuation chain
// finally reports: for a chain ending in Match's own continuation, the
// total length consumed from the offset Match started at (not from
// this node's offset, and not just by node itself), mirroring the "does
// this whole remaining match succeed" question backtracking requires.
func (in *Interpreter) matchNode(node Node, reader *Reader, offset int, caps Captures, k cont) (bool, int, error) {
	if err := in.step(); err != nil {
		return false, 0, err
	}

	switch n := node.(type) {
	case *Any:
		if _, ok := reader.absoluteAt(offset); !ok {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *CharacterTerminal:
		c, ok := reader.absoluteAt(offset)
		if !ok || c != n.Value {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *NegatedCharacterTerminal:
		c, ok := reader.absoluteAt(offset)
		if !ok || c == n.Value {
			return false, 0, nil
		}
		return in.succeed(offset, k)

	case *StringTerminal:
		runes := []rune(n.Text)
		s, ok := reader.absoluteSpan(offset, len(runes))
		if !ok || s != n.Text {
			return false, 0, nil
		}
		return in.succeed(offset+len(runes), k)

	case *CharacterRange:
		c, ok := reader.absoluteAt(offset)
		if !ok || !n.Range.Contains(c) {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *NegatedCharacterRange:
		c, ok := reader.absoluteAt(offset)
		if !ok || n.Range.Contains(c) {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *CharacterSet:
		if !in.characterSetMatches(n.Chars, n.Nodes, reader, offset) {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *NegatedCharacterSet:
		if _, ok := reader.absoluteAt(offset); !ok {
			return false, 0, nil
		}
		if in.characterSetMatches(n.Chars, n.Nodes, reader, offset) {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *UnicodeCategoryTerminal:
		c, ok := reader.absoluteAt(offset)
		if !ok || !InUnicodeCategory(c, n.Category) {
			return false, 0, nil
		}
		return in.succeed(offset+1, k)

	case *NegatedUnicodeCategoryTerminal:
		c, ok := reader.absoluteAt(offset)
		if !ok || InUnicodeCategory(c, n.Category) {
			return false, 0, nil
		}
		return in.succeed(offset, k)

	case *Sequence:
		return in.matchSequence(n.Nodes, reader, offset, caps, k)

	case *Alternation:
		for _, alt := range n.Nodes {
			snap := snapshotCaptures(caps)
			ok, length, err := in.matchNode(alt, reader, offset, caps, k)
			if err != nil {
				return false, 0, err
			}
			if ok {
				return true, length, nil
			}
			restoreCaptures(caps, snap)
		}
		return false, 0, nil

	case *NegatedAlternation:
		for _, alt := range n.Nodes {
			snap := snapshotCaptures(caps)
			ok, _, err := in.matchNode(alt, reader, offset, caps, func(end int) (bool, int) { return true, 0 })
			restoreCaptures(caps, snap)
			if err != nil {
				return false, 0, err
			}
			if ok {
				return false, 0, nil
			}
		}
		return in.succeed(offset, k)

	case *Repetition:
		if n.IsLazy {
			return false, 0, ErrLazyRepetitionUnsupported
		}
		return in.matchRepetition(n, reader, offset, caps, k)

	case *Lookahead:
		snap := snapshotCaptures(caps)
		ok, _, err := in.matchNode(n.Inner, reader, offset, caps, func(end int) (bool, int) { return true, 0 })
		restoreCaptures(caps, snap) // lookahead is zero-width; its captures never escape
		if err != nil {
			return false, 0, err
		}
		if !ok {
			return false, 0, nil
		}
		return in.succeed(offset, k)

	case *NegativeLookahead:
		snap := snapshotCaptures(caps)
		ok, _, err := in.matchNode(n.Inner, reader, offset, caps, func(end int) (bool, int) { return true, 0 })
		restoreCaptures(caps, snap) // probing a negative lookahead never leaves captures behind
		if err != nil {
			return false, 0, err
		}
		if ok {
			return false, 0, nil
		}
		return in.succeed(offset, k)

	case *NumberedCapture:
		return in.matchCapture(NumberedCaptureKey(n.Position), n.Inner, reader, offset, caps, k)

	case *NamedCapture:
		return in.matchCapture(n.Name, n.Inner, reader, offset, caps, k)

	case *NumberedBackreference:
		return in.matchBackreference(NumberedCaptureKey(n.Position), reader, offset, caps, k)

	case *NamedBackreference:
		return in.matchBackreference(n.Name, reader, offset, caps, k)

	default:
		panic("gramma: Interpreter.matchNode called on an unrecognized Node implementation")
	}
}

// succeed is the common tail for leaf nodes that matched up to end: it
// simply hands control to the continuation.
func (in *Interpreter) succeed(end int, k cont) (bool, int, error) {
	ok, length := k(end)
	return ok, length, nil
}

func (in *Interpreter) step() error {
	if in.StepLimit <= 0 {
		return nil
	}
	in.steps++
	if in.steps > in.StepLimit {
		return ErrEngineLimitExceeded
	}
	return nil
}

// characterSetMatches reports whether the character at offset is a
// member of chars, or accepted (with a length of at least 1) by one of
// nodes.
// Membership probes use a throwaway capture table: set membership never
// reports a capture of its own, and a nested node that somehow carried
// one (none of the class escapes do) cannot leak it into the caller's
// table through a mere membership test.
func (in *Interpreter) characterSetMatches(chars map[rune]struct{}, nodes []Node, reader *Reader, offset int) bool {
	c, ok := reader.absoluteAt(offset)
	if !ok {
		return false
	}
	if _, member := chars[c]; member {
		return true
	}
	for _, member := range nodes {
		scratch := make(Captures)
		matched, length, err := in.matchNode(member, reader, offset, scratch, func(end int) (bool, int) { return true, end - offset })
		if err == nil && matched && length >= 1 {
			return true
		}
	}
	return false
}

// matchSequence matches nodes in order, threading each element's
// success continuation into the next, so that a later element's
// failure can force an earlier element (e.g. a Repetition) to
// backtrack into a shorter match.
func (in *Interpreter) matchSequence(nodes []Node, reader *Reader, offset int, caps Captures, k cont) (bool, int, error) {
	if len(nodes) == 0 {
		return in.succeed(offset, k)
	}
	head, rest := nodes[0], nodes[1:]
	var innerErr error
	ok, length, err := in.matchNode(head, reader, offset, caps, func(end int) (bool, int) {
		ok2, length2, err2 := in.matchSequence(rest, reader, end, caps, k)
		if err2 != nil {
			innerErr = err2
			return false, 0
		}
		return ok2, length2
	})
	if err != nil {
		return false, 0, err
	}
	if innerErr != nil {
		return false, 0, innerErr
	}
	return ok, length, nil
}

// matchRepetition greedily matches as many repetitions of n.Inner as
// possible, then backtracks one at a time (in the classic greedy
// regex-engine style) until the remaining continuation k succeeds or
// the count drops below n.Min.
func (in *Interpreter) matchRepetition(n *Repetition, reader *Reader, offset int, caps Captures, k cont) (bool, int, error) {
	var rec func(pos, count int) (bool, int, error)
	rec = func(pos, count int) (bool, int, error) {
		if err := in.step(); err != nil {
			return false, 0, err
		}
		canGrow := n.Max == -1 || count < n.Max
		if canGrow {
			snap := snapshotCaptures(caps)
			var innerErr error
			ok, length, err := in.matchNode(n.Inner, reader, pos, caps, func(end int) (bool, int) {
				if end == pos && count >= n.Min {
					// zero-width inner match: stop growing to avoid
					// looping forever on e.g. (?:)* style subtrees.
					return false, 0
				}
				ok2, length2, err2 := rec(end, count+1)
				if err2 != nil {
					innerErr = err2
					return false, 0
				}
				return ok2, length2
			})
			if err != nil {
				return false, 0, err
			}
			if innerErr != nil {
				return false, 0, innerErr
			}
			if ok {
				return true, length, nil
			}
			restoreCaptures(caps, snap)
		}
		if count < n.Min {
			return false, 0, nil
		}
		ok, length := k(pos)
		return ok, length, nil
	}
	return rec(offset, 0)
}

// matchCapture matches inner, and on success of the overall remaining
// match records its span under key before any of that remaining match
// is attempted. On overall failure the capture table is rolled back to
// its pre-attempt state, including this key.
func (in *Interpreter) matchCapture(key string, inner Node, reader *Reader, offset int, caps Captures, k cont) (bool, int, error) {
	snap := snapshotCaptures(caps)
	ok, length, err := in.matchNode(inner, reader, offset, caps, func(end int) (bool, int) {
		caps[key] = Capture{Start: offset, Length: end - offset}
		return k(end)
	})
	if err != nil {
		return false, 0, err
	}
	if !ok {
		restoreCaptures(caps, snap)
	}
	return ok, length, nil
}

func (in *Interpreter) matchBackreference(key string, reader *Reader, offset int, caps Captures, k cont) (bool, int, error) {
	c, recorded := caps[key]
	if !recorded || c.Length == 0 {
		return false, 0, nil
	}
	text, ok := reader.absoluteSpan(c.Start, c.Length)
	if !ok {
		return false, 0, nil
	}
	got, ok := reader.absoluteSpan(offset, c.Length)
	if !ok || got != text {
		return false, 0, nil
	}
	return in.succeed(offset+c.Length, k)
}
