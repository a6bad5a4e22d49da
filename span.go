package gramma

import "fmt"

// Range is an inclusive-or-exclusive pair, instantiated for two distinct
// purposes in this package: Range[rune] describes a closed character
// interval inside the grammar node algebra (start <= end, both ends
// included), and Range[int] describes the half-open span of source
// offsets attached to a ParseError (start included, end excluded).
// Each constructor documents which convention it follows.
type Range[T any] struct {
	Start T
	End   T
}

// CharRange is an inclusive range over the character alphabet, used by
// CharacterRange and NegatedCharacterRange nodes. It is a defined type
// over Range[rune] so that it can carry the Contains method.
type CharRange Range[rune]

// NewCharRange builds an inclusive character range, validating Start <= End.
func NewCharRange(lo, hi rune) (CharRange, error) {
	if lo > hi {
		return CharRange{}, fmt.Errorf("gramma: invalid character range %q-%q: start > end", lo, hi)
	}
	return CharRange{Start: lo, End: hi}, nil
}

// Contains reports whether r falls within the inclusive range.
func (rg CharRange) Contains(r rune) bool {
	return r >= rg.Start && r <= rg.End
}

// OffsetRange is an inclusive-start, exclusive-end pair of source offsets,
// as carried by ParseError.
type OffsetRange = Range[int]

// Span identifies a run of characters in a Reader's buffer by its
// starting offset and length, the unit returned by SpanMatch;
// Capture.Span converts a capture-table entry into one.
type Span struct {
	Offset int
	Length int
}

// End returns the offset one past the last character in the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Capture records a single named or numbered sub-match: the span of
// the buffer it covers.
type Capture struct {
	Start  int
	Length int
}

// Span returns the Capture's covered region as a Span.
func (c Capture) Span() Span {
	return Span{Offset: c.Start, Length: c.Length}
}

// Captures is the capture table threaded through a match: a mapping
// from capture key to the span it captured. Numbered captures use the
// reserved key shape produced by NumberedCaptureKey so that they can
// never collide with a user-chosen name.
type Captures map[string]Capture

// NumberedCaptureKey returns the reserved capture-table key for the
// numbered capture group at the given 1-based position, e.g. "⟨1⟩".
// The angle brackets are outside the set of characters a named capture
// may start with (see isIdentStart), so the numbered and named
// namespaces never collide.
func NumberedCaptureKey(position int) string {
	return fmt.Sprintf("⟨%d⟩", position)
}

// clone returns an independent copy of the capture table, the snapshot
// the interpreter takes before a backtracking attempt so it can restore
// the table to exactly this state if that attempt ultimately fails.
func (c Captures) clone() Captures {
	if c == nil {
		return make(Captures)
	}
	cp := make(Captures, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp
}
