package gramma

// This file is the Match Façade component (spec.md §2.5 / §4.5): thin
// wrappers over Interpreter that only advance the Reader's cursor when
// the match actually succeeds, mirroring how the lower-level Interpreter
// API leaves that decision to its caller.

// SimpleMatch reports whether node matches at the Reader's current
// cursor, advancing the cursor past the match on success and leaving it
// untouched on failure. It also returns the match length and capture
// table, for callers that need those without building a Span or string.
func SimpleMatch(node Node, reader *Reader) (bool, int, Captures, error) {
	ok, span, caps, err := SpanMatch(node, reader)
	return ok, span.Length, caps, err
}

// SpanMatch attempts node at the Reader's current cursor. On success it
// advances the cursor past the match and returns the matched Span and
// its capture table; on failure the cursor is untouched and the zero
// Span is returned.
func SpanMatch(node Node, reader *Reader) (bool, Span, Captures, error) {
	interp := &Interpreter{}
	start := reader.Offset()
	ok, length, caps, err := interp.Match(node, reader, start)
	if err != nil {
		return false, Span{}, nil, err
	}
	if !ok {
		return false, Span{}, nil, nil
	}
	if advErr := reader.Advance(length); advErr != nil {
		return false, Span{}, nil, advErr
	}
	return true, Span{Offset: start, Length: length}, caps, nil
}

// StringMatch attempts node at the Reader's current cursor. On success
// it advances the cursor and returns the matched text and its capture
// table.
func StringMatch(node Node, reader *Reader) (bool, string, Captures, error) {
	ok, span, caps, err := SpanMatch(node, reader)
	if err != nil || !ok {
		return false, "", nil, err
	}
	text, _ := reader.absoluteSpan(span.Offset, span.Length)
	return true, text, caps, nil
}
