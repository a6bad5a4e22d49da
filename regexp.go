package gramma

import "fmt"

// Regexp is the compiled, reusable form of a pattern, offering the
// stdlib-regexp-shaped search API (FindString, FindStringSubmatch, and
// so on) on top of the grammar tree, Reader, and Interpreter underneath.
// A *Regexp is safe for concurrent use by multiple goroutines: it holds
// no mutable per-match state of its own (each search builds its own
// Reader and Interpreter).
type Regexp struct {
	expr string
	tree Node
	// order lists the capture groups in submatch order: order[i] holds
	// the table key (see NumberedCaptureKey) of submatch index i+1,
	// index 0 being the whole match. Built once at Compile time so
	// Find*Submatch results have a consistent shape across calls.
	order []captureSlot
}

type captureSlot struct {
	key  string
	name string // empty for a numbered capture
}

// Compile parses expr and builds a Regexp, or returns the *ParseError
// RegexParser produced.
func Compile(expr string) (*Regexp, error) {
	tree, err := ParsePattern(expr)
	if err != nil {
		return nil, err
	}
	return &Regexp{expr: expr, tree: tree, order: collectCaptureSlots(tree)}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
// Intended for initializing package-level patterns from constants.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("gramma: Compile(%q): %v", expr, err))
	}
	return re
}

// String returns the source pattern text re was compiled from.
func (re *Regexp) String() string { return re.expr }

// SubexpNames returns the names of the capture groups in re's pattern.
// Index 0 corresponds to the whole match and is always empty; unnamed
// groups also report an empty name at their index.
func (re *Regexp) SubexpNames() []string {
	names := make([]string, len(re.order)+1)
	for i, slot := range re.order {
		names[i+1] = slot.name
	}
	return names
}

// SubexpIndex returns the index of the first subexpression named name,
// or -1 if there is no such subexpression.
func (re *Regexp) SubexpIndex(name string) int {
	for i, slot := range re.order {
		if slot.name == name {
			return i + 1
		}
	}
	return -1
}

// collectCaptureSlots walks tree in pre-order collecting every capture
// node, in the order their opening parenthesis would appear in the
// source text, which is what Go's stdlib regexp also guarantees for
// submatch indexing.
func collectCaptureSlots(tree Node) []captureSlot {
	var slots []captureSlot
	var walk func(n Node)
	walk = func(n Node) {
		switch t := n.(type) {
		case *NumberedCapture:
			slots = append(slots, captureSlot{key: NumberedCaptureKey(t.Position)})
			walk(t.Inner)
		case *NamedCapture:
			slots = append(slots, captureSlot{key: t.Name, name: t.Name})
			walk(t.Inner)
		case *Sequence:
			for _, c := range t.Nodes {
				walk(c)
			}
		case *Alternation:
			for _, c := range t.Nodes {
				walk(c)
			}
		case *NegatedAlternation:
			for _, c := range t.Nodes {
				walk(c)
			}
		case *Repetition:
			walk(t.Inner)
		case *Lookahead:
			walk(t.Inner)
		case *NegativeLookahead:
			walk(t.Inner)
		}
	}
	walk(tree)
	return slots
}

// MatchString reports whether s contains any match of re.
func (re *Regexp) MatchString(s string) bool {
	return re.FindStringIndex(s) != nil
}

// FindString returns the text of the leftmost match of re in s, or ""
// if there is no match. An empty string result is ambiguous with no
// match; use FindStringIndex to distinguish them.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return runeSlice(s, loc[0], loc[1]-loc[0])
}

// runeSlice returns the substring of s spanning length runes starting
// at the start'th rune. Offsets throughout this package are character
// (rune) offsets, not byte offsets, so this is not equivalent to
// ordinary byte-indexed string slicing once s contains any multi-byte
// UTF-8 character before start.
func runeSlice(s string, start, length int) string {
	runes := []rune(s)
	if start < 0 || length < 0 || start+length > len(runes) {
		return ""
	}
	return string(runes[start : start+length])
}

// FindStringIndex returns a two-element slice holding the start and end
// rune offsets of the leftmost match of re in s, or nil if there is
// none.
func (re *Regexp) FindStringIndex(s string) []int {
	reader := NewReader(s)
	interp := &Interpreter{}
	for pos := 0; pos <= reader.Len(); pos++ {
		ok, length, _, err := interp.Match(re.tree, reader, pos)
		if err != nil {
			return nil
		}
		if ok {
			return []int{pos, pos + length}
		}
	}
	return nil
}

// FindStringSubmatch returns the text of the leftmost match of re in s
// and the text of its subexpression matches, in the SubexpNames order.
// It returns nil if there is no match; a submatch that didn't
// participate in the match is the empty string.
func (re *Regexp) FindStringSubmatch(s string) []string {
	reader := NewReader(s)
	interp := &Interpreter{}
	for pos := 0; pos <= reader.Len(); pos++ {
		ok, length, caps, err := interp.Match(re.tree, reader, pos)
		if err != nil {
			return nil
		}
		if ok {
			return re.submatchResult(s, pos, length, caps)
		}
	}
	return nil
}

func (re *Regexp) submatchResult(s string, start, length int, caps Captures) []string {
	result := make([]string, len(re.order)+1)
	result[0] = runeSlice(s, start, length)
	for i, slot := range re.order {
		if c, ok := caps[slot.key]; ok {
			result[i+1] = runeSlice(s, c.Start, c.Length)
		}
	}
	return result
}

// FindAllString returns all successive, non-overlapping matches of re
// in s. n bounds the number of matches returned; n < 0 means unbounded.
func (re *Regexp) FindAllString(s string, n int) []string {
	indices := re.FindAllStringIndex(s, n)
	if indices == nil {
		return nil
	}
	result := make([]string, len(indices))
	for i, loc := range indices {
		result[i] = runeSlice(s, loc[0], loc[1]-loc[0])
	}
	return result
}

// FindAllStringIndex is the indices-only form of FindAllString.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	var results [][]int
	reader := NewReader(s)
	interp := &Interpreter{}
	pos := 0
	for pos <= reader.Len() && (n < 0 || len(results) < n) {
		ok, length, _, err := interp.Match(re.tree, reader, pos)
		if err != nil {
			break
		}
		if !ok {
			pos++
			continue
		}
		results = append(results, []int{pos, pos + length})
		if length == 0 {
			pos++
		} else {
			pos += length
		}
	}
	return results
}

// FindAllStringSubmatch is the submatch form of FindAllString.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	var results [][]string
	reader := NewReader(s)
	interp := &Interpreter{}
	pos := 0
	for pos <= reader.Len() && (n < 0 || len(results) < n) {
		ok, length, caps, err := interp.Match(re.tree, reader, pos)
		if err != nil {
			break
		}
		if !ok {
			pos++
			continue
		}
		results = append(results, re.submatchResult(s, pos, length, caps))
		if length == 0 {
			pos++
		} else {
			pos += length
		}
	}
	return results
}
