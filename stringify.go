package gramma

import (
	"fmt"
	"strings"
)

// GrammarNodeToStringConverter renders a grammar tree back into a
// regex-like textual form, implementing Visitor[string]. Every variant
// RegexParser can produce round-trips through String to an equivalent
// tree (\w and \s written outside a class read back with their single
// characters held in Chars rather than Nodes, and the members of Chars
// are written in no fixed order); variants that
// only the grammar-node algebra can build directly (NegatedAlternation
// with more than zero nodes, for instance) are rendered with a
// best-effort equivalent a parser could re-read, noted per case below.
type GrammarNodeToStringConverter struct{}

// String renders node using the zero-value converter, the common case.
func String(node Node) string {
	return Visit[string](node, GrammarNodeToStringConverter{})
}

func (GrammarNodeToStringConverter) VisitAny(n *Any) string { return "." }

func (GrammarNodeToStringConverter) VisitCharacterTerminal(n *CharacterTerminal) string {
	return escapeLiteral(n.Value)
}

// VisitNegatedCharacterTerminal has no parser production (the parser
// never builds this node; [^...] sets and \D-style class escapes become
// NegatedCharacterSet nodes); it renders as a lookahead over a
// one-character negated set, a zero-width equivalent a parser can read
// back.
func (c GrammarNodeToStringConverter) VisitNegatedCharacterTerminal(n *NegatedCharacterTerminal) string {
	return fmt.Sprintf("(?=[^%s])", escapeLiteral(n.Value))
}

func (c GrammarNodeToStringConverter) VisitStringTerminal(n *StringTerminal) string {
	var b strings.Builder
	for _, r := range n.Text {
		b.WriteString(escapeLiteral(r))
	}
	return b.String()
}

func (c GrammarNodeToStringConverter) VisitCharacterRange(n *CharacterRange) string {
	return fmt.Sprintf("[%s-%s]", escapeLiteral(n.Range.Start), escapeLiteral(n.Range.End))
}

func (c GrammarNodeToStringConverter) VisitNegatedCharacterRange(n *NegatedCharacterRange) string {
	return fmt.Sprintf("[^%s-%s]", escapeLiteral(n.Range.Start), escapeLiteral(n.Range.End))
}

func (c GrammarNodeToStringConverter) VisitCharacterSet(n *CharacterSet) string {
	return "[" + c.classBody(n.Chars, n.Nodes) + "]"
}

func (c GrammarNodeToStringConverter) VisitNegatedCharacterSet(n *NegatedCharacterSet) string {
	return "[^" + c.classBody(n.Chars, n.Nodes) + "]"
}

func (c GrammarNodeToStringConverter) classBody(chars map[rune]struct{}, nodes []Node) string {
	var b strings.Builder
	for r := range chars {
		if r == '-' {
			b.WriteString(`\-`) // a bare '-' between two members would read back as a range
			continue
		}
		b.WriteString(escapeLiteral(r))
	}
	for _, member := range nodes {
		switch m := member.(type) {
		case *CharacterRange:
			b.WriteString(escapeLiteral(m.Range.Start))
			b.WriteByte('-')
			b.WriteString(escapeLiteral(m.Range.End))
		case *CharacterSet, *NegatedCharacterSet:
			// A bracketed set cannot nest inside another; the parser only
			// nests sets for \d \D \w \W \s \S, so write the escape back.
			text := Visit[string](member, c)
			for _, esc := range "dDwWsS" {
				if Equal(member, classEscapeNode(esc)) {
					text = `\` + string(esc)
					break
				}
			}
			b.WriteString(text)
		default:
			b.WriteString(Visit[string](member, c))
		}
	}
	return b.String()
}

func (GrammarNodeToStringConverter) VisitUnicodeCategoryTerminal(n *UnicodeCategoryTerminal) string {
	return fmt.Sprintf(`\p{%s}`, n.Category)
}

func (GrammarNodeToStringConverter) VisitNegatedUnicodeCategoryTerminal(n *NegatedUnicodeCategoryTerminal) string {
	return fmt.Sprintf(`\P{%s}`, n.Category)
}

func (c GrammarNodeToStringConverter) VisitSequence(n *Sequence) string {
	var b strings.Builder
	for _, child := range n.Nodes {
		b.WriteString(c.grouped(child))
	}
	return b.String()
}

func (c GrammarNodeToStringConverter) VisitAlternation(n *Alternation) string {
	parts := make([]string, len(n.Nodes))
	for i, child := range n.Nodes {
		parts[i] = Visit[string](child, c)
	}
	return strings.Join(parts, "|")
}

// VisitNegatedAlternation has no direct parser production either; it
// renders as a negative lookahead over the disjunction, an equivalent
// a parser can read back (modulo the zero-width-vs-consuming
// distinction a parser-built NegativeLookahead shares with it anyway).
func (c GrammarNodeToStringConverter) VisitNegatedAlternation(n *NegatedAlternation) string {
	if len(n.Nodes) == 0 {
		return "(?:)"
	}
	parts := make([]string, len(n.Nodes))
	for i, child := range n.Nodes {
		parts[i] = Visit[string](child, c)
	}
	return fmt.Sprintf("(?!%s)", strings.Join(parts, "|"))
}

func (c GrammarNodeToStringConverter) VisitRepetition(n *Repetition) string {
	body := c.grouped(n.Inner)
	if _, nested := n.Inner.(*Repetition); nested {
		body = "(?:" + body + ")" // a** would not read back
	}
	var quant string
	switch {
	case n.Min == 0 && n.Max == -1:
		quant = "*"
	case n.Min == 1 && n.Max == -1:
		quant = "+"
	case n.Min == 0 && n.Max == 1:
		quant = "?"
	case n.Max == -1:
		quant = fmt.Sprintf("{%d,}", n.Min)
	case n.Min == n.Max:
		quant = fmt.Sprintf("{%d}", n.Min)
	default:
		quant = fmt.Sprintf("{%d,%d}", n.Min, n.Max)
	}
	if n.IsLazy {
		quant += "?"
	}
	return body + quant
}

func (c GrammarNodeToStringConverter) VisitLookahead(n *Lookahead) string {
	return fmt.Sprintf("(?=%s)", Visit[string](n.Inner, c))
}

func (c GrammarNodeToStringConverter) VisitNegativeLookahead(n *NegativeLookahead) string {
	return fmt.Sprintf("(?!%s)", Visit[string](n.Inner, c))
}

func (c GrammarNodeToStringConverter) VisitNumberedCapture(n *NumberedCapture) string {
	return fmt.Sprintf("(%s)", Visit[string](n.Inner, c))
}

func (c GrammarNodeToStringConverter) VisitNamedCapture(n *NamedCapture) string {
	return fmt.Sprintf("(?<%s>%s)", n.Name, Visit[string](n.Inner, c))
}

func (GrammarNodeToStringConverter) VisitNumberedBackreference(n *NumberedBackreference) string {
	return fmt.Sprintf(`\%d`, n.Position)
}

func (GrammarNodeToStringConverter) VisitNamedBackreference(n *NamedBackreference) string {
	return fmt.Sprintf(`\k<%s>`, n.Name)
}

// grouped wraps child in a non-capturing group when rendering it bare
// inside a Sequence or as the body of a Repetition would change its
// meaning (an Alternation losing its scope, for instance).
func (c GrammarNodeToStringConverter) grouped(child Node) string {
	switch child.(type) {
	case *Alternation, *NegatedAlternation, *Sequence:
		return fmt.Sprintf("(?:%s)", Visit[string](child, c))
	default:
		return Visit[string](child, c)
	}
}

var literalMetaChars = ".*+?|()[]{}^$\\"

func escapeLiteral(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	}
	if strings.ContainsRune(literalMetaChars, r) {
		return `\` + string(r)
	}
	return string(r)
}
