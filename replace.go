package gramma

import "strings"

// ReplaceAllString replaces every match of re in src with repl, where
// $1, $name, and ${name} inside repl expand to the corresponding
// submatch, as described on expand. Indices from FindAllStringIndex are
// rune offsets, so splicing is done over []rune(src) rather than
// ordinary byte-indexed string slicing.
func (re *Regexp) ReplaceAllString(src, repl string) string {
	indices := re.FindAllStringIndex(src, -1)
	if indices == nil {
		return src
	}
	matches := re.FindAllStringSubmatch(src, -1)
	runes := []rune(src)

	var out strings.Builder
	lastEnd := 0
	for i, loc := range indices {
		out.WriteString(string(runes[lastEnd:loc[0]]))
		out.WriteString(re.expand(repl, matches[i]))
		lastEnd = loc[1]
	}
	out.WriteString(string(runes[lastEnd:]))
	return out.String()
}

// ReplaceAllLiteralString replaces every match of re in src with repl,
// with no $-expansion.
func (re *Regexp) ReplaceAllLiteralString(src, repl string) string {
	return re.ReplaceAllStringFunc(src, func(string) string { return repl })
}

// ReplaceAllStringFunc replaces every match of re in src with the
// result of calling fn on the matched text.
func (re *Regexp) ReplaceAllStringFunc(src string, fn func(string) string) string {
	indices := re.FindAllStringIndex(src, -1)
	if indices == nil {
		return src
	}
	runes := []rune(src)
	var out strings.Builder
	lastEnd := 0
	for _, loc := range indices {
		out.WriteString(string(runes[lastEnd:loc[0]]))
		out.WriteString(fn(string(runes[loc[0]:loc[1]])))
		lastEnd = loc[1]
	}
	out.WriteString(string(runes[lastEnd:]))
	return out.String()
}

// expand interprets template's $1, $name, ${name}, and $$ against an
// already-computed submatch slice (as returned by FindStringSubmatch).
func (re *Regexp) expand(template string, submatches []string) string {
	var out strings.Builder
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			out.WriteByte(template[i])
			i++
			continue
		}
		i++
		if template[i] == '$' {
			out.WriteByte('$')
			i++
			continue
		}
		if template[i] == '{' {
			i++
			nameStart := i
			for i < len(template) && template[i] != '}' {
				i++
			}
			if i >= len(template) {
				out.WriteString("${")
				i = nameStart
				continue
			}
			out.WriteString(re.submatchByRef(template[nameStart:i], submatches))
			i++ // skip }
			continue
		}
		nameStart := i
		for i < len(template) && isIdentRune(rune(template[i])) {
			i++
		}
		if i == nameStart {
			out.WriteByte('$')
			continue
		}
		out.WriteString(re.submatchByRef(template[nameStart:i], submatches))
	}
	return out.String()
}

func (re *Regexp) submatchByRef(ref string, submatches []string) string {
	if ref != "" && ref[0] >= '0' && ref[0] <= '9' {
		idx := 0
		for _, c := range ref {
			idx = idx*10 + int(c-'0')
		}
		if idx < len(submatches) {
			return submatches[idx]
		}
		return ""
	}
	idx := re.SubexpIndex(ref)
	if idx < 0 || idx >= len(submatches) {
		return ""
	}
	return submatches[idx]
}

// ReplaceAll is the []byte form of ReplaceAllString.
func (re *Regexp) ReplaceAll(src, repl []byte) []byte {
	return []byte(re.ReplaceAllString(string(src), string(repl)))
}

// ReplaceAllLiteral is the []byte form of ReplaceAllLiteralString.
func (re *Regexp) ReplaceAllLiteral(src, repl []byte) []byte {
	return []byte(re.ReplaceAllLiteralString(string(src), string(repl)))
}

// ReplaceAllFunc is the []byte form of ReplaceAllStringFunc.
func (re *Regexp) ReplaceAllFunc(src []byte, fn func([]byte) []byte) []byte {
	return []byte(re.ReplaceAllStringFunc(string(src), func(s string) string {
		return string(fn([]byte(s)))
	}))
}
