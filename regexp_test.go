package gramma

import "testing"

// TestMatchSimple tests basic literal matching and the dot metacharacter.
func TestMatchSimple(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"abc", "abc", true},
		{"abc", "xabcy", true},
		{"abc", "ab", false},
		{"a.c", "abc", true},
		{"a.c", "axc", true},
		{"a.c", "a\nc", true}, // Any has no newline exception
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("MatchString(%q, %q) = %v; want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}

// TestMatchAlternation tests the | operator.
func TestMatchAlternation(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},
		{"foo|bar", "foo", true},
		{"foo|bar", "bar", true},
		{"foo|bar", "baz", false},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("MatchString(%q, %q) = %v; want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}

// TestMatchQuantifiers covers *, +, ?, and the {n,m} forms.
func TestMatchQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"ab*c", "ac", true},
		{"ab*c", "abbbc", true},
		{"ab+c", "ac", false},
		{"ab+c", "abc", true},
		{"ab?c", "ac", true},
		{"ab?c", "abc", true},
		{"ab?c", "abbc", false},
		{"a{2,3}", "a", false},
		{"a{2,3}", "aa", true},
		{"a{2,3}", "aaa", true},
		{"a{2,3}", "aaaa", true}, // matches the first 3
		{"a{2}", "a", false},
		{"a{2}", "aa", true},
		{"a{2,}", "aaaaa", true},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("MatchString(%q, %q) = %v; want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}

func TestFindString(t *testing.T) {
	re := MustCompile(`\d+`)
	if got := re.FindString("abc123def"); got != "123" {
		t.Errorf("FindString = %q; want %q", got, "123")
	}
	if got := re.FindString("no digits"); got != "" {
		t.Errorf("FindString = %q; want empty", got)
	}
}

func TestFindStringIndex(t *testing.T) {
	re := MustCompile(`\d+`)
	loc := re.FindStringIndex("abc123def")
	if loc == nil || loc[0] != 3 || loc[1] != 6 {
		t.Errorf("FindStringIndex = %v; want [3 6]", loc)
	}
	if loc := re.FindStringIndex("no digits"); loc != nil {
		t.Errorf("FindStringIndex = %v; want nil", loc)
	}
}

// TestFindStringSubmatch tests basic capture group functionality.
func TestFindStringSubmatch(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		expected []string
	}{
		{
			`(\w+)\s(\w+)`,
			"John Doe",
			[]string{"John Doe", "John", "Doe"},
		},
		{
			`(?<first>\w+)\s(?<last>\w+)`,
			"Jane Smith",
			[]string{"Jane Smith", "Jane", "Smith"},
		},
		{
			`a(b*)c`,
			"abbbc",
			[]string{"abbbc", "bbb"},
		},
		{
			`a(b*)c`,
			"ac",
			[]string{"ac", ""},
		},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		got := re.FindStringSubmatch(tc.input)
		if len(got) != len(tc.expected) {
			t.Errorf("FindStringSubmatch(%q, %q) length = %d; want %d. Got: %v", tc.pattern, tc.input, len(got), len(tc.expected), got)
			continue
		}
		for i, s := range got {
			if s != tc.expected[i] {
				t.Errorf("FindStringSubmatch(%q, %q)[%d] = %q; want %q", tc.pattern, tc.input, i, s, tc.expected[i])
			}
		}
	}
}

// TestSubexpNames tests named capture group bookkeeping.
func TestSubexpNames(t *testing.T) {
	re := MustCompile(`(?<first>\w+)\s(\w+)\s(?<last>\w+)`)
	names := re.SubexpNames()
	expected := []string{"", "first", "", "last"}
	if len(names) != len(expected) {
		t.Fatalf("SubexpNames length = %d; want %d", len(names), len(expected))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("SubexpNames[%d] = %q; want %q", i, name, expected[i])
		}
	}
}

func TestFindAllString(t *testing.T) {
	re := MustCompile(`\d+`)
	got := re.FindAllString("a1 b22 c333", -1)
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("FindAllString length = %d; want %d", len(got), len(want))
	}
	for i, s := range got {
		if s != want[i] {
			t.Errorf("FindAllString[%d] = %q; want %q", i, s, want[i])
		}
	}
}

func TestFindAllStringN(t *testing.T) {
	re := MustCompile(`\d+`)
	got := re.FindAllString("a1 b22 c333", 2)
	if len(got) != 2 {
		t.Fatalf("FindAllString with n=2 returned %d matches; want 2", len(got))
	}
}

func TestBackreference(t *testing.T) {
	re := MustCompile(`(\w+) \1`)
	if !re.MatchString("hello hello") {
		t.Errorf("expected backreference match on repeated word")
	}
	if re.MatchString("hello world") {
		t.Errorf("expected no backreference match on distinct words")
	}
}

func TestNamedBackreference(t *testing.T) {
	re := MustCompile(`(?<word>\w+) \k<word>`)
	if !re.MatchString("echo echo") {
		t.Errorf("expected named backreference match")
	}
	if re.MatchString("echo delta") {
		t.Errorf("expected no named backreference match")
	}
}

func TestLookahead(t *testing.T) {
	re := MustCompile(`foo(?=bar)`)
	if !re.MatchString("foobar") {
		t.Errorf("expected lookahead match on foobar")
	}
	if re.MatchString("foobaz") {
		t.Errorf("expected no lookahead match on foobaz")
	}
}

func TestNegativeLookahead(t *testing.T) {
	re := MustCompile(`foo(?!bar)`)
	if re.MatchString("foobar") {
		t.Errorf("expected no negative-lookahead match on foobar")
	}
	if !re.MatchString("foobaz") {
		t.Errorf("expected negative-lookahead match on foobaz")
	}
}

func TestUnicodeCategory(t *testing.T) {
	re := MustCompile(`\p{Lu}+`)
	if got := re.FindString("abcDEF"); got != "DEF" {
		t.Errorf("FindString = %q; want %q", got, "DEF")
	}
	// \P{...} is a zero-width assertion (see NegatedUnicodeCategoryTerminal),
	// so the first position holding a non-Lu character yields an empty match.
	reNeg := MustCompile(`\P{Lu}+`)
	if loc := reNeg.FindStringIndex("ABCdef"); loc == nil || loc[0] != 3 || loc[1] != 3 {
		t.Errorf("FindStringIndex = %v; want [3 3]", loc)
	}
}

func TestCharacterClass(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{`[abc]`, "b", true},
		{`[abc]`, "d", false},
		{`[a-z]`, "m", true},
		{`[a-z]`, "M", false},
		{`[^\d\s]`, "x", true},
		{`[^\d\s]`, "5", false},
		{`[^\d\s]`, " ", false},
		{`[]]`, "]", true},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("MatchString(%q, %q) = %v; want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}
