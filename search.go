package fintrace

import (
	"regexp"
	"strings"
)

// Matcher is a compiled representation of a user search pattern, used for
// filtering and highlighting. A nil *Matcher means "no active filter" and is
// a valid, safe value for every method.
type Matcher struct {
	re *regexp.Regexp
}

// CompileMatcher turns untrusted user pattern text into a match predicate.
// It returns nil on empty or malformed input: a recoverable no-filter state,
// never an error. Case sensitivity is an explicit flag, not pattern text.
func CompileMatcher(pattern string, caseInsensitive bool) *Matcher {
	if pattern == "" {
		return nil
	}
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return &Matcher{re: re}
}

// Match reports whether the text matches the pattern.
func (m *Matcher) Match(text string) bool {
	if m == nil {
		return false
	}
	return m.re.MatchString(text)
}

// Matches reports whether the record matches on description or category.
func (m *Matcher) Matches(r Record) bool {
	return m.Match(r.Description) || m.Match(r.Category)
}

// Highlight wraps every non-overlapping match span in <mark> markers.
// A nil matcher returns the text unchanged. Zero-length matches are
// skipped so that patterns like `x*` cannot flood the output.
func (m *Matcher) Highlight(text string) string {
	if m == nil {
		return text
	}
	spans := m.re.FindAllStringIndex(text, -1)
	if spans == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span[0] == span[1] {
			continue
		}
		b.WriteString(text[last:span[0]])
		b.WriteString("<mark>")
		b.WriteString(text[span[0]:span[1]])
		b.WriteString("</mark>")
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Filter returns the records matching on description or category, in their
// input order. A nil matcher returns the input unchanged.
func (m *Matcher) Filter(records []Record) []Record {
	if m == nil {
		return records
	}
	var out []Record
	for _, r := range records {
		if m.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
