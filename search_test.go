package fintrace

import (
	"reflect"
	"testing"
)

func TestCompileMatcher(t *testing.T) {
	if m := CompileMatcher("", false); m != nil {
		t.Error("empty pattern should compile to no matcher")
	}
	if m := CompileMatcher("(", false); m != nil {
		t.Error("malformed pattern should compile to no matcher, not an error")
	}
	if m := CompileMatcher("coffee", false); m == nil {
		t.Error("valid pattern should compile")
	}
}

func TestMatcherCaseSensitivity(t *testing.T) {
	sensitive := CompileMatcher("coffee", false)
	insensitive := CompileMatcher("coffee", true)

	if sensitive.Match("Morning Coffee") {
		t.Error("case-sensitive matcher should not match different case")
	}
	if !insensitive.Match("Morning Coffee") {
		t.Error("case-insensitive matcher should match different case")
	}
}

func searchRecords() []Record {
	return []Record{
		{ID: "1", Description: "Morning coffee", Category: "Food"},
		{ID: "2", Description: "Bus ticket", Category: "Transport"},
		{ID: "3", Description: "Groceries", Category: "Food"},
	}
}

func TestMatcherFilter(t *testing.T) {
	records := searchRecords()

	t.Run("nil matcher is identity", func(t *testing.T) {
		var m *Matcher
		if got := m.Filter(records); !reflect.DeepEqual(got, records) {
			t.Errorf("nil matcher changed the input: %v", got)
		}
	})

	t.Run("matches description or category", func(t *testing.T) {
		m := CompileMatcher("Food", false)
		got := m.Filter(records)
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
			t.Errorf("Filter(Food) = %v, want records 1 and 3 in input order", ids(got))
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		m := CompileMatcher("zzz", false)
		if got := m.Filter(records); len(got) != 0 {
			t.Errorf("Filter(zzz) = %v, want none", ids(got))
		}
	})
}

func TestMatcherHighlight(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		text    string
		want    string
	}{
		{"single match", "coffee", "Morning coffee", "Morning <mark>coffee</mark>"},
		{"every match", "o", "foo bob", "f<mark>o</mark><mark>o</mark> b<mark>o</mark>b"},
		{"no match", "zzz", "Morning coffee", "Morning coffee"},
		{"zero-length matches skipped", "x*", "abc", "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := CompileMatcher(tc.pattern, false)
			if got := m.Highlight(tc.text); got != tc.want {
				t.Errorf("Highlight(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}

	t.Run("nil matcher is identity", func(t *testing.T) {
		var m *Matcher
		if got := m.Highlight("unchanged"); got != "unchanged" {
			t.Errorf("nil matcher changed the text: %q", got)
		}
	})
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
