package fintrace

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Validation comes in two deliberately distinct tiers:
//
//   - the field tier gates interactive entry, one rule per field;
//   - the structural tier gates bulk import, checking only key presence,
//     basic types, and the amount/date rules.
//
// The asymmetry is intentional: tightening the structural tier would start
// rejecting previously exported files.

var fieldRules = map[string]*regexp.Regexp{
	"description": regexp.MustCompile(`^\S(.*\S)?$`),
	"amount":      regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`),
	"date":        dateRE,
	"category":    regexp.MustCompile(`^[A-Za-z]+([ -][A-Za-z]+)*$`),
}

var errorMessages = map[string]string{
	"description": "Description required. No leading/trailing spaces.",
	"amount":      "Enter a valid amount (> 0) with up to two decimal places.",
	"date":        "Use date format YYYY-MM-DD.",
	"category":    "Only letters, spaces, and hyphens allowed.",
	"advanced":    "Description contains duplicate consecutive words.",
}

// ValidateField applies the named field's rule to a value. For "amount" the
// pattern alone permits "0", so values that do not parse strictly positive
// are additionally rejected. Unknown fields are invalid.
func ValidateField(field, value string) bool {
	rule, ok := fieldRules[field]
	if !ok {
		return false
	}
	if field == "amount" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f <= 0 {
			return false
		}
	}
	return rule.MatchString(value)
}

// ErrorMessage returns the fixed human-readable message for a field's rule,
// or a generic message for unknown fields.
func ErrorMessage(field string) string {
	if msg, ok := errorMessages[field]; ok {
		return msg
	}
	return "Invalid input."
}

// HasDuplicateWord reports whether the text repeats a word immediately,
// e.g. "the the trip". The comparison is case-sensitive and the two
// occurrences must be separated by whitespace only. Advisory: it blocks
// interactive submission alongside the description rule.
//
// Go's regexp has no backreferences, so this walks word tokens instead of
// matching `\b(\w+)\s+\1\b`.
func HasDuplicateWord(text string) bool {
	var prev string
	var sinceWord strings.Builder
	var word strings.Builder
	flush := func() bool {
		if word.Len() == 0 {
			return false
		}
		w := word.String()
		word.Reset()
		dup := w == prev && isAllSpace(sinceWord.String())
		prev = w
		sinceWord.Reset()
		return dup
	}
	for _, r := range text {
		if isWordRune(r) {
			word.WriteRune(r)
			continue
		}
		if flush() {
			return true
		}
		sinceWord.WriteRune(r)
	}
	return flush()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}

func isAllSpace(s string) bool {
	if s == "" {
		return false // adjacent tokens, not a whitespace-separated repeat
	}
	return strings.TrimSpace(s) == ""
}

// requiredKeys are the seven keys every imported record object must carry.
var requiredKeys = []string{"id", "description", "amount", "category", "date", "createdAt", "updatedAt"}

// ValidateRecordStructure is the structural tier used for bulk import. It
// verifies the presence of all required keys, that amount is numeric and id
// is a string, and that the stringified amount and the date pass their field
// rules. Description and category patterns are intentionally not applied.
func ValidateRecordStructure(obj map[string]any) bool {
	for _, key := range requiredKeys {
		if _, ok := obj[key]; !ok {
			return false
		}
	}
	if _, ok := obj["id"].(string); !ok {
		return false
	}
	amount, ok := numericString(obj["amount"])
	if !ok {
		return false
	}
	date, ok := obj["date"].(string)
	if !ok {
		return false
	}
	return ValidateField("amount", amount) && ValidateField("date", date)
}

// numericString returns the textual form of a decoded JSON number, in the
// shortest representation so that 3.50 reads back as "3.5". Plain decimal
// notation, never scientific: the amount rule must keep accepting large
// values like 1000000.
func numericString(v any) (string, bool) {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}
