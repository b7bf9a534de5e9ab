package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrace"
)

// Records renders a projected record view to a markdown table. Matches of
// the active matcher are emphasized in the description and category cells.
// The amount column is converted to the given display currency.
func Records(records []fintrace.Record, m *fintrace.Matcher, currency string) string {
	if len(records) == 0 {
		return "No records found.\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, "| Description | Category | Amount | Date | Updated |")
	fmt.Fprintln(&b, "|---|---|---|---|---|")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			emphasize(m.Highlight(r.Description)),
			emphasize(m.Highlight(r.Category)),
			fintrace.CurrencyDisplay(r.Amount, currency),
			r.Date,
			r.UpdatedAt.Format(fintrace.DateFormat),
		)
	}
	return b.String()
}

// MatchCount renders the search status line.
func MatchCount(count int) string {
	if count == 1 {
		return "✓ 1 match found\n"
	}
	return fmt.Sprintf("✓ %d matches found\n", count)
}

// emphasize converts the core's <mark> highlight spans to markdown strong
// emphasis, which glamour renders visibly in a terminal.
func emphasize(text string) string {
	text = strings.ReplaceAll(text, "<mark>", "**")
	return strings.ReplaceAll(text, "</mark>", "**")
}
