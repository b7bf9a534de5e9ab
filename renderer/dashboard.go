package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrace"
)

// Dashboard is the view model for the dashboard report.
type Dashboard struct {
	Summary   fintrace.Summary
	Level     fintrace.Level
	Remaining fintrace.Amount
	Cap       fintrace.Amount
	Currency  string            // display currency code
	Trend     []fintrace.Amount // daily buckets, oldest first
	Today     fintrace.Date
}

// RenderDashboard renders the dashboard to markdown: the aggregate figures,
// the budget status line, and the trend chart over the bucketed window.
func RenderDashboard(d *Dashboard) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Dashboard")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Records: %d\n", d.Summary.Count)
	fmt.Fprintf(&b, "- Total: %s\n", fintrace.CurrencyDisplay(d.Summary.Total, d.Currency))
	fmt.Fprintf(&b, "- Top category: %s\n", d.Summary.TopCategory)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, budgetLine(d))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "## Last 7 days")
	fmt.Fprintln(&b)
	b.WriteString(trendChart(d))

	return b.String()
}

// budgetLine mirrors the three budget-status messages, one per level.
// The cap is always reported in base currency.
func budgetLine(d *Dashboard) string {
	display := func(a fintrace.Amount) string { return fintrace.CurrencyDisplay(a, d.Currency) }
	cap := fintrace.CurrencyDisplay(d.Cap, "USD")
	switch d.Level {
	case fintrace.BudgetOver:
		return fmt.Sprintf("**Over budget!** You are %s over your cap of %s.", display(d.Remaining.Abs()), cap)
	case fintrace.BudgetLow:
		return fmt.Sprintf("**Low budget:** %s remaining of %s.", display(d.Remaining), cap)
	default:
		return fmt.Sprintf("On track: %s remaining of %s.", display(d.Remaining), cap)
	}
}

const maxBarWidth = 20

// trendChart renders one bar per bucket, scaled to the busiest day.
func trendChart(d *Dashboard) string {
	max := fintrace.Amount{}
	for _, a := range d.Trend {
		if max.LessThan(a) {
			max = a
		}
	}

	var b strings.Builder
	days := len(d.Trend)
	for i, amount := range d.Trend {
		day := d.Today.Add(i - (days - 1))
		fmt.Fprintf(&b, "    %s %-*s %s\n", day, maxBarWidth, bar(amount, max), amount)
	}
	return b.String()
}

func bar(amount, max fintrace.Amount) string {
	if amount.IsZero() || max.IsZero() {
		return ""
	}
	width := int(amount.AsFloat() / max.AsFloat() * maxBarWidth)
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}
