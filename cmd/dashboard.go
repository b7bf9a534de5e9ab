package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrace"
	"github.com/etnz/fintrace/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display aggregate figures, budget status and trend" }
func (*dashboardCmd) Usage() string {
	return `ft dashboard

  Reports the record count, total amount and top category, the budget status
  against the configured cap, and a chart of daily totals over the last
  seven days.
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	records := s.Records()
	settings := s.Settings()
	today := fintrace.Today()

	summary := fintrace.Aggregate(records)
	level, remaining := fintrace.BudgetStatus(summary.Total, settings.Budget)

	printMarkdown(renderer.RenderDashboard(&renderer.Dashboard{
		Summary:   summary,
		Level:     level,
		Remaining: remaining,
		Cap:       settings.Budget,
		Currency:  settings.DisplayCurrency,
		Trend:     fintrace.Trend(records, today, 7),
		Today:     today,
	}))

	return subcommands.ExitSuccess
}
