package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrace"
	"github.com/etnz/fintrace/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	sort        string
	dir         string
	search      string
	insensitive bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display records, sorted and optionally filtered" }
func (*listCmd) Usage() string {
	return `ft list [-sort <key>] [-dir <direction>] [-search <pattern>] [-i]

  Renders the records as a table. Records are sorted by the given key and
  direction, then filtered by the search pattern. Matching fragments of the
  description are highlighted. An invalid pattern is reported and the full
  list is rendered instead.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sort, "sort", "date", "Sort key (date, description, amount).")
	f.StringVar(&p.dir, "dir", "desc", "Sort direction (asc, desc).")
	f.StringVar(&p.search, "search", "", "Regular expression matched against description and category.")
	f.BoolVar(&p.insensitive, "i", false, "Make the search pattern case-insensitive.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := fintrace.ParseSortKey(p.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	dir, err := fintrace.ParseDirection(p.dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s := openStore()

	m := fintrace.CompileMatcher(p.search, p.insensitive)
	if p.search != "" && m == nil {
		// Recoverable: report the bad pattern and fall back to the full list.
		fmt.Fprintln(os.Stderr, "Invalid regex pattern.")
	}

	sorted := fintrace.SortedView(s.Records(), fintrace.SortState{Key: key, Dir: dir})
	visible := fintrace.SearchedView(sorted, m)

	if m != nil {
		printMarkdown(renderer.MatchCount(len(visible)))
	}
	printMarkdown(renderer.Records(visible, m, s.Settings().DisplayCurrency))

	return subcommands.ExitSuccess
}
