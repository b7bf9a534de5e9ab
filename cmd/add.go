package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new finance record" }
func (*addCmd) Usage() string {
	return `ft add -d <description> -a <amount> -c <category> [-on <date>]

  Validates the record fields and appends a new record to the store.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Record description.")
	f.StringVar(&p.amount, "a", "", "Record amount, a positive number with up to two decimals.")
	f.StringVar(&p.category, "c", "", "Record category (letters, single spaces or hyphens).")
	f.StringVar(&p.date, "on", fintrace.Today().String(), "Record date in YYYY-MM-DD format.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields := []struct{ name, value string }{
		{"description", p.description},
		{"amount", p.amount},
		{"date", p.date},
		{"category", p.category},
	}

	ok := true
	for _, field := range fields {
		if !fintrace.ValidateField(field.name, field.value) {
			fmt.Fprintln(os.Stderr, fintrace.ErrorMessage(field.name))
			ok = false
		}
	}
	if fintrace.HasDuplicateWord(p.description) {
		fmt.Fprintln(os.Stderr, fintrace.ErrorMessage("advanced"))
		ok = false
	}
	if !ok {
		return subcommands.ExitUsageError
	}

	s := openStore()
	rec := s.Add(fintrace.RecordInput{
		Description: p.description,
		Amount:      p.amount,
		Category:    p.category,
		Date:        p.date,
	})

	fmt.Printf("Added record %s.\n", rec.ID)
	return subcommands.ExitSuccess
}
