package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

type editCmd struct {
	id          string
	description string
	amount      string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an existing record" }
func (*editCmd) Usage() string {
	return `ft edit -id <record-id> [-d <description>] [-a <amount>] [-c <category>] [-on <date>]

  Updates the provided fields of the record and refreshes its update
  timestamp. Omitted flags leave the corresponding field unchanged.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Identifier of the record to edit.")
	f.StringVar(&p.description, "d", "", "New description.")
	f.StringVar(&p.amount, "a", "", "New amount.")
	f.StringVar(&p.category, "c", "", "New category.")
	f.StringVar(&p.date, "on", "", "New date in YYYY-MM-DD format.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "missing -id flag")
		return subcommands.ExitUsageError
	}

	// Only validate the fields that were actually provided.
	fields := []struct{ name, value string }{
		{"description", p.description},
		{"amount", p.amount},
		{"date", p.date},
		{"category", p.category},
	}
	ok := true
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if !fintrace.ValidateField(field.name, field.value) {
			fmt.Fprintln(os.Stderr, fintrace.ErrorMessage(field.name))
			ok = false
		}
	}
	if p.description != "" && fintrace.HasDuplicateWord(p.description) {
		fmt.Fprintln(os.Stderr, fintrace.ErrorMessage("advanced"))
		ok = false
	}
	if !ok {
		return subcommands.ExitUsageError
	}

	s := openStore()
	if _, found := s.Find(p.id); !found {
		fmt.Fprintf(os.Stderr, "no record with id %q\n", p.id)
		return subcommands.ExitFailure
	}

	s.Edit(p.id, fintrace.RecordInput{
		Description: p.description,
		Amount:      p.amount,
		Category:    p.category,
		Date:        p.date,
	})

	fmt.Printf("Updated record %s.\n", p.id)
	return subcommands.ExitSuccess
}
