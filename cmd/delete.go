package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record" }
func (*deleteCmd) Usage() string {
	return `ft delete -id <record-id>

  Removes the record from the store. Deleting an unknown id is a no-op.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Identifier of the record to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "missing -id flag")
		return subcommands.ExitUsageError
	}

	s := openStore()
	if _, found := s.Find(p.id); !found {
		fmt.Fprintf(os.Stderr, "no record with id %q\n", p.id)
		return subcommands.ExitFailure
	}
	s.Delete(p.id)

	fmt.Printf("Deleted record %s.\n", p.id)
	return subcommands.ExitSuccess
}
