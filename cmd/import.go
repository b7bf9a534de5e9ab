package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import records from a JSON export" }
func (*importCmd) Usage() string {
	return `ft import -f <file>

  Reads a JSON array of records and appends them to the store with fresh
  identifiers and timestamps. The whole batch is validated first: a single
  invalid record rejects the import and leaves the store untouched.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "File to import, or '-' for stdin.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "missing -f flag")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if p.file != "-" {
		file, err := os.Open(p.file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	s := openStore()
	n, err := s.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d record(s) successfully.\n", n)
	return subcommands.ExitSuccess
}
