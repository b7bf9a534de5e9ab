package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all records to a JSON file" }
func (*exportCmd) Usage() string {
	return `ft export [-o <file>]

  Writes all records as an indented JSON array. The default file name is
  stamped with today's date. Use '-' to write to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file, or '-' for stdout. Defaults to a dated file name.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	if p.output == "-" {
		if err := fintrace.Export(os.Stdout, s.Records()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := p.output
	if name == "" {
		name = fintrace.ExportFileName(fintrace.Today())
	}

	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := fintrace.Export(file, s.Records()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d record(s) to %s.\n", s.Len(), name)
	return subcommands.ExitSuccess
}
