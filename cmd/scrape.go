package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

type scrapeCmd struct {
	file string
	path string
}

func (*scrapeCmd) Name() string     { return "scrape" }
func (*scrapeCmd) Synopsis() string { return "extract structured content from an HTML document" }
func (*scrapeCmd) Usage() string {
	return `ft scrape -f <file> [-path <jsonpath>]

  Parses the HTML document and prints the extracted headings, links, images,
  tables and form fields as JSON. With -path, only the matching fragment of
  the result is printed.
`
}

func (p *scrapeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "-", "HTML file to scrape, or '-' for stdin.")
	f.StringVar(&p.path, "path", "", "JSONPath expression applied to the scrape result.")
}

func (p *scrapeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result, err := fintrace.Scrape(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrape failed: %v\n", err)
		return subcommands.ExitFailure
	}

	var out any = result
	if p.path != "" {
		// Round-trip through JSON so jsonpath sees plain maps and slices.
		raw, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		var jobj any
		if err := json.Unmarshal(raw, &jobj); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		jval, err := jsonpath.Get(p.path, jobj)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error evaluating %q: %v\n", p.path, err)
			return subcommands.ExitFailure
		}
		out = jval
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
