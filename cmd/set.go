package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

type setCmd struct {
	currency string
	cap      string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change the display currency or the budget cap" }
func (*setCmd) Usage() string {
	return `ft set [-currency <code>] [-cap <amount>]

  Updates application settings. Without flags, prints the current settings.
  The budget cap is expressed in base currency.
`
}

func (p *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "Display currency code.")
	f.StringVar(&p.cap, "cap", "", "Monthly budget cap, a positive number with up to two decimals.")
}

func (p *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()

	if p.currency == "" && p.cap == "" {
		settings := s.Settings()
		fmt.Printf("currency: %s\n", settings.DisplayCurrency)
		fmt.Printf("cap:      %s\n", settings.Budget)
		return subcommands.ExitSuccess
	}

	if p.currency != "" {
		if !fintrace.KnownCurrency(p.currency) {
			fmt.Fprintf(os.Stderr, "unknown currency %q, expecting one of %s\n",
				p.currency, strings.Join(fintrace.Currencies(), ", "))
			return subcommands.ExitUsageError
		}
		s.UpdateSetting("currency", p.currency)
		fmt.Printf("Display currency set to %s.\n", p.currency)
	}

	if p.cap != "" {
		if !fintrace.ValidateField("amount", p.cap) {
			fmt.Fprintln(os.Stderr, fintrace.ErrorMessage("amount"))
			return subcommands.ExitUsageError
		}
		s.UpdateSetting("cap", p.cap)
		fmt.Printf("Budget cap set to %s.\n", p.cap)
	}

	return subcommands.ExitSuccess
}
