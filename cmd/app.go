// Package cmd implements the CLI application to manage finance records.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrace"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&deleteCmd{}, "records")

	c.Register(&listCmd{}, "views")
	c.Register(&dashboardCmd{}, "views")

	c.Register(&setCmd{}, "settings")

	c.Register(&importCmd{}, "interchange")
	c.Register(&exportCmd{}, "interchange")

	c.Register(&scrapeCmd{}, "utilities")
	c.Register(&topicCmd{}, "documentation")
}

// CommandNames returns the names of all registered subcommands, for shell
// completion.
func CommandNames() []string {
	return []string{
		"add", "edit", "delete",
		"list", "dashboard",
		"set",
		"import", "export",
		"scrape", "topic",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataPath = flag.String("data", ".fintrace", "Path to the data folder")

// openStore opens the record store over the app data folder. A missing or
// corrupt folder degrades to an empty store, it never fails.
func openStore() *fintrace.Store {
	return fintrace.OpenStore(fintrace.OpenDirStore(*dataPath))
}

// printMarkdown renders markdown for the terminal and prints it.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown rather than losing the report.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
