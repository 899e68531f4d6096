// i18n-completeness reports how complete each language's translation
// namespaces are compared to a reference language.
//
// Usage:
//
//	i18n-completeness [<subcommand>] [flags] [args]
//
// With no subcommand, "check" runs with the built-in defaults.
package main

import (
	"fmt"
	"os"
	"strings"
)

var subcommands = map[string]func([]string) error{
	"check": runCheck,
	"count": runCount,
}

func main() {
	setVerbose(false)

	name := "check"
	var args []string
	if len(os.Args) > 1 {
		name, args = os.Args[1], os.Args[2:]
	}
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return
	}
	// Bare flags belong to the default subcommand.
	if strings.HasPrefix(name, "-") {
		name, args = "check", os.Args[1:]
	}

	run, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: i18n-completeness [<subcommand>] [flags] [args]

Subcommands:
  check   Compare key counts of every language against the reference (default)
  count   Print the key count of individual translation files

Run "i18n-completeness <subcommand> -h" for subcommand-specific flags.`)
}
