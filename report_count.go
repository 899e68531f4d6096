package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/xerrors"
)

func runCount(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Log every counted key to stderr")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return xerrors.New("at least one file is required")
	}
	setVerbose(*verbose)
	return reportCount(os.Stdout, os.Stderr, fs.Args())
}

// reportCount prints the leaf key count of each file. Failures are reported
// per file and only fail the command once every file has been processed.
func reportCount(w, errw io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		doc, err := loadDocument(path)
		if err != nil {
			fmt.Fprintf(errw, "%s: Error - %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%6d  %s\n", countKeys(doc, ""), path)
	}
	if failed > 0 {
		return xerrors.Errorf("%d of %d files could not be counted", failed, len(paths))
	}
	return nil
}
