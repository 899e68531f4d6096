package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	completeColor = color.New(color.FgGreen)
	missingColor  = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 40)
)

// jsonReport is the --format json document.
type jsonReport struct {
	Reference  string            `json:"reference"`
	Namespaces []namespaceResult `json:"namespaces"`
	Summary    summary           `json:"summary"`
}

func writeJSONReport(w io.Writer, cfg *config, results []namespaceResult, sum summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Reference:  cfg.reference(),
		Namespaces: results,
		Summary:    sum,
	})
}

func writeTextReport(w io.Writer, cfg *config, results []namespaceResult, sum summary) error {
	refName := languageName(cfg.reference())

	fmt.Fprintln(w, "Translation Completeness Check")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)

	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(r.Namespace))
		fmt.Fprintln(w, lightRule)

		if r.skipped() {
			errorColor.Fprintf(w, "❌ %s (reference): Error - %s (namespace skipped)\n", refName, r.ReferenceError)
			continue
		}
		fmt.Fprintf(w, "%s (reference): %d keys\n", refName, r.ReferenceKeys)

		for _, lr := range r.Languages {
			writeLanguageLine(w, lr)
		}
	}

	fmt.Fprintf(w, "\n%s\n", heavyRule)
	writeSummary(w, sum)
	return nil
}

func writeLanguageLine(w io.Writer, lr languageResult) {
	switch lr.Status {
	case statusMissing:
		missingColor.Fprintf(w, "⚠️  %-6s: %3d keys (missing %d)\n", lr.Language, lr.Keys, lr.Missing)
	case statusComplete:
		completeColor.Fprintf(w, "✅ %-6s: %3d keys\n", lr.Language, lr.Keys)
	case statusError:
		errorColor.Fprintf(w, "❌ %-6s: Error - %s\n", lr.Language, lr.Error)
	}
}

func writeSummary(w io.Writer, sum summary) {
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  Namespaces: %d", sum.Namespaces)
	if sum.Skipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", sum.Skipped)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Complete:   %d\n", sum.Complete)
	fmt.Fprintf(w, "  Incomplete: %d\n", sum.Incomplete)
	fmt.Fprintf(w, "  Errors:     %d\n", sum.Errors)

	fmt.Fprintln(w)
	for _, ls := range sum.Languages {
		fmt.Fprintf(w, "  %-6s %3d%% complete", ls.Language, ls.Completion)
		if ls.Incomplete > 0 || ls.Errors > 0 {
			fmt.Fprintf(w, " (%d incomplete, %d errors)", ls.Incomplete, ls.Errors)
		}
		fmt.Fprintln(w)
	}
}

// languageName returns the English display name of a language tag,
// falling back to the tag itself.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
