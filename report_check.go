package main

import (
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
)

type status string

const (
	statusComplete status = "complete"
	statusMissing  status = "missing"
	statusError    status = "error"
)

// languageResult is the outcome of comparing one language against the
// reference within a namespace.
type languageResult struct {
	Language string `json:"language"`
	Status   status `json:"status"`
	Keys     int    `json:"keys"`
	Missing  int    `json:"missing,omitempty"`
	Error    string `json:"error,omitempty"`
}

type namespaceResult struct {
	Namespace      string           `json:"namespace"`
	ReferenceKeys  int              `json:"referenceKeys"`
	ReferenceError string           `json:"referenceError,omitempty"`
	Languages      []languageResult `json:"languages"`
}

func (r namespaceResult) skipped() bool {
	return r.ReferenceError != ""
}

type checkFlags struct {
	configPath string
	localesDir string
	namespaces string
	languages  string
	ext        string
	format     string
	strict     bool
	noColor    bool
	verbose    bool
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var f checkFlags
	fs.StringVar(&f.configPath, "config", "", "Config file (default: "+configFileName+" in the project root)")
	fs.StringVar(&f.localesDir, "locales", "", "Translations directory, one subdirectory per language")
	fs.StringVar(&f.namespaces, "namespaces", "", "Comma-separated namespaces")
	fs.StringVar(&f.languages, "languages", "", "Comma-separated languages; the first is the reference")
	fs.StringVar(&f.ext, "ext", "", "Document extension: json, yaml, yml, toml")
	fs.StringVar(&f.format, "format", "text", "Output format: text, json")
	fs.BoolVar(&f.strict, "strict", false, "Exit non-zero when any language is missing keys or failed to load")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable coloured status lines")
	fs.BoolVar(&f.verbose, "verbose", false, "Log loaded files and counted keys to stderr")
	fs.Parse(args)

	if f.format != "text" && f.format != "json" {
		return xerrors.New("--format must be text or json")
	}
	setVerbose(f.verbose)
	if f.noColor {
		color.NoColor = true
	}

	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}
	return reportCheck(os.Stdout, cfg, f.format, f.strict)
}

// buildConfig layers defaults, the config file, the environment and the
// command line, in increasing precedence.
func buildConfig(f checkFlags) (*config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	root := projectRoot(cwd, cfg.LocalesDir)
	defaultLocales := cfg.LocalesDir

	if f.configPath != "" {
		err = loadConfigFile(f.configPath, &cfg, true)
	} else {
		err = loadConfigFile(filepath.Join(root, configFileName), &cfg, false)
	}
	if err != nil {
		return nil, err
	}

	// .env is optional; variables may come from the environment directly.
	if err := godotenv.Load(); err != nil && !xerrors.Is(err, fs.ErrNotExist) {
		return nil, xerrors.Errorf("loading .env: %w", err)
	}
	applyEnv(&cfg, os.Getenv)

	cfg.merge(config{
		LocalesDir: f.localesDir,
		Namespaces: splitList(f.namespaces),
		Languages:  splitList(f.languages),
		Extension:  f.ext,
	})
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.LocalesDir != defaultLocales {
		root = projectRoot(cwd, cfg.LocalesDir)
	}
	cfg.resolve(root)
	log.Debugw("configuration", "localesDir", cfg.LocalesDir, "namespaces", cfg.Namespaces,
		"languages", cfg.Languages, "extension", cfg.Extension)
	return &cfg, nil
}

func reportCheck(w io.Writer, cfg *config, format string, strict bool) error {
	results := checkAll(cfg)
	sum := summarize(cfg, results)

	var err error
	if format == "json" {
		err = writeJSONReport(w, cfg, results, sum)
	} else {
		err = writeTextReport(w, cfg, results, sum)
	}
	if err != nil {
		return err
	}

	if strict && !sum.passed() {
		return xerrors.New("checks failed")
	}
	return nil
}

// checkAll compares every namespace in declared order.
func checkAll(cfg *config) []namespaceResult {
	results := make([]namespaceResult, 0, len(cfg.Namespaces))
	for _, ns := range cfg.Namespaces {
		results = append(results, checkNamespace(cfg, ns))
	}
	return results
}

// checkNamespace counts the reference document once, then classifies each
// other language against it. A failing language never affects the others;
// a failing reference skips the namespace.
func checkNamespace(cfg *config, namespace string) namespaceResult {
	result := namespaceResult{Namespace: namespace, Languages: []languageResult{}}

	refDoc, err := loadDocument(documentPath(cfg, namespace, cfg.reference()))
	if err != nil {
		log.Warnw("reference document unavailable, skipping namespace",
			"namespace", namespace, "language", cfg.reference(), "error", err)
		result.ReferenceError = err.Error()
		return result
	}
	result.ReferenceKeys = countKeys(refDoc, "")

	for _, lang := range cfg.targets() {
		doc, err := loadDocument(documentPath(cfg, namespace, lang))
		if err != nil {
			result.Languages = append(result.Languages, languageResult{
				Language: lang,
				Status:   statusError,
				Error:    err.Error(),
			})
			continue
		}
		result.Languages = append(result.Languages, classify(lang, countKeys(doc, ""), result.ReferenceKeys))
	}
	return result
}

// classify compares a language's key count with the reference count.
// Matching or exceeding the reference is complete.
func classify(lang string, keys, refKeys int) languageResult {
	if keys < refKeys {
		return languageResult{Language: lang, Status: statusMissing, Keys: keys, Missing: refKeys - keys}
	}
	return languageResult{Language: lang, Status: statusComplete, Keys: keys}
}

type languageSummary struct {
	Language   string `json:"language"`
	Complete   int    `json:"complete"`
	Incomplete int    `json:"incomplete"`
	Errors     int    `json:"errors"`
	Completion int    `json:"completion"`
}

type summary struct {
	Namespaces int               `json:"namespaces"`
	Skipped    int               `json:"skipped"`
	Complete   int               `json:"complete"`
	Incomplete int               `json:"incomplete"`
	Errors     int               `json:"errors"`
	Languages  []languageSummary `json:"languages"`
}

func (s summary) passed() bool {
	return s.Skipped == 0 && s.Incomplete == 0 && s.Errors == 0
}

// summarize totals results per language. Completion is the share of
// reference keys covered across all compared namespaces; keys beyond the
// reference count do not raise it above 100, and a document that failed to
// load covers nothing.
func summarize(cfg *config, results []namespaceResult) summary {
	s := summary{Namespaces: len(results)}
	byLang := make(map[string]*languageSummary, len(cfg.targets()))
	covered := make(map[string]int)
	expected := make(map[string]int)
	for _, lang := range cfg.targets() {
		byLang[lang] = &languageSummary{Language: lang}
	}

	for _, r := range results {
		if r.skipped() {
			s.Skipped++
			continue
		}
		for _, lr := range r.Languages {
			ls := byLang[lr.Language]
			expected[lr.Language] += r.ReferenceKeys
			switch lr.Status {
			case statusComplete:
				ls.Complete++
				s.Complete++
				covered[lr.Language] += r.ReferenceKeys
			case statusMissing:
				ls.Incomplete++
				s.Incomplete++
				covered[lr.Language] += lr.Keys
			case statusError:
				ls.Errors++
				s.Errors++
			}
		}
	}

	for _, lang := range cfg.targets() {
		ls := byLang[lang]
		ls.Completion = 100
		if expected[lang] > 0 {
			// Truncate so an incomplete language never shows 100.
			ls.Completion = covered[lang] * 100 / expected[lang]
		} else if ls.Errors > 0 {
			ls.Completion = 0
		}
		s.Languages = append(s.Languages, *ls)
	}
	return s
}
