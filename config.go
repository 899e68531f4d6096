package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

const configFileName = "i18n-completeness.yaml"

// config selects which translation documents are compared. The first
// language is the reference.
type config struct {
	LocalesDir string   `yaml:"localesDir"`
	Namespaces []string `yaml:"namespaces"`
	Languages  []string `yaml:"languages"`
	Extension  string   `yaml:"extension"`
}

func defaultConfig() config {
	return config{
		LocalesDir: "public/locales",
		Namespaces: []string{
			"common", "settings", "extractor", "imageTool",
			"historyItem", "imagePreview", "booruList", "booruDetail",
		},
		Languages: []string{"en", "zh-TW", "id", "jv", "es", "fr", "de", "ja", "ko"},
		Extension: "json",
	}
}

func (c *config) reference() string {
	return c.Languages[0]
}

// targets returns the languages compared against the reference.
func (c *config) targets() []string {
	return c.Languages[1:]
}

// loadConfigFile overlays the non-empty fields of a YAML config file onto
// cfg. A missing file is only an error when required is set.
func loadConfigFile(path string, cfg *config, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return xerrors.Errorf("reading config: %w", err)
	}
	var file config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return xerrors.Errorf("parsing %s: %w", path, err)
	}
	cfg.merge(file)
	log.Debugw("loaded config file", "path", path)
	return nil
}

// applyEnv overlays I18N_* environment variables onto cfg.
func applyEnv(cfg *config, getenv func(string) string) {
	cfg.merge(config{
		LocalesDir: getenv("I18N_LOCALES_DIR"),
		Namespaces: splitList(getenv("I18N_NAMESPACES")),
		Languages:  splitList(getenv("I18N_LANGUAGES")),
		Extension:  getenv("I18N_EXTENSION"),
	})
}

// merge copies every non-empty field of o into c.
func (c *config) merge(o config) {
	if o.LocalesDir != "" {
		c.LocalesDir = o.LocalesDir
	}
	if len(o.Namespaces) > 0 {
		c.Namespaces = o.Namespaces
	}
	if len(o.Languages) > 0 {
		c.Languages = o.Languages
	}
	if o.Extension != "" {
		c.Extension = strings.ToLower(strings.TrimPrefix(o.Extension, "."))
	}
}

// resolve makes a relative locales directory absolute against root.
func (c *config) resolve(root string) {
	if !filepath.IsAbs(c.LocalesDir) {
		c.LocalesDir = filepath.Join(root, c.LocalesDir)
	}
}

func (c *config) validate() error {
	if len(c.Namespaces) == 0 {
		return xerrors.New("config: at least one namespace is required")
	}
	if len(c.Languages) < 2 {
		return xerrors.New("config: a reference language and at least one other language are required")
	}
	if dup := firstDuplicate(c.Namespaces); dup != "" {
		return xerrors.Errorf("config: duplicate namespace %q", dup)
	}
	if dup := firstDuplicate(c.Languages); dup != "" {
		return xerrors.Errorf("config: duplicate language %q", dup)
	}
	for _, lang := range c.Languages {
		if _, err := language.Parse(lang); err != nil {
			return xerrors.Errorf("config: invalid language %q: %w", lang, err)
		}
	}
	if !isSupportedFormat(c.Extension) {
		return xerrors.Errorf("config: extension %q (want one of %s): %w",
			c.Extension, strings.Join(supportedFormats, ", "), errUnsupportedFormat)
	}
	return nil
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func firstDuplicate(items []string) string {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] {
			return item
		}
		seen[item] = true
	}
	return ""
}
