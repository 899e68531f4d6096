package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

var (
	errNotMapping        = xerrors.New("document root is not a mapping")
	errUnsupportedFormat = xerrors.New("unsupported document format")
	errInvalidUTF8       = xerrors.New("document is not valid UTF-8")
	errTrailingData      = xerrors.New("unexpected data after top-level value")
)

// Node is a translation document node: either a Mapping or a Leaf.
type Node interface {
	isNode()
}

// Mapping is a nested group of translation keys.
type Mapping map[string]Node

// Leaf is a terminal value. Strings, numbers, booleans, null and arrays
// are all leaves.
type Leaf struct {
	Value any
}

func (Mapping) isNode() {}
func (Leaf) isNode()    {}

// supportedFormats lists the file extensions loadDocument can decode.
var supportedFormats = []string{"json", "yaml", "yml", "toml"}

func isSupportedFormat(ext string) bool {
	for _, f := range supportedFormats {
		if f == ext {
			return true
		}
	}
	return false
}

// formatFromPath returns the document format implied by a file name.
func formatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// documentPath returns <localesDir>/<language>/<namespace>.<ext>.
func documentPath(cfg *config, namespace, language string) string {
	return filepath.Join(cfg.LocalesDir, language, namespace+"."+cfg.Extension)
}

// loadDocument reads and decodes a translation document. The format is
// taken from the file extension.
func loadDocument(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(data, formatFromPath(path))
	if err != nil {
		return nil, xerrors.Errorf("parsing %s: %w", path, err)
	}
	log.Debugw("loaded document", "path", path, "topLevelKeys", len(doc))
	return doc, nil
}

// decodeDocument decodes data in the given format and checks that the
// root is a mapping.
func decodeDocument(data []byte, format string) (Mapping, error) {
	var raw any
	switch format {
	case "json":
		if !utf8.Valid(data) {
			return nil, errInvalidUTF8
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return nil, errTrailingData
		}
	case "yaml", "yml":
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		// An empty YAML file is an empty document; an explicit null is not.
		if doc.Kind == 0 || len(doc.Content) == 0 {
			return Mapping{}, nil
		}
		if err := doc.Decode(&raw); err != nil {
			return nil, err
		}
	case "toml":
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		raw = table
	default:
		return nil, xerrors.Errorf("%q: %w", format, errUnsupportedFormat)
	}

	root, ok := toNode(raw).(Mapping)
	if !ok {
		return nil, errNotMapping
	}
	return root, nil
}

// toNode converts a generically decoded value into a document tree.
func toNode(v any) Node {
	switch val := v.(type) {
	case map[string]any:
		m := make(Mapping, len(val))
		for k, child := range val {
			m[k] = toNode(child)
		}
		return m
	case map[any]any:
		// yaml.v3 produces these for mappings with non-string keys.
		m := make(Mapping, len(val))
		for k, child := range val {
			m[fmt.Sprintf("%v", k)] = toNode(child)
		}
		return m
	default:
		return Leaf{Value: val}
	}
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
