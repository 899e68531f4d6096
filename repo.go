package main

import (
	"os"
	"path/filepath"
)

// projectRoot walks up from dir looking for package.json or the locales
// directory. It returns dir itself when neither is found.
func projectRoot(dir, localesDir string) string {
	for cur := dir; ; {
		if _, err := os.Stat(filepath.Join(cur, "package.json")); err == nil {
			return cur
		}
		if !filepath.IsAbs(localesDir) {
			if info, err := os.Stat(filepath.Join(cur, localesDir)); err == nil && info.IsDir() {
				return cur
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
