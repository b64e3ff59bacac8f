// Package scan enumerates markdown documents under the configured roots.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// markdownExts are the recognized document suffixes.
var markdownExts = []string{".md", ".markdown"}

// FindMarkdownFiles walks each root in order and returns every markdown file
// below it. Roots that do not exist are silently skipped so a not-yet-mounted
// watch directory never aborts a cycle. Order is deterministic: WalkDir
// visits entries lexically, and roots keep their configuration order.
// WalkDir does not follow symlinks, so recursive links cannot cause a hang.
func FindMarkdownFiles(roots []string) []string {
	var files []string
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entry: skip it, keep walking the rest.
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if isMarkdown(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
	}
	return files
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range markdownExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
