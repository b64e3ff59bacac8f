package todo

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// pattern matches TODO:<text>@due(YYYY-MM-DD). The text capture is
// non-greedy so only the first annotation on a line is taken.
var pattern = regexp.MustCompile(`TODO:(.+?)@due\((\d{4}-\d{2}-\d{2})\)`)

// ParseFile extracts annotations from a single document, at most one per
// line. Lines without a recognizable annotation yield nothing. Records whose
// trimmed text is empty are discarded. A read failure is returned to the
// caller; it must not abort scanning of other documents.
func ParseFile(path string) ([]Todo, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the configured watch roots
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var todos []Todo
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		todos = append(todos, Todo{
			Text: text,
			Due:  m[2],
			File: path,
			Line: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return todos, fmt.Errorf("reading %s: %w", path, err)
	}

	return todos, nil
}
