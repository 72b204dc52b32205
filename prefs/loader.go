package prefs

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load reads a preference file from r: one "user\titem" pair per line;
// blank lines and lines starting with '#' are ignored. Load is a thin
// convenience for tests, examples and the demo CLI — a full preference
// store with merge policies, incremental ingestion, and persistence lives
// elsewhere and is built on top of Index rather than by it.
// Stage 1: scan line by line.
// Stage 2: skip comments/blank lines; split on the first tab.
// Stage 3: Add each pair to a fresh Index.
func Load(r io.Reader) (*Index, error) {
	idx := NewIndex()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		user, item, ok := strings.Cut(trimmed, "\t")
		if !ok {
			return nil, fmt.Errorf("Load: line %d (%q): %w", lineNo, line, ErrMalformedLine)
		}
		if err := idx.Add(strings.TrimSpace(user), strings.TrimSpace(item)); err != nil {
			return nil, fmt.Errorf("Load: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return idx, nil
}
