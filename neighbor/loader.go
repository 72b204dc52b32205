package neighbor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadOptions controls post-processing applied after the raw edges are
// parsed: MaxPerItem bounds each source item to its MaxPerItem
// highest-weight outgoing edges (<=0 means unbounded), and Normalize L1-
// normalizes the surviving outgoing weights per source item.
type LoadOptions struct {
	MaxPerItem int
	Normalize  bool
}

// Load reads the documented "item<TAB>neighbor<TAB>weight" format (dense
// item ids, one directed edge per line; blank lines and '#' comments are
// skipped), applies opts, and returns the resulting Index.
func Load(r io.Reader, opts LoadOptions) (*Index, error) {
	ix := NewIndex()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("neighbor.Load: line %d: %w", lineNo, ErrMalformedLine)
		}

		from, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("neighbor.Load: line %d: %w", lineNo, ErrMalformedLine)
		}
		to, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("neighbor.Load: line %d: %w", lineNo, ErrMalformedLine)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("neighbor.Load: line %d: %w", lineNo, ErrMalformedLine)
		}

		if err := ix.Add(from, to, weight); err != nil {
			return nil, fmt.Errorf("neighbor.Load: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("neighbor.Load: %w", err)
	}

	ix.TruncateTopN(opts.MaxPerItem)
	if opts.Normalize {
		ix.Normalize()
	}

	return ix, nil
}
