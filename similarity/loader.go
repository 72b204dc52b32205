package similarity

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Load reads the documented "itemA<TAB>itemB<TAB>score" format (dense item
// ids, one pair per line; blank lines and lines starting with '#' are
// skipped) and returns a populated MapOracle. A NaN score is accepted and
// dropped rather than stored, matching Set's semantics.
func Load(r io.Reader) (*MapOracle, error) {
	oracle := NewMapOracle()
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
			return nil, fmt.Errorf("similarity.Load: line %d: %w", lineNo, ErrMalformedLine)
		}

		a, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("similarity.Load: line %d: %w", lineNo, ErrMalformedLine)
		}
		b, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("similarity.Load: line %d: %w", lineNo, ErrMalformedLine)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("similarity.Load: line %d: %w", lineNo, ErrMalformedLine)
		}

		if !math.IsNaN(score) {
			oracle.Set(a, b, score)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("similarity.Load: %w", err)
	}

	return oracle, nil
}
