package matrix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// File format:
//
//	rows=<digits>
//	cols=<digits>
//	(<row>, <col>, <value>)   zero or more, value may be negative
//
// Blank lines between entries are ignored.
var (
	rowsPattern  = regexp.MustCompile(`^rows=(\d+)$`)
	colsPattern  = regexp.MustCompile(`^cols=(\d+)$`)
	entryPattern = regexp.MustCompile(`^\((\d+),\s*(\d+),\s*(-?\d+)\)$`)
)

// Parse builds a Matrix from its text representation. Parsing is
// fail-fast: the first malformed line aborts with an error carrying
// the 1-based line number, and no partial matrix is returned.
//
// Entries are applied through Set, so an entry past the declared
// header dimensions grows the matrix rather than failing. Input files
// in the wild under-declare their bounds and the original tooling
// accepted them; this keeps that behaviour.
func Parse(text string) (*Matrix, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need rows= and cols= lines, got %d line(s)",
			ErrMalformedHeader, len(lines))
	}

	rowsMatch := rowsPattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if rowsMatch == nil {
		return nil, fmt.Errorf("%w: expected \"rows=<n>\", got %q", ErrMalformedHeader, lines[0])
	}
	colsMatch := colsPattern.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if colsMatch == nil {
		return nil, fmt.Errorf("%w: expected \"cols=<n>\", got %q", ErrMalformedHeader, lines[1])
	}

	rows, err := strconv.Atoi(rowsMatch[1])
	if err != nil {
		return nil, fmt.Errorf("%w: row count %q: %v", ErrMalformedHeader, rowsMatch[1], err)
	}
	cols, err := strconv.Atoi(colsMatch[1])
	if err != nil {
		return nil, fmt.Errorf("%w: column count %q: %v", ErrMalformedHeader, colsMatch[1], err)
	}

	m := New(rows, cols)

	for i := 2; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		match := entryPattern.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEntry, i+1, line)
		}

		row, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: row index %q: %v", ErrMalformedEntry, i+1, match[1], err)
		}
		col, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: column index %q: %v", ErrMalformedEntry, i+1, match[2], err)
		}
		value, err := strconv.Atoi(match[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: value %q: %v", ErrMalformedEntry, i+1, match[3], err)
		}

		if err := m.Set(row, col, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return m, nil
}

// String renders the matrix in the file format: the dimension header
// followed by one line per stored entry, in insertion order, with no
// trailing newline. Parse(m.String()) reproduces m exactly.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\ncols=%d\n", m.rows, m.cols)
	for _, k := range m.order {
		fmt.Fprintf(&b, "(%d, %d, %d)\n", k.row, k.col, m.entries[k])
	}
	return strings.TrimSpace(b.String())
}
