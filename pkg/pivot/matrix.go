package pivot

import (
	"slices"

	"github.com/matzehuels/prefgrid/pkg/errors"
)

// Cell values.
const (
	Negative = -1
	Neutral  = 0
	Positive = 1
)

// Matrix is a signed indicator matrix keyed by entity (row) and label
// (column). Row and column order is the first-seen order of the input.
//
// A Matrix is immutable once built: every accessor returns copies, so the
// renderer and exporters can share one instance.
type Matrix struct {
	rows   []string
	cols   []string
	rowIdx map[string]int
	colIdx map[string]int
	cells  [][]int // cells[row][col]
}

// FromCells builds a matrix from explicit row keys, column keys and cell
// values, as read back from an export. Keys must be unique and non-empty,
// cells must be rows x cols and every value must be -1, 0 or +1.
func FromCells(rows, cols []string, cells [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, errors.InvalidInput("matrix needs at least one row and one column")
	}
	if len(cells) != len(rows) {
		return nil, errors.InvalidInput("matrix has %d rows but %d cell rows", len(rows), len(cells))
	}

	m := newMatrix()
	for _, r := range rows {
		if err := errors.ValidateLabel(r); err != nil {
			return nil, err
		}
		if _, dup := m.rowIdx[r]; dup {
			return nil, errors.InvalidInput("duplicate row %q", r)
		}
		m.addRow(r)
	}
	for _, c := range cols {
		if err := errors.ValidateLabel(c); err != nil {
			return nil, err
		}
		if _, dup := m.colIdx[c]; dup {
			return nil, errors.InvalidInput("duplicate column %q", c)
		}
		m.addCol(c)
	}

	for i, row := range cells {
		if len(row) != len(cols) {
			return nil, errors.InvalidInput("row %q has %d cells, want %d", rows[i], len(row), len(cols))
		}
		for j, v := range row {
			if v < Negative || v > Positive {
				return nil, errors.InvalidInput("cell (%s, %s) = %d, want -1, 0 or 1", rows[i], cols[j], v)
			}
			m.cells[i][j] = v
		}
	}
	return m, nil
}

func newMatrix() *Matrix {
	return &Matrix{
		rowIdx: make(map[string]int),
		colIdx: make(map[string]int),
	}
}

// addRow appends a zero-filled row. The caller ensures r is new.
func (m *Matrix) addRow(r string) int {
	m.rowIdx[r] = len(m.rows)
	m.rows = append(m.rows, r)
	m.cells = append(m.cells, make([]int, len(m.cols)))
	return m.rowIdx[r]
}

// addCol appends a zero-filled column. The caller ensures c is new.
func (m *Matrix) addCol(c string) int {
	m.colIdx[c] = len(m.cols)
	m.cols = append(m.cols, c)
	for i := range m.cells {
		m.cells[i] = append(m.cells[i], Neutral)
	}
	return m.colIdx[c]
}

// Rows returns the entity keys in display order.
func (m *Matrix) Rows() []string { return slices.Clone(m.rows) }

// Columns returns the label keys in display order.
func (m *Matrix) Columns() []string { return slices.Clone(m.cols) }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return len(m.rows), len(m.cols) }

// Empty reports whether the matrix has no rows or no columns.
func (m *Matrix) Empty() bool { return m == nil || len(m.rows) == 0 || len(m.cols) == 0 }

// At returns the value at row i, column j. It panics if either index is out
// of range.
func (m *Matrix) At(i, j int) int { return m.cells[i][j] }

// Value returns the value for an entity and label. ok is false if either key
// is unknown.
func (m *Matrix) Value(entity, label string) (v int, ok bool) {
	i, ok := m.rowIdx[entity]
	if !ok {
		return 0, false
	}
	j, ok := m.colIdx[label]
	if !ok {
		return 0, false
	}
	return m.cells[i][j], true
}

// Row returns the row for entity as a label -> value map covering every
// column.
func (m *Matrix) Row(entity string) (map[string]int, bool) {
	i, ok := m.rowIdx[entity]
	if !ok {
		return nil, false
	}
	out := make(map[string]int, len(m.cols))
	for j, c := range m.cols {
		out[c] = m.cells[i][j]
	}
	return out, true
}

// Cells returns a copy of the cell values, row-major.
func (m *Matrix) Cells() [][]int {
	out := make([][]int, len(m.cells))
	for i, row := range m.cells {
		out[i] = slices.Clone(row)
	}
	return out
}

// Counts returns how many cells hold +1 and how many hold -1.
func (m *Matrix) Counts() (pos, neg int) {
	for _, row := range m.cells {
		for _, v := range row {
			switch v {
			case Positive:
				pos++
			case Negative:
				neg++
			}
		}
	}
	return pos, neg
}

// ColumnTotals returns the signed sum of each column, in column order.
// A label preferred for power by three entities and for efficiency by one
// totals 2.
func (m *Matrix) ColumnTotals() []int {
	out := make([]int, len(m.cols))
	for _, row := range m.cells {
		for j, v := range row {
			out[j] += v
		}
	}
	return out
}
