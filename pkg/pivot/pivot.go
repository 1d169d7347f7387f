// Package pivot turns preference records into a signed indicator matrix.
//
// Given records (entity, positive, negative), [Pivot] produces a [Matrix]
// with one row per distinct entity and one column per distinct label. For
// each record it writes +1 at (entity, positive) and then -1 at
// (entity, negative). Every other cell is 0.
//
// # Ordering
//
// Rows follow the order in which entities first appear. Columns follow the
// order in which labels first appear, reading each record's positive label
// before its negative label.
//
// # Overwrites
//
// Assignments are applied in record order, so later writes win:
//
//   - A record whose positive and negative labels are equal leaves -1 in that
//     cell, because the negative assignment comes second.
//   - A repeated entity keeps the cells of earlier records and overwrites
//     only the cells the later record touches.
//
// Neither case is an error.
//
// [PivotWith] with [OrderGrouped] lists every positive label before any
// negative-only label instead, which groups the two preference kinds on the
// x axis.
package pivot

import (
	"fmt"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/table"
)

// ColumnOrder selects how column keys are ordered.
type ColumnOrder string

const (
	// OrderRecords orders labels by first appearance, record by record.
	OrderRecords ColumnOrder = "record"
	// OrderGrouped orders all positive labels (first-seen) before the
	// remaining negative labels (first-seen).
	OrderGrouped ColumnOrder = "grouped"
)

// ParseColumnOrder parses a column order name. The empty string selects
// [OrderRecords].
func ParseColumnOrder(s string) (ColumnOrder, error) {
	switch ColumnOrder(s) {
	case "", OrderRecords:
		return OrderRecords, nil
	case OrderGrouped:
		return OrderGrouped, nil
	}
	return "", errors.InvalidInput("invalid column order: %q (must be 'record' or 'grouped')", s)
}

// Options configures [PivotWith].
type Options struct {
	Order ColumnOrder
}

// Pivot builds the indicator matrix for records with [OrderRecords].
//
// It returns an INVALID_INPUT error if records is empty or a record has an
// empty entity or label.
func Pivot(records []table.Record) (*Matrix, error) {
	return PivotWith(records, Options{})
}

// PivotWith builds the indicator matrix for records using opts.
func PivotWith(records []table.Record, opts Options) (*Matrix, error) {
	if len(records) == 0 {
		return nil, errors.InvalidInput("no records to pivot")
	}
	order, err := ParseColumnOrder(string(opts.Order))
	if err != nil {
		return nil, err
	}
	for n, r := range records {
		if err := checkRecord(r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "record %d", n+1)
		}
	}

	m := newMatrix()
	if order == OrderGrouped {
		for _, r := range records {
			m.colFor(r.Positive)
		}
	}
	for _, r := range records {
		i := m.rowFor(r.Entity)
		pos := m.colFor(r.Positive)
		neg := m.colFor(r.Negative)

		m.cells[i][pos] = Positive
		m.cells[i][neg] = Negative
	}
	return m, nil
}

func checkRecord(r table.Record) error {
	switch {
	case r.Entity == "":
		return fmt.Errorf("entity is empty")
	case r.Positive == "":
		return fmt.Errorf("positive label is empty")
	case r.Negative == "":
		return fmt.Errorf("negative label is empty")
	}
	return nil
}

func (m *Matrix) rowFor(entity string) int {
	if i, ok := m.rowIdx[entity]; ok {
		return i
	}
	return m.addRow(entity)
}

func (m *Matrix) colFor(label string) int {
	if j, ok := m.colIdx[label]; ok {
		return j
	}
	return m.addCol(label)
}
