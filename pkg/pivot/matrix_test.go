package pivot

import (
	"slices"
	"testing"

	"github.com/matzehuels/prefgrid/pkg/table"
)

func TestMatrixAccessorsReturnCopies(t *testing.T) {
	m, err := Pivot(table.Reference().Records)
	if err != nil {
		t.Fatal(err)
	}

	rows := m.Rows()
	rows[0] = "changed"
	if m.Rows()[0] != "Antarctica" {
		t.Error("Rows() exposes internal slice")
	}

	cells := m.Cells()
	cells[0][0] = 99
	if m.At(0, 0) != Positive {
		t.Error("Cells() exposes internal slice")
	}
}

func TestMatrixLookups(t *testing.T) {
	m, err := Pivot(table.Reference().Records)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := m.Value("Atlantis", "ANN"); ok {
		t.Error("Value() ok for unknown entity")
	}
	if _, ok := m.Value("Berlin", "GPT"); ok {
		t.Error("Value() ok for unknown label")
	}
	if _, ok := m.Row("Atlantis"); ok {
		t.Error("Row() ok for unknown entity")
	}
	if m.Empty() {
		t.Error("Empty() = true for reference matrix")
	}

	pos, neg := m.Counts()
	if pos != 7 || neg != 7 {
		t.Errorf("Counts() = %d, %d, want 7, 7", pos, neg)
	}

	// ANN, LGBM, CatBoost, SVR, XGB, Bagging
	want := []int{3, -1, -5, 3, 1, -1}
	if got := m.ColumnTotals(); !slices.Equal(got, want) {
		t.Errorf("ColumnTotals() = %v, want %v", got, want)
	}
}

func TestFromCells(t *testing.T) {
	m, err := FromCells([]string{"A", "B"}, []string{"x", "y"}, [][]int{{1, -1}, {0, 1}})
	if err != nil {
		t.Fatalf("FromCells() error: %v", err)
	}
	if v, _ := m.Value("B", "y"); v != 1 {
		t.Errorf("m[B][y] = %d, want 1", v)
	}

	bad := []struct {
		name  string
		rows  []string
		cols  []string
		cells [][]int
	}{
		{"no rows", nil, []string{"x"}, nil},
		{"row count", []string{"A"}, []string{"x"}, [][]int{{1}, {0}}},
		{"col count", []string{"A"}, []string{"x", "y"}, [][]int{{1}}},
		{"out of range", []string{"A"}, []string{"x"}, [][]int{{2}}},
		{"duplicate row", []string{"A", "A"}, []string{"x"}, [][]int{{1}, {0}}},
		{"duplicate col", []string{"A"}, []string{"x", "x"}, [][]int{{1, 0}}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromCells(tt.rows, tt.cols, tt.cells); err == nil {
				t.Error("FromCells() error = nil, want error")
			}
		})
	}
}

func TestEmptyNilMatrix(t *testing.T) {
	var m *Matrix
	if !m.Empty() {
		t.Error("nil matrix should be empty")
	}
	if !(&Matrix{}).Empty() {
		t.Error("zero matrix should be empty")
	}
}
