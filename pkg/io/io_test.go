package io

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/table"
)

func referenceMatrix(t *testing.T) *pivot.Matrix {
	t.Helper()
	m, err := pivot.Pivot(table.Reference().Records)
	if err != nil {
		t.Fatalf("Pivot() error: %v", err)
	}
	return m
}

func TestJSONRoundTrip(t *testing.T) {
	m := referenceMatrix(t)

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !slices.Equal(got.Rows(), m.Rows()) {
		t.Errorf("Rows() = %v, want %v", got.Rows(), m.Rows())
	}
	if !slices.Equal(got.Columns(), m.Columns()) {
		t.Errorf("Columns() = %v, want %v", got.Columns(), m.Columns())
	}
	for i, row := range m.Cells() {
		if !slices.Equal(got.Cells()[i], row) {
			t.Errorf("row %d = %v, want %v", i, got.Cells()[i], row)
		}
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"rows": [`},
		{"unknown field", `{"rows": ["a"], "columns": ["x"], "cells": [[1]], "extra": 1}`},
		{"bad value", `{"rows": ["a"], "columns": ["x"], "cells": [[3]]}`},
		{"ragged", `{"rows": ["a"], "columns": ["x", "y"], "cells": [[1]]}`},
		{"empty", `{"rows": [], "columns": [], "cells": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	m := referenceMatrix(t)

	var buf bytes.Buffer
	if err := WriteXLSX(m, &buf, XLSXOptions{Corner: "Country"}); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("rows = %d, want 8 (header + 7)", len(rows))
	}
	if rows[0][0] != "Country" || rows[0][1] != "ANN" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Antarctica" || rows[1][1] != "1" || rows[1][2] != "-1" || rows[1][3] != "0" {
		t.Errorf("first data row = %v", rows[1])
	}
}

func TestWriteEmptyMatrix(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&pivot.Matrix{}, &buf); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("WriteJSON(empty) error = %v, want RENDER_ERROR", err)
	}
	if err := WriteXLSX(&pivot.Matrix{}, &buf, XLSXOptions{}); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("WriteXLSX(empty) error = %v, want RENDER_ERROR", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	if err := WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("file = %q, want %q", got, "data")
	}

	// Overwrites.
	if err := WriteFile(path, []byte("new")); err != nil {
		t.Fatalf("WriteFile() overwrite error: %v", err)
	}
	if got, _ := os.ReadFile(path); string(got) != "new" {
		t.Errorf("file = %q, want %q", got, "new")
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing parent", filepath.Join(dir, "no", "such", "dir", "out.jpg")},
		{"directory", dir},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteFile(tt.path, []byte("x"))
			if !errors.Is(err, errors.ErrCodeRender) {
				t.Errorf("WriteFile(%q) error = %v, want RENDER_ERROR", tt.path, err)
			}
		})
	}
}
