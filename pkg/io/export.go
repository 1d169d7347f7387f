package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
)

type matrix struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
	Cells   [][]int  `json:"cells"`
}

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *pivot.Matrix, w io.Writer) error {
	if m.Empty() {
		return errors.Render("cannot export an empty matrix")
	}
	out := matrix{
		Rows:    m.Rows(),
		Columns: m.Columns(),
		Cells:   m.Cells(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.WrapRender(err, "encode matrix")
	}
	return nil
}

// ReadJSON decodes a matrix written by [WriteJSON].
// Dimension mismatches, duplicate keys and values other than -1, 0 and 1
// are INVALID_INPUT errors.
func ReadJSON(r io.Reader) (*pivot.Matrix, error) {
	var in matrix
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode matrix")
	}
	return pivot.FromCells(in.Rows, in.Columns, in.Cells)
}
