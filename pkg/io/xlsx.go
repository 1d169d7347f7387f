package io

import (
	"image/color"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/colors"
)

// DefaultSheet is the worksheet name used when XLSXOptions.Sheet is empty.
const DefaultSheet = "Preferences"

// XLSXOptions configures [WriteXLSX].
type XLSXOptions struct {
	Sheet  string // worksheet name (default DefaultSheet)
	Corner string // text for the top-left cell, usually the row axis label
}

// WriteXLSX writes m as a single-sheet workbook to w.
func WriteXLSX(m *pivot.Matrix, w io.Writer, opts XLSXOptions) error {
	if m.Empty() {
		return errors.Render("cannot export an empty matrix")
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.WrapRender(err, "name sheet %q", sheet)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	if err := writeXLSXHeader(f, sheet, opts.Corner, m.Columns(), styles.header); err != nil {
		return err
	}
	for i, entity := range m.Rows() {
		row := i + 2
		if err := setCell(f, sheet, 1, row, entity, styles.header); err != nil {
			return err
		}
		for j := range m.Columns() {
			v := m.At(i, j)
			if err := setCell(f, sheet, j+2, row, v, styles.values[v]); err != nil {
				return err
			}
		}
	}

	_, cols := m.Dims()
	last, err := excelize.ColumnNumberToName(cols + 1)
	if err != nil {
		return errors.WrapRender(err, "column name")
	}
	if err := f.SetColWidth(sheet, "A", "A", 16); err != nil {
		return errors.WrapRender(err, "set column width")
	}
	if err := f.SetColWidth(sheet, "B", last, 12); err != nil {
		return errors.WrapRender(err, "set column width")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.WrapRender(err, "write workbook")
	}
	return nil
}

type xlsxStyles struct {
	header int
	values map[int]int // cell value -> style ID
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return xlsxStyles{}, errors.WrapRender(err, "create header style")
	}

	scale := colors.NewScale()
	out := xlsxStyles{header: header, values: make(map[int]int, 3)}
	for _, v := range []int{pivot.Negative, pivot.Neutral, pivot.Positive} {
		fill := scale.Color(float64(v))
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexRGB(scale.Hex(float64(v)))}},
			Font:      &excelize.Font{Color: textHex(fill)},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border: []excelize.Border{
				{Type: "left", Color: "000000", Style: 1},
				{Type: "right", Color: "000000", Style: 1},
				{Type: "top", Color: "000000", Style: 1},
				{Type: "bottom", Color: "000000", Style: 1},
			},
		})
		if err != nil {
			return xlsxStyles{}, errors.WrapRender(err, "create style for %d", v)
		}
		out.values[v] = id
	}
	return out, nil
}

func writeXLSXHeader(f *excelize.File, sheet, corner string, cols []string, style int) error {
	if err := setCell(f, sheet, 1, 1, corner, style); err != nil {
		return err
	}
	for j, c := range cols {
		if err := setCell(f, sheet, j+2, 1, c, style); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.WrapRender(err, "cell (%d, %d)", col, row)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return errors.WrapRender(err, "set %s", cell)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return errors.WrapRender(err, "style %s", cell)
	}
	return nil
}

func hexRGB(h string) string { return strings.ToUpper(strings.TrimPrefix(h, "#")) }

func textHex(bg color.Color) string {
	if colors.IsDark(bg) {
		return "FFFFFF"
	}
	return "000000"
}
