package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/colors"
	prefs "github.com/matzehuels/prefgrid/pkg/table"
)

type showOpts struct {
	data  string
	order string
}

func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the preference matrix in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), opts)
		},
	}

	addDataFlags(cmd, &opts.data, &opts.order)
	return cmd
}

func (c *CLI) runShow(ctx context.Context, opts showOpts) error {
	ds, err := loadDataset(loggerFromContext(ctx), opts.data)
	if err != nil {
		return err
	}
	m, err := pivot.PivotWith(ds.Records, pivot.Options{Order: pivot.ColumnOrder(opts.order)})
	if err != nil {
		return err
	}

	printMatrix(c.Out, ds.WithDefaults(), m)
	return nil
}

// printMatrix prints the title, the matrix as a table with each value cell
// coloured like its heatmap cell, and the +1/-1 counts.
func printMatrix(w io.Writer, ds prefs.Dataset, m *pivot.Matrix) {
	fmt.Fprintln(w, StyleTitle.Render(ds.Title))
	fmt.Fprintln(w, renderMatrixTable(m, ds.YLabel))

	pos, neg := m.Counts()
	fmt.Fprintf(w, "  %s %s  %s %s\n",
		StyleNumber.Render(strconv.Itoa(pos)), StyleDim.Render(ds.PositiveName+" (+1)"),
		StyleNumber.Render(strconv.Itoa(neg)), StyleDim.Render(ds.NegativeName+" (-1)"))
}

// renderMatrixTable renders m as a lipgloss table. corner heads the entity
// column.
func renderMatrixTable(m *pivot.Matrix, corner string) string {
	scale := colors.NewScale()
	rows, cols := m.Dims()

	cells := m.Cells()
	data := make([][]string, rows)
	for i, name := range m.Rows() {
		row := make([]string, 0, cols+1)
		row = append(row, name)
		for _, v := range cells[i] {
			row = append(row, strconv.Itoa(v))
		}
		data[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{corner}, m.Columns()...)...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorWhite)
			case row >= rows || col > cols:
				return base
			}

			v := float64(cells[row][col-1])
			fg := lipgloss.Color("0")
			if colors.IsDark(scale.Color(v)) {
				fg = lipgloss.Color("15")
			}
			return base.Align(lipgloss.Center).
				Foreground(fg).
				Background(lipgloss.Color(scale.Hex(v)))
		})

	return t.Render()
}
