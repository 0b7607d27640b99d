package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders rows of data in aligned, bordered columns.
type Table struct {
	out io.Writer
	t   *table.Table
}

// NewTable creates a new table with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return &Table{out: out, t: t}
}

// Row appends a row of values.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	t.t.Row(parts...)
}

// Flush writes the table.
func (t *Table) Flush() error {
	_, err := fmt.Fprintln(t.out, t.t.String())
	return err
}
