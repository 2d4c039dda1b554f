package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableFormatter renders rows as a bordered text table with columns sized to
// their content. Widths are measured with runewidth so wide characters from
// reference files keep the borders aligned.
type TableFormatter struct {
	headers []string
	rows    [][]string
	footer  []string
}

// NewTableFormatter creates a table with the given column headers.
func NewTableFormatter(headers ...string) *TableFormatter {
	return &TableFormatter{headers: headers}
}

// AddRow appends a data row.
func (f *TableFormatter) AddRow(values ...string) {
	f.rows = append(f.rows, values)
}

// SetFooter sets a summary row rendered below a separator.
func (f *TableFormatter) SetFooter(values ...string) {
	f.footer = values
}

// Render writes the table to w.
func (f *TableFormatter) Render(w io.Writer) error {
	widths := f.columnWidths()

	if err := f.printBorder(w, widths, "top"); err != nil {
		return err
	}
	if err := f.printRow(w, f.headers, widths); err != nil {
		return err
	}
	if err := f.printBorder(w, widths, "middle"); err != nil {
		return err
	}

	for _, row := range f.rows {
		if err := f.printRow(w, row, widths); err != nil {
			return err
		}
	}

	if f.footer != nil {
		if err := f.printBorder(w, widths, "middle"); err != nil {
			return err
		}
		if err := f.printRow(w, f.footer, widths); err != nil {
			return err
		}
	}

	return f.printBorder(w, widths, "bottom")
}

// columnWidths determines each column's width from headers, rows, and footer.
func (f *TableFormatter) columnWidths() []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}

	measure := func(row []string) {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range f.rows {
		measure(row)
	}
	if f.footer != nil {
		measure(f.footer)
	}

	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(w io.Writer, widths []int, borderType string) error {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)

	_, err := fmt.Fprintln(w, b.String())
	return err
}

// printRow prints a single padded row.
func (f *TableFormatter) printRow(w io.Writer, values []string, widths []int) error {
	var b strings.Builder
	b.WriteString("│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		padding := width - runewidth.StringWidth(value)
		b.WriteString(" " + value + strings.Repeat(" ", padding) + " │")
	}

	_, err := fmt.Fprintln(w, b.String())
	return err
}
