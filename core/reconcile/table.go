package reconcile

import "strings"

// Table is a named grid: a header row followed by data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// FromGrid splits a raw grid into header and data rows.
// The grid is copied so later edits never alias the caller's slices.
func FromGrid(name string, grid [][]string) Table {
	t := Table{Name: name}
	if len(grid) == 0 {
		return t
	}
	t.Header = cloneRow(grid[0])
	t.Rows = make([][]string, 0, len(grid)-1)
	for _, row := range grid[1:] {
		t.Rows = append(t.Rows, cloneRow(row))
	}
	return t
}

// Grid returns the header followed by the data rows.
func (t Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, cloneRow(t.Header))
	for _, row := range t.Rows {
		grid = append(grid, cloneRow(row))
	}
	return grid
}

// IsEmpty reports whether the table has no usable header.
func (t Table) IsEmpty() bool {
	return len(trimHeader(t.Header)) == 0
}

// Width is the number of columns defined by the header.
func (t Table) Width() int {
	return len(t.Header)
}

// HeaderEquals compares the trimmed header with expected, in order.
func (t Table) HeaderEquals(expected []string) bool {
	got := trimHeader(t.Header)
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		if got[i] != strings.TrimSpace(expected[i]) {
			return false
		}
	}
	return true
}

// HasColumn reports whether the trimmed header contains name.
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}

// Normalize pads short rows with empty cells and truncates rows wider than the
// header, so every data row has exactly Width cells.
func (t *Table) Normalize() {
	width := len(t.Header)
	for i, row := range t.Rows {
		t.Rows[i] = fitRow(row, width)
	}
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	c := Table{Name: t.Name, Header: cloneRow(t.Header)}
	if t.Rows != nil {
		c.Rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			c.Rows[i] = cloneRow(row)
		}
	}
	return c
}

func fitRow(row []string, width int) []string {
	switch {
	case len(row) == width:
		return row
	case len(row) > width:
		return row[:width:width]
	default:
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}
}

// trimHeader trims every cell and drops trailing empty cells, which the
// spreadsheet API omits anyway.
func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	end := len(out)
	for end > 0 && out[end-1] == "" {
		end--
	}
	return out[:end]
}

func cloneRow(row []string) []string {
	if row == nil {
		return nil
	}
	out := make([]string, len(row))
	copy(out, row)
	return out
}
