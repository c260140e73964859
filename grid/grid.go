// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid parses spreadsheet-like CSV exports into a labeled,
// rectangular numeric table. Input is line-delimited text with cells
// separated by a single configurable delimiter character; the first
// row and / or first column can be designated as titles rather than
// data. Numeric cells may use a comma as the decimal separator
// (e.g., German Excel exports), which is normalized to a period.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Config has the parse-time options for a [Grid].
type Config struct {

	// Delim is the single-character cell delimiter.
	// The zero value defaults to ','.
	Delim rune

	// RowTitles indicates that the first cell of every row
	// is a label for that row, not data.
	RowTitles bool

	// ColTitles indicates that the first row holds labels
	// for the columns, not data.
	ColTitles bool
}

// Defaults sets default values for any unset fields.
func (cf *Config) Defaults() {
	if cf.Delim == 0 {
		cf.Delim = ','
	}
}

// MalformedGridError is returned when the input is not a proper
// rectangular grid: some row or derived column has a different number
// of cells than the first one, or the input is empty. It is fatal to
// the parse: the caller must supply a corrected file or delimiter.
type MalformedGridError struct {

	// Axis is the axis with the inconsistency: "row" or "column".
	Axis string

	// Index is the index of the offending row or column.
	Index int

	// Len is the number of cells found.
	Len int

	// Want is the number of cells in the first row or column.
	Want int
}

func (e *MalformedGridError) Error() string {
	if e.Want == 0 {
		return "grid: empty input"
	}
	return fmt.Sprintf("grid: %s %d has %d cells, expected %d", e.Axis, e.Index, e.Len, e.Want)
}

// NumberFormatError is returned when a data cell cannot be parsed as a
// number after decimal-separator normalization. Row and Col are
// indexes into the data cells (titles excluded), so callers can report
// the offending position to the user.
type NumberFormatError struct {

	// Row and Col are the position of the offending cell in the data.
	Row, Col int

	// Value is the original cell content.
	Value string

	// Err is the underlying parse error.
	Err error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("grid: cell (%d, %d): cannot parse %q as a number", e.Row, e.Col, e.Value)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }

// Grid is a rectangular titled text grid. It holds the raw cells in
// both row-major and column-major orientation, and is read-only after
// construction: the title and data accessors are derived views that
// do not modify it.
type Grid struct {

	// Config has the options the grid was parsed with.
	Config Config

	// Rows is the raw grid in row-major order, including any titles.
	Rows [][]string

	// Cols is the transposed raw grid, derived at construction.
	Cols [][]string
}

// New constructs a [Grid] from the given lines, splitting each line on
// the configured delimiter. It returns a [MalformedGridError] if any
// row has a different number of cells than the first row, or if any
// derived column has a different number of cells than the first
// column, or if there are no lines at all.
func New(lines []string, cfg Config) (*Grid, error) {
	cfg.Defaults()
	if len(lines) == 0 {
		return nil, &MalformedGridError{}
	}
	g := &Grid{Config: cfg}
	g.Rows = make([][]string, 0, len(lines))
	for _, ln := range lines {
		g.Rows = append(g.Rows, strings.Split(strings.TrimSpace(ln), string(cfg.Delim)))
	}
	if err := sameLength("row", g.Rows); err != nil {
		return nil, err
	}
	nc := len(g.Rows[0])
	g.Cols = make([][]string, nc)
	for ci := range nc {
		col := make([]string, len(g.Rows))
		for ri, row := range g.Rows {
			col[ri] = row[ci]
		}
		g.Cols[ci] = col
	}
	if err := sameLength("column", g.Cols); err != nil {
		return nil, err
	}
	return g, nil
}

// sameLength checks that every slice has the same number of cells as
// the first one.
func sameLength(axis string, cells [][]string) error {
	want := len(cells[0])
	for i, c := range cells {
		if len(c) != want {
			return &MalformedGridError{Axis: axis, Index: i, Len: len(c), Want: want}
		}
	}
	return nil
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows {
		fmt.Fprintf(&sb, "%v\n", row)
	}
	return sb.String()
}

// NumRows returns the number of raw rows, including any title row.
func (g *Grid) NumRows() int { return len(g.Rows) }

// NumCols returns the number of raw columns, including any title column.
func (g *Grid) NumCols() int { return len(g.Cols) }

// RowTitles returns the title of each data row, in order, or nil if
// the grid has no row titles. When the grid also has column titles,
// the first row is a title row and contributes no row title.
func (g *Grid) RowTitles() []string {
	if !g.Config.RowTitles {
		return nil
	}
	ts := make([]string, 0, len(g.Rows))
	for i, row := range g.Rows {
		if g.Config.ColTitles && i == 0 {
			continue
		}
		ts = append(ts, row[0])
	}
	return ts
}

// ColTitles returns the title of each data column, in order, or nil if
// the grid has no column titles. When the grid also has row titles,
// the first column is a title column and contributes no column title.
func (g *Grid) ColTitles() []string {
	if !g.Config.ColTitles {
		return nil
	}
	ts := make([]string, 0, len(g.Cols))
	for i, col := range g.Cols {
		if g.Config.RowTitles && i == 0 {
			continue
		}
		ts = append(ts, col[0])
	}
	return ts
}

// DataRows returns the data cells in row-major order, with any title
// row and title column stripped according to the config.
func (g *Grid) DataRows() [][]string {
	rows := make([][]string, 0, len(g.Rows))
	switch {
	case g.Config.RowTitles && g.Config.ColTitles:
		for _, row := range g.Rows[1:] {
			rows = append(rows, row[1:])
		}
	case g.Config.ColTitles:
		rows = append(rows, g.Rows[1:]...)
	case g.Config.RowTitles:
		for _, row := range g.Rows {
			rows = append(rows, row[1:])
		}
	default:
		rows = append(rows, g.Rows...)
	}
	return rows
}

// DataCols returns the data cells in column-major order, with any
// title row and title column stripped according to the config.
// It is always the transpose of [Grid.DataRows].
func (g *Grid) DataCols() [][]string {
	cols := make([][]string, 0, len(g.Cols))
	switch {
	case g.Config.RowTitles && g.Config.ColTitles:
		for _, col := range g.Cols[1:] {
			cols = append(cols, col[1:])
		}
	case g.Config.RowTitles:
		cols = append(cols, g.Cols[1:]...)
	case g.Config.ColTitles:
		for _, col := range g.Cols {
			cols = append(cols, col[1:])
		}
	default:
		cols = append(cols, g.Cols...)
	}
	return cols
}

// ParseNumeric maps every cell in the given nested list to a float64,
// after normalizing a comma decimal separator to a period, supporting
// locales that use decimal commas. It is a pure function: the input is
// not modified. It returns a [NumberFormatError] identifying the first
// cell that does not parse.
func ParseNumeric(cells [][]string) ([][]float64, error) {
	data := make([][]float64, len(cells))
	for ri, row := range cells {
		drow := make([]float64, len(row))
		for ci, val := range row {
			f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(val), ",", "."), 64)
			if err != nil {
				return nil, &NumberFormatError{Row: ri, Col: ci, Value: val, Err: err}
			}
			drow[ci] = f
		}
		data[ri] = drow
	}
	return data, nil
}

// Numeric returns the data cells as a numeric matrix in row-major
// order: [ParseNumeric] applied to [Grid.DataRows].
func (g *Grid) Numeric() ([][]float64, error) {
	return ParseNumeric(g.DataRows())
}
