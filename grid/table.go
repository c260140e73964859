// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"strconv"

	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
)

// Table parses the grid into a [table.Table] resembling the
// orientation of the original input file: an optional string column of
// row titles, followed by one float64 column per data column, named by
// the column titles when present and by positional indices otherwise.
// This labeled numeric table is the artifact handed to the renderer.
// It returns a [NumberFormatError] if any data cell is not numeric,
// and a [MalformedGridError] if the grid has no data rows.
func (g *Grid) Table() (*table.Table, error) {
	data, err := g.Numeric()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &MalformedGridError{}
	}
	rowTitles := g.RowTitles()
	colTitles := g.ColTitles()

	dt := table.NewTable("grid")
	var rtc *tensor.String
	if rowTitles != nil {
		// the corner cell names the title column when there is one
		name := "Row"
		if colTitles != nil && g.Rows[0][0] != "" {
			name = g.Rows[0][0]
		}
		rtc = dt.AddStringColumn(name)
	}
	ncol := len(data[0])
	cols := make([]*tensor.Float64, ncol)
	for ci := range ncol {
		name := strconv.Itoa(ci)
		if colTitles != nil {
			name = colTitles[ci]
		}
		cols[ci] = dt.AddFloat64Column(name)
	}
	dt.SetNumRows(len(data))
	for ri, drow := range data {
		if rtc != nil {
			rtc.SetStringRowCell(ri, 0, rowTitles[ri])
		}
		for ci, v := range drow {
			cols[ci].SetFloatRowCell(ri, 0, v)
		}
	}
	return dt, nil
}
