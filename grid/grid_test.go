// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultLines = []string{
	"col_titles,default1,default2,default3",
	"col1,1,2,3",
	"col2,4,5,6",
	"col3,7,8,9",
}

var dataRows = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
}

var dataCols = [][]string{
	{"1", "4", "7"},
	{"2", "5", "8"},
	{"3", "6", "9"},
}

func TestBothTitles(t *testing.T) {
	g, err := New(defaultLines, Config{RowTitles: true, ColTitles: true})
	assert.NoError(t, err)

	assert.Equal(t, [][]string{
		{"col_titles", "default1", "default2", "default3"},
		{"col1", "1", "2", "3"},
		{"col2", "4", "5", "6"},
		{"col3", "7", "8", "9"},
	}, g.Rows)
	assert.Equal(t, [][]string{
		{"col_titles", "col1", "col2", "col3"},
		{"default1", "1", "4", "7"},
		{"default2", "2", "5", "8"},
		{"default3", "3", "6", "9"},
	}, g.Cols)

	assert.Equal(t, []string{"col1", "col2", "col3"}, g.RowTitles())
	assert.Equal(t, []string{"default1", "default2", "default3"}, g.ColTitles())
	assert.Equal(t, dataRows, g.DataRows())
	assert.Equal(t, dataCols, g.DataCols())
}

func TestSemicolonDelim(t *testing.T) {
	lines := make([]string, len(defaultLines))
	for i, ln := range defaultLines {
		lines[i] = strings.ReplaceAll(ln, ",", ";")
	}
	g, err := New(lines, Config{Delim: ';', RowTitles: true, ColTitles: true})
	assert.NoError(t, err)
	assert.Equal(t, []string{"col1", "col2", "col3"}, g.RowTitles())
	assert.Equal(t, []string{"default1", "default2", "default3"}, g.ColTitles())
	assert.Equal(t, dataRows, g.DataRows())
	assert.Equal(t, dataCols, g.DataCols())
}

func TestNoTitles(t *testing.T) {
	g, err := New([]string{"1,2,3", "4,5,6", "7,8,9"}, Config{})
	assert.NoError(t, err)
	assert.Nil(t, g.RowTitles())
	assert.Nil(t, g.ColTitles())
	assert.Equal(t, dataRows, g.DataRows())
	assert.Equal(t, dataCols, g.DataCols())

	num, err := g.Numeric()
	assert.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, num)
}

func TestColTitlesOnly(t *testing.T) {
	g, err := New([]string{"col_only1,col_only2,col_only3", "1,2,3", "4,5,6", "7,8,9"},
		Config{ColTitles: true})
	assert.NoError(t, err)
	assert.Nil(t, g.RowTitles())
	assert.Equal(t, []string{"col_only1", "col_only2", "col_only3"}, g.ColTitles())
	assert.Equal(t, dataRows, g.DataRows())
	assert.Equal(t, dataCols, g.DataCols())
}

func TestRowTitlesOnly(t *testing.T) {
	g, err := New([]string{"row_only1,1,2,3", "row_only2,4,5,6", "row_only3,7,8,9"},
		Config{RowTitles: true})
	assert.NoError(t, err)
	assert.Equal(t, []string{"row_only1", "row_only2", "row_only3"}, g.RowTitles())
	assert.Nil(t, g.ColTitles())
	assert.Equal(t, dataRows, g.DataRows())
	assert.Equal(t, dataCols, g.DataCols())
}

// DataRows transposed must equal DataCols for every config.
func TestTransposeRoundTrip(t *testing.T) {
	configs := []Config{
		{},
		{RowTitles: true},
		{ColTitles: true},
		{RowTitles: true, ColTitles: true},
	}
	for _, cfg := range configs {
		g, err := New(defaultLines, cfg)
		assert.NoError(t, err)
		rows := g.DataRows()
		cols := g.DataCols()
		for ri, row := range rows {
			for ci, val := range row {
				assert.Equal(t, val, cols[ci][ri], "config %+v cell (%d, %d)", cfg, ri, ci)
			}
		}
	}
}

func TestTitleCounts(t *testing.T) {
	g, err := New(defaultLines, Config{RowTitles: true, ColTitles: true})
	assert.NoError(t, err)
	assert.Equal(t, len(g.DataRows()), len(g.RowTitles()))
	assert.Equal(t, len(g.DataCols()), len(g.ColTitles()))
}

func TestMalformed(t *testing.T) {
	_, err := New([]string{"a,b", "c"}, Config{})
	var mge *MalformedGridError
	assert.ErrorAs(t, err, &mge)
	assert.Equal(t, "row", mge.Axis)
	assert.Equal(t, 1, mge.Index)
	assert.Equal(t, 1, mge.Len)
	assert.Equal(t, 2, mge.Want)

	_, err = New([]string{"a,b,c", "d,e"}, Config{})
	assert.ErrorAs(t, err, &mge)

	// interior blank line is ragged too
	_, err = New([]string{"a,b", "", "c,d"}, Config{})
	assert.ErrorAs(t, err, &mge)
}

func TestEmptyInput(t *testing.T) {
	_, err := New(nil, Config{})
	var mge *MalformedGridError
	assert.ErrorAs(t, err, &mge)
	assert.Equal(t, "grid: empty input", err.Error())
}

func TestParseNumeric(t *testing.T) {
	num, err := ParseNumeric(dataRows)
	assert.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, num)
}

func TestParseNumericDecimalComma(t *testing.T) {
	num, err := ParseNumeric([][]string{{"3,14", "1,5"}, {"-2,5", "0"}})
	assert.NoError(t, err)
	assert.Equal(t, [][]float64{{3.14, 1.5}, {-2.5, 0}}, num)

	// comma and period notation parse to the identical value
	comma, err := ParseNumeric([][]string{{"1,5"}})
	assert.NoError(t, err)
	period, err := ParseNumeric([][]string{{"1.5"}})
	assert.NoError(t, err)
	assert.Equal(t, period, comma)
	assert.Equal(t, 1.5, comma[0][0])
}

func TestParseNumericError(t *testing.T) {
	_, err := ParseNumeric([][]string{{"1", "2"}, {"3", "oops"}})
	var nfe *NumberFormatError
	assert.ErrorAs(t, err, &nfe)
	assert.Equal(t, 1, nfe.Row)
	assert.Equal(t, 1, nfe.Col)
	assert.Equal(t, "oops", nfe.Value)
}

func TestRead(t *testing.T) {
	in := strings.Join(defaultLines, "\n") + "\n"
	g, err := Read(strings.NewReader(in), Config{RowTitles: true, ColTitles: true})
	assert.NoError(t, err)
	assert.Equal(t, 4, g.NumRows())
	assert.Equal(t, 4, g.NumCols())
	assert.Equal(t, []string{"col1", "col2", "col3"}, g.RowTitles())
}
