// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"

	"github.com/CR-Biol/HeatMapMaker/grid"
)

func testData() [][]float64 {
	return [][]float64{
		{-3.2, 0.1, 2.4},
		{1.5, -0.7, 3.9},
	}
}

func TestNew(t *testing.T) {
	hm, err := New(testData(), []string{"a", "b"}, []string{"x", "y", "z"}, Options{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, hm.RowLabels)
	assert.Equal(t, []string{"x", "y", "z"}, hm.ColLabels)
}

func TestNewIndexLabels(t *testing.T) {
	hm, err := New(testData(), nil, nil, Options{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, hm.RowLabels)
	assert.Equal(t, []string{"0", "1", "2"}, hm.ColLabels)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, nil, nil, Options{})
	assert.Error(t, err)
	_, err = New(testData(), []string{"only one"}, nil, Options{})
	assert.Error(t, err)
	_, err = New(testData(), nil, []string{"x", "y"}, Options{})
	assert.Error(t, err)
}

func TestNewFromGrid(t *testing.T) {
	g, err := grid.New([]string{
		"gene;t0;t1",
		"abcB;-1,5;2.0",
		"marA;0.3;3,9",
	}, grid.Config{Delim: ';', RowTitles: true, ColTitles: true})
	assert.NoError(t, err)

	hm, err := NewFromGrid(g, Options{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"abcB", "marA"}, hm.RowLabels)
	assert.Equal(t, []string{"t0", "t1"}, hm.ColLabels)
	assert.Equal(t, [][]float64{{-1.5, 2}, {0.3, 3.9}}, hm.Data)
}

func TestRender(t *testing.T) {
	opts := Options{Title: "expression"}
	opts.DPI = 96 // keep the test image small
	hm, err := New(testData(), []string{"abcB", "marA"}, []string{"t0", "t1", "t2"}, opts)
	assert.NoError(t, err)

	img, err := hm.Render()
	assert.NoError(t, err)
	assert.NotNil(t, img)
	assert.Equal(t, hm.Size, img.Rect.Size())
	assert.Greater(t, hm.Size.X, 0)
	assert.Greater(t, hm.Size.Y, 0)

	// background is white
	assert.Equal(t, colors.AsRGBA(colors.White), img.RGBAAt(0, 0))

	// the center of the first cell carries the colormap color for its value
	cx := int(hm.gridPos.X + 0.5*hm.cell.X)
	cy := int(hm.gridPos.Y + 0.5*hm.cell.Y)
	assert.NotEqual(t, colors.AsRGBA(colors.White), img.RGBAAt(cx, cy))

	imagex.Assert(t, img, "heatmap")
}

func TestRenderUnknownMap(t *testing.T) {
	opts := Options{CellSize: 36}
	opts.Scale.ColorMap = "NoSuchMap"
	hm, err := New(testData(), nil, nil, opts)
	assert.NoError(t, err)
	_, err = hm.Render()
	assert.Error(t, err)
}
