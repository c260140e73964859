// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmapcore

import (
	"testing"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"

	"github.com/CR-Biol/HeatMapMaker/grid"
)

func testGrid(t *testing.T) *grid.Grid {
	g, err := grid.New([]string{
		"gene;t0;t1;t2",
		"abcB;-1,5;0,3;2,0",
		"marA;0,8;-2,1;3,9",
	}, grid.Config{Delim: ';', RowTitles: true, ColTitles: true})
	assert.NoError(t, err)
	return g
}

func TestFormatConfig(t *testing.T) {
	fm := &Format{}
	fm.Defaults()
	cfg := fm.config()
	assert.Equal(t, ';', cfg.Delim)
	assert.True(t, cfg.RowTitles)
	assert.True(t, cfg.ColTitles)
}

func TestEditor(t *testing.T) {
	b := core.NewBody()

	ed := NewEditor(b)
	ed.Options.Title = "Fold change"
	ed.SetGrid(testGrid(t))
	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(ed.MakeToolbar)
	})
	b.AssertRender(t, "editor")
}
