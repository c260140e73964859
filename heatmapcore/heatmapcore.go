// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmapcore provides Cogent Core widgets for viewing and
// editing heatmap figures made from CSV data.
package heatmapcore

//go:generate core generate

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"

	"github.com/CR-Biol/HeatMapMaker/grid"
	"github.com/CR-Biol/HeatMapMaker/heatmap"
)

// Format specifies how CSV data files are read.
type Format struct { //types:add

	// Delim is the field separator. Only the first character is used.
	Delim string `default:";"`

	// RowTitles treats the first cell of each row as a row label.
	RowTitles bool `default:"true"`

	// ColTitles treats the first line as column labels.
	ColTitles bool `default:"true"`
}

// Defaults sets the standard data file format: semicolon separated,
// with row and column titles.
func (fm *Format) Defaults() {
	fm.Delim = ";"
	fm.RowTitles = true
	fm.ColTitles = true
}

// config returns the [grid.Config] for this format.
func (fm *Format) config() grid.Config {
	cfg := grid.Config{RowTitles: fm.RowTitles, ColTitles: fm.ColTitles}
	for _, r := range fm.Delim {
		cfg.Delim = r
		break
	}
	return cfg
}

// Editor is a widget that provides an interactive heatmap figure
// of CSV data, represented by a [grid.Grid]. The user can change
// the data file format and the rendering options, and save the
// figure at full resolution.
type Editor struct { //types:add
	core.Frame

	// Grid is the data being displayed.
	Grid *grid.Grid `set:"-"`

	// Options are the overall heatmap rendering options.
	Options heatmap.Options

	// Format specifies how data files are read.
	Format Format

	// current csv data file
	dataFile core.Filename

	display *Display
}

func (ed *Editor) Init() {
	ed.Frame.Init()

	ed.Options.Defaults()
	ed.Format.Defaults()
	ed.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})

	ed.OnShow(func(e events.Event) {
		ed.UpdateHeatmap()
	})

	tree.AddChildAt(ed, "settings", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
			s.Background = colors.Scheme.SurfaceContainerLow
			s.Grow.Set(0, 1)
			s.Overflow.Y = styles.OverflowAuto
		})
		tree.AddChild(w, func(w *core.Form) {
			w.SetStruct(&ed.Options)
			w.OnChange(func(e events.Event) {
				ed.UpdateHeatmap()
			})
		})
		tree.AddChild(w, func(w *core.Separator) {})
		tree.AddChild(w, func(w *core.Form) {
			w.SetStruct(&ed.Format)
			w.OnChange(func(e events.Event) {
				if ed.dataFile != "" {
					ed.OpenCSV(ed.dataFile)
				}
			})
		})
	})
	tree.AddChildAt(ed, "display", func(w *Display) {
		ed.display = w
	})
}

// SetGrid sets the data to display and updates the figure.
func (ed *Editor) SetGrid(g *grid.Grid) *Editor {
	ed.Grid = g
	ed.UpdateHeatmap()
	return ed
}

// UpdateHeatmap rebuilds the figure from the current data and
// options and re-renders the display.
func (ed *Editor) UpdateHeatmap() {
	if ed == nil || ed.This == nil || ed.Grid == nil || ed.display == nil {
		return
	}
	hm, err := heatmap.NewFromGrid(ed.Grid, ed.Options)
	if err != nil {
		core.ErrorSnackbar(ed, err)
		return
	}
	ed.display.SetHeatmap(hm)
}

// OpenCSV opens CSV data from the given file, using the current
// [Format] settings.
func (ed *Editor) OpenCSV(filename core.Filename) { //types:add
	g, err := grid.Open(string(filename), ed.Format.config())
	if err != nil {
		core.ErrorSnackbar(ed, err)
		return
	}
	ed.dataFile = filename
	ed.SetGrid(g)
}

// SavePNG renders the figure at full resolution and saves it to
// the given file.
func (ed *Editor) SavePNG(filename core.Filename) { //types:add
	if ed.Grid == nil {
		return
	}
	hm, err := heatmap.NewFromGrid(ed.Grid, ed.Options)
	if err == nil {
		err = hm.Save(string(filename))
	}
	if err != nil {
		core.ErrorSnackbar(ed, err)
	}
}

func (ed *Editor) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ed.OpenCSV).SetIcon(icons.Open)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ed.SavePNG).SetIcon(icons.Save)
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Button) {
		w.SetText("Update").SetIcon(icons.Update).
			SetTooltip("fully redraws the figure, reflecting any new settings").
			OnClick(func(e events.Event) {
				ed.UpdateWidget()
				ed.UpdateHeatmap()
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Options").SetIcon(icons.Settings).
			SetTooltip("Options for how the heatmap is rendered").
			OnClick(func(e events.Event) {
				d := core.NewBody("Heatmap options")
				core.NewForm(d).SetStruct(&ed.Options).
					OnChange(func(e events.Event) {
						ed.UpdateHeatmap()
					})
				d.RunWindowDialog(ed)
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Format").SetIcon(icons.Description).
			SetTooltip("Settings for how data files are read").
			OnClick(func(e events.Event) {
				d := core.NewBody("Data file format")
				core.NewForm(d).SetStruct(&ed.Format).
					OnChange(func(e events.Event) {
						if ed.dataFile != "" {
							ed.OpenCSV(ed.dataFile)
						}
					})
				d.RunWindowDialog(ed)
			})
	})
	tree.Add(p, func(w *core.Separator) {})
	tree.Add(p, func(w *core.Button) {
		w.SetText("About").SetIcon(icons.Info).
			OnClick(func(e events.Event) {
				d := core.NewBody("About Heat Map Maker")
				core.NewText(d).SetText("Heat Map Maker makes heatmap figures from CSV data.")
				d.AddOKOnly()
				d.RunDialog(ed)
			})
	})
}
