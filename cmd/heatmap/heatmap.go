// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heatmap makes heatmap figures from CSV data,
// either interactively or directly on the command line.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"

	"github.com/CR-Biol/HeatMapMaker/grid"
	"github.com/CR-Biol/HeatMapMaker/heatmap"
	"github.com/CR-Biol/HeatMapMaker/heatmapcore"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the heatmap cli.
type Config struct {

	// Input is the CSV data file to open.
	// The gui command starts with an empty editor if no file is given.
	Input string `posarg:"0" required:"-"`

	// Output is the image file to render to.
	Output string `cmd:"render" flag:"o,output" default:"heatmap.png"`

	// Delim is the field separator in the data file.
	// Only the first character is used.
	Delim string `flag:"d,delim" default:";"`

	// RowTitles treats the first cell of each row as a row label.
	RowTitles bool `default:"true"`

	// ColTitles treats the first line as column labels.
	ColTitles bool `default:"true"`

	// Heatmap are the rendering options for the figure.
	Heatmap heatmap.Options `display:"inline"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("heatmap", "Make heatmap figures from CSV data.")
	cli.Run(opts, &Config{}, Gui, Render)
}

// Gui opens the interactive heatmap editor, with the input file
// loaded if one is given.
func Gui(c *Config) error { //cli:cmd -root
	b := core.NewBody("Heat Map Maker")
	ed := heatmapcore.NewEditor(b)
	ed.SetOptions(c.Heatmap).SetFormat(heatmapcore.Format{
		Delim:     c.Delim,
		RowTitles: c.RowTitles,
		ColTitles: c.ColTitles,
	})
	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(ed.MakeToolbar)
	})
	if c.Input != "" {
		ed.OpenCSV(core.Filename(c.Input))
	}
	b.RunMainWindow()
	return nil
}

// Render renders the heatmap figure for the input file directly
// to the output image file, without opening a window.
func Render(c *Config) error {
	cfg := grid.Config{RowTitles: c.RowTitles, ColTitles: c.ColTitles}
	for _, r := range c.Delim {
		cfg.Delim = r
		break
	}
	g, err := grid.Open(c.Input, cfg)
	if err != nil {
		return err
	}
	hm, err := heatmap.NewFromGrid(g, c.Heatmap)
	if err != nil {
		return err
	}
	return hm.Save(c.Output)
}
