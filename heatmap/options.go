// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"

	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32/minmax"
)

// ColorScale specifies how numeric values map onto a colormap.
type ColorScale struct { //types:add

	// Min is the lowest value for color computation.
	// If Min and Max are both zero, a nice round range
	// is computed from the data.
	Min float64 `default:"-4"`

	// Max is the highest value for color computation.
	Max float64 `default:"4"`

	// Center is the value mapped to the middle of the colormap,
	// for diverging maps. If zero, it defaults to the midpoint
	// of Min and Max.
	Center float64

	// ColorMap is the name of the colormap to use.
	ColorMap core.ColorMapName `default:"ColdHot"`
}

// Defaults sets default scale values.
func (cs *ColorScale) Defaults() {
	cs.Min = -4
	cs.Max = 4
	cs.Center = 0
	cs.ColorMap = "ColdHot"
}

// Update derives unset values: the range from the data when Min and
// Max are both zero, and Center from the midpoint of Min and Max.
func (cs *ColorScale) Update(data [][]float64) {
	if cs.ColorMap == "" {
		cs.ColorMap = "ColdHot"
	}
	if cs.Min == 0 && cs.Max == 0 {
		var rng minmax.F64
		rng.SetInfinity()
		for _, row := range data {
			for _, v := range row {
				rng.FitValInRange(v)
			}
		}
		cs.Min = minmax.NiceRoundNumber(rng.Min, true)
		cs.Max = minmax.NiceRoundNumber(rng.Max, false)
	}
	if cs.Center == 0 {
		cs.Center = (cs.Min + cs.Max) / 2
	}
}

// Map returns the [colormap.Map] for the configured colormap name,
// or an error if there is no such map.
func (cs *ColorScale) Map() (*colormap.Map, error) {
	cm, ok := colormap.AvailableMaps[string(cs.ColorMap)]
	if !ok {
		return nil, fmt.Errorf("heatmap: unknown colormap %q", cs.ColorMap)
	}
	return cm, nil
}

// Norm returns the normalized 0..1 position of the given value on the
// scale, mapping Center to 0.5 and clipping to the range ends.
func (cs *ColorScale) Norm(v float64) float64 {
	if v <= cs.Min {
		return 0
	}
	if v >= cs.Max {
		return 1
	}
	if v < cs.Center {
		if cs.Center == cs.Min {
			return 0.5
		}
		return 0.5 * (v - cs.Min) / (cs.Center - cs.Min)
	}
	if cs.Max == cs.Center {
		return 0.5
	}
	return 0.5 + 0.5*(v-cs.Center)/(cs.Max-cs.Center)
}

// Options are the overall heatmap rendering options.
type Options struct { //types:add

	// optional title at the top of the heatmap
	Title string

	// Scale maps values onto the colormap.
	Scale ColorScale `display:"inline"`

	// Annot draws the numeric value in each cell, in %.1f format.
	Annot bool `default:"true"`

	// Square coerces cells into a square shape; otherwise cells are
	// wider rectangles.
	Square bool `default:"true"`

	// ColorBarLabel is the label drawn along the colorbar.
	ColorBarLabel string `default:"log2 (fold change)"`

	// GridFill is the fraction of each cell filled with color,
	// leaving a white margin between cells. Set 1 to remove margins.
	GridFill float32 `min:"0.1" max:"1" default:"0.92"`

	// CellSize is the nominal cell size, in points (1/72 in).
	CellSize float32 `min:"8" default:"36"`

	// DPI is the dots-per-inch resolution of the rendered image.
	DPI float32 `default:"600"`
}

// Defaults sets defaults if unset values are present.
func (o *Options) Defaults() {
	if o.CellSize == 0 {
		o.Scale.Defaults()
		o.Annot = true
		o.Square = true
		o.ColorBarLabel = "log2 (fold change)"
		o.GridFill = 0.92
		o.CellSize = 36
	}
	if o.DPI == 0 {
		o.DPI = 600
	}
}
