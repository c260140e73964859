// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmapcore

import (
	"image"
	"image/draw"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"

	"github.com/CR-Biol/HeatMapMaker/heatmap"
)

// displayDPI is the resolution used for the first preview render,
// before scaling the figure to fit the widget.
const displayDPI = 72

// Display is a widget that renders a [heatmap.Heatmap] figure,
// scaled to fit the current widget size. The figure is re-rendered
// at full resolution when saved; see [Editor].
type Display struct {
	core.WidgetBase

	// Heatmap is the figure to display in this widget.
	Heatmap *heatmap.Heatmap `set:"-"`
}

// SetHeatmap sets the figure to display, and re-renders it at the
// current size of this widget.
func (dp *Display) SetHeatmap(hm *heatmap.Heatmap) {
	dp.Heatmap = hm
	dp.updateDisplay()
}

// updateDisplay renders the current figure at a resolution that fits
// the widget, and triggers a Render so the widget will be rendered.
func (dp *Display) updateDisplay() {
	if dp.Heatmap == nil {
		dp.NeedsRender()
		return
	}
	sz := dp.Geom.Size.Actual.Content.ToPoint()
	if sz == (image.Point{}) {
		return
	}
	hm := dp.Heatmap
	saveDPI := hm.Options.DPI
	hm.Options.DPI = displayDPI
	if _, err := hm.Render(); err != nil {
		errors.Log(err)
		hm.Options.DPI = saveDPI
		dp.NeedsRender()
		return
	}
	fit := math32.Min(float32(sz.X)/float32(hm.Size.X), float32(sz.Y)/float32(hm.Size.Y))
	if fit > 0 && fit != 1 {
		hm.Options.DPI = displayDPI * fit
		_, err := hm.Render()
		errors.Log(err)
	}
	hm.Options.DPI = saveDPI
	dp.NeedsRender()
}

func (dp *Display) Init() {
	dp.WidgetBase.Init()
	dp.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(256))
		s.Grow.Set(1, 1)
	})
}

func (dp *Display) SizeFinal() {
	dp.WidgetBase.SizeFinal()
	dp.updateDisplay()
}

func (dp *Display) Render() {
	dp.WidgetBase.Render()

	r := dp.Geom.ContentBBox
	sp := dp.Geom.ScrollOffset()
	if dp.Heatmap == nil || dp.Heatmap.Pixels == nil {
		draw.Draw(dp.Scene.Pixels, r, colors.Scheme.Surface, sp, draw.Src)
		return
	}
	draw.Draw(dp.Scene.Pixels, r, dp.Heatmap.Pixels, sp, draw.Src)
}
