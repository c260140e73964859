// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap renders a labeled numeric matrix as a heatmap
// figure: colormap-colored cells with white margins, row labels at the
// left, column labels on top, an optional title, optional per-cell
// value annotations, and a colorbar legend. The figure is drawn
// offscreen onto a [paint.Context] and can be saved to an image file.
package heatmap

//go:generate core generate

import (
	"errors"
	"image"
	"strconv"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"

	"github.com/CR-Biol/HeatMapMaker/grid"
)

// Heatmap is a heatmap figure for a labeled numeric matrix.
// Set the data and options, then call [Heatmap.Render] or
// [Heatmap.Save].
type Heatmap struct {

	// Data is the numeric matrix, in row-major order.
	Data [][]float64

	// RowLabels has one label per data row. If nil, positional
	// indices are used.
	RowLabels []string

	// ColLabels has one label per data column. If nil, positional
	// indices are used.
	ColLabels []string

	// Options are the rendering options.
	Options Options

	// Size is the full rendered size, in pixels, computed during layout.
	Size image.Point

	// Pixels is the image we render into.
	Pixels *image.RGBA

	// Paint is the painting context for drawing.
	Paint *paint.Context

	// UnitContext has the unit conversion context, at the target DPI.
	UnitContext units.Context

	// StdTextStyle is the shared text layout styling.
	StdTextStyle styles.Text

	// current colormap, resolved from the options.
	colorMap *colormap.Map

	title     Text
	barLabel  Text
	rowLabels []Text
	colLabels []Text
	ticks     [3]Text

	// computed geometry, all in pixels
	cell    math32.Vector2 // size of one cell
	gridPos math32.Vector2 // top-left of the cell grid
	gridSz  math32.Vector2
	barPos  math32.Vector2 // top-left of the colorbar
	barSz   math32.Vector2
}

// New returns a new [Heatmap] for the given matrix and labels.
// Nil labels yield positional indices. It returns an error if the
// matrix is empty or if the label counts do not match the matrix.
func New(data [][]float64, rowLabels, colLabels []string, opts Options) (*Heatmap, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, errors.New("heatmap: empty data matrix")
	}
	nrow, ncol := len(data), len(data[0])
	if rowLabels == nil {
		rowLabels = indexLabels(nrow)
	}
	if colLabels == nil {
		colLabels = indexLabels(ncol)
	}
	if len(rowLabels) != nrow {
		return nil, errors.New("heatmap: row label count does not match data rows")
	}
	if len(colLabels) != ncol {
		return nil, errors.New("heatmap: column label count does not match data columns")
	}
	hm := &Heatmap{Data: data, RowLabels: rowLabels, ColLabels: colLabels, Options: opts}
	return hm, nil
}

// NewFromGrid returns a new [Heatmap] over the numeric data and titles
// of the given [grid.Grid].
func NewFromGrid(g *grid.Grid, opts Options) (*Heatmap, error) {
	data, err := g.Numeric()
	if err != nil {
		return nil, err
	}
	return New(data, g.RowTitles(), g.ColTitles(), opts)
}

func indexLabels(n int) []string {
	ls := make([]string, n)
	for i := range n {
		ls[i] = strconv.Itoa(i)
	}
	return ls
}

// dpp returns dots (pixels) per point at the configured DPI.
func (hm *Heatmap) dpp() float32 {
	return hm.Options.DPI / 72
}

// textAt returns a configured [Text] element with the given content,
// size in points, and rotation in degrees.
func (hm *Heatmap) textAt(txt string, pts float32, rot float32, align styles.Aligns) Text {
	tx := Text{Text: txt}
	tx.Defaults()
	tx.Style.Size = units.Pt(pts)
	tx.Style.Rotation = rot
	tx.Style.Align = align
	tx.Config(hm)
	return tx
}

// config resolves options, builds all text elements, and computes the
// figure geometry.
func (hm *Heatmap) config() error {
	o := &hm.Options
	o.Defaults()
	o.Scale.Update(hm.Data)
	cm, err := o.Scale.Map()
	if err != nil {
		return err
	}
	hm.colorMap = cm

	hm.UnitContext.Defaults()
	hm.UnitContext.DPI = o.DPI
	hm.StdTextStyle.Defaults()
	hm.StdTextStyle.WhiteSpace = styles.WhiteSpaceNowrap

	dpp := hm.dpp()
	pad := 6 * dpp
	ch := o.CellSize * dpp
	cw := ch
	if !o.Square {
		cw = 1.6 * ch
	}
	nrow, ncol := len(hm.Data), len(hm.Data[0])
	hm.cell = math32.Vec2(cw, ch)
	hm.gridSz = math32.Vec2(float32(ncol)*cw, float32(nrow)*ch)

	hm.rowLabels = make([]Text, nrow)
	left := float32(0)
	for i, lb := range hm.RowLabels {
		hm.rowLabels[i] = hm.textAt(lb, 10, 0, styles.End)
		left = math32.Max(left, hm.rowLabels[i].Size().X)
	}
	left += 2 * pad

	// column labels go on top, rotated 45 degrees
	hm.colLabels = make([]Text, ncol)
	colBand := float32(0)
	for i, lb := range hm.ColLabels {
		hm.colLabels[i] = hm.textAt(lb, 10, 45, styles.Start)
		sz := hm.colLabels[i].Size()
		colBand = math32.Max(colBand, 0.7071*(sz.X+sz.Y))
	}
	colBand += pad

	top := colBand + pad
	if o.Title != "" {
		hm.title = Text{Text: o.Title}
		hm.title.Defaults()
		hm.title.Style.Size = units.Pt(18)
		hm.title.Style.Weight = styles.WeightBold
		hm.title.Config(hm)
		top += hm.title.Size().Y + 2*pad
	}

	// colorbar: bar, tick labels, then the rotated bar label
	hm.barSz = math32.Vec2(0.5*ch, hm.gridSz.Y)
	tickW := float32(0)
	tickVals := [3]float64{o.Scale.Max, o.Scale.Center, o.Scale.Min}
	for i, v := range tickVals {
		hm.ticks[i] = hm.textAt(strconv.FormatFloat(v, 'g', 4, 64), 9, 0, styles.Start)
		tickW = math32.Max(tickW, hm.ticks[i].Size().X)
	}
	right := pad + hm.barSz.X + pad + tickW + pad
	if o.ColorBarLabel != "" {
		hm.barLabel = hm.textAt(o.ColorBarLabel, 11, 90, styles.Center)
		right += hm.barLabel.Size().Y + pad
	}

	hm.gridPos = math32.Vec2(left, top)
	hm.barPos = math32.Vec2(left+hm.gridSz.X+pad, top)
	hm.Size = image.Point{
		X: int(math32.Ceil(left + hm.gridSz.X + right)),
		Y: int(math32.Ceil(top + hm.gridSz.Y + pad)),
	}
	return nil
}

// Render renders the figure and returns the resulting image,
// which is also available as [Heatmap.Pixels].
func (hm *Heatmap) Render() (*image.RGBA, error) {
	if err := hm.config(); err != nil {
		return nil, err
	}
	hm.Paint = paint.NewContext(hm.Size.X, hm.Size.Y)
	hm.Pixels = hm.Paint.Image

	pc := hm.Paint
	sz := math32.FromPoint(hm.Size)
	pc.FillBox(math32.Vector2{}, sz, colors.Uniform(colors.White))

	hm.drawTitle()
	hm.drawLabels()
	hm.drawCells()
	hm.drawColorBar()
	return hm.Pixels, nil
}

// Save renders the figure and saves it to the given file,
// with the format inferred from the extension (e.g., .png).
func (hm *Heatmap) Save(filename string) error {
	img, err := hm.Render()
	if err != nil {
		return err
	}
	return imagex.Save(img, filename)
}

func (hm *Heatmap) drawTitle() {
	if hm.Options.Title == "" {
		return
	}
	dpp := hm.dpp()
	pos := math32.Vec2(hm.gridPos.X+0.5*hm.gridSz.X-0.5*hm.title.Size().X, 6*dpp)
	hm.title.Draw(hm, pos)
}

func (hm *Heatmap) drawLabels() {
	dpp := hm.dpp()
	pad := 6 * dpp
	for i := range hm.rowLabels {
		tx := &hm.rowLabels[i]
		sz := tx.Size()
		pos := math32.Vec2(hm.gridPos.X-pad-sz.X,
			hm.gridPos.Y+(float32(i)+0.5)*hm.cell.Y-0.5*sz.Y)
		tx.Draw(hm, pos)
	}
	for i := range hm.colLabels {
		tx := &hm.colLabels[i]
		pos := math32.Vec2(hm.gridPos.X+(float32(i)+0.5)*hm.cell.X,
			hm.gridPos.Y-pad)
		tx.Draw(hm, pos)
	}
}

func (hm *Heatmap) drawCells() {
	pc := hm.Paint
	o := &hm.Options
	ssz := hm.cell.MulScalar(o.GridFill)
	off := hm.cell.Sub(ssz).MulScalar(0.5)
	for ri, row := range hm.Data {
		for ci, v := range row {
			norm := o.Scale.Norm(v)
			clr := hm.colorMap.Map(float32(norm))
			pos := hm.gridPos.Add(math32.Vec2(float32(ci)*hm.cell.X, float32(ri)*hm.cell.Y))
			pc.FillBox(pos.Add(off), ssz, colors.Uniform(clr))
			if o.Annot {
				hm.drawAnnot(v, norm, pos)
			}
		}
	}
}

// drawAnnot draws the cell value, in white at the ends of the scale
// where diverging maps are dark.
func (hm *Heatmap) drawAnnot(v, norm float64, pos math32.Vector2) {
	tx := hm.textAt(strconv.FormatFloat(v, 'f', 1, 64), 9, 0, styles.Center)
	if norm < 0.25 || norm > 0.75 {
		tx.Style.Color = colors.Uniform(colors.White)
		tx.Config(hm)
	}
	sz := tx.Size()
	ctr := pos.Add(hm.cell.MulScalar(0.5))
	tx.Draw(hm, ctr.Sub(sz.MulScalar(0.5)))
}

func (hm *Heatmap) drawColorBar() {
	pc := hm.Paint
	dpp := hm.dpp()
	pad := 6 * dpp

	// draw the bar as horizontal slices from max at top to min at bottom
	n := int(hm.barSz.Y / (2 * dpp))
	if n < 2 {
		n = 2
	}
	slice := math32.Vec2(hm.barSz.X, hm.barSz.Y/float32(n)+1)
	for i := range n {
		norm := 1 - float32(i)/float32(n-1)
		clr := hm.colorMap.Map(norm)
		pos := hm.barPos.Add(math32.Vec2(0, float32(i)*hm.barSz.Y/float32(n)))
		pc.FillBox(pos, slice, colors.Uniform(clr))
	}

	tickX := hm.barPos.X + hm.barSz.X + pad
	ys := [3]float32{0, 0.5 * hm.barSz.Y, hm.barSz.Y}
	for i := range hm.ticks {
		tx := &hm.ticks[i]
		pos := math32.Vec2(tickX, hm.barPos.Y+ys[i]-0.5*tx.Size().Y)
		tx.Draw(hm, pos)
	}

	if hm.Options.ColorBarLabel != "" {
		tickW := float32(0)
		for i := range hm.ticks {
			tickW = math32.Max(tickW, hm.ticks[i].Size().X)
		}
		pos := math32.Vec2(tickX+tickW+pad,
			hm.barPos.Y+0.5*hm.barSz.Y-0.5*hm.barLabel.Size().X)
		hm.barLabel.Draw(hm, pos)
	}
}
