// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
)

// TextStyle specifies styling parameters for text elements.
type TextStyle struct {
	styles.FontRender

	// how to align text along the relevant dimension for the text element
	Align styles.Aligns

	// rotation of the text, in degrees
	Rotation float32
}

func (ts *TextStyle) Defaults() {
	ts.FontRender.Defaults()
	ts.Align = styles.Center
}

// Text is a single text element in the heatmap figure.
type Text struct {

	// text string to render
	Text string

	// styling for this text element
	Style TextStyle

	// paintText is the [paint.Text] for the text.
	paintText paint.Text
}

func (tx *Text) Defaults() {
	tx.Style.Defaults()
}

// Config lays out the text for the given figure, prior to drawing.
func (tx *Text) Config(hm *Heatmap) {
	fs := &tx.Style.FontRender
	if fs.Face == nil {
		fs.Font = paint.OpenFont(fs, &hm.UnitContext)
	}
	txln := float32(len(tx.Text))
	fht := fs.Face.Metrics.Height
	hsz := 0.75 * fht * txln
	txs := &hm.StdTextStyle
	txs.OrientationHoriz = tx.Style.Rotation
	txs.Align = tx.Style.Align

	tx.paintText.SetHTML(tx.Text, fs, txs, &hm.UnitContext, nil)
	tx.paintText.Layout(txs, fs, &hm.UnitContext, math32.Vec2(hsz, fht))
}

// Size returns the laid-out size of the text, valid after [Text.Config].
func (tx *Text) Size() math32.Vector2 {
	return tx.paintText.BBox.Size()
}

// Draw renders the text at the given upper-left position.
func (tx *Text) Draw(hm *Heatmap, pos math32.Vector2) {
	tx.paintText.Render(hm.Paint, pos)
}
