// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleDefaults(t *testing.T) {
	sc := &ColorScale{}
	sc.Defaults()
	assert.Equal(t, -4.0, sc.Min)
	assert.Equal(t, 4.0, sc.Max)
	assert.Equal(t, 0.0, sc.Center)
	assert.Equal(t, "ColdHot", string(sc.ColorMap))
}

func TestScaleUpdateAuto(t *testing.T) {
	sc := &ColorScale{ColorMap: "ColdHot"}
	data := [][]float64{{-1.2, 0.4}, {2.7, 0.9}}
	sc.Update(data)
	assert.LessOrEqual(t, sc.Min, -1.2)
	assert.GreaterOrEqual(t, sc.Max, 2.7)
	assert.Equal(t, (sc.Min+sc.Max)/2, sc.Center)
}

func TestScaleUpdateFixed(t *testing.T) {
	sc := &ColorScale{Min: -4, Max: 4, ColorMap: "ColdHot"}
	sc.Update([][]float64{{-10, 10}})
	assert.Equal(t, -4.0, sc.Min)
	assert.Equal(t, 4.0, sc.Max)
	assert.Equal(t, 0.0, sc.Center)
}

func TestScaleNorm(t *testing.T) {
	sc := &ColorScale{Min: -4, Max: 4, ColorMap: "ColdHot"}
	sc.Update(nil)
	assert.Equal(t, 0.0, sc.Norm(-4))
	assert.Equal(t, 0.5, sc.Norm(0))
	assert.Equal(t, 1.0, sc.Norm(4))
	assert.Equal(t, 0.75, sc.Norm(2))
	// values beyond the range clip
	assert.Equal(t, 0.0, sc.Norm(-100))
	assert.Equal(t, 1.0, sc.Norm(100))
}

func TestScaleNormAsymmetric(t *testing.T) {
	sc := &ColorScale{Min: 0, Max: 6, Center: 2, ColorMap: "ColdHot"}
	sc.Update(nil)
	assert.Equal(t, 0.5, sc.Norm(2))
	assert.Equal(t, 0.25, sc.Norm(1))
	assert.Equal(t, 0.75, sc.Norm(4))
}

func TestScaleMapUnknown(t *testing.T) {
	sc := &ColorScale{ColorMap: "NoSuchMap"}
	_, err := sc.Map()
	assert.Error(t, err)
}

func TestOptionsDefaults(t *testing.T) {
	o := &Options{}
	o.Defaults()
	assert.True(t, o.Annot)
	assert.True(t, o.Square)
	assert.Equal(t, "log2 (fold change)", o.ColorBarLabel)
	assert.Equal(t, float32(0.92), o.GridFill)
	assert.Equal(t, float32(600), o.DPI)
}
