// seehuhn.de/go/balldrop - a software rasteriser and bouncing-ball animation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster implements pixel-exact drawing algorithms: the Bresenham
// line, the midpoint circle and ellipse, filled disks built from horizontal
// spans, cubic Bézier curves flattened at a fixed number of samples, and a
// 4-connected breadth-first flood fill.
//
// The point generators ([Line], [Circle], [Ellipse]) use integer arithmetic
// only and return lazy sequences.  The Draw functions send every pixel
// through a [Plotter], so that a single buffer is the only source of truth.
//
// None of the functions in this package are safe for concurrent writers to
// the same destination.
package raster

import (
	"errors"
	"image"
	"image/color"
)

// Plotter is the destination of all drawing operations.
// Plot must silently ignore coordinates outside the drawable area.
type Plotter interface {
	Plot(x, y int, c color.RGBA)
}

// Image is a [Plotter] which can also be read back.  Pixel is only called
// for points inside Bounds, and must return exactly the colour which was
// last plotted there.
type Image interface {
	Plotter
	Bounds() image.Rectangle
	Pixel(x, y int) color.RGBA
}

// ErrSampleCount is returned when a curve is flattened with fewer than one
// segment.
var ErrSampleCount = errors.New("raster: sample count must be at least 1")

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
