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

package raster

import (
	"image"
	"image/color"
	"iter"
)

// Ellipse returns the pixels of the axis-aligned midpoint ellipse with
// semi-axes a (horizontal) and b (vertical) around center.  One quadrant is
// computed and mirrored into the other three; every pixel is produced once.
//
// Negative semi-axes are used by absolute value.  If b is zero the result
// is the horizontal segment of half-length a, if a is zero the vertical
// segment of half-length b.
func Ellipse(center image.Point, a, b int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for x, y := range ellipseQuadrant(abs(a), abs(b)) {
			if !reflect4(center.X, center.Y, x, y, yield) {
				return
			}
		}
	}
}

// DrawEllipse plots the outline of the midpoint ellipse.
func DrawEllipse(dst Plotter, center image.Point, a, b int, c color.RGBA) {
	for p := range Ellipse(center, a, b) {
		dst.Plot(p.X, p.Y, c)
	}
}

// ellipseQuadrant yields the offsets of the first quadrant, from (0, b) to
// (a, 0).  Consecutive offsets are 8-neighbours, x never decreases and y
// never increases.
//
// All decision variables are scaled by 4 so that the half-pixel midpoints
// stay integer.
func ellipseQuadrant(a, b int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		a2, b2 := a*a, b*b
		x, y := 0, b

		// dx and dy are the two components of the gradient, 2b²x and 2a²y.
		// Region 1 steps in x while the slope is shallower than -1, that is
		// while dx < dy.
		dx, dy := 0, 2*a2*y
		d1 := 4*b2 - 4*a2*b + a2
		for dx < dy {
			if !yield(x, y) {
				return
			}
			x++
			dx += 2 * b2
			if d1 < 0 {
				d1 += 4 * (dx + b2)
			} else {
				y--
				dy -= 2 * a2
				d1 += 4 * (dx - dy + b2)
			}
		}

		// Region 2 steps in y, evaluating the midpoint (x+1/2, y-1).
		d2 := b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
		tip := x
		for y >= 0 {
			if !yield(x, y) {
				return
			}
			tip = x
			y--
			dy -= 2 * a2
			if d2 > 0 {
				d2 += 4 * (a2 - dy)
			} else {
				x++
				dx += 2 * b2
				d2 += 4 * (dx - dy + a2)
			}
		}

		// Very flat ellipses leave region 2 before reaching the tip.
		for tip < a {
			tip++
			if !yield(tip, 0) {
				return
			}
		}
	}
}
