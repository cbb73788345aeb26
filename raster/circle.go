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

// Circle returns the pixels of the midpoint circle of radius r around
// center.  One octant is computed, from (0, r) to the diagonal, and
// reflected into the other seven.  Every pixel is produced once; r == 0
// gives the center only and r < 0 gives nothing.
//
// The order is by octant step, not around the circumference.
func Circle(center image.Point, r int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for x, y := range circleOctant(r) {
			if !reflect8(center, x, y, yield) {
				return
			}
		}
	}
}

// DrawCircle plots the outline of the midpoint circle.
func DrawCircle(dst Plotter, center image.Point, r int, c color.RGBA) {
	for p := range Circle(center, r) {
		dst.Plot(p.X, p.Y, c)
	}
}

// circleOctant yields the offsets (x, y) of the second octant, 0 <= x <= y,
// starting at (0, r).  Consecutive offsets are 8-neighbours.
func circleOctant(r int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if r < 0 {
			return
		}
		x, y := 0, r
		d := 1 - r // 5/4 - r, rounded
		for x <= y {
			if !yield(x, y) {
				return
			}
			if d < 0 {
				d += 2*x + 3
			} else {
				d += 2*(x-y) + 5
				y--
			}
			x++
		}
	}
}

// reflect8 yields the distinct images of (x, y) under the eight symmetries
// of the square, translated to center.  It assumes 0 <= x <= y.
func reflect8(center image.Point, x, y int, yield func(image.Point) bool) bool {
	cx, cy := center.X, center.Y
	if !reflect4(cx, cy, x, y, yield) {
		return false
	}
	if x == y {
		return true
	}
	return reflect4(cx, cy, y, x, yield)
}

// reflect4 yields the distinct mirror images of (x, y) in both axes,
// translated to (cx, cy).  It assumes x, y >= 0.
func reflect4(cx, cy, x, y int, yield func(image.Point) bool) bool {
	if !yield(image.Pt(cx+x, cy+y)) {
		return false
	}
	if x != 0 && !yield(image.Pt(cx-x, cy+y)) {
		return false
	}
	if y != 0 && !yield(image.Pt(cx+x, cy-y)) {
		return false
	}
	if x != 0 && y != 0 && !yield(image.Pt(cx-x, cy-y)) {
		return false
	}
	return true
}
