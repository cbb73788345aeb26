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
	"slices"
)

// FillDisk paints the solid disk bounded by the midpoint circle of radius r.
// Each row is drawn as one horizontal line between the outermost circle
// pixels of that row, so the disk covers exactly the pixels of [Circle] and
// everything between them.  Rows outside dst.Bounds() are skipped.
func FillDisk(dst Image, center image.Point, r int, c color.RGBA) {
	fillDisk(dst, center, r, c, nil)
}

// fillDisk is FillDisk with a caller-supplied scratch buffer.  The
// (possibly grown) buffer is returned for reuse.
func fillDisk(dst Image, center image.Point, r int, c color.RGBA, spans []int) []int {
	if r < 0 {
		return spans
	}
	spans = diskSpans(r, spans)

	bounds := dst.Bounds()
	for dy := -r; dy <= r; dy++ {
		y := center.Y + dy
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		half := spans[abs(dy)]
		x0 := max(center.X-half, bounds.Min.X)
		x1 := min(center.X+half, bounds.Max.X-1)
		if x0 > x1 {
			continue
		}
		DrawLine(dst, image.Pt(x0, y), image.Pt(x1, y), c)
	}
	return spans
}

// diskSpans stores in spans[dy] the half-width of the row dy of the
// midpoint circle of radius r, for 0 <= dy <= r.
func diskSpans(r int, spans []int) []int {
	spans = slices.Grow(spans[:0], r+1)[:r+1]
	clear(spans)
	for x, y := range circleOctant(r) {
		// (x, y) lies on row y with half-width x, and its mirror image
		// (y, x) lies on row x with half-width y.
		spans[y] = max(spans[y], x)
		spans[x] = max(spans[x], y)
	}
	return spans
}
