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


package testcases

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/raster"
)

var lines = []TestCase{
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			for _, p := range ring(32, 32, 28, 16) {
				s.DrawLine(32, 32, p.X, p.Y, Ink)
			}
			return nil
		},
		Check: func(c *canvas.Canvas) error {
			want := map[image.Point]color.RGBA{{32, 32}: Ink}
			for _, p := range ring(32, 32, 28, 16) {
				want[p] = Ink
			}
			return pixels(want)(c)
		},
	},
	{
		Name:   "steep_and_shallow",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawLine(2, 2, 61, 9, Ink)
			s.DrawLine(2, 2, 9, 61, Ink)
			s.DrawLine(61, 61, 2, 54, Accent)
			s.DrawLine(61, 61, 54, 2, Accent)
			return nil
		},
		Check: count(Accent, 2*60-1),
	},
	{
		Name:   "reversed",
		Width:  32,
		Height: 16,
		Draw: func(s *raster.Surface) error {
			// the two directions may pick different pixels at ties
			s.DrawLine(1, 3, 30, 12, Accent)
			s.DrawLine(30, 12, 1, 3, Shade)
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{{1, 3}: Shade, {30, 12}: Shade}),
	},
	{
		Name:   "point",
		Width:  16,
		Height: 16,
		Draw: func(s *raster.Surface) error {
			s.DrawLine(7, 9, 7, 9, Ink)
			return nil
		},
		Check: all(count(Ink, 1), pixels(map[image.Point]color.RGBA{{7, 9}: Ink})),
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawLine(-20, -10, 80, 50, Ink)
			s.DrawLine(-100, 70, 200, 70, Ink) // entirely below the canvas
			return nil
		},
		Check: count(Ink, visible(image.Pt(-20, -10), image.Pt(80, 50), 64, 64)),
	},
}

// ring returns n points spaced evenly on a circle, rounded to pixels.
func ring(cx, cy, r float64, n int) []image.Point {
	res := make([]image.Point, n)
	for i := range res {
		phi := 2 * math.Pi * float64(i) / float64(n)
		res[i] = image.Pt(
			int(math.Round(cx+r*math.Cos(phi))),
			int(math.Round(cy+r*math.Sin(phi))))
	}
	return res
}

// visible returns the number of pixels of the line p0→p1 which fall inside
// a w×h canvas.
func visible(p0, p1 image.Point, w, h int) int {
	n := 0
	bounds := image.Rect(0, 0, w, h)
	for p := range raster.Line(p0, p1) {
		if p.In(bounds) {
			n++
		}
	}
	return n
}
