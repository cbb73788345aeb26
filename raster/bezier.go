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
	"math"

	"seehuhn.de/go/geom/vec"
)

// CubicSamples evaluates the cubic Bézier curve with control points
// p0, p1, p2, p3 at t = i/n for i = 0, ..., n and returns the n+1 samples,
// rounded to the nearest pixel.  The first sample is p0 and the last is p3.
//
// The samples are uniform in t.  The caller must pick n large enough for
// the size at which the curve is drawn; no adaptive refinement is done.
func CubicSamples(p0, p1, p2, p3 vec.Vec2, n int) ([]image.Point, error) {
	if n < 1 {
		return nil, ErrSampleCount
	}
	res := make([]image.Point, n+1)
	for i := range res {
		res[i] = cubicAt(p0, p1, p2, p3, i, n)
	}
	return res, nil
}

// DrawCubic flattens the cubic Bézier curve into n segments, as in
// [CubicSamples], and joins consecutive samples with Bresenham lines.
func DrawCubic(dst Plotter, p0, p1, p2, p3 vec.Vec2, n int, c color.RGBA) error {
	if n < 1 {
		return ErrSampleCount
	}
	prev := cubicAt(p0, p1, p2, p3, 0, n)
	for i := 1; i <= n; i++ {
		pt := cubicAt(p0, p1, p2, p3, i, n)
		DrawLine(dst, prev, pt, c)
		prev = pt
	}
	return nil
}

// DrawQuadratic draws a quadratic Bézier curve by raising it to the
// equivalent cubic.
func DrawQuadratic(dst Plotter, p0, p1, p2 vec.Vec2, n int, c color.RGBA) error {
	c1, c2 := quadToCubic(p0, p1, p2)
	return DrawCubic(dst, p0, c1, c2, p2, n, c)
}

// cubicAt returns the curve point at t = i/n, rounded to a pixel.
// The end points are returned exactly.
func cubicAt(p0, p1, p2, p3 vec.Vec2, i, n int) image.Point {
	switch i {
	case 0:
		return roundPoint(p0)
	case n:
		return roundPoint(p3)
	}

	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	t := float64(i) / float64(n)
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
	return roundPoint(pt)
}

// quadToCubic returns the inner control points of the cubic which traces
// the same curve as the quadratic p0, p1, p2.
func quadToCubic(p0, p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2) {
	c1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return c1, c2
}

func roundPoint(v vec.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}
