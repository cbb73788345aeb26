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

	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Surface is the drawing interface used by the host composition code.
// It draws into one canvas and keeps scratch buffers between calls.
// The buffers grow as needed but never shrink, so that steady-state
// drawing does not allocate.
//
// A Surface is not safe for concurrent use.  All draw calls for one frame
// must be issued from the same goroutine.
type Surface struct {
	// CurveSamples is the number of segments per curve used by DrawPath.
	// Must be >= 1.
	CurveSamples int

	canvas *canvas.Canvas

	// scratch buffers, reused across calls
	queue []image.Point // flood fill frontier
	spans []int         // half-width of each disk row
}

// NewSurface returns a Surface which draws into c.
func NewSurface(c *canvas.Canvas) *Surface {
	return &Surface{
		CurveSamples: defaultCurveSamples,
		canvas:       c,
	}
}

// Reset switches the Surface to a new canvas and restores the default
// settings, keeping the capacity of the scratch buffers.
func (s *Surface) Reset(c *canvas.Canvas) {
	s.canvas = c
	s.CurveSamples = defaultCurveSamples
	s.queue = s.queue[:0]
	s.spans = s.spans[:0]
}

// Canvas returns the canvas the Surface draws into.
func (s *Surface) Canvas() *canvas.Canvas {
	return s.canvas
}

// Plot sets a single pixel.  Points outside the canvas are ignored.
func (s *Surface) Plot(x, y int, c color.RGBA) {
	s.canvas.Plot(x, y, c)
}

// Clear sets every pixel of the canvas to c.
func (s *Surface) Clear(c color.RGBA) {
	s.canvas.Clear(c)
}

// DrawLine draws the Bresenham line from (x1, y1) to (x2, y2).
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	DrawLine(s.canvas, image.Pt(x1, y1), image.Pt(x2, y2), c)
}

// DrawCircle draws the midpoint circle of radius r around (cx, cy).  If
// filled is true, the disk is filled as well, one horizontal span per row.
func (s *Surface) DrawCircle(cx, cy, r int, c color.RGBA, filled bool) {
	center := image.Pt(cx, cy)
	if filled {
		s.spans = fillDisk(s.canvas, center, r, c, s.spans)
		return
	}
	DrawCircle(s.canvas, center, r, c)
}

// DrawEllipse draws the outline of the midpoint ellipse with semi-axes a
// and b around (cx, cy).
func (s *Surface) DrawEllipse(cx, cy, a, b int, c color.RGBA) {
	DrawEllipse(s.canvas, image.Pt(cx, cy), a, b, c)
}

// DrawBezier draws the cubic Bézier curve p0, p1, p2, p3, flattened into
// sampleCount segments.  It returns [ErrSampleCount] if sampleCount < 1.
func (s *Surface) DrawBezier(p0, p1, p2, p3 vec.Vec2, sampleCount int, c color.RGBA) error {
	return DrawCubic(s.canvas, p0, p1, p2, p3, sampleCount, c)
}

// DrawPath draws the outline of p, flattening curves into CurveSamples
// segments each.
func (s *Surface) DrawPath(p *path.Data, c color.RGBA) error {
	return DrawPath(s.canvas, p, s.CurveSamples, c)
}

// FloodFill recolours the 4-connected region of target-coloured pixels
// around seed and returns the number of pixels changed.  If target equals
// replacement, nothing is changed.
func (s *Surface) FloodFill(seed image.Point, target, replacement color.RGBA) int {
	var n int
	n, s.queue = floodFill(s.canvas, seed, target, replacement, s.queue)
	return n
}

// defaultCurveSamples is the number of segments per curve used by DrawPath
// unless CurveSamples is changed.  It is fine enough for curves spanning a
// few hundred pixels.
const defaultCurveSamples = 180
