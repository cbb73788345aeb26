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

// Line returns the pixels of the Bresenham line from p0 to p1, both
// included, in order.  The sequence has exactly max(|dx|, |dy|)+1 points.
//
// Swapping p0 and p1 can give a different (equally valid) set of pixels,
// because ties in the decision variable always go the same way relative to
// the direction of travel.
func Line(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		var l lineStepper
		n := l.reset(p0, p1)
		p := p0
		for i := 0; ; i++ {
			if !yield(p) {
				return
			}
			if i == n {
				return
			}
			p = l.step(p)
		}
	}
}

// DrawLine plots the Bresenham line from p0 to p1.
func DrawLine(dst Plotter, p0, p1 image.Point, c color.RGBA) {
	var l lineStepper
	n := l.reset(p0, p1)
	p := p0
	dst.Plot(p.X, p.Y, c)
	for range n {
		p = l.step(p)
		dst.Plot(p.X, p.Y, c)
	}
}

// lineStepper walks a line along its major axis.
type lineStepper struct {
	// d is the decision variable, scaled by 2 to stay integer.
	d int
	// dmajor, dminor are the absolute extents along the two axes.
	dmajor, dminor int
	// sx, sy are the step directions, each -1 or +1.
	sx, sy int
	// steep is true if the major axis is y.
	steep bool
}

// reset prepares the stepper for the line p0→p1 and returns the number of
// steps needed to reach p1.
func (l *lineStepper) reset(p0, p1 image.Point) int {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	l.sx, l.sy = 1, 1
	if p1.X < p0.X {
		l.sx = -1
	}
	if p1.Y < p0.Y {
		l.sy = -1
	}
	l.steep = dy > dx
	if l.steep {
		dx, dy = dy, dx
	}
	l.dmajor, l.dminor = dx, dy
	l.d = 2*l.dminor - l.dmajor
	return l.dmajor
}

// step advances p by one pixel along the major axis, and along the minor
// axis when the decision variable says so.
func (l *lineStepper) step(p image.Point) image.Point {
	if l.d >= 0 {
		if l.steep {
			p.X += l.sx
		} else {
			p.Y += l.sy
		}
		l.d -= 2 * l.dmajor
	}
	if l.steep {
		p.Y += l.sy
	} else {
		p.X += l.sx
	}
	l.d += 2 * l.dminor
	return p
}
