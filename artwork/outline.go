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


package artwork

import (
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outlines iterates over the vector outlines of the drawing, in drawing
// order, together with their colours.  Circles and ellipses are
// approximated by four cubic Bézier curves.  Disks are returned as their
// boundary circle, waves as a polyline through their dots, and fills are
// skipped.
func (d *Drawing) Outlines() iter.Seq2[color.RGBA, *path.Data] {
	return func(yield func(color.RGBA, *path.Data) bool) {
		for _, o := range d.ops {
			if !o.outline(yield) {
				return
			}
		}
	}
}

func (o *lineOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	p := &path.Data{}
	for _, seg := range o.segments {
		p.MoveTo(ipt(seg[0], seg[1])).LineTo(ipt(seg[2], seg[3]))
	}
	return yield(o.c, p)
}

func (o *pathOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	return yield(o.c, o.p)
}

func (o *curveOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	p := &path.Data{}
	for _, cv := range o.curves {
		p.MoveTo(cv[0]).CubeTo(cv[1], cv[2], cv[3])
	}
	return yield(o.c, p)
}

func (o *circleOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	p := &path.Data{}
	for _, ci := range o.circles {
		r := float64(ci[2])
		addEllipse(p, ipt(ci[0], ci[1]), r, r)
	}
	return yield(o.c, p)
}

func (o *ellipseOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	p := &path.Data{}
	for _, e := range o.ellipses {
		addEllipse(p, ipt(e[0], e[1]), math.Abs(float64(e[2])), math.Abs(float64(e[3])))
	}
	return yield(o.c, p)
}

func (o *fillOp) outline(func(color.RGBA, *path.Data) bool) bool {
	return true
}

func (o *waveOp) outline(yield func(color.RGBA, *path.Data) bool) bool {
	if o.Step <= 0 || o.From > o.To {
		return true
	}
	p := &path.Data{}
	p.MoveTo(ipt(o.From, o.Y))
	for x := o.From; x <= o.To; x += o.Step {
		dy := int(o.Amplitude * math.Sin(o.Frequency*float64(x)))
		p.LineTo(ipt(x, o.Y+dy))
	}
	return yield(o.c, p)
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498

// addEllipse appends a closed axis-aligned ellipse to p.
func addEllipse(p *path.Data, c vec.Vec2, a, b float64) {
	ka, kb := kappa*a, kappa*b
	p.MoveTo(vec.Vec2{X: c.X + a, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + a, Y: c.Y + kb}, vec.Vec2{X: c.X + ka, Y: c.Y + b}, vec.Vec2{X: c.X, Y: c.Y + b}).
		CubeTo(vec.Vec2{X: c.X - ka, Y: c.Y + b}, vec.Vec2{X: c.X - a, Y: c.Y + kb}, vec.Vec2{X: c.X - a, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - a, Y: c.Y - kb}, vec.Vec2{X: c.X - ka, Y: c.Y - b}, vec.Vec2{X: c.X, Y: c.Y - b}).
		CubeTo(vec.Vec2{X: c.X + ka, Y: c.Y - b}, vec.Vec2{X: c.X + a, Y: c.Y - kb}, vec.Vec2{X: c.X + a, Y: c.Y}).
		Close()
}

func ipt(x, y int) vec.Vec2 {
	return vec.Vec2{X: float64(x), Y: float64(y)}
}
