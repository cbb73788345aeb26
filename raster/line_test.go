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
	"math/rand/v2"
	"slices"
	"testing"
)

// recorder is a Plotter which remembers the plotted points in order.
type recorder struct {
	pts []image.Point
}

func (r *recorder) Plot(x, y int, _ color.RGBA) {
	r.pts = append(r.pts, image.Pt(x, y))
}

func isNeighbour8(p, q image.Point) bool {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y)) == 1
}

func TestLine(t *testing.T) {
	dists := []image.Point{
		image.Pt(0, 0),
		image.Pt(0, 1),
		image.Pt(1, 0),
		image.Pt(1, 1),
		image.Pt(1, 100),
		image.Pt(100, 1),
		image.Pt(100, 0),
		image.Pt(1000, 50),
		image.Pt(20, 50),
		image.Pt(7, 7),
	}
	dirs := []image.Point{
		image.Pt(1, 1),
		image.Pt(-1, 1),
		image.Pt(1, -1),
		image.Pt(-1, -1),
	}
	start := image.Pt(13, -4)
	for _, dir := range dirs {
		for _, dist := range dists {
			end := start.Add(image.Pt(dist.X*dir.X, dist.Y*dir.Y))
			pts := slices.Collect(Line(start, end))

			if want := max(dist.X, dist.Y) + 1; len(pts) != want {
				t.Errorf("%v→%v: %d points, expected %d", start, end, len(pts), want)
				continue
			}
			if pts[0] != start {
				t.Errorf("%v→%v: starts at %v", start, end, pts[0])
			}
			if pts[len(pts)-1] != end {
				t.Errorf("%v→%v: ends at %v", start, end, pts[len(pts)-1])
			}
			for i := 1; i < len(pts); i++ {
				if !isNeighbour8(pts[i-1], pts[i]) {
					t.Errorf("%v→%v: gap between %v and %v", start, end, pts[i-1], pts[i])
					break
				}
			}
		}
	}
}

func TestLineRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		p0 := image.Pt(rng.IntN(401)-200, rng.IntN(401)-200)
		p1 := image.Pt(rng.IntN(401)-200, rng.IntN(401)-200)
		pts := slices.Collect(Line(p0, p1))

		d := p1.Sub(p0)
		if want := max(abs(d.X), abs(d.Y)) + 1; len(pts) != want {
			t.Fatalf("%v→%v: %d points, expected %d", p0, p1, len(pts), want)
		}
		if pts[0] != p0 || pts[len(pts)-1] != p1 {
			t.Fatalf("%v→%v: wrong end points %v, %v", p0, p1, pts[0], pts[len(pts)-1])
		}

		// the major coordinate advances by exactly one per point
		for i := 1; i < len(pts); i++ {
			step := pts[i].Sub(pts[i-1])
			if abs(d.X) >= abs(d.Y) && abs(step.X) != 1 {
				t.Fatalf("%v→%v: x step %v at %d", p0, p1, step, i)
			} else if abs(d.Y) > abs(d.X) && abs(step.Y) != 1 {
				t.Fatalf("%v→%v: y step %v at %d", p0, p1, step, i)
			}
		}
	}
}

func TestLineDeterministic(t *testing.T) {
	p0, p1 := image.Pt(3, 9), image.Pt(-40, 17)
	a := slices.Collect(Line(p0, p1))
	b := slices.Collect(Line(p0, p1))
	if !slices.Equal(a, b) {
		t.Error("two walks of the same line differ")
	}
}

func TestLineEarlyStop(t *testing.T) {
	n := 0
	for range Line(image.Pt(0, 0), image.Pt(50, 20)) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("got %d points, expected 5", n)
	}
}

func TestDrawLineMatchesLine(t *testing.T) {
	p0, p1 := image.Pt(-7, 30), image.Pt(22, -3)
	rec := &recorder{}
	DrawLine(rec, p0, p1, color.RGBA{})
	if want := slices.Collect(Line(p0, p1)); !slices.Equal(rec.pts, want) {
		t.Errorf("DrawLine plotted %v, expected %v", rec.pts, want)
	}
}
