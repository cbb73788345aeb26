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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DrawPath draws the outline of p with one-pixel lines.  Straight segments
// use the Bresenham line, curves are flattened into n segments each as in
// [DrawCubic].  Close draws a line back to the start of the subpath.
//
// Nothing is filled; closed outlines can be filled with [FloodFill].
func DrawPath(dst Plotter, p *path.Data, n int, c color.RGBA) error {
	if n < 1 {
		return ErrSampleCount
	}

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // start of the current subpath

	// walk the path using direct field access
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			DrawLine(dst, roundPoint(current), roundPoint(next), c)
			current = next
			coordIdx++

		case path.CmdQuadTo:
			p1, p2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			if err := DrawQuadratic(dst, current, p1, p2, n, c); err != nil {
				return err
			}
			current = p2
			coordIdx += 2

		case path.CmdCubeTo:
			p1, p2, p3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			if err := DrawCubic(dst, current, p1, p2, p3, n, c); err != nil {
				return err
			}
			current = p3
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				DrawLine(dst, roundPoint(current), roundPoint(subpath), c)
			}
			current = subpath

		default:
			return fmt.Errorf("raster: unknown path command %v", cmd)
		}
	}
	return nil
}
