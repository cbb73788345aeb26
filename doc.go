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

// Package balldrop draws a bouncing ball that turns into a komodo dragon,
// using nothing but integer pixel algorithms on a single RGBA buffer.
//
// The work is split into small packages:
//
//   - [seehuhn.de/go/balldrop/canvas] holds the pixel buffer.
//   - [seehuhn.de/go/balldrop/raster] implements the Bresenham line, the
//     midpoint circle and ellipse, disk span filling, cubic Bézier
//     flattening and 4-connected flood fill.
//   - [seehuhn.de/go/balldrop/physics] integrates the ball's motion.
//   - [seehuhn.de/go/balldrop/scene] sequences the animation.
//   - [seehuhn.de/go/balldrop/artwork] holds the control-point tables of the
//     final drawing.
//
// This package only carries the shared logger.
package balldrop
