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
)

// FloodFill recolours the 4-connected region of pixels equal to target
// which contains seed, and returns the number of pixels changed.
//
// Colours match only if all four components, including alpha, are equal.
// The region is grown breadth-first with an explicit queue, so its size is
// limited by memory and not by stack depth.
//
// If target equals replacement, or if seed is outside dst.Bounds() or does
// not have the target colour, nothing is changed and 0 is returned.
func FloodFill(dst Image, seed image.Point, target, replacement color.RGBA) int {
	n, _ := floodFill(dst, seed, target, replacement, nil)
	return n
}

// floodFill is FloodFill with a caller-supplied queue buffer.  The
// (possibly grown) buffer is returned for reuse.
func floodFill(dst Image, seed image.Point, target, replacement color.RGBA, queue []image.Point) (int, []image.Point) {
	if target == replacement {
		// Recoloured pixels would still match, and the fill would never
		// terminate.
		return 0, queue
	}
	bounds := dst.Bounds()
	if !seed.In(bounds) || dst.Pixel(seed.X, seed.Y) != target {
		return 0, queue
	}

	// Pixels are recoloured when they are enqueued, so every pixel enters
	// the queue at most once.
	queue = append(queue[:0], seed)
	dst.Plot(seed.X, seed.Y, replacement)
	count := 1

	head := 0
	for head < len(queue) {
		p := queue[head]
		head++

		for _, q := range [4]image.Point{
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
		} {
			if !q.In(bounds) || dst.Pixel(q.X, q.Y) != target {
				continue
			}
			dst.Plot(q.X, q.Y, replacement)
			queue = append(queue, q)
			count++
		}

		// Reclaim the consumed front of the queue once it dominates.
		if head > 1024 && head > len(queue)/2 {
			n := copy(queue, queue[head:])
			queue = queue[:n]
			head = 0
		}
	}
	return count, queue[:0]
}
