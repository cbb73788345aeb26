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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/balldrop/artwork"
	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/raster"
)

var fills = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawCircle(32, 32, 20, Ink, false)
			return expectFill(s, image.Pt(32, 32), Paper, Accent)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{32, 32}: Accent,
			{32, 13}: Accent,
			{32, 12}: Ink,
			{32, 11}: Paper,
			{0, 0}:   Paper,
		}),
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawEllipse(32, 32, 26, 14, Ink)
			return expectFill(s, image.Pt(32, 32), Paper, Shade)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{7, 32}:  Shade,
			{6, 32}:  Ink,
			{5, 32}:  Paper,
			{32, 45}: Shade,
			{32, 46}: Ink,
		}),
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			// 8-connected lines stop a 4-connected fill
			s.DrawLine(0, 63, 63, 0, Ink)
			return expectFill(s, image.Pt(0, 0), Paper, Accent)
		},
		Check: all(count(Accent, 63*64/2), count(Paper, 63*64/2)),
	},
	{
		Name:   "rings",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			for r := 8; r <= 24; r += 8 {
				s.DrawCircle(32, 32, r, Ink, false)
			}
			return expectFill(s, image.Pt(32, 20), Paper, Shade)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{32, 20}: Shade,
			{32, 44}: Shade,
			{20, 32}: Shade,
			{32, 32}: Paper,
			{32, 4}:  Paper,
			{32, 8}:  Ink,
		}),
	},
	{
		Name:   "refill",
		Width:  32,
		Height: 32,
		Draw: func(s *raster.Surface) error {
			s.DrawCircle(16, 16, 10, Ink, false)
			if err := expectFill(s, image.Pt(16, 16), Paper, Accent); err != nil {
				return err
			}
			// filling with the target colour changes nothing
			if n := s.FloodFill(image.Pt(16, 16), Accent, Accent); n != 0 {
				return fmt.Errorf("no-op fill changed %d pixels", n)
			}
			// a seed outside the canvas changes nothing
			if n := s.FloodFill(image.Pt(-1, 16), Paper, Accent); n != 0 {
				return fmt.Errorf("off-canvas fill changed %d pixels", n)
			}
			return expectFill(s, image.Pt(16, 16), Accent, Shade)
		},
		Check: all(
			count(Accent, 0),
			pixels(map[image.Point]color.RGBA{{16, 16}: Shade, {0, 0}: Paper}),
		),
	},
	{
		Name:   "komodo",
		Width:  600,
		Height: 600,
		Draw: func(s *raster.Surface) error {
			d, err := artwork.Komodo()
			if err != nil {
				return err
			}
			return d.Render(s)
		},
		Check: func(c *canvas.Canvas) error {
			d, err := artwork.Komodo()
			if err != nil {
				return err
			}
			return pixels(map[image.Point]color.RGBA{
				{0, 0}:     d.Background,
				{281, 375}: d.Palette["body"],
				{350, 388}: d.Palette["belly"],
			})(c)
		},
	},
}

// expectFill runs a flood fill and reports an error if nothing changed.
func expectFill(s *raster.Surface, seed image.Point, target, replacement color.RGBA) error {
	if n := s.FloodFill(seed, target, replacement); n == 0 {
		return fmt.Errorf("fill at %v changed nothing", seed)
	}
	return nil
}
