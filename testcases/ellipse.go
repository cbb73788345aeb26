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

	"seehuhn.de/go/balldrop/raster"
)

var ellipses = []TestCase{
	{
		Name:   "flat",
		Width:  64,
		Height: 32,
		Draw: func(s *raster.Surface) error {
			s.DrawEllipse(32, 16, 28, 6, Ink)
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{4, 16}:  Ink,
			{60, 16}: Ink,
			{32, 10}: Ink,
			{32, 22}: Ink,
			{32, 16}: Paper,
		}),
	},
	{
		Name:   "tall",
		Width:  32,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawEllipse(16, 32, 6, 28, Ink)
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{10, 32}: Ink,
			{22, 32}: Ink,
			{16, 4}:  Ink,
			{16, 60}: Ink,
		}),
	},
	{
		Name:   "segment",
		Width:  64,
		Height: 16,
		Draw: func(s *raster.Surface) error {
			s.DrawEllipse(32, 8, 20, 0, Ink)
			return nil
		},
		Check: count(Ink, 41),
	},
	{
		Name:   "nested",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			for i := range 6 {
				s.DrawEllipse(32, 32, 30-4*i, 8+4*i, Ink)
			}
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{2, 32}:  Ink,
			{32, 24}: Ink,
			{32, 4}:  Ink,
		}),
	},
}
