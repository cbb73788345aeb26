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
	"slices"

	"seehuhn.de/go/balldrop/raster"
)

var circles = []TestCase{
	{
		Name:   "radii",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			for r := 1; r <= 30; r += 3 {
				s.DrawCircle(32, 32, r, Ink, false)
			}
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{32, 32}: Paper,
			{33, 32}: Ink,
			{60, 32}: Ink,
			{32, 4}:  Ink,
			{32, 3}:  Paper,
		}),
	},
	{
		Name:   "zero",
		Width:  16,
		Height: 16,
		Draw: func(s *raster.Surface) error {
			s.DrawCircle(8, 8, 0, Ink, false)
			s.DrawCircle(3, 3, 0, Accent, true)
			return nil
		},
		Check: all(count(Ink, 1), count(Accent, 1)),
	},
	{
		Name:   "disk",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawCircle(32, 32, 20, Accent, true)
			s.DrawCircle(32, 32, 20, Ink, false)
			return nil
		},
		Check: all(
			count(Ink, len(slices.Collect(raster.Circle(image.Pt(32, 32), 20)))),
			pixels(map[image.Point]color.RGBA{
				{32, 32}: Accent,
				{32, 13}: Accent,
				{32, 12}: Ink,
				{32, 11}: Paper,
				{12, 32}: Ink,
			}),
		),
	},
	{
		Name:   "clipped_disk",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.DrawCircle(0, 0, 30, Accent, true)
			s.DrawCircle(70, 40, 20, Shade, true)
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{0, 0}:   Accent,
			{29, 0}:  Accent,
			{0, 29}:  Accent,
			{63, 40}: Shade,
			{63, 63}: Paper,
		}),
	},
	{
		Name:   "concentric_disks",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			cols := []color.RGBA{Shade, Paper, Accent, Paper, Ink}
			for i, r := range []int{30, 24, 18, 12, 6} {
				s.DrawCircle(32, 32, r, cols[i], true)
			}
			return nil
		},
		Check: pixels(map[image.Point]color.RGBA{
			{32, 32}: Ink,
			{32, 23}: Paper,
			{32, 17}: Accent,
			{32, 5}:  Shade,
		}),
	},
}
