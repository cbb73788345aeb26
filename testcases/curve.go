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
	"seehuhn.de/go/geom/path"
)

var curves = []TestCase{
	{
		Name:   "s_curve",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			return s.DrawBezier(pt(4, 60), pt(4, 4), pt(60, 60), pt(60, 4), 60, Ink)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{4, 60}:  Ink,
			{60, 4}:  Ink,
			{32, 32}: Ink,
		}),
	},
	{
		Name:   "loop",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			return s.DrawBezier(pt(8, 56), pt(72, 8), pt(-8, 8), pt(56, 56), 100, Ink)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{8, 56}:  Ink,
			{56, 56}: Ink,
		}),
	},
	{
		Name:   "coarse",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			// few samples give a visible polygon
			if err := s.DrawBezier(pt(4, 60), pt(4, 4), pt(60, 60), pt(60, 4), 4, Accent); err != nil {
				return err
			}
			return s.DrawBezier(pt(4, 60), pt(4, 4), pt(60, 60), pt(60, 4), 1, Ink)
		},
	},
	{
		Name:   "point",
		Width:  16,
		Height: 16,
		Draw: func(s *raster.Surface) error {
			p := pt(7.4, 8.6)
			return s.DrawBezier(p, p, p, p, 10, Ink)
		},
		Check: all(count(Ink, 1), pixels(map[image.Point]color.RGBA{{7, 9}: Ink})),
	},
	{
		Name:   "circle_path",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			s.CurveSamples = 24
			return s.DrawPath(circlePath(32, 32, 26), Ink)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{58, 32}: Ink,
			{32, 6}:  Ink,
			{6, 32}:  Ink,
			{32, 58}: Ink,
			{32, 32}: Paper,
		}),
	},
	{
		Name:   "mixed_path",
		Width:  64,
		Height: 64,
		Draw: func(s *raster.Surface) error {
			p := (&path.Data{}).
				MoveTo(pt(8, 56)).
				LineTo(pt(8, 24)).
				QuadTo(pt(8, 8), pt(32, 8)).
				CubeTo(pt(48, 8), pt(56, 16), pt(56, 32)).
				LineTo(pt(56, 56)).
				Close().
				MoveTo(pt(20, 40)).
				LineTo(pt(44, 40))
			return s.DrawPath(p, Ink)
		},
		Check: pixels(map[image.Point]color.RGBA{
			{8, 40}:  Ink,
			{32, 8}:  Ink,
			{32, 56}: Ink,
			{32, 40}: Ink,
			{32, 30}: Paper,
		}),
	},
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498

// circlePath builds a circle from four cubic Bézier curves.
func circlePath(cx, cy, r float64) *path.Data {
	kr := kappa * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
		Close()
}
