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


// Package testcases holds named drawing scenarios.  They are rendered by
// the tests of this package and by the export command, which writes the
// reference images.
package testcases

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/raster"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Draw draws the scenario onto a canvas cleared to Paper.
	Draw func(s *raster.Surface) error

	// Check, if non-nil, verifies properties of the result.
	Check func(c *canvas.Canvas) error
}

// Colours used by the scenarios.
var (
	Paper  = canvas.White
	Ink    = canvas.Black
	Accent = color.RGBA{200, 40, 40, 255}
	Shade  = color.RGBA{60, 110, 200, 255}
)

// Render draws the test case onto a new canvas.
func (tc *TestCase) Render() (*canvas.Canvas, error) {
	c := canvas.New(tc.Width, tc.Height)
	c.Clear(Paper)
	if err := tc.Draw(raster.NewSurface(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// pixels returns a check which verifies the colours of the given pixels.
func pixels(want map[image.Point]color.RGBA) func(*canvas.Canvas) error {
	return func(c *canvas.Canvas) error {
		for p, col := range want {
			if got := c.Pixel(p.X, p.Y); got != col {
				return fmt.Errorf("pixel %v is %v, expected %v", p, got, col)
			}
		}
		return nil
	}
}

// count returns a check which verifies the number of pixels of colour col.
func count(col color.RGBA, n int) func(*canvas.Canvas) error {
	return func(c *canvas.Canvas) error {
		got := 0
		for y := range c.Height() {
			for x := range c.Width() {
				if c.Pixel(x, y) == col {
					got++
				}
			}
		}
		if got != n {
			return fmt.Errorf("%d pixels of colour %v, expected %d", got, col, n)
		}
		return nil
	}
}

// all combines several checks.
func all(checks ...func(*canvas.Canvas) error) func(*canvas.Canvas) error {
	return func(c *canvas.Canvas) error {
		for _, check := range checks {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
}
