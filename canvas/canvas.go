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

// Package canvas provides a fixed-size RGBA pixel buffer.
//
// All drawing in this module goes through [Canvas.Plot], and the same
// buffer is handed to the host for display.  Reads and writes outside the
// canvas are ignored.
package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// OutOfBounds is returned by [Canvas.Pixel] for coordinates outside the
// canvas.
var OutOfBounds = color.RGBA{}

// Canvas is a width×height RGBA buffer.  The dimensions are fixed when
// the canvas is created.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel, row-major, no padding
}

// New allocates a canvas.  Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, 4*width*height),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) lies inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Plot sets the pixel at (x, y).  Coordinates outside the canvas are
// ignored.
func (c *Canvas) Plot(x, y int, col color.RGBA) {
	if !c.InBounds(x, y) {
		return
	}
	i := 4 * (y*c.width + x)
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// Pixel returns the colour at (x, y), or [OutOfBounds] if the point is
// outside the canvas.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if !c.InBounds(x, y) {
		return OutOfBounds
	}
	i := 4 * (y*c.width + x)
	return color.RGBA{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.RGBA) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0], c.pix[1], c.pix[2], c.pix[3] = col.R, col.G, col.B, col.A
	// double the initialised prefix until the buffer is full
	for n := 4; n < len(c.pix); n *= 2 {
		copy(c.pix[n:], c.pix[:n])
	}
}

// Pix returns the underlying buffer in RGBA order, 4 bytes per pixel,
// row-major.  The slice aliases the canvas; callers must treat it as
// read-only.
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements the [image.Image] interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Set implements the [draw.Image] interface.  The colour is converted
// using [color.RGBAModel].
func (c *Canvas) Set(x, y int, col color.Color) {
	c.Plot(x, y, color.RGBAModel.Convert(col).(color.RGBA))
}

// Image returns a copy of the canvas as an [image.RGBA].
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	copy(img.Pix, c.pix)
	return img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(f)
}
