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


package artwork

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/raster"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func renderKomodo(t *testing.T) (*Drawing, *canvas.Canvas) {
	t.Helper()
	d, err := Komodo()
	require.NoError(t, err)
	c := canvas.New(d.Width, d.Height)
	require.NoError(t, d.Render(raster.NewSurface(c)))
	return d, c
}

func TestKomodo(t *testing.T) {
	d, c := renderKomodo(t)
	assert.Equal(t, "komodo", d.Name)
	assert.Equal(t, 600, c.Width())
	assert.Equal(t, 600, c.Height())

	pal := d.Palette
	assert.Equal(t, color.RGBA{243, 233, 215, 255}, d.Background)

	// the body fill stays inside the contour
	assert.Equal(t, pal["background"], c.Pixel(0, 0))
	assert.Equal(t, pal["background"], c.Pixel(599, 599))
	assert.Equal(t, pal["background"], c.Pixel(300, 300))
	assert.Equal(t, pal["body"], c.Pixel(281, 375))
	assert.Equal(t, pal["belly"], c.Pixel(350, 388))
	assert.Equal(t, pal["ground"], c.Pixel(300, 425))

	counts := make(map[color.RGBA]int)
	for y := range c.Height() {
		for x := range c.Width() {
			counts[c.Pixel(x, y)]++
		}
	}
	assert.Greater(t, counts[pal["body"]], 10000)
	assert.Greater(t, counts[pal["belly"]], 300)
	assert.Less(t, counts[pal["belly"]], 2000)
	assert.Positive(t, counts[pal["tongue"]])
	assert.Positive(t, counts[pal["pupil"]])
	assert.Positive(t, counts[pal["spot"]])
}

func TestKomodoDeterministic(t *testing.T) {
	_, a := renderKomodo(t)
	_, b := renderKomodo(t)
	assert.Equal(t, a.Pix(), b.Pix())
}

func TestRenderRestoresSamples(t *testing.T) {
	d, err := Komodo()
	require.NoError(t, err)
	s := raster.NewSurface(canvas.New(600, 600))
	s.CurveSamples = 7
	require.NoError(t, d.Render(s))
	assert.Equal(t, 7, s.CurveSamples)
}

const square = `
name: square
width: 10
height: 10
background: paper
palette:
  paper: "#ffffff"
  ink: "#000000"
  red: "#ff0000"
elements:
  - kind: line
    color: ink
    segments:
      - [1, 1, 8, 1]
      - [8, 1, 8, 8]
      - [8, 8, 1, 8]
      - [1, 8, 1, 1]
  - kind: fill
    color: red
    target: paper
    seed: [4, 4]
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(square))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	c := canvas.New(10, 10)
	require.NoError(t, d.Render(raster.NewSurface(c)))
	assert.Equal(t, canvas.White, c.Pixel(0, 0))
	assert.Equal(t, canvas.Black, c.Pixel(1, 1))
	assert.Equal(t, canvas.Red, c.Pixel(4, 4))
	assert.Equal(t, canvas.Red, c.Pixel(7, 7))
	assert.Equal(t, canvas.White, c.Pixel(9, 9))
}

func TestOutlineAndCurve(t *testing.T) {
	in := `
name: shapes
palette:
  ink: "#000000"
elements:
  - kind: outline
    color: ink
    close: true
    outline: [10, 10, 20, 0, 30, 0, 40, 10, 30, 30, 20, 30, 10, 10]
  - kind: curve
    color: ink
    samples: 5
    curves:
      - [0, 40, 10, 30, 20, 50, 30, 40]
  - kind: circle
    color: ink
    filled: true
    circles:
      - [45, 45, 3]
  - kind: ellipse
    color: ink
    ellipses:
      - [20, 45, 6, 2]
  - kind: wave
    color: ink
    wave: {from: 0, to: 48, step: 8, y: 48, amplitude: 1, frequency: 0.3}
`
	d, err := Parse([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, canvas.White, d.Background, "default background")

	c := canvas.New(50, 50)
	require.NoError(t, d.Render(raster.NewSurface(c)))
	assert.Equal(t, canvas.Black, c.Pixel(10, 10))
	assert.Equal(t, canvas.Black, c.Pixel(40, 10))
	assert.Equal(t, canvas.Black, c.Pixel(0, 40))
	assert.Equal(t, canvas.Black, c.Pixel(30, 40))
	assert.Equal(t, canvas.Black, c.Pixel(45, 45))
	assert.Equal(t, canvas.Black, c.Pixel(26, 45))
	assert.Equal(t, canvas.Black, c.Pixel(0, 48))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"syntax", "elements: [\n"},
		{"unknown field", "name: x\ncolour: red\n"},
		{"bad hex", "palette:\n  ink: \"#12\"\n"},
		{"unknown background", "background: paper\n"},
		{"unknown colour", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: line, color: red}\n"},
		{"bad outline", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: outline, color: ink, outline: [1, 2, 3]}\n"},
		{"fill without seed", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: fill, color: ink, target: ink}\n"},
		{"fill target", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: fill, color: ink, target: red, seed: [0, 0]}\n"},
		{"wave step", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: wave, color: ink, wave: {from: 0, to: 5}}\n"},
		{"short segment", "palette:\n  ink: \"#000000\"\nelements:\n  - {kind: line, color: ink, segments: [[1, 2, 3]]}\n"},
		{"samples", "samples: -2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("palette:\n  ink: \"#000000\"\nelements:\n  - {kind: spline, color: ink}\n"))
	assert.True(t, errors.Is(err, ErrUnknownKind), "got %v", err)
}

func TestOutlines(t *testing.T) {
	d, err := Parse([]byte(square))
	require.NoError(t, err)

	n := 0
	for col, p := range d.Outlines() {
		n++
		assert.Equal(t, canvas.Black, col)
		assert.Equal(t, []path.Command{
			path.CmdMoveTo, path.CmdLineTo,
			path.CmdMoveTo, path.CmdLineTo,
			path.CmdMoveTo, path.CmdLineTo,
			path.CmdMoveTo, path.CmdLineTo,
		}, p.Cmds)
		assert.Equal(t, vec.Vec2{X: 1, Y: 1}, p.Coords[0])
	}
	assert.Equal(t, 1, n, "fills have no outline")

	k, err := Komodo()
	require.NoError(t, err)
	n = 0
	for range k.Outlines() {
		n++
	}
	assert.Equal(t, k.Len()-2, n)

	n = 0
	for range k.Outlines() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEllipseOutline(t *testing.T) {
	p := &path.Data{}
	addEllipse(p, vec.Vec2{X: 10, Y: 20}, 6, 3)
	require.Len(t, p.Cmds, 6)
	assert.Equal(t, path.CmdClose, p.Cmds[5])
	assert.Equal(t, vec.Vec2{X: 16, Y: 20}, p.Coords[0])
	// the end points of the four curves are the tips of the ellipse
	assert.Equal(t, vec.Vec2{X: 10, Y: 23}, p.Coords[3])
	assert.Equal(t, vec.Vec2{X: 4, Y: 20}, p.Coords[6])
	assert.Equal(t, vec.Vec2{X: 10, Y: 17}, p.Coords[9])
	assert.Equal(t, vec.Vec2{X: 16, Y: 20}, p.Coords[12])
}
