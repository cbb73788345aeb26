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


// Package artwork draws pictures which are described by tables of control
// points, using only the primitives of the raster package.
//
// A drawing is stored as a YAML document with a palette of named colours
// and an ordered list of elements.  The supported element kinds are:
//
//	line     straight segments [x1, y1, x2, y2]
//	outline  a start point followed by cubic Bézier segments, three
//	         points each; optionally closed
//	curve    separate cubic Bézier curves [x0, y0, ..., x3, y3] with
//	         their own sample count
//	circle   circle outlines [cx, cy, r], or disks if filled is set
//	ellipse  ellipse outlines [cx, cy, a, b]
//	fill     a flood fill from seed, replacing the colour named by target
//	wave     dots along a sine wave, for textures
//
// Elements are drawn in order, so a fill sees the outlines drawn before it.
package artwork

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/balldrop"
	"seehuhn.de/go/balldrop/raster"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Drawing is a parsed artwork table, ready to be rendered.
type Drawing struct {
	Name          string
	Width, Height int
	Background    color.RGBA

	// Palette maps colour names to colours.
	Palette map[string]color.RGBA

	samples int
	ops     []op
}

// op is one drawing step.
type op interface {
	draw(s *raster.Surface) error
	outline(yield func(color.RGBA, *path.Data) bool) bool
}

// Render clears the surface to the background colour and draws all
// elements in order.
func (d *Drawing) Render(s *raster.Surface) error {
	saved := s.CurveSamples
	defer func() { s.CurveSamples = saved }()
	s.CurveSamples = d.samples

	s.Clear(d.Background)
	for i, o := range d.ops {
		if err := o.draw(s); err != nil {
			return fmt.Errorf("%s: element %d: %w", d.Name, i, err)
		}
	}
	return nil
}

// Len returns the number of drawing steps.
func (d *Drawing) Len() int {
	return len(d.ops)
}

// ErrUnknownKind is returned by [Parse] for elements of an unsupported kind.
var ErrUnknownKind = errors.New("unknown element kind")

// Parse reads a drawing from its YAML description.
func Parse(data []byte) (*Drawing, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a drawing from its YAML description.  Unknown fields are an
// error.
func Decode(r io.Reader) (*Drawing, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("artwork: %w", err)
	}
	d, err := doc.compile()
	if err != nil {
		return nil, fmt.Errorf("artwork %q: %w", doc.Name, err)
	}

	balldrop.Logger().Debug("artwork parsed",
		"name", d.Name,
		"colors", len(d.Palette),
		"elements", len(doc.Elements),
		"ops", len(d.ops))
	return d, nil
}

//go:embed komodo.yaml
var komodoYAML []byte

var komodo = sync.OnceValues(func() (*Drawing, error) {
	return Parse(komodoYAML)
})

// Komodo returns the built-in drawing of a Komodo dragon on sandy ground,
// designed for a 600x600 canvas.  The returned Drawing is shared and must
// not be modified.
func Komodo() (*Drawing, error) {
	return komodo()
}

type lineOp struct {
	segments [][4]int
	c        color.RGBA
}

func (o *lineOp) draw(s *raster.Surface) error {
	for _, seg := range o.segments {
		s.DrawLine(seg[0], seg[1], seg[2], seg[3], o.c)
	}
	return nil
}

type pathOp struct {
	p *path.Data
	c color.RGBA
}

func (o *pathOp) draw(s *raster.Surface) error {
	return s.DrawPath(o.p, o.c)
}

type curveOp struct {
	curves  [][4]vec.Vec2
	samples int
	c       color.RGBA
}

func (o *curveOp) draw(s *raster.Surface) error {
	n := o.samples
	if n == 0 {
		n = s.CurveSamples
	}
	for _, cv := range o.curves {
		if err := s.DrawBezier(cv[0], cv[1], cv[2], cv[3], n, o.c); err != nil {
			return err
		}
	}
	return nil
}

type circleOp struct {
	circles [][3]int
	filled  bool
	c       color.RGBA
}

func (o *circleOp) draw(s *raster.Surface) error {
	for _, ci := range o.circles {
		s.DrawCircle(ci[0], ci[1], ci[2], o.c, o.filled)
	}
	return nil
}

type ellipseOp struct {
	ellipses [][4]int
	c        color.RGBA
}

func (o *ellipseOp) draw(s *raster.Surface) error {
	for _, e := range o.ellipses {
		s.DrawEllipse(e[0], e[1], e[2], e[3], o.c)
	}
	return nil
}

type fillOp struct {
	seed        image.Point
	target, c   color.RGBA
	targetName  string
	replaceName string
}

func (o *fillOp) draw(s *raster.Surface) error {
	n := s.FloodFill(o.seed, o.target, o.c)
	if n == 0 {
		balldrop.Logger().Debug("empty fill",
			"seed", o.seed,
			"target", o.targetName,
			"replacement", o.replaceName)
	}
	return nil
}

type waveOp struct {
	Wave
	c color.RGBA
}

func (o *waveOp) draw(s *raster.Surface) error {
	for x := o.From; x <= o.To; x += o.Step {
		// truncation towards zero keeps the texture flat near the zeros
		dy := int(o.Amplitude * math.Sin(o.Frequency*float64(x)))
		s.Plot(x, o.Y+dy, o.c)
	}
	return nil
}
