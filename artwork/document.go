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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// document is the YAML form of a drawing.
type document struct {
	Name       string            `yaml:"name"`
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	Background string            `yaml:"background"`
	Samples    int               `yaml:"samples"`
	Palette    map[string]string `yaml:"palette"`
	Elements   []element         `yaml:"elements"`
}

// element is the YAML form of one drawing step.  Which fields are used
// depends on Kind.
type element struct {
	Kind  string `yaml:"kind"`
	Color string `yaml:"color"`

	Segments [][4]int     `yaml:"segments"`
	Outline  []float64    `yaml:"outline"`
	Close    bool         `yaml:"close"`
	Curves   [][8]float64 `yaml:"curves"`
	Samples  int          `yaml:"samples"`
	Circles  [][3]int     `yaml:"circles"`
	Filled   bool         `yaml:"filled"`
	Ellipses [][4]int     `yaml:"ellipses"`
	Seed     *[2]int      `yaml:"seed"`
	Target   string       `yaml:"target"`
	Wave     *Wave        `yaml:"wave"`
}

// Wave describes a row of dots at x = From, From+Step, ..., To, placed at
// height Y + Amplitude·sin(Frequency·x).
type Wave struct {
	From      int     `yaml:"from"`
	To        int     `yaml:"to"`
	Step      int     `yaml:"step"`
	Y         int     `yaml:"y"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

const defaultSamples = 180

func (doc *document) compile() (*Drawing, error) {
	d := &Drawing{
		Name:    doc.Name,
		Width:   doc.Width,
		Height:  doc.Height,
		Palette: make(map[string]color.RGBA, len(doc.Palette)),
		samples: doc.Samples,
	}
	if d.samples == 0 {
		d.samples = defaultSamples
	} else if d.samples < 0 {
		return nil, fmt.Errorf("invalid sample count %d", doc.Samples)
	}

	for name, hex := range doc.Palette {
		c, err := canvas.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		d.Palette[name] = c
	}

	if doc.Background == "" {
		d.Background = canvas.White
	} else {
		c, err := d.lookup(doc.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		d.Background = c
	}

	for i := range doc.Elements {
		o, err := d.compileElement(&doc.Elements[i])
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, doc.Elements[i].Kind, err)
		}
		d.ops = append(d.ops, o)
	}
	return d, nil
}

func (d *Drawing) compileElement(e *element) (op, error) {
	c, err := d.lookup(e.Color)
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case "line":
		return &lineOp{segments: e.Segments, c: c}, nil

	case "outline":
		p, err := outlinePath(e.Outline, e.Close)
		if err != nil {
			return nil, err
		}
		return &pathOp{p: p, c: c}, nil

	case "curve":
		if e.Samples < 0 {
			return nil, fmt.Errorf("invalid sample count %d", e.Samples)
		}
		o := &curveOp{samples: e.Samples, c: c}
		for _, cv := range e.Curves {
			o.curves = append(o.curves, [4]vec.Vec2{
				{X: cv[0], Y: cv[1]},
				{X: cv[2], Y: cv[3]},
				{X: cv[4], Y: cv[5]},
				{X: cv[6], Y: cv[7]},
			})
		}
		return o, nil

	case "circle":
		return &circleOp{circles: e.Circles, filled: e.Filled, c: c}, nil

	case "ellipse":
		return &ellipseOp{ellipses: e.Ellipses, c: c}, nil

	case "fill":
		if e.Seed == nil {
			return nil, errors.New("fill without seed")
		}
		target, err := d.lookup(e.Target)
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
		return &fillOp{
			seed:        image.Pt(e.Seed[0], e.Seed[1]),
			target:      target,
			c:           c,
			targetName:  e.Target,
			replaceName: e.Color,
		}, nil

	case "wave":
		if e.Wave == nil {
			return nil, errors.New("wave without parameters")
		}
		if e.Wave.Step <= 0 {
			return nil, fmt.Errorf("invalid wave step %d", e.Wave.Step)
		}
		return &waveOp{Wave: *e.Wave, c: c}, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, e.Kind)
	}
}

func (d *Drawing) lookup(name string) (color.RGBA, error) {
	c, ok := d.Palette[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

// outlinePath converts a start point followed by cubic segments, given as
// a flat list of coordinates, into a path.
func outlinePath(coords []float64, closed bool) (*path.Data, error) {
	if len(coords) < 2 || (len(coords)-2)%6 != 0 {
		return nil, fmt.Errorf("outline needs 2+6k coordinates, got %d", len(coords))
	}
	pt := func(i int) vec.Vec2 {
		return vec.Vec2{X: coords[i], Y: coords[i+1]}
	}

	p := (&path.Data{}).MoveTo(pt(0))
	for i := 2; i < len(coords); i += 6 {
		p = p.CubeTo(pt(i), pt(i+2), pt(i+4))
	}
	if closed {
		p = p.Close()
	}
	return p, nil
}
