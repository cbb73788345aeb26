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


// Package config holds the construction-time settings of the animation.
//
// Settings are read from a TOML file.  Every value which is missing from
// the file keeps its default, see [Default].
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/physics"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalid is returned by [Config.Validate] for settings which cannot be
// used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete configuration.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Physics Physics `toml:"physics"`
	Ball    Ball    `toml:"ball"`
	Scene   Scene   `toml:"scene"`
	Colors  Colors  `toml:"colors"`
}

// Canvas gives the size of the drawing area in pixels.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Physics holds the constants of the ball simulation.
type Physics struct {
	Gravity         float64 `toml:"gravity"`
	Restitution     float64 `toml:"restitution"`
	Friction        float64 `toml:"friction"`
	RestSpeed       float64 `toml:"rest_speed"`
	GroundTolerance float64 `toml:"ground_tolerance"`
	StopSpeed       float64 `toml:"stop_speed"`

	// MaxFrameDT is the longest time step, in seconds, which the driver
	// loop passes to the simulation.  Longer pauses between frames are
	// shortened to this value.
	MaxFrameDT float64 `toml:"max_frame_dt"`
}

// Ball is the initial state of the ball.
type Ball struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
	VX     float64 `toml:"vx"`
	VY     float64 `toml:"vy"`
}

// Scene holds the timing of the presentation effects.
type Scene struct {
	GlowSeconds  float64 `toml:"glow_seconds"`
	FlashSeconds float64 `toml:"flash_seconds"`
	FlashOverlap float64 `toml:"flash_overlap"`
	HoldSeconds  float64 `toml:"hold_seconds"`

	// MidTolerance shifts the line which the rising ball must cross to
	// start glowing, in pixels below the middle of the canvas.
	MidTolerance float64 `toml:"mid_tolerance"`

	CurveSamples int `toml:"curve_samples"`
}

// Colors are given as "#rrggbb" strings.
type Colors struct {
	Background string `toml:"background"`
	Ball       string `toml:"ball"`
	Outline    string `toml:"outline"`
	Core       string `toml:"core"`
	Halo       string `toml:"halo"`
	Flash      string `toml:"flash"`
}

// Default returns the settings used when no configuration file is given.
func Default() *Config {
	return &Config{
		Canvas: Canvas{
			Width:  600,
			Height: 600,
		},
		Physics: Physics{
			Gravity:         2000,
			Restitution:     0.8,
			Friction:        0.07,
			RestSpeed:       20,
			GroundTolerance: 0.5,
			StopSpeed:       1e-3,
			MaxFrameDT:      0.1,
		},
		Ball: Ball{
			X:      80,
			Y:      80,
			Radius: 70,
			VX:     150,
		},
		Scene: Scene{
			GlowSeconds:  3,
			FlashSeconds: 0.3,
			FlashOverlap: 0.25,
			HoldSeconds:  2,
			MidTolerance: 20,
			CurveSamples: 180,
		},
		Colors: Colors{
			Background: "#ffffff",
			Ball:       "#ff0000",
			Outline:    "#000000",
			Core:       "#ffff78",
			Halo:       "#ffdc5a",
			Flash:      "#ffffff",
		},
	}
}

// Load reads the TOML file fname on top of the default settings and
// validates the result.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Decode reads TOML settings from r on top of the default settings and
// validates the result.  Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the settings to w in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the settings which are needed to draw anything at all.
// The physical constants are not checked; unusual values give unusual
// motion, but are accepted.
func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Ball.Radius < 0:
		return fmt.Errorf("%w: negative ball radius %g", ErrInvalid, c.Ball.Radius)
	case c.Scene.GlowSeconds <= 0:
		return fmt.Errorf("%w: glow_seconds must be positive", ErrInvalid)
	case c.Scene.FlashSeconds <= 0:
		return fmt.Errorf("%w: flash_seconds must be positive", ErrInvalid)
	case c.Scene.FlashOverlap < 0 || c.Scene.FlashOverlap > c.Scene.GlowSeconds:
		return fmt.Errorf("%w: flash_overlap must be between 0 and glow_seconds", ErrInvalid)
	case c.Scene.HoldSeconds < 0:
		return fmt.Errorf("%w: hold_seconds must not be negative", ErrInvalid)
	case c.Scene.CurveSamples < 1:
		return fmt.Errorf("%w: curve_samples must be at least 1", ErrInvalid)
	case c.Physics.MaxFrameDT <= 0:
		return fmt.Errorf("%w: max_frame_dt must be positive", ErrInvalid)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Body returns the initial state of the ball, in an arena covering the
// whole canvas.
func (c *Config) Body() *physics.Config {
	p := &c.Physics
	return &physics.Config{
		Bounds: rect.Rect{
			URx: float64(c.Canvas.Width),
			URy: float64(c.Canvas.Height),
		},
		Gravity:         p.Gravity,
		Restitution:     p.Restitution,
		Friction:        p.Friction,
		RestSpeed:       p.RestSpeed,
		GroundTolerance: p.GroundTolerance,
		StopSpeed:       p.StopSpeed,
		Radius:          c.Ball.Radius,
		Position:        vec.Vec2{X: c.Ball.X, Y: c.Ball.Y},
		Velocity:        vec.Vec2{X: c.Ball.VX, Y: c.Ball.VY},
	}
}

// Palette holds the parsed colours.
type Palette struct {
	Background color.RGBA
	Ball       color.RGBA
	Outline    color.RGBA
	Core       color.RGBA
	Halo       color.RGBA
	Flash      color.RGBA
}

// Palette parses the colour settings.
func (c *Config) Palette() (*Palette, error) {
	res := &Palette{}
	for _, f := range []struct {
		hex string
		out *color.RGBA
	}{
		{c.Colors.Background, &res.Background},
		{c.Colors.Ball, &res.Ball},
		{c.Colors.Outline, &res.Outline},
		{c.Colors.Core, &res.Core},
		{c.Colors.Halo, &res.Halo},
		{c.Colors.Flash, &res.Flash},
	} {
		col, err := canvas.ParseHex(f.hex)
		if err != nil {
			return nil, err
		}
		*f.out = col
	}
	return res, nil
}
