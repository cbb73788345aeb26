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


package config

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	body := cfg.Body()
	assert.Equal(t, 600.0, body.Bounds.URx)
	assert.Equal(t, 600.0, body.Bounds.URy)
	assert.Equal(t, 2000.0, body.Gravity)
	assert.Equal(t, 0.8, body.Restitution)
	assert.Equal(t, vec.Vec2{X: 80, Y: 80}, body.Position)
	assert.Equal(t, vec.Vec2{X: 150, Y: 0}, body.Velocity)
	assert.Equal(t, 70.0, body.Radius)
}

func TestDecodePartial(t *testing.T) {
	in := `
[canvas]
width = 320
height = 200

[physics]
restitution = 0.5

[colors]
ball = "#0000ff"
`
	cfg, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Canvas.Width)
	assert.Equal(t, 200, cfg.Canvas.Height)
	assert.Equal(t, 0.5, cfg.Physics.Restitution)
	assert.Equal(t, 2000.0, cfg.Physics.Gravity, "default kept")
	assert.Equal(t, 3.0, cfg.Scene.GlowSeconds, "default kept")

	pal, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, pal.Ball)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pal.Background)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		invalid bool
	}{
		{"syntax", "[canvas\nwidth = 1", false},
		{"unknown key", "[canvas]\ndepth = 3", false},
		{"wrong type", "[canvas]\nwidth = \"wide\"", false},
		{"zero width", "[canvas]\nwidth = 0", true},
		{"negative radius", "[ball]\nradius = -1", true},
		{"no glow", "[scene]\nglow_seconds = 0", true},
		{"overlap", "[scene]\nflash_overlap = 5", true},
		{"samples", "[scene]\ncurve_samples = 0", true},
		{"dt", "[physics]\nmax_frame_dt = 0", true},
		{"colour", "[colors]\nhalo = \"gold\"", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalid), "error: %v", err)
		})
	}
}

func TestPhysicsNotValidated(t *testing.T) {
	in := "[physics]\nrestitution = 1.5\ngravity = -10\n"
	cfg, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Body().Restitution)
	assert.Equal(t, -10.0, cfg.Body().Gravity)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Width = 123
	cfg.Colors.Halo = "#123456"

	buf := &bytes.Buffer{}
	require.NoError(t, cfg.Encode(buf))

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "balldrop.toml")
	require.NoError(t, os.WriteFile(fname, []byte("[ball]\nx = 300\n"), 0o644))

	cfg, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Ball.X)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
