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


package scene

import (
	"image"
	"math"

	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/config"
	"seehuhn.de/go/balldrop/raster"
)

// Number of concentric disks used to shade the glow.
const (
	haloSteps   = 8
	coronaSteps = 6
)

// drawBall draws the two-coloured ball: a white disk with a black rim, a
// small inner ring, and a band through the middle.  The upper half is
// coloured by a flood fill, which the band and the inner ring keep out of
// the lower half.
func drawBall(surf *raster.Surface, cx, cy, r int, pal *config.Palette) {
	inner := int(math.Round(float64(r) / 3.5))

	surf.DrawCircle(cx, cy, r, canvas.White, true)
	surf.DrawCircle(cx, cy, r, pal.Outline, false)
	surf.DrawCircle(cx, cy, inner, pal.Outline, false)
	surf.DrawLine(cx-r, cy, cx-inner, cy, pal.Outline)
	surf.DrawLine(cx+inner, cy, cx+r, cy, pal.Outline)

	seed := image.Pt(cx, cy-(r+inner)/2)
	surf.FloodFill(seed, canvas.White, pal.Ball)
}

// drawGlow draws a halo which spreads from the ball over the whole canvas,
// and a bright corona around the ball.  The corona grows during the first
// 35% of the effect, the halo during the rest.
func (s *Scene) drawGlow(surf *raster.Surface, cx, cy, r int, p float64) {
	coreP := easeOutCubic(progress(p, 0.35))
	haloP := easeOutCubic(progress(p-0.35, 0.65))

	rCore := float64(r) * (1 + 0.4*coreP)
	aCore := lerp(0.2, 1, coreP)
	diag := math.Hypot(float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height))
	rHalo := lerp(rCore, 1.1*diag, haloP)
	aHalo := lerp(0, 0.3, haloP)

	bg := s.pal.Background
	if aHalo > 0 {
		for i := range haloSteps {
			k := float64(i) / haloSteps
			rad := lerp(rHalo, rCore, k)
			c := canvas.Blend(bg, s.pal.Halo, aHalo*(k+1.0/haloSteps))
			surf.DrawCircle(cx, cy, int(math.Round(rad)), c, true)
		}
	}

	// the corona fades from the core colour at the ball into the halo
	outer := canvas.Blend(bg, s.pal.Halo, aHalo)
	for i := range coronaSteps {
		k := float64(i) / coronaSteps
		rad := lerp(rCore, float64(r), k)
		c := canvas.Blend(outer, s.pal.Core, aCore*(k+1.0/coronaSteps))
		surf.DrawCircle(cx, cy, int(math.Round(rad)), c, true)
	}
}

// drawFlash draws a disk which expands from the ball until it covers the
// canvas, fading from the core colour to the flash colour.
func (s *Scene) drawFlash(surf *raster.Surface, cx, cy, r int, p float64) {
	if p >= 1 {
		surf.Clear(s.pal.Flash)
		return
	}
	e := easeOutCubic(p)
	diag := math.Hypot(float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height))
	rad := lerp(1.4*float64(r), 1.05*diag, e)
	c := canvas.Blend(s.pal.Core, s.pal.Flash, e)
	surf.DrawCircle(cx, cy, int(math.Round(rad)), c, true)
}

// progress returns t/total, clamped to [0, 1].
func progress(t, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return min(max(t/total, 0), 1)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
