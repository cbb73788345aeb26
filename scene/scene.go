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


// Package scene runs the ball animation: the ball falls and bounces, starts
// to glow once it rises past the middle of the canvas, and finally
// vanishes in a flash which reveals a drawing.
//
// The animation is a single state machine, driven by [Scene.Update] once
// per frame and drawn by [Scene.Draw].
package scene

import (
	"math"

	"seehuhn.de/go/balldrop"
	"seehuhn.de/go/balldrop/artwork"
	"seehuhn.de/go/balldrop/config"
	"seehuhn.de/go/balldrop/physics"
	"seehuhn.de/go/balldrop/raster"
)

// State is a phase of the animation.
type State int

// The phases of the animation, in order.
const (
	Falling     State = iota // dropped, not yet touched the ground
	Bouncing                 // bouncing off the walls
	Glowing                  // glowing light grows around the ball
	Flash                    // a white flash covers the screen
	Transformed              // the drawing is shown
)

func (s State) String() string {
	switch s {
	case Falling:
		return "falling"
	case Bouncing:
		return "bouncing"
	case Glowing:
		return "glowing"
	case Flash:
		return "flash"
	case Transformed:
		return "transformed"
	default:
		return "invalid"
	}
}

// Scene is the state of the animation.
type Scene struct {
	cfg  *config.Config
	pal  *config.Palette
	art  *artwork.Drawing
	body *physics.Body

	state   State
	clock   float64 // seconds since the start
	entered float64 // clock value when the current state was entered

	// glowStart is the clock value when the ball started to glow.
	glowStart float64
}

// New creates a scene from cfg.  The drawing art is shown at the end; if it
// is nil, the screen stays white after the flash.
func New(cfg *config.Config, art *artwork.Drawing) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return &Scene{
		cfg:  cfg,
		pal:  pal,
		art:  art,
		body: physics.New(cfg.Body()),
	}, nil
}

// State returns the current phase of the animation.
func (s *Scene) State() State {
	return s.state
}

// Body returns the simulated ball.
func (s *Scene) Body() *physics.Body {
	return s.body
}

// Time returns the simulated time since the start, in seconds.
func (s *Scene) Time() float64 {
	return s.clock
}

// Done reports whether the animation has finished: the drawing has been
// on screen for the configured hold time.
func (s *Scene) Done() bool {
	return s.state == Transformed && s.clock-s.entered >= s.cfg.Scene.HoldSeconds
}

// Update advances the animation by dt seconds.  The ball is moved by
// exactly one physics step.
func (s *Scene) Update(dt float64) {
	prevY := s.body.Position().Y
	hit := s.body.Step(dt)
	s.clock += dt

	switch s.state {
	case Falling:
		if hit.Has(physics.Ground) {
			s.enter(Bouncing, s.clock)
		}
	case Bouncing:
		if s.crossedMidline(prevY) || s.body.Stopped() {
			s.glowStart = s.clock
			s.enter(Glowing, s.clock)
		}
	}

	// Timed transitions.  A long step can pass through several states.
	sc := &s.cfg.Scene
	if s.state == Glowing {
		flashAt := s.glowStart + sc.GlowSeconds - sc.FlashOverlap
		if s.clock >= flashAt {
			s.enter(Flash, flashAt)
		}
	}
	if s.state == Flash {
		doneAt := s.entered + sc.FlashSeconds
		if s.clock >= doneAt {
			s.enter(Transformed, doneAt)
		}
	}
}

// crossedMidline reports whether the ball, moving upwards, crossed the line
// MidTolerance pixels below the middle of the canvas during the last step.
func (s *Scene) crossedMidline(prevY float64) bool {
	mid := float64(s.cfg.Canvas.Height)/2 + s.cfg.Scene.MidTolerance
	y := s.body.Position().Y
	return s.body.Velocity().Y < 0 && prevY > mid && y <= mid
}

func (s *Scene) enter(next State, at float64) {
	balldrop.Logger().Info("scene state",
		"from", s.state,
		"to", next,
		"t", math.Round(at*1000)/1000)
	s.state = next
	s.entered = at
}

// glowProgress returns the progress of the glow effect, in [0, 1].
func (s *Scene) glowProgress() float64 {
	return progress(s.clock-s.glowStart, s.cfg.Scene.GlowSeconds)
}

// flashProgress returns the progress of the flash, in [0, 1].
func (s *Scene) flashProgress() float64 {
	if s.state < Flash {
		return 0
	}
	if s.state > Flash {
		return 1
	}
	return progress(s.clock-s.entered, s.cfg.Scene.FlashSeconds)
}

// Draw draws the current frame.
func (s *Scene) Draw(surf *raster.Surface) error {
	surf.CurveSamples = s.cfg.Scene.CurveSamples

	if s.state == Transformed {
		if s.art == nil {
			surf.Clear(s.pal.Flash)
			return nil
		}
		return s.art.Render(surf)
	}

	surf.Clear(s.pal.Background)
	pos := s.body.Position()
	cx := int(math.Round(pos.X))
	cy := int(math.Round(pos.Y))
	r := int(math.Round(s.body.Radius()))

	if s.state >= Glowing {
		s.drawGlow(surf, cx, cy, r, s.glowProgress())
	}
	drawBall(surf, cx, cy, r, s.pal)
	if s.state == Flash {
		s.drawFlash(surf, cx, cy, r, s.flashProgress())
	}
	return nil
}
