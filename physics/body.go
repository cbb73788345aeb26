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


// Package physics integrates the motion of a ball inside a rectangular
// arena.
//
// Coordinates are canvas coordinates: x grows to the right and y grows
// downwards, so the ground is the bottom edge of the arena and a positive
// gravity pulls the ball towards it.  All quantities are in pixels and
// seconds.
//
// The integrator performs no input validation.  Unusual values, such as a
// restitution above 1 or a negative gravity, are used as given.
package physics

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Config describes a ball and its arena.  The values are fixed when the
// Body is created.
type Config struct {
	// Bounds are the walls of the arena.  LLy is the ceiling and URy is
	// the ground.
	Bounds rect.Rect

	// Gravity is the downward acceleration in px/s².
	Gravity float64

	// Restitution is the factor by which the speed perpendicular to a
	// wall is reduced when the ball bounces off it.
	Restitution float64

	// Friction is the coefficient of sliding friction against the ground.
	// While the ball is grounded, vx decays towards zero at the rate
	// Friction·Gravity.
	Friction float64

	// RestSpeed is the impact speed below which the ball stops bouncing
	// and comes to rest on the ground.
	RestSpeed float64

	// GroundTolerance is the distance from the ground, in pixels, within
	// which the ball counts as grounded.
	GroundTolerance float64

	// StopSpeed is the speed below which a velocity component counts as
	// zero for the purpose of [Body.Stopped].
	StopSpeed float64

	Radius   float64
	Position vec.Vec2
	Velocity vec.Vec2
}

// Body is a ball moving under gravity.
type Body struct {
	cfg Config

	pos vec.Vec2
	vel vec.Vec2

	grounded bool
	stopped  bool
}

// New creates a body at the initial position and velocity given in cfg.
func New(cfg *Config) *Body {
	b := &Body{
		cfg: *cfg,
		pos: cfg.Position,
		vel: cfg.Velocity,
	}
	b.grounded = b.onGround()
	b.stopped = b.atRest()
	return b
}

// Step advances the simulation by dt seconds and returns the walls which
// were hit during this step.
//
// The order of updates is: gravity changes the velocity, the velocity
// changes the position, wall contacts are resolved, and finally ground
// friction is applied.  Step does not limit dt; a very long step can move
// the ball further than the size of the arena.
func (b *Body) Step(dt float64) Contact {
	cfg := &b.cfg
	r := cfg.Radius

	b.vel.Y += cfg.Gravity * dt
	b.pos = b.pos.Add(b.vel.Mul(dt))

	var hit Contact
	if b.pos.Y+r > cfg.Bounds.URy {
		b.pos.Y = cfg.Bounds.URy - r
		// A ball at rest gains |g·dt| of speed per step, which must not
		// turn into a bounce.
		if math.Abs(b.vel.Y) <= cfg.RestSpeed+math.Abs(cfg.Gravity*dt) {
			b.vel.Y = 0
		} else if b.vel.Y > 0 {
			b.vel.Y *= -cfg.Restitution
		}
		hit |= Ground
	}
	if b.pos.Y-r < cfg.Bounds.LLy {
		b.pos.Y = cfg.Bounds.LLy + r
		if b.vel.Y < 0 {
			b.vel.Y *= -cfg.Restitution
		}
		hit |= Ceiling
	}
	if b.pos.X-r < cfg.Bounds.LLx {
		b.pos.X = cfg.Bounds.LLx + r
		if b.vel.X < 0 {
			b.vel.X *= -cfg.Restitution
		}
		hit |= Left
	}
	if b.pos.X+r > cfg.Bounds.URx {
		b.pos.X = cfg.Bounds.URx - r
		if b.vel.X > 0 {
			b.vel.X *= -cfg.Restitution
		}
		hit |= Right
	}

	b.grounded = b.onGround()
	if b.grounded {
		dv := math.Abs(cfg.Friction * cfg.Gravity * dt)
		if math.Abs(b.vel.X) <= dv {
			b.vel.X = 0
		} else {
			b.vel.X -= math.Copysign(dv, b.vel.X)
		}
	}
	b.stopped = b.atRest()

	return hit
}

func (b *Body) onGround() bool {
	return b.pos.Y+b.cfg.Radius >= b.cfg.Bounds.URy-b.cfg.GroundTolerance
}

func (b *Body) atRest() bool {
	eps := b.cfg.StopSpeed
	return b.grounded && math.Abs(b.vel.X) < eps && math.Abs(b.vel.Y) < eps
}

// Position returns the centre of the ball.
func (b *Body) Position() vec.Vec2 {
	return b.pos
}

// Velocity returns the velocity of the ball in px/s.
func (b *Body) Velocity() vec.Vec2 {
	return b.vel
}

// Radius returns the radius of the ball.
func (b *Body) Radius() float64 {
	return b.cfg.Radius
}

// Grounded reports whether the ball touched the ground, within
// GroundTolerance, after the last step.
func (b *Body) Grounded() bool {
	return b.grounded
}

// Stopped reports whether the ball lies on the ground without moving.
// Once a body has stopped it stays stopped, unless gravity points away
// from the ground.
func (b *Body) Stopped() bool {
	return b.stopped
}
