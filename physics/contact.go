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


package physics

import "strings"

// Contact is a set of walls touched by the ball.
type Contact uint8

// The walls of the arena.
const (
	Ground Contact = 1 << iota
	Ceiling
	Left
	Right
)

// Has reports whether all walls in w are contained in c.
func (c Contact) Has(w Contact) bool {
	return c&w == w
}

func (c Contact) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, w := range []struct {
		bit  Contact
		name string
	}{
		{Ground, "ground"},
		{Ceiling, "ceiling"},
		{Left, "left"},
		{Right, "right"},
	} {
		if c&w.bit != 0 {
			parts = append(parts, w.name)
		}
	}
	return strings.Join(parts, "|")
}
