// seehuhn.de/go/roi - regions of interest bounded by SVG paths
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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single region membership test.
//
// Coordinates are in the region frame: the first point of every path string
// is flipped to Height minus y, all later coordinates are used as given, and
// relative offsets have their y component negated.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Paths  []string   // SVG path data, together forming one region
	Width  float64    // image width
	Height float64    // image height
	Points []vec.Vec2 // query points in the region frame
	Want   []bool     // expected membership, one per point
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
