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

var subpathCases = []TestCase{
	{
		// A square with a square hole.  The second sub-path starts with
		// an absolute move, which is not flipped.
		Name: "ring",
		Paths: []string{"M 0,64 L 0,64 L 64,64 L 64,0 Z" +
			" M 16,16 L 16,48 L 48,48 L 48,16 Z"},
		Width:  64,
		Height: 64,
		Points: []vec.Vec2{
			pt(8, 8), pt(32, 32), pt(16, 32), pt(70, 32),
			pt(40, 20), pt(56, 56),
		},
		Want: []bool{true, false, true, false, false, true},
	},
	{
		// Two overlapping squares, given as separate paths.  The overlap
		// is outside.
		Name: "overlap",
		Paths: []string{
			"M 8,56 L 8,40 L 40,40 L 40,8 Z",
			"M 24,40 L 24,56 L 56,56 L 56,24 Z",
		},
		Width:  64,
		Height: 64,
		Points: []vec.Vec2{pt(16, 16), pt(32, 32), pt(48, 48), pt(24, 32), pt(4, 4)},
		Want:   []bool{true, false, true, true, false},
	},
}
