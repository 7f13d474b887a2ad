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

// Points on the boundary are inside.  Rays through vertices and along
// horizontal edges must not change the parity.
var boundaryCases = []TestCase{
	{
		Name:   "diamond",
		Paths:  []string{"M 10,20 L 20,10 L 10,20 L 0,10 Z"},
		Width:  20,
		Height: 20,
		Points: []vec.Vec2{
			pt(10, 10), pt(10, 0), pt(25, 10), pt(5, 0),
			pt(15, 0), pt(20, 10),
		},
		Want: []bool{true, true, false, false, false, true},
	},
	{
		Name:   "horizontal_edge",
		Paths:  []string{"M 10,30 L 10,30 L 30,30 L 30,10 Z"},
		Width:  40,
		Height: 40,
		Points: []vec.Vec2{pt(20, 10), pt(5, 10), pt(35, 10), pt(35, 30), pt(20, 30)},
		Want:   []bool{true, false, false, false, true},
	},
}
