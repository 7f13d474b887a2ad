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

var curveCases = []TestCase{
	{
		// circle of radius 28, drawn with four cubic Bézier curves
		Name: "circle",
		Paths: []string{"M 32,4" +
			" C 47.464,60 60,47.464 60,32" +
			" C 60,16.536 47.464,4 32,4" +
			" C 16.536,4 4,16.536 4,32" +
			" C 4,47.464 16.536,60 32,60 Z"},
		Width:  64,
		Height: 64,
		Points: []vec.Vec2{
			pt(32, 32), pt(52, 52), pt(50, 50), pt(2, 32),
			pt(60, 32), pt(32, 61), pt(32, 58),
		},
		Want: []bool{true, false, true, false, true, false, true},
	},
	{
		Name:   "lens",
		Paths:  []string{"M 8,32 Q 32,0 56,32 Q 32,64 8,32 Z"},
		Width:  64,
		Height: 64,
		Points: lensPoints,
		Want:   lensWant,
	},
}

// The lens spans 8 <= x <= 56, and 16 <= y <= 48 on the line x = 32.
var (
	lensPoints = []vec.Vec2{
		pt(32, 32), pt(32, 20), pt(32, 10), pt(32, 50),
		pt(10, 32), pt(5, 32), pt(8, 32),
	}
	lensWant = []bool{true, true, false, false, true, false, true}
)
