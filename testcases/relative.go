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

// These paths use relative commands, as written by most drawing programs.
var relativeCases = []TestCase{
	{
		Name:   "square",
		Paths:  []string{"m 10,70 l 40,0 0,-40 -40,0 z"},
		Width:  80,
		Height: 80,
		Points: []vec.Vec2{pt(30, 30), pt(5, 30), pt(50, 30), pt(60, 60)},
		Want:   []bool{true, false, true, false},
	},
	{
		Name:   "horizontal_vertical",
		Paths:  []string{"m 20,60 h 30 v -20 h -30 z"},
		Width:  80,
		Height: 80,
		Points: []vec.Vec2{pt(35, 30), pt(35, 45), pt(19, 30), pt(50, 40)},
		Want:   []bool{true, false, false, true},
	},
	{
		// consecutive moves at the start are combined before the flip
		Name:   "leading_moves",
		Paths:  []string{"m 5,5 m 10,10 l 20,0 0,-20 -20,0 z"},
		Width:  100,
		Height: 80,
		Points: []vec.Vec2{pt(25, 75), pt(25, 50), pt(5, 75)},
		Want:   []bool{true, false, false},
	},
	{
		Name:   "lens",
		Paths:  []string{"m 8,32 q 24,32 48,0 -24,-32 -48,0 z"},
		Width:  64,
		Height: 64,
		Points: lensPoints,
		Want:   lensWant,
	},
}
