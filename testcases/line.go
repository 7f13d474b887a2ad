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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

var lineCases = []TestCase{
	{
		Name:   "triangle",
		Paths:  []string{"M 10,54 L 54,10 L 32,54 Z"},
		Width:  64,
		Height: 64,
		Points: []vec.Vec2{
			pt(32, 30), pt(32, 5), pt(10, 40), pt(50, 20),
			pt(45, 20), pt(32, 54), pt(20, 10),
		},
		Want: []bool{true, false, false, false, true, true, true},
	},
	{
		// The pentagon in the middle of the star is outside.
		Name:   "star",
		Paths:  []string{star(32, 32, 25, 64)},
		Width:  64,
		Height: 64,
		Points: []vec.Vec2{pt(32, 12), pt(32, 32), pt(20, 32), pt(5, 32), pt(60, 60)},
		Want:   []bool{true, false, true, false, false},
	},
}

// star returns an absolute path for a self-intersecting five-pointed star
// with the top point at (cx, cy-r).  The first coordinate is written so that
// it ends up at its intended position after the flip.
func star(cx, cy, r, height float64) string {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	b := &strings.Builder{}
	for k, i := range []int{0, 2, 4, 1, 3} {
		p := pts[i]
		if k == 0 {
			fmt.Fprintf(b, "M %g,%g", p.X, height-p.Y)
		} else {
			fmt.Fprintf(b, " L %g,%g", p.X, p.Y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}
