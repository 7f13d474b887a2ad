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

package curve

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrInvalidFlatness is returned by [Flatten] and [Subpath.Polygon] if the
// flatness tolerance is not a positive number.
var ErrInvalidFlatness = errors.New("curve: flatness must be positive")

// maxSegments limits the number of line segments used for a single curve.
const maxSegments = 1 << 16

// Flatten approximates c by line segments and calls emit for each of them.
// The flatness tolerance bounds the distance between the curve and its
// approximation, unless this would need more than 65536 segments.  Lines
// are emitted unchanged.
func Flatten(c Curve, flatness float64, emit func(from, to vec.Vec2)) error {
	if !(flatness > 0) {
		return ErrInvalidFlatness
	}
	switch c := c.(type) {
	case Line:
		emit(c.P0, c.P1)
	case Quad:
		flattenQuadratic(c.P0, c.P1, c.P2, flatness, emit)
	case Cubic:
		flattenCubic(c.P0, c.P1, c.P2, c.P3, flatness, emit)
	default:
		return unsupported(c)
	}
	return nil
}

// Polygon flattens the sub-path into a polyline.  The result starts with
// the start point of the sub-path; for closed sub-paths the last vertex
// repeats the first one.
func (s Subpath) Polygon(flatness float64) ([]vec.Vec2, error) {
	if len(s) == 0 {
		return nil, ErrEmptySubpath
	}
	res := []vec.Vec2{s.Start()}
	emit := func(_, to vec.Vec2) {
		res = append(res, to)
	}
	for _, c := range s {
		if err := Flatten(c, flatness, emit); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point, p1 is control, p2 is endpoint.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > flatness {
		n = segments(math.Sqrt(dev / flatness))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		if i == n {
			emit(prev, p2)
			break
		}
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// segment count from Wang's formula
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = segments(nFloat)
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		if i == n {
			emit(prev, p3)
			break
		}
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(prev, pt)
		prev = pt
	}
}

// segments rounds a segment count up and limits it to maxSegments.
func segments(x float64) int {
	if !(x < maxSegments) {
		return maxSegments
	}
	return int(math.Ceil(x))
}
