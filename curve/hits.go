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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Hit describes a place where a curve meets a horizontal line.
//
// Crossings follow the half-open rule: every y-monotone piece of a curve
// crosses the heights in [min y, max y) of the piece.  This way a vertex
// shared by two segments is counted once when the path passes through the
// line there, and zero or two times when the path only touches the line.
// Contacts which do not count as crossings (the upper end of a piece, or a
// piece running along the line) are still reported, with Cross set to false,
// so that callers can detect points on the boundary.
type Hit struct {
	X     float64 // x coordinate of the contact (leftmost, for runs)
	XMax  float64 // rightmost x coordinate; equal to X unless the curve runs along the line
	Cross bool    // whether the contact counts toward the crossing parity
}

// bisectionSteps bounds the number of bisection steps used to refine a
// root.  After 64 halvings the bracket is below float64 resolution on [0, 1].
const bisectionSteps = 64

// rootSlack is the amount by which a solver root may lie outside of a
// monotone piece and still be accepted (after clamping).
const rootSlack = 1e-9

// residualSlack bounds the y residual of an accepted solver root, relative
// to the height of the monotone piece.
const residualSlack = 1e-9

// bezier is a Bézier curve of degree 1 to 3 in Bernstein form.
type bezier struct {
	n   int // degree
	pts [4]vec.Vec2
}

// eval returns the point at parameter t, using de Casteljau's algorithm.
// The end points are returned exactly.
func (b *bezier) eval(t float64) vec.Vec2 {
	if t <= 0 {
		return b.pts[0]
	} else if t >= 1 {
		return b.pts[b.n]
	}
	var q [4]vec.Vec2
	copy(q[:], b.pts[:b.n+1])
	for k := b.n; k > 0; k-- {
		for i := range k {
			q[i] = q[i].Add(q[i+1].Sub(q[i]).Mul(t))
		}
	}
	return q[0]
}

// ys returns the y coordinates of the control points.
func (b *bezier) ys() [4]float64 {
	return [4]float64{b.pts[0].Y, b.pts[1].Y, b.pts[2].Y, b.pts[3].Y}
}

// xs returns the x coordinates of the control points.
func (b *bezier) xs() [4]float64 {
	return [4]float64{b.pts[0].X, b.pts[1].X, b.pts[2].X, b.pts[3].X}
}

// powerBasis converts one coordinate of the control points into polynomial
// coefficients: c[k] is the coefficient of t^k.
func (b *bezier) powerBasis(v [4]float64) [4]float64 {
	var c [4]float64
	c[0] = v[0]
	switch b.n {
	case 1:
		c[1] = v[1] - v[0]
	case 2:
		c[1] = 2 * (v[1] - v[0])
		c[2] = v[0] - 2*v[1] + v[2]
	case 3:
		c[1] = 3 * (v[1] - v[0])
		c[2] = 3 * (v[0] - 2*v[1] + v[2])
		c[3] = -v[0] + 3*v[1] - 3*v[2] + v[3]
	}
	return c
}

// extrema returns the parameter values in the open interval (0, 1) where
// the derivative of the given coordinate vanishes, in increasing order.
func (b *bezier) extrema(v [4]float64) []float64 {
	c := b.powerBasis(v)
	var roots []float64
	switch b.n {
	case 2:
		if c[2] != 0 {
			roots = []float64{-c[1] / (2 * c[2])}
		}
	case 3:
		roots = solveQuadratic(3*c[3], 2*c[2], c[1])
	}

	res := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			res = append(res, t)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// hits appends the contacts of the curve with the horizontal line at height y.
func (b *bezier) hits(dst []Hit, y float64) []Hit {
	yv := b.ys()
	lo, hi := yv[0], yv[0]
	for _, v := range yv[1 : b.n+1] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if y < lo || y > hi || math.IsNaN(y) {
		return dst
	}

	// split the curve into y-monotone pieces
	var breaks [4]float64
	ts := append(breaks[:0], 0)
	ts = append(ts, b.extrema(yv)...)
	ts = append(ts, 1)

	for i := range len(ts) - 1 {
		ta, tb := ts[i], ts[i+1]
		pa, pb := b.eval(ta), b.eval(tb)
		ya, yb := pa.Y, pb.Y

		if ya == yb {
			if y == ya {
				xMin, xMax := b.xRange(ta, tb)
				dst = append(dst, Hit{X: xMin, XMax: xMax})
			}
			continue
		}

		// orient the piece so that the lower end comes first
		tLo, tHi, yLo, yHi, pLo, pHi := ta, tb, ya, yb, pa, pb
		if yb < ya {
			tLo, tHi, yLo, yHi, pLo, pHi = tb, ta, yb, ya, pb, pa
		}

		switch {
		case y == yLo:
			dst = append(dst, Hit{X: pLo.X, XMax: pLo.X, Cross: true})
		case y == yHi:
			dst = append(dst, Hit{X: pHi.X, XMax: pHi.X})
		case y > yLo && y < yHi:
			t := b.solveY(y, ta, tb, tLo, tHi)
			x := b.eval(t).X
			dst = append(dst, Hit{X: x, XMax: x, Cross: true})
		}
	}
	return dst
}

// solveY finds the parameter t in the y-monotone piece [ta, tb] where the
// curve has height y.  The caller guarantees that y lies strictly between
// the heights at tLo and tHi, which are ta and tb in some order.
func (b *bezier) solveY(y, ta, tb, tLo, tHi float64) float64 {
	c := b.powerBasis(b.ys())
	c[0] -= y

	var roots []float64
	switch b.n {
	case 1:
		roots = []float64{-c[0] / c[1]}
	case 2:
		roots = solveQuadratic(c[2], c[1], c[0])
	case 3:
		roots = solveCubic(c[3], c[2], c[1], c[0])
	}
	// Roots of neighbouring pieces may lie within rootSlack of the piece
	// as well.  Take the candidate with the smallest residual.
	best, bestRes := 0.0, math.Inf(1)
	for _, t := range roots {
		if t < ta-rootSlack || t > tb+rootSlack {
			continue
		}
		t = min(max(t, ta), tb)
		if res := math.Abs(b.eval(t).Y - y); res < bestRes {
			best, bestRes = t, res
		}
	}
	yLo, yHi := b.eval(tLo).Y, b.eval(tHi).Y
	if bestRes <= residualSlack*(yHi-yLo) {
		return best
	}

	// The solver missed the root, most likely due to cancellation in a
	// nearly degenerate curve.  The piece is monotone, so bisection works.
	for range bisectionSteps {
		mid := tLo + (tHi-tLo)/2
		if mid == tLo || mid == tHi {
			break
		}
		if b.eval(mid).Y < y {
			tLo = mid
		} else {
			tHi = mid
		}
	}
	return tLo + (tHi-tLo)/2
}

// xRange returns the minimal and maximal x coordinate of the curve for
// parameters in [ta, tb].
func (b *bezier) xRange(ta, tb float64) (float64, float64) {
	xa, xb := b.eval(ta).X, b.eval(tb).X
	xMin, xMax := min(xa, xb), max(xa, xb)
	for _, t := range b.extrema(b.xs()) {
		if t > ta && t < tb {
			x := b.eval(t).X
			xMin = min(xMin, x)
			xMax = max(xMax, x)
		}
	}
	return xMin, xMax
}
