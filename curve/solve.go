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

import "math"

// Polynomial root solvers.  The quadratic solver avoids cancellation by
// computing the larger root first; the cubic solver follows Jim Blinn's "How
// to Solve a Cubic Equation" as presented at
// https://momentsingraphics.de/CubicRoots.html .

// solveQuadratic returns the real roots of a t² + b t + c = 0 in increasing
// order.  If a is zero (or so small that the scaled coefficients overflow),
// the equation is solved as a linear one.  If all coefficients vanish, the
// single root 0 is returned.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4*sc0
	if !isFinite(arg) {
		// discriminant overflow: one root is close to -sc1
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0 {
		return nil
	} else if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

// solveLinear returns the root of b t + c = 0.
func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

// sortedPair returns the two roots in increasing order, dropping the second
// one if it is not finite.
func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// solveCubic returns the real roots of a t³ + b t² + c t + d = 0, in no
// particular order.  If the cubic coefficient is negligible, the equation is
// solved as a quadratic.
func solveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return solveQuadratic(b, c, d)
	}

	// the "Delta" and "Discriminant" of the article
	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	if disc < 0 {
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	} else if disc == 0 {
		t1 := math.Copysign(math.Sqrt(max(-d0, 0)), de)
		return []float64{t1 - c2, -2*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3)
	r0 := thCos
	r1 := 0.5 * (-thCos + ss3)
	r2 := 0.5 * (-thCos - ss3)
	t := 2 * math.Sqrt(-d0)
	return []float64{t*r0 - c2, t*r1 - c2, t*r2 - c2}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
