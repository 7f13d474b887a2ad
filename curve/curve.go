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

// Package curve implements the geometric primitives of SVG paths: line
// segments, quadratic and cubic Bézier curves and elliptical arcs.
//
// All curves are immutable values.  Besides the usual accessors, every curve
// can report its control point bounding box and the places where it meets a
// horizontal line.  The latter is the building block for the even-odd
// inside/outside test in package region.
//
// Arc segments are represented, but their geometric queries are not
// implemented.  Calling Bounds, Hits or XsAtY on an Arc returns
// ErrUnsupportedCurve.
package curve

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrUnsupportedCurve is returned by geometric queries on curve kinds which
// do not implement them.
var ErrUnsupportedCurve = errors.New("curve: unsupported curve kind")

// Curve is one segment of a sub-path.
//
// The set of implementations is closed: Line, Quad, Cubic and Arc.
type Curve interface {
	// Start returns the first point of the curve.
	Start() vec.Vec2

	// End returns the last point of the curve.
	End() vec.Vec2

	// Bounds returns the axis-aligned bounding box of the control points.
	// This contains the curve, but is not the tight bound.
	Bounds() (rect.Rect, error)

	// Hits appends to dst all places where the curve meets the horizontal
	// line at height y.
	Hits(dst []Hit, y float64) ([]Hit, error)

	// XsAtY appends to dst the x coordinates where the curve crosses the
	// horizontal line at height y.
	XsAtY(dst []float64, y float64) ([]float64, error)

	isCurve()
}

// Line is a straight line segment from P0 to P1.
type Line struct {
	P0, P1 vec.Vec2
}

// Quad is a quadratic Bézier curve.
// P0 is the start point, P1 the control point and P2 the end point.
type Quad struct {
	P0, P1, P2 vec.Vec2
}

// Cubic is a cubic Bézier curve.
// P0 is the start point, P1 and P2 are the control points and P3 is the end
// point.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

// Arc is an elliptical arc, as described by the SVG "A" path command.
type Arc struct {
	P0       vec.Vec2 // start point
	RX, RY   float64  // radii
	Rotation float64  // x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
	P1       vec.Vec2 // end point
}

func (Line) isCurve()  {}
func (Quad) isCurve()  {}
func (Cubic) isCurve() {}
func (Arc) isCurve()   {}

// Start implements the [Curve] interface.
func (l Line) Start() vec.Vec2 { return l.P0 }

// End implements the [Curve] interface.
func (l Line) End() vec.Vec2 { return l.P1 }

// Start implements the [Curve] interface.
func (q Quad) Start() vec.Vec2 { return q.P0 }

// End implements the [Curve] interface.
func (q Quad) End() vec.Vec2 { return q.P2 }

// Start implements the [Curve] interface.
func (c Cubic) Start() vec.Vec2 { return c.P0 }

// End implements the [Curve] interface.
func (c Cubic) End() vec.Vec2 { return c.P3 }

// Start implements the [Curve] interface.
func (a Arc) Start() vec.Vec2 { return a.P0 }

// End implements the [Curve] interface.
func (a Arc) End() vec.Vec2 { return a.P1 }

// Bounds implements the [Curve] interface.
func (l Line) Bounds() (rect.Rect, error) {
	return hullBounds(l.P0, l.P1), nil
}

// Bounds implements the [Curve] interface.
func (q Quad) Bounds() (rect.Rect, error) {
	return hullBounds(q.P0, q.P1, q.P2), nil
}

// Bounds implements the [Curve] interface.
func (c Cubic) Bounds() (rect.Rect, error) {
	return hullBounds(c.P0, c.P1, c.P2, c.P3), nil
}

// Bounds always fails for arcs.
func (a Arc) Bounds() (rect.Rect, error) {
	return rect.Rect{}, unsupported(a)
}

// Hits implements the [Curve] interface.
func (l Line) Hits(dst []Hit, y float64) ([]Hit, error) {
	b := bezier{n: 1, pts: [4]vec.Vec2{l.P0, l.P1}}
	return b.hits(dst, y), nil
}

// Hits implements the [Curve] interface.
func (q Quad) Hits(dst []Hit, y float64) ([]Hit, error) {
	b := bezier{n: 2, pts: [4]vec.Vec2{q.P0, q.P1, q.P2}}
	return b.hits(dst, y), nil
}

// Hits implements the [Curve] interface.
func (c Cubic) Hits(dst []Hit, y float64) ([]Hit, error) {
	b := bezier{n: 3, pts: [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}}
	return b.hits(dst, y), nil
}

// Hits always fails for arcs.
func (a Arc) Hits(dst []Hit, y float64) ([]Hit, error) {
	return dst, unsupported(a)
}

// XsAtY implements the [Curve] interface.
func (l Line) XsAtY(dst []float64, y float64) ([]float64, error) {
	return xsAtY(l, dst, y)
}

// XsAtY implements the [Curve] interface.
func (q Quad) XsAtY(dst []float64, y float64) ([]float64, error) {
	return xsAtY(q, dst, y)
}

// XsAtY implements the [Curve] interface.
func (c Cubic) XsAtY(dst []float64, y float64) ([]float64, error) {
	return xsAtY(c, dst, y)
}

// XsAtY always fails for arcs.
func (a Arc) XsAtY(dst []float64, y float64) ([]float64, error) {
	return dst, unsupported(a)
}

// XsAtYs returns, for each of the given heights, the x coordinates where c
// crosses the horizontal line at that height.
func XsAtYs(c Curve, ys []float64) ([][]float64, error) {
	res := make([][]float64, len(ys))
	for i, y := range ys {
		xs, err := c.XsAtY(nil, y)
		if err != nil {
			return nil, err
		}
		res[i] = xs
	}
	return res, nil
}

func xsAtY(c Curve, dst []float64, y float64) ([]float64, error) {
	var buf [6]Hit
	hits, err := c.Hits(buf[:0], y)
	if err != nil {
		return dst, err
	}
	for _, h := range hits {
		if h.Cross {
			dst = append(dst, h.X)
		}
	}
	return dst, nil
}

func unsupported(c Curve) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedCurve, c)
}

// hullBounds returns the bounding box of the given points.
func hullBounds(pts ...vec.Vec2) rect.Rect {
	r := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, p := range pts {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// unionBounds returns the smallest rectangle containing a and b.
func unionBounds(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
