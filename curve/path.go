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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendPath appends the given sub-paths to p as path commands and returns
// the extended path.  If p is nil, a new path is allocated.
// A closed sub-path whose last curve is a line back to the start is written
// with a ClosePath command.  Arcs cannot be represented and cause
// ErrUnsupportedCurve.
func AppendPath(p *path.Data, subpaths ...Subpath) (*path.Data, error) {
	if p == nil {
		p = &path.Data{}
	}
	for _, s := range subpaths {
		if len(s) == 0 {
			continue
		}
		p = p.MoveTo(s.Start())
		for i, c := range s {
			switch c := c.(type) {
			case Line:
				if i == len(s)-1 && s.Closed() {
					p = p.Close()
				} else {
					p = p.LineTo(c.P1)
				}
			case Quad:
				p = p.QuadTo(c.P1, c.P2)
			case Cubic:
				p = p.CubeTo(c.P1, c.P2, c.P3)
			default:
				return nil, unsupported(c)
			}
		}
	}
	return p, nil
}

// FromPath converts a path into sub-paths.  A ClosePath command becomes a
// line back to the start of the current sub-path.  MoveTo commands which are
// not followed by any drawing command do not produce a sub-path.
func FromPath(p path.Path) ([]Subpath, error) {
	var res []Subpath
	var cur Subpath
	var current, start vec.Vec2

	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			start = current
		case path.CmdLineTo:
			cur = append(cur, Line{P0: current, P1: pts[0]})
			current = pts[0]
		case path.CmdQuadTo:
			cur = append(cur, Quad{P0: current, P1: pts[0], P2: pts[1]})
			current = pts[1]
		case path.CmdCubeTo:
			cur = append(cur, Cubic{P0: current, P1: pts[0], P2: pts[1], P3: pts[2]})
			current = pts[2]
		case path.CmdClose:
			cur = append(cur, Line{P0: current, P1: start})
			current = start
			flush()
		default:
			return nil, fmt.Errorf("curve: unexpected path command %v", cmd)
		}
	}
	flush()
	return res, nil
}

// Transform applies the affine transformation m to the control points of c.
// Bézier curves are invariant under affine maps, so the result is exactly
// the image of the curve.  Arcs are not supported.
func Transform(c Curve, m matrix.Matrix) (Curve, error) {
	switch c := c.(type) {
	case Line:
		return Line{P0: apply(m, c.P0), P1: apply(m, c.P1)}, nil
	case Quad:
		return Quad{P0: apply(m, c.P0), P1: apply(m, c.P1), P2: apply(m, c.P2)}, nil
	case Cubic:
		return Cubic{
			P0: apply(m, c.P0),
			P1: apply(m, c.P1),
			P2: apply(m, c.P2),
			P3: apply(m, c.P3),
		}, nil
	default:
		return nil, unsupported(c)
	}
}

// Transform applies the affine transformation m to every curve of the
// sub-path.
func (s Subpath) Transform(m matrix.Matrix) (Subpath, error) {
	res := make(Subpath, len(s))
	for i, c := range s {
		tc, err := Transform(c, m)
		if err != nil {
			return nil, err
		}
		res[i] = tc
	}
	return res, nil
}

// apply maps a point through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
