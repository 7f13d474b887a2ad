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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPathRoundTrip(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		QuadTo(pt(15, 5), pt(10, 10)).
		CubeTo(pt(7, 12), pt(3, 12), pt(0, 10)).
		Close().
		MoveTo(pt(20, 20)).
		LineTo(pt(30, 20)).
		LineTo(pt(30, 30))

	subpaths, err := FromPath(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if len(subpaths) != 2 {
		t.Fatalf("got %d sub-paths, want 2", len(subpaths))
	}

	first := subpaths[0]
	want := Subpath{
		Line{pt(0, 0), pt(10, 0)},
		Quad{pt(10, 0), pt(15, 5), pt(10, 10)},
		Cubic{pt(10, 10), pt(7, 12), pt(3, 12), pt(0, 10)},
		Line{pt(0, 10), pt(0, 0)},
	}
	if len(first) != len(want) {
		t.Fatalf("got %d curves, want %d", len(first), len(want))
	}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("curve %d: got %v, want %v", i, first[i], want[i])
		}
	}
	if !first.Closed() || subpaths[1].Closed() {
		t.Error("wrong closed state")
	}

	q, err := AppendPath(nil, subpaths...)
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromPath(q.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(subpaths) {
		t.Fatalf("got %d sub-paths after round trip", len(again))
	}
	for i := range subpaths {
		if len(again[i]) != len(subpaths[i]) {
			t.Fatalf("sub-path %d: got %d curves, want %d", i, len(again[i]), len(subpaths[i]))
		}
		for j := range subpaths[i] {
			if again[i][j] != subpaths[i][j] {
				t.Errorf("sub-path %d curve %d: got %v, want %v", i, j, again[i][j], subpaths[i][j])
			}
		}
	}
}

func TestAppendPathArc(t *testing.T) {
	s := Subpath{Arc{P0: pt(0, 0), RX: 1, RY: 1, P1: pt(2, 0)}}
	if _, err := AppendPath(nil, s); !errors.Is(err, ErrUnsupportedCurve) {
		t.Errorf("got %v", err)
	}
}

func TestTransform(t *testing.T) {
	s := Subpath{
		Line{pt(0, 0), pt(2, 0)},
		Quad{pt(2, 0), pt(3, 1), pt(2, 2)},
		Cubic{pt(2, 2), pt(1, 3), pt(0, 3), pt(0, 2)},
		Line{pt(0, 2), pt(0, 0)},
	}

	m := matrix.Scale(2, 3).Translate(5, 7)
	ts, err := s.Transform(m)
	if err != nil {
		t.Fatal(err)
	}
	if !ts.Closed() {
		t.Error("transformed sub-path should be closed")
	}
	if got, want := ts[1].(Quad).P1, pt(11, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The image of a point on the curve is on the image of the curve.
	c := s[2].(Cubic)
	tc := ts[2].(Cubic)
	b := bezier{n: 3, pts: [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}}
	tb := bezier{n: 3, pts: [4]vec.Vec2{tc.P0, tc.P1, tc.P2, tc.P3}}
	for _, u := range []float64{0.1, 0.5, 0.9} {
		p := apply(m, b.eval(u))
		q := tb.eval(u)
		if math.Abs(p.X-q.X) > 1e-12 || math.Abs(p.Y-q.Y) > 1e-12 {
			t.Errorf("t=%g: %v != %v", u, p, q)
		}
	}

	if _, err := Transform(Arc{}, m); !errors.Is(err, ErrUnsupportedCurve) {
		t.Errorf("arc: got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	const flatness = 0.01
	c := Cubic{pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0)}
	b := bezier{n: 3, pts: [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}}

	var segs [][2]vec.Vec2
	err := Flatten(c, flatness, func(from, to vec.Vec2) {
		segs = append(segs, [2]vec.Vec2{from, to})
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) < 2 {
		t.Fatalf("only %d segments", len(segs))
	}
	if segs[0][0] != c.P0 || segs[len(segs)-1][1] != c.P3 {
		t.Error("end points not preserved")
	}
	for i := 1; i < len(segs); i++ {
		if segs[i][0] != segs[i-1][1] {
			t.Errorf("segment %d is not connected", i)
		}
	}

	// every vertex lies on the curve
	n := len(segs)
	for i, seg := range segs {
		u := float64(i) / float64(n)
		p := b.eval(u)
		if p.Sub(seg[0]).Length() > 1e-9 {
			t.Errorf("vertex %d off the curve: %v vs %v", i, seg[0], p)
		}
	}

	if err := Flatten(Arc{}, flatness, func(_, _ vec.Vec2) {}); !errors.Is(err, ErrUnsupportedCurve) {
		t.Errorf("arc: got %v", err)
	}

	// invalid tolerances must not drop the curve silently
	q := Quad{pt(10, 90), pt(50, 0), pt(90, 10)}
	for _, f := range []float64{0, -1, math.NaN()} {
		count := 0
		err := Flatten(q, f, func(_, _ vec.Vec2) { count++ })
		if !errors.Is(err, ErrInvalidFlatness) {
			t.Errorf("flatness %g: got %v", f, err)
		}
		if count != 0 {
			t.Errorf("flatness %g: %d segments emitted", f, count)
		}
	}

	// tiny tolerances are limited in the number of segments
	count := 0
	var last vec.Vec2
	err = Flatten(c, 1e-300, func(_, to vec.Vec2) {
		count++
		last = to
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != maxSegments || last != c.P3 {
		t.Errorf("got %d segments ending at %v", count, last)
	}
}

func TestPolygon(t *testing.T) {
	s := Subpath{
		Line{pt(0, 0), pt(4, 0)},
		Quad{pt(4, 0), pt(6, 2), pt(4, 4)},
		Line{pt(4, 4), pt(0, 0)},
	}
	poly, err := s.Polygon(0.001)
	if err != nil {
		t.Fatal(err)
	}
	if poly[0] != s.Start() || poly[len(poly)-1] != s.End() {
		t.Errorf("polygon does not follow the sub-path: %v", poly)
	}
	if len(poly) <= 4 {
		t.Errorf("quadratic was not subdivided: %v", poly)
	}
	if _, err := (Subpath{}).Polygon(1); !errors.Is(err, ErrEmptySubpath) {
		t.Errorf("empty: got %v", err)
	}
	if _, err := s.Polygon(0); !errors.Is(err, ErrInvalidFlatness) {
		t.Errorf("zero flatness: got %v", err)
	}
}
