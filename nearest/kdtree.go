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

// Package nearest answers nearest-neighbour queries over a fixed set of
// points in the plane.
package nearest

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Index finds the point of a fixed point set which is closest to a query
// point.
type Index interface {
	// Nearest returns the index of the point closest to p.  If several
	// points have the same distance, the smallest index is returned.  The
	// result is -1 if the point set is empty or p is not a valid point.
	Nearest(p vec.Vec2) int
}

// KDTree is a static two-dimensional k-d tree.
// A KDTree is immutable and can be used concurrently.
type KDTree struct {
	pts []vec.Vec2

	// node holds the point indices, arranged as an implicit balanced tree:
	// the root of node[lo:hi] is at (lo+hi)/2, splitting by x at even
	// depth and by y at odd depth.
	node []int
}

var _ Index = (*KDTree)(nil)

// NewKDTree builds a k-d tree over a copy of pts.
func NewKDTree(pts []vec.Vec2) *KDTree {
	t := &KDTree{
		pts:  slices.Clone(pts),
		node: make([]int, len(pts)),
	}
	for i := range t.node {
		t.node[i] = i
	}
	t.build(0, len(t.node), 0)
	return t
}

func (t *KDTree) build(lo, hi, depth int) {
	if hi-lo < 2 {
		return
	}
	slices.SortFunc(t.node[lo:hi], func(a, b int) int {
		if c := cmp.Compare(coord(t.pts[a], depth), coord(t.pts[b], depth)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	mid := (lo + hi) / 2
	t.build(lo, mid, depth+1)
	t.build(mid+1, hi, depth+1)
}

// Len returns the number of points in the tree.
func (t *KDTree) Len() int {
	return len(t.pts)
}

// Point returns the point with index i.
func (t *KDTree) Point(i int) vec.Vec2 {
	return t.pts[i]
}

// Nearest implements the [Index] interface.
func (t *KDTree) Nearest(p vec.Vec2) int {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return -1
	}
	s := &search{t: t, p: p, best: -1, dist: math.Inf(1)}
	s.visit(0, len(t.node), 0)
	return s.best
}

type search struct {
	t    *KDTree
	p    vec.Vec2
	best int
	dist float64 // squared distance to best
}

func (s *search) visit(lo, hi, depth int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	i := s.t.node[mid]
	q := s.t.pts[i]

	d := q.Sub(s.p)
	dist := d.X*d.X + d.Y*d.Y
	if s.best < 0 || dist < s.dist || dist == s.dist && i < s.best {
		s.best = i
		s.dist = dist
	}

	delta := coord(s.p, depth) - coord(q, depth)
	near, far := [2]int{lo, mid}, [2]int{mid + 1, hi}
	if delta > 0 {
		near, far = far, near
	}
	s.visit(near[0], near[1], depth+1)
	if delta*delta <= s.dist {
		s.visit(far[0], far[1], depth+1)
	}
}

func coord(p vec.Vec2, depth int) float64 {
	if depth%2 == 0 {
		return p.X
	}
	return p.Y
}

// BruteForce is an [Index] which compares the query point with every point
// of the set.  It is useful for small point sets and for testing.
type BruteForce []vec.Vec2

// Nearest implements the [Index] interface.
func (b BruteForce) Nearest(p vec.Vec2) int {
	best := -1
	bestDist := math.Inf(1)
	for i, q := range b {
		d := q.Sub(p)
		dist := d.X*d.X + d.Y*d.Y
		if dist < bestDist || best < 0 && !math.IsNaN(dist) {
			best = i
			bestDist = dist
		}
	}
	return best
}
