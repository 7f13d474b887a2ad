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

package region

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi/curve"
	"seehuhn.de/go/roi/internal/logx"
)

// Classifier decides region membership for batches of points.
// A Classifier can be used concurrently, as long as its fields are not
// modified.
type Classifier struct {
	// Workers is the maximal number of sub-paths which are processed
	// concurrently.  Values less than 2 select sequential processing.
	// The result does not depend on this setting.
	Workers int

	// Tolerance is the horizontal distance up to which a point is
	// considered to lie on the boundary.  The default, 0, only treats
	// exact contacts as boundary points.
	Tolerance float64

	// Logger receives diagnostics.  If nil, the module logger is used.
	Logger *slog.Logger
}

// NewClassifier returns a sequential classifier with default settings.
func NewClassifier() *Classifier {
	return &Classifier{Workers: 1}
}

// Classify returns, for each point, whether it lies inside the region.
//
// If some points cannot be classified, they are reported as outside and the
// error is an [*UnresolvedError] listing them.  The result slice is valid
// in this case.  Any other error indicates that the region could not be
// processed.
func (c *Classifier) Classify(r *Region, pts []vec.Vec2) ([]bool, error) {
	log := logx.Or(c.Logger)
	n := len(pts)

	valid := make([]bool, n)
	xMin := math.Inf(1)
	for i, p := range pts {
		if isFinite(p.X) && isFinite(p.Y) {
			valid[i] = true
			xMin = min(xMin, p.X)
		}
	}

	results := make([]*subResult, len(r.subpaths))
	if c.Workers > 1 && len(r.subpaths) > 1 {
		g := &errgroup.Group{}
		g.SetLimit(c.Workers)
		for k := range r.subpaths {
			g.Go(func() error {
				res, err := c.subpath(r.subpaths[k], r.bounds[k], pts, valid, nil, xMin)
				results[k] = res
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		// Points on the boundary of one sub-path are inside, no matter
		// what the other sub-paths do.  They are skipped from then on.
		var done []bool
		for k := range r.subpaths {
			res, err := c.subpath(r.subpaths[k], r.bounds[k], pts, valid, done, xMin)
			if err != nil {
				return nil, err
			}
			results[k] = res
			done = res.boundary
		}
	}

	inside := make([]bool, n)
	var unresolved []int
	for i := range pts {
		if !valid[i] {
			unresolved = append(unresolved, i)
			continue
		}
		in := false
		bad := false
		for _, res := range results {
			if res.boundary[i] {
				in = true
				bad = false
				break
			}
			in = in != res.odd[i]
			bad = bad || res.unresolved[i]
		}
		if bad {
			unresolved = append(unresolved, i)
			continue
		}
		inside[i] = in
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		count := 0
		for _, in := range inside {
			if in {
				count++
			}
		}
		log.Debug("points classified",
			"points", n,
			"inside", count,
			"subpaths", len(r.subpaths))
	}

	if len(unresolved) > 0 {
		err := &UnresolvedError{Indices: unresolved}
		log.Warn("unresolved points treated as outside",
			"count", len(unresolved),
			"first", unresolved[0])
		return inside, err
	}
	return inside, nil
}

// Classify reports which points lie inside the region, using a sequential
// classifier with default settings.
func Classify(r *Region, pts []vec.Vec2) ([]bool, error) {
	return NewClassifier().Classify(r, pts)
}

// subResult holds the outcome of testing a batch of points against a
// single sub-path.
type subResult struct {
	odd        []bool // odd number of crossings left of the point
	boundary   []bool // point lies on the sub-path
	unresolved []bool
}

// subpath classifies the points against one sub-path.  Points with skip[i]
// set (if skip is non-nil) are not examined; the boundary flag is copied
// for them.
func (c *Classifier) subpath(s curve.Subpath, bbox rect.Rect, pts []vec.Vec2, valid, skip []bool, xMin float64) (*subResult, error) {
	n := len(pts)
	res := &subResult{
		odd:        make([]bool, n),
		boundary:   make([]bool, n),
		unresolved: make([]bool, n),
	}
	if skip != nil {
		copy(res.boundary, skip)
	}

	tol := c.Tolerance
	q := &queries{}
	var hits []curve.Hit
	for i, p := range pts {
		if !valid[i] || skip != nil && skip[i] {
			continue
		}
		// points outside the bounding box are trivially outside
		if p.X < bbox.LLx-tol || p.X > bbox.URx+tol || p.Y < bbox.LLy || p.Y > bbox.URy {
			continue
		}

		var err error
		hits, err = s.Hits(hits[:0], p.Y)
		if err != nil {
			return nil, err
		}

		start := len(q.flat)
		onBoundary := false
		for _, h := range hits {
			if h.X-tol <= p.X && p.X <= h.XMax+tol {
				onBoundary = true
			}
			if h.Cross {
				q.flat = append(q.flat, h.X)
			}
		}
		total := len(q.flat) - start

		switch {
		case onBoundary:
			res.boundary[i] = true
			q.flat = q.flat[:start]
		case total%2 != 0:
			res.unresolved[i] = true
			q.flat = q.flat[:start]
		case total > 0:
			slices.Sort(q.flat[start:])
			q.idx = append(q.idx, i)
			q.px = append(q.px, p.X)
			q.offs = append(q.offs, start)
		default:
			q.flat = q.flat[:start]
		}
	}
	q.offs = append(q.offs, len(q.flat))

	// The ray starts left of all query points and of the sub-path, so that
	// it starts outside.
	x0 := min(xMin, bbox.LLx)
	x0 -= max(1, 0.02*math.Abs(x0))

	st := q.start(x0)
	rounds := 0
	for len(st.active) > 0 {
		st = st.step(q)
		rounds++
	}
	for k, i := range q.idx {
		res.odd[i] = st.odd[k]
	}

	logx.Or(c.Logger).Debug("sub-path processed",
		"candidates", len(q.idx),
		"rounds", rounds)
	return res, nil
}

// queries holds the points which need crossing tests against one
// sub-path, together with the sorted x coordinates of the crossings on the
// horizontal line through each of them.
type queries struct {
	idx  []int     // index of the point in the batch
	px   []float64 // x coordinate of the point
	offs []int     // crossings of candidate k are flat[offs[k]:offs[k+1]]
	flat []float64
}

func (q *queries) crossings(k int) []float64 {
	return q.flat[q.offs[k]:q.offs[k+1]]
}

// frontier is the state of the ray growth.  Each round produces a new
// frontier from the previous one.
type frontier struct {
	x      []float64 // rightmost crossing reached so far, per candidate
	odd    []bool    // parity of the crossings up to x
	active []int     // candidates which have not yet reached their point
}

func (q *queries) start(x0 float64) frontier {
	n := len(q.idx)
	st := frontier{
		x:      make([]float64, n),
		odd:    make([]bool, n),
		active: make([]int, n),
	}
	for k := range n {
		st.x[k] = x0
		st.active[k] = k
	}
	return st
}

// step advances every active candidate to the nearest crossing right of
// its frontier.  A candidate whose next crossing is at or beyond its own x
// coordinate is resolved and leaves the active set.  Several crossings at
// the same x coordinate are passed together, toggling the parity once per
// crossing.
func (st frontier) step(q *queries) frontier {
	next := frontier{
		x:   slices.Clone(st.x),
		odd: slices.Clone(st.odd),
	}
	for _, k := range st.active {
		xs := q.crossings(k)
		j, found := slices.BinarySearch(xs, st.x[k])
		for found && j < len(xs) && xs[j] == st.x[k] {
			j++
		}
		if j == len(xs) || xs[j] >= q.px[k] {
			continue
		}

		x := xs[j]
		m := 1
		for j+m < len(xs) && xs[j+m] == x {
			m++
		}
		next.x[k] = x
		if m%2 == 1 {
			next.odd[k] = !next.odd[k]
		}
		next.active = append(next.active, k)
	}
	return next
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
