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

package nearest

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestKDTreeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		pts := make([]vec.Vec2, n)
		for i := range pts {
			pts[i] = vec.Vec2{X: rng.Float64(), Y: rng.Float64()}
		}
		tree := NewKDTree(pts)
		ref := BruteForce(pts)
		require.Equal(t, n, tree.Len())

		for range 200 {
			q := vec.Vec2{X: 1.2*rng.Float64() - 0.1, Y: 1.2*rng.Float64() - 0.1}
			assert.Equal(t, ref.Nearest(q), tree.Nearest(q), "n=%d, query %v", n, q)
		}
	}
}

func TestKDTreeExactHits(t *testing.T) {
	pts := []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 0.1, Y: 0.9}, {X: 0.9, Y: 0.1}, {X: 0.3, Y: 0.3}}
	tree := NewKDTree(pts)
	for i, p := range pts {
		assert.Equal(t, i, tree.Nearest(p))
		assert.Equal(t, p, tree.Point(i))
	}
}

func TestKDTreeTies(t *testing.T) {
	// a grid with duplicated points; queries at cell centres are
	// equidistant from four points
	var pts []vec.Vec2
	for y := range 5 {
		for x := range 5 {
			pts = append(pts, vec.Vec2{X: float64(x), Y: float64(y)})
		}
	}
	pts = append(pts, pts...)
	tree := NewKDTree(pts)
	ref := BruteForce(pts)

	for y := range 4 {
		for x := range 4 {
			q := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			want := ref.Nearest(q)
			assert.Equal(t, y*5+x, want)
			assert.Equal(t, want, tree.Nearest(q), "query %v", q)
		}
	}
}

func TestKDTreeDegenerate(t *testing.T) {
	empty := NewKDTree(nil)
	assert.Equal(t, -1, empty.Nearest(vec.Vec2{}))
	assert.Equal(t, -1, BruteForce(nil).Nearest(vec.Vec2{}))

	tree := NewKDTree([]vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.Equal(t, -1, tree.Nearest(vec.Vec2{X: math.NaN(), Y: 0}))
	assert.Equal(t, -1, BruteForce{{X: 1, Y: 1}}.Nearest(vec.Vec2{X: 0, Y: math.NaN()}))

	// the tree keeps its own copy of the points
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}
	tree = NewKDTree(pts)
	pts[0] = vec.Vec2{X: 100, Y: 100}
	assert.Equal(t, 0, tree.Nearest(vec.Vec2{X: 1, Y: 1}))
}
