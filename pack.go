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

package roi

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi/curve"
	"seehuhn.de/go/roi/nearest"
	"seehuhn.de/go/roi/region"
	"seehuhn.de/go/roi/svgpath"
)

var (
	// ErrUnknownRegion is returned for region names which are not part
	// of the pack.
	ErrUnknownRegion = errors.New("roi: unknown region")

	// ErrInvalidSize is returned by [NewPack] if the image size is not
	// positive.
	ErrInvalidSize = errors.New("roi: invalid image size")
)

// Options contains optional settings for a [Pack].
// A nil pointer is equivalent to the zero value.
type Options struct {
	// Strict rejects path strings which contain input that is neither a
	// command, a number nor a separator.  By default such input is
	// skipped.
	Strict bool

	// Workers is the number of sub-paths classified concurrently.
	Workers int

	// Tolerance is passed on to the region classifier.
	Tolerance float64

	// Index, if set, is used to map path vertices to mesh vertices.  It
	// must be built over the normalised mesh coordinates.  By default a
	// k-d tree is used.
	Index nearest.Index
}

// Pack holds the vertices of a flattened mesh together with a set of named
// regions.  All methods can be used concurrently.  Updates of a region
// replace its parsed geometry atomically: readers see either the old or the
// new version.
type Pack struct {
	coords []vec.Vec2 // normalised to the unit square
	scaled []vec.Vec2 // image coordinates
	width  float64
	height float64

	strict     bool
	classifier *region.Classifier
	index      nearest.Index

	mu      sync.Mutex // serialises writers
	regions atomic.Pointer[snapshot]
}

type snapshot map[string]*entry

type entry struct {
	paths    []string
	subpaths [][]curve.Subpath // per path string
	region   *region.Region
}

// NewPack creates a pack for the given mesh vertices on an image of the
// given size.
//
// If any coordinate lies outside the unit square, each axis is shifted and
// scaled separately so that the coordinates span exactly [0, 1].
func NewPack(coords []vec.Vec2, width, height float64, opts *Options) (*Pack, error) {
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("%w: %g x %g", ErrInvalidSize, width, height)
	}
	if opts == nil {
		opts = &Options{}
	}

	unit := normalise(coords)
	p := &Pack{
		coords: unit,
		scaled: make([]vec.Vec2, len(unit)),
		width:  width,
		height: height,
		strict: opts.Strict,
		classifier: &region.Classifier{
			Workers:   opts.Workers,
			Tolerance: opts.Tolerance,
		},
		index: opts.Index,
	}
	for i, c := range unit {
		p.scaled[i] = vec.Vec2{X: c.X * width, Y: c.Y * height}
	}
	if p.index == nil {
		p.index = nearest.NewKDTree(unit)
	}
	p.regions.Store(&snapshot{})
	return p, nil
}

// normalise returns a copy of coords, rescaled per axis to the unit square
// if any coordinate lies outside of it.
func normalise(coords []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(coords)
	if len(res) == 0 {
		return res
	}

	lo, hi := res[0], res[0]
	for _, c := range res[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	if lo.X >= 0 && lo.Y >= 0 && hi.X <= 1 && hi.Y <= 1 {
		return res
	}

	dx, dy := hi.X-lo.X, hi.Y-lo.Y
	for i, c := range res {
		c = c.Sub(lo)
		if dx > 0 {
			c.X /= dx
		}
		if dy > 0 {
			c.Y /= dy
		}
		res[i] = c
	}
	return res
}

// Coords returns the normalised mesh coordinates.
func (p *Pack) Coords() []vec.Vec2 {
	return slices.Clone(p.coords)
}

// SetRegion parses the given path strings and stores the result under the
// given name, replacing any previous region of this name.
//
// If a path string cannot be parsed or does not describe a closed region,
// an error is returned and the previous version of the region is kept.
// Calling SetRegion with the path strings already stored is cheap.
func (p *Pack) SetRegion(name string, paths ...string) error {
	if e := (*p.regions.Load())[name]; e != nil && slices.Equal(e.paths, paths) {
		return nil
	}

	e, err := p.parse(paths)
	if err != nil {
		err = fmt.Errorf("roi: region %q: %w", name, err)
		logger().Warn("region not updated", "name", name, "error", err)
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	next := maps.Clone(*p.regions.Load())
	next[name] = e
	p.regions.Store(&next)

	logger().Debug("region updated", "name", name, "paths", len(paths))
	return nil
}

func (p *Pack) parse(paths []string) (*entry, error) {
	e := &entry{
		paths:    slices.Clone(paths),
		subpaths: make([][]curve.Subpath, len(paths)),
	}
	opt := &svgpath.Options{Height: p.height, Strict: p.strict}
	var all []curve.Subpath
	for i, d := range paths {
		subpaths, err := svgpath.Parse(d, opt)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		e.subpaths[i] = subpaths
		all = append(all, subpaths...)
	}

	r, err := region.New(all)
	if err != nil {
		return nil, err
	}
	e.region = r
	return e, nil
}

// RemoveRegion removes a region from the pack.  The return value reports
// whether the region existed.
func (p *Pack) RemoveRegion(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur := *p.regions.Load()
	if _, ok := cur[name]; !ok {
		return false
	}
	next := maps.Clone(cur)
	delete(next, name)
	p.regions.Store(&next)
	return true
}

// Names returns the names of all regions, in sorted order.
func (p *Pack) Names() []string {
	return slices.Sorted(maps.Keys(*p.regions.Load()))
}

func (p *Pack) lookup(name string) (*entry, error) {
	e := (*p.regions.Load())[name]
	if e == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownRegion, name)
	}
	return e, nil
}

// Region returns the parsed geometry of a region, in image coordinates.
func (p *Pack) Region(name string) (*region.Region, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.region, nil
}

// Subpaths returns the sub-paths of a region, in image coordinates.
func (p *Pack) Subpaths(name string) ([]curve.Subpath, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.region.Subpaths(), nil
}

// Membership reports for every mesh vertex whether it lies inside the
// named region.
//
// If some vertices cannot be classified, they are reported as outside and
// the error wraps [region.ErrUnresolved].
func (p *Pack) Membership(name string) ([]bool, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	return p.classifier.Classify(e.region, p.scaled)
}

// Contains reports for every point whether it lies inside the named
// region.  The points are given in unit square coordinates.
func (p *Pack) Contains(name string, pts []vec.Vec2) ([]bool, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	scaled := make([]vec.Vec2, len(pts))
	for i, q := range pts {
		scaled[i] = vec.Vec2{X: q.X * p.width, Y: q.Y * p.height}
	}
	return p.classifier.Classify(e.region, scaled)
}

// VertexIndices maps the vertices of a region's paths to mesh vertices.
// The result has one entry per path string, listing for the start point of
// every sub-path and the end point of every curve the index of the
// nearest mesh vertex.
func (p *Pack) VertexIndices(name string) ([][]int, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	res := make([][]int, len(e.subpaths))
	for i, subpaths := range e.subpaths {
		var idx []int
		for _, s := range subpaths {
			for _, v := range s.Vertices() {
				u := vec.Vec2{X: v.X / p.width, Y: v.Y / p.height}
				idx = append(idx, p.index.Nearest(u))
			}
		}
		res[i] = idx
	}
	return res, nil
}

// Outline returns the boundary of a region as closed polygons in unit
// square coordinates.  Curves are approximated by line segments which
// deviate at most flatness from the curve.  The flatness must be positive,
// otherwise an error wrapping [curve.ErrInvalidFlatness] is returned.
func (p *Pack) Outline(name string, flatness float64) ([][]vec.Vec2, error) {
	e, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	toUnit := matrix.Scale(1/p.width, 1/p.height)
	var res [][]vec.Vec2
	for _, s := range e.region.Subpaths() {
		s, err = s.Transform(toUnit)
		if err != nil {
			return nil, err
		}
		poly, err := s.Polygon(flatness)
		if err != nil {
			return nil, err
		}
		res = append(res, poly)
	}
	return res, nil
}
