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

// Package region decides which points lie inside a region bounded by
// closed curves.
//
// A region consists of one or more closed sub-paths.  Membership is decided
// by the even-odd rule: a point is inside if a ray from far left to the
// point crosses the boundary an odd number of times.  Points on the boundary
// are inside.
package region

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/roi/curve"
)

var (
	// ErrEmpty is returned by [New] if no sub-paths are given.
	ErrEmpty = errors.New("region: no sub-paths")

	// ErrOpenSubpath is returned by [New] for sub-paths which do not end
	// at their start point.
	ErrOpenSubpath = errors.New("region: sub-path is not closed")

	// ErrUnresolved indicates that some points could not be classified.
	ErrUnresolved = errors.New("region: unresolved points")
)

// UnresolvedError lists the points which could not be classified.  This
// happens for points with non-finite coordinates, and for points where the
// boundary is crossed an odd number of times along the full horizontal line
// through the point.
type UnresolvedError struct {
	Indices []int // indices into the query points, in increasing order
}

func (e *UnresolvedError) Error() string {
	if len(e.Indices) == 1 {
		return fmt.Sprintf("region: point %d could not be classified", e.Indices[0])
	}
	return fmt.Sprintf("region: %d points could not be classified, first is %d",
		len(e.Indices), e.Indices[0])
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

// Region is an area of the plane bounded by closed sub-paths.
// A Region is immutable and can be used concurrently.
type Region struct {
	subpaths []curve.Subpath
	bounds   []rect.Rect
	bbox     rect.Rect
}

// New creates a region from the given sub-paths.
// Every sub-path must be non-empty and closed, and must not contain arcs.
func New(subpaths []curve.Subpath) (*Region, error) {
	if len(subpaths) == 0 {
		return nil, ErrEmpty
	}

	r := &Region{
		subpaths: make([]curve.Subpath, len(subpaths)),
		bounds:   make([]rect.Rect, len(subpaths)),
	}
	for i, s := range subpaths {
		if len(s) == 0 {
			return nil, fmt.Errorf("region: sub-path %d: %w", i, curve.ErrEmptySubpath)
		}
		bbox, err := s.Bounds()
		if err != nil {
			return nil, fmt.Errorf("region: sub-path %d: %w", i, err)
		}
		if !s.Closed() {
			return nil, fmt.Errorf("region: sub-path %d: %w", i, ErrOpenSubpath)
		}

		r.subpaths[i] = slices.Clone(s)
		r.bounds[i] = bbox
		if i == 0 {
			r.bbox = bbox
		} else {
			r.bbox.LLx = min(r.bbox.LLx, bbox.LLx)
			r.bbox.LLy = min(r.bbox.LLy, bbox.LLy)
			r.bbox.URx = max(r.bbox.URx, bbox.URx)
			r.bbox.URy = max(r.bbox.URy, bbox.URy)
		}
	}
	return r, nil
}

// Subpaths returns the sub-paths of the region.
func (r *Region) Subpaths() []curve.Subpath {
	res := make([]curve.Subpath, len(r.subpaths))
	for i, s := range r.subpaths {
		res[i] = slices.Clone(s)
	}
	return res
}

// Bounds returns the union of the control point bounding boxes of all
// sub-paths.
func (r *Region) Bounds() rect.Rect {
	return r.bbox
}
