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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrEmptySubpath is returned for operations which need at least one curve.
var ErrEmptySubpath = errors.New("curve: empty sub-path")

// Subpath is a connected sequence of curves, where each curve starts at the
// end point of the previous one.
type Subpath []Curve

// Start returns the first point of the sub-path.
// The sub-path must not be empty.
func (s Subpath) Start() vec.Vec2 {
	return s[0].Start()
}

// End returns the last point of the sub-path.
// The sub-path must not be empty.
func (s Subpath) End() vec.Vec2 {
	return s[len(s)-1].End()
}

// Closed reports whether the sub-path is non-empty and ends where it starts.
func (s Subpath) Closed() bool {
	return len(s) > 0 && s.Start() == s.End()
}

// Bounds returns the union of the control point bounding boxes of all curves.
func (s Subpath) Bounds() (rect.Rect, error) {
	if len(s) == 0 {
		return rect.Rect{}, ErrEmptySubpath
	}
	var bbox rect.Rect
	for i, c := range s {
		b, err := c.Bounds()
		if err != nil {
			return rect.Rect{}, err
		}
		if i == 0 {
			bbox = b
		} else {
			bbox = unionBounds(bbox, b)
		}
	}
	return bbox, nil
}

// Hits appends the contacts of all curves with the horizontal line at
// height y.
func (s Subpath) Hits(dst []Hit, y float64) ([]Hit, error) {
	var err error
	for _, c := range s {
		dst, err = c.Hits(dst, y)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// Vertices returns the start point of the sub-path followed by the end
// point of every curve.
func (s Subpath) Vertices() []vec.Vec2 {
	if len(s) == 0 {
		return nil
	}
	res := make([]vec.Vec2, 0, len(s)+1)
	res = append(res, s.Start())
	for _, c := range s {
		res = append(res, c.End())
	}
	return res
}
