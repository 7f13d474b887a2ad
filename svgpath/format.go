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

package svgpath

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi/curve"
)

// Format writes sub-paths in path syntax, using absolute commands only.
//
// The first point is written as height - y, so that [Parse] with the same
// height recovers the original coordinates.  The result is exact if the
// flip is (for example, if height is zero or the coordinate is an integer),
// and otherwise correct up to rounding.  A closed sub-path whose last curve
// is a line is written with a close command.  Non-finite coordinates cannot
// be represented.
func Format(subpaths []curve.Subpath, height float64) string {
	w := &writer{}
	first := true
	for _, s := range subpaths {
		if len(s) == 0 {
			continue
		}

		start := s.Start()
		if first {
			start.Y = height - start.Y
			first = false
		}
		w.cmd('M', start)

		for i, c := range s {
			switch c := c.(type) {
			case curve.Line:
				if i == len(s)-1 && s.Closed() {
					w.buf.WriteString(" Z")
				} else {
					w.cmd('L', c.P1)
				}
			case curve.Quad:
				w.cmd('Q', c.P1, c.P2)
			case curve.Cubic:
				w.cmd('C', c.P1, c.P2, c.P3)
			case curve.Arc:
				w.letter('A')
				w.num(c.RX)
				w.num(c.RY)
				w.num(c.Rotation)
				w.flag(c.LargeArc)
				w.flag(c.Sweep)
				w.pt(c.P1)
			}
		}
	}
	return w.buf.String()
}

type writer struct {
	buf strings.Builder
}

func (w *writer) letter(c byte) {
	if w.buf.Len() > 0 {
		w.buf.WriteByte(' ')
	}
	w.buf.WriteByte(c)
}

func (w *writer) cmd(c byte, pts ...vec.Vec2) {
	w.letter(c)
	for _, p := range pts {
		w.pt(p)
	}
}

func (w *writer) pt(p vec.Vec2) {
	w.num(p.X)
	w.buf.WriteByte(',')
	w.buf.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
}

func (w *writer) num(x float64) {
	w.buf.WriteByte(' ')
	w.buf.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
}

func (w *writer) flag(f bool) {
	if f {
		w.buf.WriteString(" 1")
	} else {
		w.buf.WriteString(" 0")
	}
}
