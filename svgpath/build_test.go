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
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi/curve"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func equalSubpaths(a, b []curve.Subpath) bool {
	return slices.EqualFunc(a, b, func(s, t curve.Subpath) bool {
		return slices.Equal(s, t)
	})
}

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		d      string
		height float64
		want   []curve.Subpath
	}{
		{
			name: "square",
			d:    "M 0,0 L 0,10 L 10,10 L 10,0 Z",
			want: []curve.Subpath{{
				curve.Line{P0: pt(0, 0), P1: pt(0, 10)},
				curve.Line{P0: pt(0, 10), P1: pt(10, 10)},
				curve.Line{P0: pt(10, 10), P1: pt(10, 0)},
				curve.Line{P0: pt(10, 0), P1: pt(0, 0)},
			}},
		},
		{
			name:   "relative",
			d:      "m 10,10 l 5,5 h 3 v 2 z",
			height: 100,
			want: []curve.Subpath{{
				curve.Line{P0: pt(10, 90), P1: pt(15, 85)},
				curve.Line{P0: pt(15, 85), P1: pt(18, 85)},
				curve.Line{P0: pt(18, 85), P1: pt(18, 83)},
				curve.Line{P0: pt(18, 83), P1: pt(10, 90)},
			}},
		},
		{
			name:   "absolute_after_flip",
			d:      "M 1,2 H 5 V 7 L 1,2",
			height: 10,
			want: []curve.Subpath{{
				curve.Line{P0: pt(1, 8), P1: pt(5, 8)},
				curve.Line{P0: pt(5, 8), P1: pt(5, 7)},
				curve.Line{P0: pt(5, 7), P1: pt(1, 2)},
			}},
		},
		{
			name:   "leading_moves",
			d:      "M 1,1 M 2,2 3,3 L 4,4",
			height: 10,
			want: []curve.Subpath{{
				curve.Line{P0: pt(3, 7), P1: pt(4, 4)},
			}},
		},
		{
			name:   "leading_relative_moves",
			d:      "m 1,1 m 2,2 l 1,1",
			height: 10,
			want: []curve.Subpath{{
				curve.Line{P0: pt(3, 7), P1: pt(4, 6)},
			}},
		},
		{
			name:   "second_subpath",
			d:      "M 0,0 L 1,0 Z M 5,5 L 6,5 Z",
			height: 10,
			want: []curve.Subpath{
				{
					curve.Line{P0: pt(0, 10), P1: pt(1, 0)},
					curve.Line{P0: pt(1, 0), P1: pt(0, 10)},
				},
				{
					curve.Line{P0: pt(5, 5), P1: pt(6, 5)},
					curve.Line{P0: pt(6, 5), P1: pt(5, 5)},
				},
			},
		},
		{
			name: "relative_move_after_close",
			d:    "M 0,0 L 1,0 z m 2,2 l 1,0",
			want: []curve.Subpath{
				{
					curve.Line{P0: pt(0, 0), P1: pt(1, 0)},
					curve.Line{P0: pt(1, 0), P1: pt(0, 0)},
				},
				{
					curve.Line{P0: pt(2, 2), P1: pt(3, 2)},
				},
			},
		},
		{
			name: "implicit_repetition",
			d:    "M 0,0 L 1,1 2,2 3,3",
			want: []curve.Subpath{{
				curve.Line{P0: pt(0, 0), P1: pt(1, 1)},
				curve.Line{P0: pt(1, 1), P1: pt(2, 2)},
				curve.Line{P0: pt(2, 2), P1: pt(3, 3)},
			}},
		},
		{
			name: "smooth_cubic",
			d:    "M 0,0 C 10,0 20,0 30,0 S 40,10 50,0",
			want: []curve.Subpath{{
				curve.Cubic{P0: pt(0, 0), P1: pt(10, 0), P2: pt(20, 0), P3: pt(30, 0)},
				curve.Cubic{P0: pt(30, 0), P1: pt(40, 0), P2: pt(40, 10), P3: pt(50, 0)},
			}},
		},
		{
			name: "relative_cubic",
			d:    "M 0,0 c 1,1 2,2 3,3 s 1,1 2,2",
			want: []curve.Subpath{{
				curve.Cubic{P0: pt(0, 0), P1: pt(1, -1), P2: pt(2, -2), P3: pt(3, -3)},
				curve.Cubic{P0: pt(3, -3), P1: pt(4, -4), P2: pt(4, -4), P3: pt(5, -5)},
			}},
		},
		{
			name: "smooth_cubic_without_cubic",
			d:    "M 0,0 L 10,0 S 20,10 30,0",
			want: []curve.Subpath{{
				curve.Line{P0: pt(0, 0), P1: pt(10, 0)},
				curve.Cubic{P0: pt(10, 0), P1: pt(10, 0), P2: pt(20, 10), P3: pt(30, 0)},
			}},
		},
		{
			name: "smooth_quadratic",
			d:    "M 0,0 Q 10,10 20,0 T 40,0 t 10,0",
			want: []curve.Subpath{{
				curve.Quad{P0: pt(0, 0), P1: pt(10, 10), P2: pt(20, 0)},
				curve.Quad{P0: pt(20, 0), P1: pt(30, -10), P2: pt(40, 0)},
				curve.Quad{P0: pt(40, 0), P1: pt(50, 10), P2: pt(50, 0)},
			}},
		},
		{
			name: "smooth_quadratic_without_quadratic",
			d:    "M 0,0 T 10,0",
			want: []curve.Subpath{{
				curve.Quad{P0: pt(0, 0), P1: pt(0, 0), P2: pt(10, 0)},
			}},
		},
		{
			name: "relative_quadratic",
			d:    "M 0,0 q 1,2 3,4",
			want: []curve.Subpath{{
				curve.Quad{P0: pt(0, 0), P1: pt(1, -2), P2: pt(3, -4)},
			}},
		},
		{
			name: "arc",
			d:    "M 0,0 A 5,5 30 1,0 10,0 a 5 5 0 0 1 10 10",
			want: []curve.Subpath{{
				curve.Arc{P0: pt(0, 0), RX: 5, RY: 5, Rotation: 30, LargeArc: true, P1: pt(10, 0)},
				curve.Arc{P0: pt(10, 0), RX: 5, RY: 5, Sweep: true, P1: pt(20, -10)},
			}},
		},
		{
			name: "bare_moves",
			d:    "M 1,1 Z M 3,3",
			want: []curve.Subpath{{
				curve.Line{P0: pt(1, -1), P1: pt(1, -1)},
			}},
		},
		{
			name: "empty",
			d:    "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.d, &Options{Height: tc.height})
			if err != nil {
				t.Fatal(err)
			}
			if !equalSubpaths(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		d      string
		strict bool
		pos    int
	}{
		{"starts_with_line", "L 1,2", false, 0},
		{"starts_with_number", "1,2", false, 0},
		{"unknown_command", "M 1,2 X 3", false, 6},
		{"incomplete_group", "M 1,2 L 3", false, 6},
		{"incomplete_cubic", "M 1,2 C 1 2 3 4 5 L 1 1", false, 6},
		{"missing_arguments", "M 1,2 L", false, 6},
		{"number_after_close", "M 1,2 Z 3", false, 8},
		{"invalid_input", "M 1,2 # L 3,4", true, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Parse(tc.d, &Options{Strict: tc.strict})
			if !errors.Is(err, ErrMalformedPath) {
				t.Fatalf("got %v, want ErrMalformedPath", err)
			}
			if res != nil {
				t.Errorf("partial result %v", res)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("%v is not a SyntaxError", err)
			}
			if synErr.Pos != tc.pos {
				t.Errorf("got position %d, want %d", synErr.Pos, tc.pos)
			}
		})
	}
}

func TestParseLenient(t *testing.T) {
	got, err := Parse("M 1,2 # L 3,4", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []curve.Subpath{{curve.Line{P0: pt(1, -2), P1: pt(3, 4)}}}
	if !equalSubpaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDanglingExponent(t *testing.T) {
	got, err := Parse("M 1e 2 L 3e,4", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []curve.Subpath{{curve.Line{P0: pt(1, -2), P1: pt(3, 4)}}}
	if !equalSubpaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = Parse("M 1e 2 L 3,4", &Options{Strict: true})
	if !errors.Is(err, ErrMalformedPath) {
		t.Errorf("strict: got %v", err)
	}

	// letters after a separator are still commands
	_, err = Parse("M 1,2 x", nil)
	if !errors.Is(err, ErrMalformedPath) {
		t.Errorf("unknown letter: got %v", err)
	}
}

func TestBuildFromTokens(t *testing.T) {
	tokens := func(yield func(Token) bool) {
		for _, tok := range []Token{
			{Kind: Command, Cmd: 'M'},
			{Kind: Number, Value: 1},
			{Kind: Number, Value: 1},
			{Kind: Command, Cmd: 'h'},
			{Kind: Number, Value: 2},
		} {
			if !yield(tok) {
				return
			}
		}
	}
	got, err := Build(tokens, &Options{Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []curve.Subpath{{curve.Line{P0: pt(1, 3), P1: pt(3, 3)}}}
	if !equalSubpaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
