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
	"fmt"
	"iter"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi/curve"
	"seehuhn.de/go/roi/internal/logx"
)

// ErrMalformedPath indicates a path string which cannot be interpreted.
var ErrMalformedPath = errors.New("svgpath: malformed path")

// SyntaxError describes the location of a problem in a path string.
// It wraps [ErrMalformedPath].
type SyntaxError struct {
	Pos int // byte offset into the path string
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedPath
}

// Options controls how path strings are interpreted.
// The zero value, and a nil pointer, are valid.
type Options struct {
	// Height is the height of the image the path belongs to.  The y
	// coordinate of the first point of a path is replaced by Height - y.
	Height float64

	// Strict makes the tokenizer report input which is neither a
	// separator, a letter nor a number, instead of skipping it.  Such input
	// then causes an ErrMalformedPath error.
	Strict bool
}

// Parse converts a path string into a list of sub-paths.
// This is a shorthand for Build(Tokens(d, opt.Strict), opt).
func Parse(d string, opt *Options) ([]curve.Subpath, error) {
	if opt == nil {
		opt = &Options{}
	}
	return Build(Tokens(d, opt.Strict), opt)
}

// Build interprets a token sequence as a path.
//
// The first token must be a move command.  Commands are followed by groups
// of arguments, and a command letter applies to all groups until the next
// letter.  All move commands at the start of the path together establish
// the first point, and only this point is subject to the y flip described
// in [Options].  A move command after drawing has started begins a new
// sub-path.  A close command ends the current sub-path with a line back to
// its start.  Sub-paths which contain no curves are omitted from the result.
//
// If the path is malformed, the error wraps [ErrMalformedPath] and no
// sub-paths are returned.
func Build(tokens iter.Seq[Token], opt *Options) ([]curve.Subpath, error) {
	if opt == nil {
		opt = &Options{}
	}
	b := &builder{
		height:  opt.Height,
		leading: true,
	}

	for tok := range tokens {
		var err error
		switch tok.Kind {
		case Command:
			err = b.command(tok)
		case Number:
			err = b.number(tok)
		default:
			err = &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("invalid input %q", tok.Text)}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}

	logx.Get().Debug("path parsed",
		"subpaths", len(b.res),
		"curves", countCurves(b.res))
	return b.res, nil
}

// builder holds the state of the path interpreter.
type builder struct {
	height float64

	res []curve.Subpath
	cur curve.Subpath

	current vec.Vec2 // current point
	start   vec.Vec2 // start of the current sub-path

	// leading is set while the initial run of move commands is processed.
	leading bool

	cmd    byte // active command letter, 0 before the first command
	cmdPos int
	groups int // number of complete argument groups for cmd

	args  [7]float64
	nArgs int
}

func (b *builder) command(tok Token) error {
	upper := toUpper(tok.Cmd)
	if _, known := argCount[upper]; !known {
		return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unknown command %q", tok.Cmd)}
	}
	if b.cmd == 0 && upper != 'M' {
		return &SyntaxError{Pos: tok.Pos, Msg: "path does not start with a move command"}
	}
	if err := b.endCommand(); err != nil {
		return err
	}

	if b.leading && upper != 'M' {
		b.endLeading()
	}
	b.cmd = tok.Cmd
	b.cmdPos = tok.Pos
	b.groups = 0

	if upper == 'Z' {
		b.close()
	}
	return nil
}

func (b *builder) number(tok Token) error {
	if b.cmd == 0 {
		return &SyntaxError{Pos: tok.Pos, Msg: "path does not start with a move command"}
	}
	n := argCount[toUpper(b.cmd)]
	if n == 0 {
		return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected number after %q", b.cmd)}
	}

	b.args[b.nArgs] = tok.Value
	b.nArgs++
	if b.nArgs == n {
		b.exec()
		b.nArgs = 0
		b.groups++
	}
	return nil
}

// endCommand checks that the active command received complete argument
// groups.
func (b *builder) endCommand() error {
	if b.cmd == 0 {
		return nil
	}
	if b.nArgs > 0 {
		return &SyntaxError{
			Pos: b.cmdPos,
			Msg: fmt.Sprintf("incomplete argument group for %q", b.cmd),
		}
	}
	if b.groups == 0 && argCount[toUpper(b.cmd)] > 0 {
		return &SyntaxError{Pos: b.cmdPos, Msg: fmt.Sprintf("missing arguments for %q", b.cmd)}
	}
	return nil
}

func (b *builder) finish() error {
	if err := b.endCommand(); err != nil {
		return err
	}
	if b.leading && b.cmd != 0 {
		b.endLeading()
	}
	b.flush()
	return nil
}

// endLeading flips the first point of the path and makes it the start of
// the first sub-path.
func (b *builder) endLeading() {
	b.current.Y = b.height - b.current.Y
	b.start = b.current
	b.leading = false
}

// flush ends the current sub-path.
func (b *builder) flush() {
	if len(b.cur) > 0 {
		b.res = append(b.res, b.cur)
	}
	b.cur = nil
}

func (b *builder) close() {
	b.cur = append(b.cur, curve.Line{P0: b.current, P1: b.start})
	b.current = b.start
	b.flush()
}

// point returns the point described by the argument pair starting at
// args[i].  Relative offsets have their y component negated.
func (b *builder) point(i int, rel bool) vec.Vec2 {
	if rel {
		return vec.Vec2{X: b.current.X + b.args[i], Y: b.current.Y - b.args[i+1]}
	}
	return vec.Vec2{X: b.args[i], Y: b.args[i+1]}
}

// reflect returns the reflection of p through the current point.
func (b *builder) reflect(p vec.Vec2) vec.Vec2 {
	return b.current.Add(b.current.Sub(p))
}

// last returns the most recent curve of the current sub-path.
func (b *builder) last() curve.Curve {
	if len(b.cur) == 0 {
		return nil
	}
	return b.cur[len(b.cur)-1]
}

// exec processes one complete group of arguments for the active command.
func (b *builder) exec() {
	rel := b.cmd >= 'a'
	p := b.current
	a := &b.args

	switch toUpper(b.cmd) {
	case 'M':
		if !b.leading {
			b.flush()
		}
		if rel {
			b.current = b.current.Add(vec.Vec2{X: a[0], Y: a[1]})
		} else {
			b.current = vec.Vec2{X: a[0], Y: a[1]}
		}
		if !b.leading {
			b.start = b.current
		}
		return

	case 'L':
		b.current = b.point(0, rel)
		b.cur = append(b.cur, curve.Line{P0: p, P1: b.current})

	case 'H':
		if rel {
			b.current.X += a[0]
		} else {
			b.current.X = a[0]
		}
		b.cur = append(b.cur, curve.Line{P0: p, P1: b.current})

	case 'V':
		if rel {
			b.current.Y -= a[0]
		} else {
			b.current.Y = a[0]
		}
		b.cur = append(b.cur, curve.Line{P0: p, P1: b.current})

	case 'C':
		c := curve.Cubic{
			P0: p,
			P1: b.point(0, rel),
			P2: b.point(2, rel),
			P3: b.point(4, rel),
		}
		b.current = c.P3
		b.cur = append(b.cur, c)

	case 'S':
		ctrl := p
		if prev, ok := b.last().(curve.Cubic); ok {
			ctrl = b.reflect(prev.P2)
		}
		c := curve.Cubic{
			P0: p,
			P1: ctrl,
			P2: b.point(0, rel),
			P3: b.point(2, rel),
		}
		b.current = c.P3
		b.cur = append(b.cur, c)

	case 'Q':
		q := curve.Quad{
			P0: p,
			P1: b.point(0, rel),
			P2: b.point(2, rel),
		}
		b.current = q.P2
		b.cur = append(b.cur, q)

	case 'T':
		ctrl := p
		if prev, ok := b.last().(curve.Quad); ok {
			ctrl = b.reflect(prev.P1)
		}
		q := curve.Quad{
			P0: p,
			P1: ctrl,
			P2: b.point(0, rel),
		}
		b.current = q.P2
		b.cur = append(b.cur, q)

	case 'A':
		arc := curve.Arc{
			P0:       p,
			RX:       a[0],
			RY:       a[1],
			Rotation: a[2],
			LargeArc: a[3] != 0,
			Sweep:    a[4] != 0,
			P1:       b.point(5, rel),
		}
		b.current = arc.P1
		b.cur = append(b.cur, arc)
	}
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func countCurves(subpaths []curve.Subpath) int {
	n := 0
	for _, s := range subpaths {
		n += len(s)
	}
	return n
}
