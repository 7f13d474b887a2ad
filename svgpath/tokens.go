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

// Package svgpath reads the path mini-language used in the "d" attribute of
// SVG path elements and turns it into sequences of curve segments.
//
// The y axis is flipped once, when the first point of a path is
// established.  Relative offsets which follow are read in the flipped frame,
// so that their y component is negated.  Absolute coordinates after the
// first point are used unchanged.  Existing overlay files depend on this
// convention.
package svgpath

import (
	"iter"
	"strconv"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Kind distinguishes the different types of tokens.
type Kind uint8

// These are the token kinds.
const (
	Command Kind = iota
	Number
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Command:
		return "command"
	case Number:
		return "number"
	case Invalid:
		return "invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one lexical element of a path string.
type Token struct {
	Kind Kind

	// Cmd is the command letter, for tokens of kind Command.  Upper case
	// letters denote absolute commands, lower case letters relative ones.
	Cmd byte

	// Value is the value of a numeric literal.
	Value float64

	// Text holds the skipped input, for tokens of kind Invalid.
	Text string

	// Pos is the byte offset of the token in the path string.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case Command:
		return string(t.Cmd)
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	default:
		return strconv.Quote(t.Text)
	}
}

// argCount gives the size of the argument groups for every command letter
// of the path language.  The table is indexed by the upper case letter.
var argCount = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// Tokens splits a path string into command letters and numeric literals.
//
// Every ASCII letter becomes a command token, also letters which are not
// part of the path language; these are rejected by [Build].  The exception
// is a letter which is not a path command and directly follows a number,
// such as the "e" of an exponent without digits: it belongs to the
// malformed number and is treated like other junk.  Whitespace and commas
// separate tokens.  Numbers have an optional sign, at least one digit in
// the integer or fractional part and an optional exponent.  Input which is
// neither a letter, a separator nor a number is skipped, unless strict is
// set.  In strict mode, every such run of bytes is reported as a token of
// kind Invalid.
//
// The returned sequence can be iterated more than once.
func Tokens(d string, strict bool) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		buf := []byte(d)
		i := 0
		numEnd := -1 // end of the last number
		for i < len(buf) {
			c := buf[i]
			switch {
			case isSeparator(c):
				i++
			case isLetter(c) && !(i == numEnd && !isCommand(c)):
				if !yield(Token{Kind: Command, Cmd: c, Pos: i}) {
					return
				}
				i++
			default:
				if n := numberLen(buf[i:]); n > 0 {
					if !yield(Token{Kind: Number, Value: parseNumber(buf[i:i+n]), Pos: i}) {
						return
					}
					i += n
					numEnd = i
					continue
				}

				start := i
				i++
				for i < len(buf) && !isSeparator(buf[i]) && !isLetter(buf[i]) && numberLen(buf[i:]) == 0 {
					i++
				}
				if strict {
					if !yield(Token{Kind: Invalid, Text: d[start:i], Pos: start}) {
						return
					}
				}
			}
		}
	}
}

// numberLen returns the length of the numeric literal at the start of buf,
// or 0 if buf does not start with a number.
func numberLen(buf []byte) int {
	c := buf[0]
	if !(c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-') {
		return 0
	}
	_, n := tdstrconv.ParseFloat(buf)
	return n
}

// parseNumber converts a literal found by numberLen into the correctly
// rounded float64 value.
func parseNumber(lit []byte) float64 {
	// The only possible error is a range error, in which case x is ±Inf
	// or zero.
	x, _ := strconv.ParseFloat(string(lit), 64)
	return x
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isCommand(c byte) bool {
	_, ok := argCount[toUpper(c)]
	return ok
}
