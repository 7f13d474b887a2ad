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

// Package roi manages regions of interest on a flattened mesh.
//
// A region of interest is described by one or more SVG path strings, drawn
// on an image of the flattened mesh.  A [Pack] holds the mesh vertices, in
// coordinates normalised to the unit square, together with a set of named
// regions.  It answers which mesh vertices lie inside a region, and which
// mesh vertices the path vertices correspond to.
//
// The path strings are parsed by package svgpath, and membership is decided
// by package region using the even-odd rule.
package roi

import (
	"log/slog"

	"seehuhn.de/go/roi/internal/logx"
)

// SetLogger installs the logger used by this module and all its
// sub-packages.  By default, nothing is logged.  Pass nil to disable
// logging again.
//
// Debug messages report statistics about parsing and classification.
// Warnings report unresolved points and failed region updates.
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the logger currently used by the module.
func Logger() *slog.Logger {
	return logx.Get()
}

func logger() *slog.Logger {
	return logx.Get()
}
