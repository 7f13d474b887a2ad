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

// Command genpdf draws the test cases for visual inspection.
// For every test case it writes a PDF showing the region and the query
// points, and renders it to PNG using Ghostscript.  Points expected inside
// are drawn as filled squares, the others as outlines.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/roi/curve"
	"seehuhn.de/go/roi/svgpath"
	"seehuhn.de/go/roi/testcases"
)

const outDir = "testdata/preview"

// markerSize is the side length of the point markers, in image units.
const markerSize = 2

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	var p *path.Data
	for _, d := range tc.Paths {
		subpaths, err := svgpath.Parse(d, &svgpath.Options{Height: tc.Height})
		if err != nil {
			return err
		}
		p, err = curve.AppendPath(p, subpaths...)
		if err != nil {
			return err
		}
	}

	// The region frame has its origin at the bottom left, like PDF user
	// space, so no transformation is needed.
	paper := &pdf.Rectangle{
		URx: tc.Width,
		URy: tc.Height,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0.8))
	drawPath(page, p)
	page.FillEvenOdd()

	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineWidth(0.25)
	drawPath(page, p)
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))
	for i, q := range tc.Points {
		page.Rectangle(q.X-markerSize/2, q.Y-markerSize/2, markerSize, markerSize)
		if tc.Want[i] {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	return page.Close()
}

// pathWriter is the part of the page API used by drawPath.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds the path to the current page.  Quadratic curves are
// converted to cubic ones, since PDF does not support them.
func drawPath(page pathWriter, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r288: four pixels per image unit
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r288",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
