// Command export writes the test cases to JSON, for use by other
// implementations.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/roi/curve"
	"seehuhn.de/go/roi/svgpath"
	"seehuhn.de/go/roi/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string          `json:"name"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Paths    []string        `json:"paths"`
	Subpaths [][]jsonSegment `json:"subpaths"`
	Points   [][]float64     `json:"points"`
	Inside   []bool          `json:"inside"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Paths:  tc.Paths,
		Inside: tc.Want,
	}
	for _, d := range tc.Paths {
		subpaths, err := svgpath.Parse(d, &svgpath.Options{Height: tc.Height})
		if err != nil {
			return jtc, err
		}
		for _, s := range subpaths {
			jtc.Subpaths = append(jtc.Subpaths, subpathToJSON(s))
		}
	}
	for _, p := range tc.Points {
		jtc.Points = append(jtc.Points, []float64{p.X, p.Y})
	}
	return jtc, nil
}

// subpathToJSON lists the curves of a sub-path in the region frame.
func subpathToJSON(s curve.Subpath) []jsonSegment {
	var segs []jsonSegment
	for _, c := range s {
		var seg jsonSegment
		switch c := c.(type) {
		case curve.Line:
			seg.Cmd = "L"
			seg.Pts = [][]float64{{c.P0.X, c.P0.Y}, {c.P1.X, c.P1.Y}}
		case curve.Quad:
			seg.Cmd = "Q"
			seg.Pts = [][]float64{{c.P0.X, c.P0.Y}, {c.P1.X, c.P1.Y}, {c.P2.X, c.P2.Y}}
		case curve.Cubic:
			seg.Cmd = "C"
			seg.Pts = [][]float64{{c.P0.X, c.P0.Y}, {c.P1.X, c.P1.Y}, {c.P2.X, c.P2.Y}, {c.P3.X, c.P3.Y}}
		case curve.Arc:
			seg.Cmd = "A"
			seg.Pts = [][]float64{{c.P0.X, c.P0.Y}, {c.P1.X, c.P1.Y}}
		}
		segs = append(segs, seg)
	}
	return segs
}
