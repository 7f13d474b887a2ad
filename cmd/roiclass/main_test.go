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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

const testConfig = `
width = 80.0
height = 80.0
workers = 2
log_level = "info"
points = "points.csv"

[[region]]
name = "a"
paths = ["m 10,70 l 40,0 0,-40 -40,0 z"]

[[region]]
name = "arc"
paths = ["M 0,0 a 5 5 0 0 1 10,0 z"]

[[region]]
name = "b"
paths = ["m 30,70 l 40,0 0,-40 -40,0 z"]
`

const testPoints = `x,y
0.375,0.375
0.75,0.375
0.95,0.95
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(contents), 0o644))
	return fname
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "regions.toml", testConfig)
	writeFile(t, dir, "points.csv", testPoints)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run(&options{Config: configFile}, strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)

	want := "index,a,b\n0,1,1\n1,0,1\n2,0,0\n"
	assert.Equal(t, want, stdout.String())

	// the arc region is reported and skipped
	assert.Contains(t, stderr.String(), "level=WARN")
	assert.Contains(t, stderr.String(), "arc")
	assert.Contains(t, stderr.String(), "points classified")
}

func TestRunStdin(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "regions.toml",
		strings.Replace(testConfig, `points = "points.csv"`, "", 1))
	outFile := filepath.Join(dir, "out.csv")

	err := run(&options{Config: configFile, Output: outFile},
		strings.NewReader("0.375, 0.375\n"), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "index,a,b\n0,1,1\n", string(out))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "points.csv", testPoints)

	cases := map[string]string{
		"unknown_key": "colour = 1\n" + testConfig,
		"no_size":     strings.Replace(testConfig, "width = 80.0", "", 1),
		"no_regions":  "width = 1.0\nheight = 1.0\n",
		"log_level":   strings.Replace(testConfig, `"info"`, `"loud"`, 1),
		"duplicate":   testConfig + "\n[[region]]\nname = \"a\"\npaths = [\"M 0,0 L 1,0 L 0,1 Z\"]\n",
		"all_broken":  "width = 1.0\nheight = 1.0\npoints = \"points.csv\"\n[[region]]\nname = \"x\"\npaths = [\"L 1,1\"]\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			configFile := writeFile(t, dir, name+".toml", contents)
			err := run(&options{Config: configFile}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}

	err := run(&options{}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errNoConfig)
}

func TestReadPoints(t *testing.T) {
	pts, err := readPoints(strings.NewReader("1,2\n3.5,-4e1\n"))
	require.NoError(t, err)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 2}, {X: 3.5, Y: -40}}, pts)

	_, err = readPoints(strings.NewReader("x,y\n1,2\nfoo,3\n"))
	assert.ErrorContains(t, err, "line 3")

	_, err = readPoints(strings.NewReader("1,2,3\n"))
	assert.Error(t, err)
}
