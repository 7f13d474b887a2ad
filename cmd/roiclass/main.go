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

// Command roiclass decides which points lie inside regions of interest.
//
// Usage:
//
//	roiclass -c regions.toml [-p points.csv] [-o result.csv]
//
// The configuration file gives the image size and, for every region, a name
// and one or more SVG path strings:
//
//	width = 1024.0
//	height = 1024.0
//	workers = 4
//	log_level = "info"
//	points = "points.csv"
//
//	[[region]]
//	name = "V1"
//	paths = ["m 100,200 l 10,0 0,-10 z"]
//
// Points are read as CSV with two columns x,y in unit square coordinates; an
// optional header line is skipped.  If no points file is given, points are
// read from standard input.  The output is CSV with one row per point and
// one 0/1 column per region.  Regions which cannot be parsed are reported
// and left out.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/tdewolff/argp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/roi"
	"seehuhn.de/go/roi/region"
)

func main() {
	opts := &options{}
	cmd := argp.New("Classify points against regions of interest")
	cmd.AddOpt(&opts.Config, "c", "config", "Region configuration file (TOML).")
	cmd.AddOpt(&opts.Points, "p", "points", "Query points (CSV), overrides the configuration.")
	cmd.AddOpt(&opts.Output, "o", "output", "Output file, default standard output.")
	cmd.Parse()

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// options holds the command line options.
type options struct {
	Config string
	Points string
	Output string
}

var errNoConfig = errors.New("no configuration file given (-c)")

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.Config == "" {
		return errNoConfig
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}
	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	roi.SetLogger(logger)
	defer roi.SetLogger(nil)

	if opts.Points != "" {
		cfg.Points = opts.Points
	}
	var pts []vec.Vec2
	if cfg.Points == "" {
		pts, err = readPoints(stdin)
	} else {
		pts, err = readPointsFile(cfg.Points)
	}
	if err != nil {
		return err
	}

	pack, err := roi.NewPack(nil, cfg.Width, cfg.Height, &roi.Options{
		Strict:  cfg.Strict,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}

	var names []string
	var columns [][]bool
	for _, r := range cfg.Regions {
		if err := pack.SetRegion(r.Name, r.Paths...); err != nil {
			continue
		}
		in, err := pack.Contains(r.Name, pts)
		if err != nil && !errors.Is(err, region.ErrUnresolved) {
			return err
		}
		names = append(names, r.Name)
		columns = append(columns, in)
	}
	if len(names) == 0 {
		return errors.New("no usable regions")
	}
	logger.Info("points classified", "points", len(pts), "regions", len(names))

	if opts.Output == "" {
		return writeResult(stdout, names, columns)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := writeResult(f, names, columns); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readPointsFile(fname string) ([]vec.Vec2, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := readPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return pts, nil
}

// readPoints reads x,y pairs in CSV format.  A first line which does not
// parse as numbers is taken to be a header.
func readPoints(r io.Reader) ([]vec.Vec2, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var pts []vec.Vec2
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: invalid point %q,%q", line, rec[0], rec[1])
		}
		pts = append(pts, vec.Vec2{X: x, Y: y})
	}
	return pts, nil
}

func writeResult(w io.Writer, names []string, columns [][]bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"index"}, names...)); err != nil {
		return err
	}

	var n int
	if len(columns) > 0 {
		n = len(columns[0])
	}
	row := make([]string, len(names)+1)
	for i := range n {
		row[0] = strconv.Itoa(i)
		for j, col := range columns {
			row[j+1] = "0"
			if col[i] {
				row[j+1] = "1"
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
