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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// config is the contents of the configuration file.
type config struct {
	Width    float64        `toml:"width"`
	Height   float64        `toml:"height"`
	Strict   bool           `toml:"strict"`
	Workers  int            `toml:"workers"`
	LogLevel string         `toml:"log_level"`
	Points   string         `toml:"points"` // relative to the config file
	Regions  []regionConfig `toml:"region"`
}

type regionConfig struct {
	Name  string   `toml:"name"`
	Paths []string `toml:"paths"`
}

var errConfig = errors.New("invalid configuration")

// loadConfig reads and checks a configuration file.  Unknown keys are
// rejected.
func loadConfig(fname string) (*config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		Workers:  1,
		LogLevel: "warn",
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", fname, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if cfg.Points != "" && !filepath.IsAbs(cfg.Points) {
		cfg.Points = filepath.Join(filepath.Dir(fname), cfg.Points)
	}
	return cfg, nil
}

func (cfg *config) check() error {
	if !(cfg.Width > 0 && cfg.Height > 0) {
		return fmt.Errorf("%w: image size %g x %g", errConfig, cfg.Width, cfg.Height)
	}
	if len(cfg.Regions) == 0 {
		return fmt.Errorf("%w: no regions", errConfig)
	}
	seen := make(map[string]bool)
	for i, r := range cfg.Regions {
		switch {
		case r.Name == "":
			return fmt.Errorf("%w: region %d has no name", errConfig, i)
		case seen[r.Name]:
			return fmt.Errorf("%w: duplicate region %q", errConfig, r.Name)
		case len(r.Paths) == 0:
			return fmt.Errorf("%w: region %q has no paths", errConfig, r.Name)
		}
		seen[r.Name] = true
	}
	if _, err := cfg.level(); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	return nil
}

func (cfg *config) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(cfg.LogLevel))
	return level, err
}
