// seehuhn.de/go/shape - 2D path geometry
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
// Command export writes the shape corpus to JSON, so that other
// implementations can be checked against the same inside/outside points.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := writeJSON(*outFile, out); err != nil {
		logger.Error("export failed", "file", *outFile, "err", err)
		os.Exit(1)
	}
	logger.Info("corpus exported", "file", *outFile, "cases", len(out.TestCases))
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Path     []jsonSegment `json:"path"`
	FillRule string        `json:"fill_rule"`
	Inside   [][]float64   `json:"inside,omitempty"`
	Outside  [][]float64   `json:"outside,omitempty"`
	Bounds   []float64     `json:"bounds,omitempty"`
	Stroke   *jsonStroke   `json:"stroke,omitempty"`
	CTM      []float64     `json:"ctm,omitempty"`
}

type jsonStroke struct {
	Width      float64   `json:"width"`
	Cap        int       `json:"cap"`
	Join       int       `json:"join"`
	MiterLimit float64   `json:"miter_limit"`
	Dash       []float64 `json:"dash,omitempty"`
	DashPhase  float64   `json:"dash_phase,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path.Iter()),
		FillRule: tc.Rule.String(),
		Inside:   pointsToJSON(tc.Inside),
		Outside:  pointsToJSON(tc.Outside),
	}
	if b := tc.Bounds; b != nil {
		jtc.Bounds = []float64{b.LLx, b.LLy, b.URx, b.URy}
	}
	if s := tc.Stroke; s != nil {
		jtc.Stroke = &jsonStroke{
			Width:      s.Width,
			Cap:        int(s.Cap),
			Join:       int(s.Join),
			MiterLimit: s.MiterLimit,
			Dash:       s.Dash,
			DashPhase:  s.DashPhase,
		}
	}
	if !tc.CTM.IsZero() {
		jtc.CTM = tc.CTM[:]
	}
	return jtc
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	var res [][]float64
	for _, pt := range pts {
		res = append(res, []float64{pt.X, pt.Y})
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: pointsToJSON(pts)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
			seg.Pts = [][]float64{}
		}
		segs = append(segs, seg)
	}
	return segs
}
