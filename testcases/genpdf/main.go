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
// Command genpdf draws the shape corpus for visual inspection.
// Every test case becomes a PDF page showing the filled shape (or the
// outline of the stroke, for stroked test cases), a grid of dots at the
// points the shape package classifies as inside, and the sample points of
// the test case. With -png the PDFs are also rendered
// to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

func main() {
	outDir := flag.String("d", "testdata/shapes", "output directory")
	grid := flag.Float64("grid", 2, "spacing of the containment grid")
	withPNG := flag.Bool("png", false, "render PNG files using Ghostscript")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("cannot create output directory", "dir", *outDir, "err", err)
		os.Exit(1)
	}

	failed := false
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath, *grid); err != nil {
				logger.Error("cannot draw test case", "name", name, "err", err)
				failed = true
				continue
			}
			if *withPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					logger.Error("cannot render PNG", "name", name, "err", err)
					failed = true
					continue
				}
			}
			logger.Debug("test case drawn", "name", name)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// area returns the region a test case describes: the filled path or the
// outline of its stroke, mapped to page coordinates by the CTM.
func area(tc testcases.TestCase) (*shape.Path, error) {
	rule := shape.NonZero
	if tc.Rule == testcases.EvenOdd {
		rule = shape.EvenOdd
	}
	p, err := shape.FromData(tc.Path, rule)
	if err != nil {
		return nil, fmt.Errorf("convert path: %w", err)
	}
	if s := tc.Stroke; s != nil {
		pen := &shape.Stroke{
			Width:      s.Width,
			Cap:        s.Cap,
			Join:       s.Join,
			MiterLimit: s.MiterLimit,
			Dash:       s.Dash,
			DashPhase:  s.DashPhase,
		}
		p = pen.Outline(p)
	}
	if !tc.CTM.IsZero() {
		p.Transform(tc.CTM)
	}
	return p, nil
}

func generatePDF(tc testcases.TestCase, pdfPath string, grid float64) error {
	p, err := area(tc)
	if err != nil {
		return err
	}
	rule := p.FillRule()

	w, h := float64(tc.Width), float64(tc.Height)

	// Shapes far away from the origin are moved onto the page.
	// The sample points are moved by the same amount.
	var shift vec.Vec2
	if b, ok := p.Bounds(); ok && (b.URx > w || b.URy > h) {
		shift = vec.Vec2{X: w/2 - (b.LLx+b.URx)/2, Y: h/2 - (b.LLy+b.URy)/2}
		p.Transform(matrix.Matrix{1, 0, 0, 1, shift.X, shift.Y})
	}

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(0.85))
	drawPath(page, p.Data())
	if rule == shape.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	page.SetFillColor(color.DeviceGray(0.4))
	for y := grid / 2; y < h; y += grid {
		for x := grid / 2; x < w; x += grid {
			if p.Contains(x, y) {
				page.Rectangle(x-0.25, y-0.25, 0.5, 0.5)
			}
		}
	}
	page.Fill()

	page.SetLineWidth(0.3)
	page.SetLineCap(graphics.LineCapRound)
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetFillColor(color.DeviceGray(0))
	for _, pt := range tc.Inside {
		pt = pt.Add(shift)
		page.Rectangle(pt.X-1, pt.Y-1, 2, 2)
	}
	page.Fill()
	for _, pt := range tc.Outside {
		pt = pt.Add(shift)
		page.Rectangle(pt.X-1, pt.Y-1, 2, 2)
	}
	page.Stroke()

	return page.Close()
}

type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds the path to the page, converting quadratic curves to cubic
// ones since PDF has no quadratic Bezier curves.
func drawPath(page pathWriter, d *path.Data) {
	for cmd, pts := range d.Iter().ToCubic() {
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
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
