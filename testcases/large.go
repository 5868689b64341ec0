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
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// largeCases contains shapes on a large canvas, with many edges or
// subpaths.
var largeCases = []TestCase{
	{
		Name:    "large_rectangle",
		Path:    rectangle(50, 50, 462, 462),
		Inside:  pts(256, 256, 51, 461),
		Outside: pts(40, 256, 470, 256),
		Bounds:  box(50, 50, 462, 462),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "large_concentric_nonzero",
		Path:    concentricRectangles(256, 256, 200, 100),
		Inside:  pts(256, 256, 100, 256),
		Outside: pts(40, 256, 256, 500),
		Bounds:  box(56, 56, 456, 456),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "large_concentric_evenodd",
		Path:    concentricRectangles(256, 256, 200, 100),
		Rule:    EvenOdd,
		Inside:  pts(100, 256, 256, 80),
		Outside: pts(256, 256, 40, 256),
		Bounds:  box(56, 56, 456, 456),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "large_diamond",
		Path:    diamond(256, 256, 180),
		Inside:  pts(256, 256, 350, 256),
		Outside: pts(400, 400, 100, 100),
		Bounds:  box(76, 76, 436, 436),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "large_grid",
		Path:    rectangleGrid(8, 8, 512, 512, 4),
		Inside:  pts(32, 32, 480, 480),
		Outside: pts(64, 32, 2, 2),
		Bounds:  box(4, 4, 508, 508),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "large_polygon",
		Path:    regularPolygon(256, 256, 200, 1000),
		Inside:  pts(256, 256, 256, 60),
		Outside: pts(256, 50, 460, 460),
		Width:   512,
		Height:  512,
	},
}

// concentricRectangles builds two nested squares with the same
// orientation.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	p := rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	return appendRectangle(p, cx-inner, cy-inner, cx+inner, cy+inner)
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = appendRectangle(p, x1, y1, x2, y2)
		}
	}
	return p
}

// regularPolygon builds a regular polygon with n corners, which for large n
// approximates a circle by many short edges.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx+r, cy))
	for i := 1; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p.Close()
}
