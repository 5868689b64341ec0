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
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name:    "two_triangles",
		Path:    twoTriangles(16, 32, 48, 32, 12),
		Inside:  pts(16, 38, 48, 38),
		Outside: pts(32, 38, 16, 15),
		Bounds:  box(4, 20, 60, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "overlapping_rect_nonzero",
		Path:    overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Inside:  pts(32, 32, 15, 15, 50, 50),
		Outside: pts(50, 15, 15, 50),
		Bounds:  box(10, 10, 54, 54),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "overlapping_rect_evenodd",
		Path:    overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Rule:    EvenOdd,
		Inside:  pts(15, 15, 50, 50),
		Outside: pts(32, 32, 50, 15),
		Bounds:  box(10, 10, 54, 54),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "ring_shape",
		Path:    ringShape(32, 32, 25, 12),
		Rule:    EvenOdd,
		Inside:  pts(10, 32, 50, 50),
		Outside: pts(32, 32, 60, 60),
		Bounds:  box(7, 7, 57, 57),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "ring_reversed",
		Path:    circularRing(32, 32, 25, 12),
		Rule:    NonZero,
		Inside:  pts(32, 12, 14, 32),
		Outside: pts(32, 32, 36, 36, 60, 60),
		Bounds:  box(7, 7, 57, 57),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "multiple_rings",
		Path:    multipleRings(64, 64),
		Rule:    EvenOdd,
		Inside:  pts(34, 18, 94, 50, 64, 80),
		Outside: pts(34, 34, 94, 34, 64, 94, 64, 64),
		Bounds:  box(14, 14, 114, 114),
		Width:   128,
		Height:  128,
	},
	{
		Name:    "many_small_shapes",
		Path:    manySmallShapes(8, 8),
		Inside:  pts(10, 12, 108, 110),
		Outside: pts(17, 10, 10, 3),
		Bounds:  box(5, 5, 113, 113),
		Width:   128,
		Height:  128,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// overlappingRectangles builds two overlapping rectangles with the same
// orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := rectangle(x1a, y1a, x2a, y2a)
	return appendRectangle(p, x1b, y1b, x2b, y2b)
}

// ringShape builds a ring (outer square with inner square cutout).
// Both squares have the same orientation, so the hole only appears with
// the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return appendRectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// circularRing builds a circular ring where the inner circle has the
// opposite orientation, so that the hole appears with both fill rules.
func circularRing(cx, cy, outer, inner float64) *path.Data {
	p := circle(cx, cy, outer)
	hole := reverseCircle(cx, cy, inner)
	p.Cmds = append(p.Cmds, hole.Cmds...)
	p.Coords = append(p.Coords, hole.Coords...)
	return p
}

// multipleRings builds three square rings, 60 units apart.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, ring := range rings {
		p = appendRectangle(p, ring.cx-ring.outer, ring.cy-ring.outer, ring.cx+ring.outer, ring.cy+ring.outer)
		p = appendRectangle(p, ring.cx-ring.inner, ring.cy-ring.inner, ring.cx+ring.inner, ring.cy+ring.inner)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	size := 5.0
	spacing := 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing

			p = p.
				MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}

// appendRectangle adds a closed rectangular subpath to p.
func appendRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
