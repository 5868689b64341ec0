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

var complexCases = []TestCase{
	{
		Name:    "mixed_lines_curves",
		Path:    mixedLinesCurves(),
		Inside:  pts(32, 40, 32, 25, 32, 55),
		Outside: pts(5, 5, 32, 15, 32, 62),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "glyph_like",
		Path:    glyphLikeShape(),
		Inside:  pts(32, 24, 47, 20),
		Outside: pts(32, 40, 10, 10, 32, 58, 40, 14),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "figure_eight",
		Path:    figureEight(32, 32, 20),
		Inside:  pts(32, 24, 32, 40),
		Outside: pts(32, 10, 45, 32, 10, 10),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "figure_eight_evenodd",
		Path:    figureEight(32, 32, 20),
		Rule:    EvenOdd,
		Inside:  pts(32, 24, 32, 40),
		Outside: pts(32, 10, 45, 32),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "tight_curve_open",
		Path:    tightCurve(32, 32, 15),
		Inside:  pts(32, 25, 32, 44),
		Outside: pts(32, 50, 10, 32, 32, 14),
		Bounds:  box(17, 17, 47, 47),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "zigzag_open",
		Path:    zigzagPath(10, 32, 54, 20),
		Inside:  pts(18.8, 14),
		Outside: pts(32, 5, 5, 50, 60, 60),
		Bounds:  box(10, 12, 54, 52),
		Width:   64,
		Height:  64,
	},
}

// mixedLinesCurves builds a path combining line segments and Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape similar to a simplified lowercase 'a':
// a bowl with a stem on the right, and a counter with reversed orientation.
func glyphLikeShape() *path.Data {
	cx, cy := 32.0, 38.0
	r := 18.0
	k := r * kappa

	p := (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	ir := 8.0
	ik := ir * kappa
	return p.
		LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// figureEight builds a closed figure-eight made from two loops which touch
// at (cx, cy).
func figureEight(cx, cy, size float64) *path.Data {
	r := size / 2
	k := r * kappa
	topCy := cy - r/2
	botCy := cy + r/2

	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+k, cy-r/4), pt(cx+r, topCy-k/2), pt(cx+r, topCy)).
		CubeTo(pt(cx+r, topCy-k), pt(cx+k, topCy-r), pt(cx, topCy-r)).
		CubeTo(pt(cx-k, topCy-r), pt(cx-r, topCy-k), pt(cx-r, topCy)).
		CubeTo(pt(cx-r, topCy+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		CubeTo(pt(cx-k, cy+r/4), pt(cx-r, botCy-k/2), pt(cx-r, botCy)).
		CubeTo(pt(cx-r, botCy+k), pt(cx-k, botCy+r), pt(cx, botCy+r)).
		CubeTo(pt(cx+k, botCy+r), pt(cx+r, botCy+k), pt(cx+r, botCy)).
		CubeTo(pt(cx+r, botCy-k/2), pt(cx+k, cy+r/4), pt(cx, cy)).
		Close()
}

// tightCurve builds an open U-shaped path. When filled, the implicit
// closing line across the top turns it into a solid shape.
func tightCurve(cx, cy, size float64) *path.Data {
	r := size
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-size)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-size))
}

// zigzagPath builds an open zigzag line.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	segments := 5
	segWidth := (x2 - x1) / float64(segments)

	p := (&path.Data{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		x := x1 + float64(i)*segWidth
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		p = p.LineTo(pt(x, y))
	}
	return p
}
