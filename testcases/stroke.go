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
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:    "line_butt",
		Path:    horizontalLine(10, 32, 54),
		Inside:  pts(32, 32, 11, 35, 53, 29),
		Outside: pts(8, 32, 56, 32, 32, 37),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:    "line_round",
		Path:    horizontalLine(10, 32, 54),
		Inside:  pts(32, 32, 7, 32, 57, 33),
		Outside: pts(7, 36, 57, 28, 32, 37),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:    "line_square",
		Path:    horizontalLine(10, 32, 54),
		Inside:  pts(7, 35, 57, 29),
		Outside: pts(5, 32, 59, 32, 32, 37),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:    "corner_miter",
		Path:    corner(10, 50, 32, 14, 54, 50),
		Inside:  pts(32, 13, 32, 10, 21, 32),
		Outside: pts(32, 7, 32, 24),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:    "corner_round",
		Path:    corner(10, 50, 32, 14, 54, 50),
		Inside:  pts(32, 13, 32, 12, 21, 32),
		Outside: pts(32, 10, 32, 24),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:    "corner_bevel",
		Path:    corner(10, 50, 32, 14, 54, 50),
		Inside:  pts(32, 13, 21, 32),
		Outside: pts(32, 12, 32, 10, 32, 24),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
	{
		Name:    "corner_miter_limit",
		Path:    corner(10, 50, 32, 14, 54, 50),
		Inside:  pts(32, 13),
		Outside: pts(32, 12, 32, 10),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 1.5},
	},
	{
		Name:    "dashed",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(9, 32, 21, 32, 33, 33),
		Outside: pts(15, 32, 27, 32, 39, 32, 9, 35),
		Width:   64,
		Height:  64,
		Stroke: &Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{8, 4},
		},
	},
	{
		Name:    "closed_square",
		Path:    rectangle(16, 16, 48, 48),
		Inside:  pts(16, 16, 15, 15, 32, 17, 47, 32),
		Outside: pts(32, 32, 13, 13, 20, 20),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}
