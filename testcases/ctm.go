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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:    "scale_2x",
		Path:    rectangle(0, 0, 20, 20),
		Rule:    NonZero,
		Inside:  pts(44, 44, 25, 63),
		Outside: pts(23, 44, 65, 44),
		Bounds:  box(24, 24, 64, 64),
		Width:   128,
		Height:  128,
		CTM:     matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:    "scale_half",
		Path:    rectangle(0, 0, 80, 80),
		Rule:    NonZero,
		Inside:  pts(32, 32, 13, 51),
		Outside: pts(11, 32, 53, 53),
		Bounds:  box(12, 12, 52, 52),
		Width:   64,
		Height:  64,
		CTM:     matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:    "scale_10x",
		Path:    rectangle(0, 0, 4, 4),
		Rule:    NonZero,
		Inside:  pts(64, 64, 45, 83),
		Outside: pts(40, 64, 86, 64),
		Bounds:  box(44, 44, 84, 84),
		Width:   128,
		Height:  128,
		CTM:     matrix.Scale(10, 10).Translate(44, 44),
	},
	{
		Name:    "rotate_45deg",
		Path:    rectangle(-10, -10, 10, 10),
		Rule:    NonZero,
		Inside:  pts(32, 32, 45, 32, 32, 19),
		Outside: pts(43, 43, 47, 32, 21, 21),
		Bounds:  box(32-10*math.Sqrt2, 32-10*math.Sqrt2, 32+10*math.Sqrt2, 32+10*math.Sqrt2),
		Width:   64,
		Height:  64,
		CTM:     matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:    "rotate_90deg",
		Path:    rectangle(-15, -10, 15, 10),
		Rule:    NonZero,
		Inside:  pts(32, 45, 23, 32),
		Outside: pts(44, 32, 32, 48.5),
		Bounds:  box(22, 17, 42, 47),
		Width:   64,
		Height:  64,
		CTM:     matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:    "rotate_5deg",
		Path:    rectangle(-20, -10, 20, 10),
		Rule:    NonZero,
		Inside:  pts(32, 32, 50, 32),
		Outside: pts(32, 45, 55, 32),
		Width:   64,
		Height:  64,
		CTM:     matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:    "scale_2x_1y",
		Path:    rectangle(-10, -10, 10, 10),
		Rule:    NonZero,
		Inside:  pts(80, 32, 46, 24),
		Outside: pts(32, 32, 64, 44),
		Bounds:  box(44, 22, 84, 42),
		Width:   128,
		Height:  64,
		CTM:     matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:    "scale_1x_2y",
		Path:    rectangle(-10, -10, 10, 10),
		Rule:    NonZero,
		Inside:  pts(32, 80, 24, 46),
		Outside: pts(32, 40, 45, 64),
		Bounds:  box(22, 44, 42, 84),
		Width:   64,
		Height:  128,
		CTM:     matrix.Scale(1, 2).Translate(32, 64),
	},
	{
		Name:    "circle_to_ellipse",
		Path:    circle(0, 0, 15),
		Rule:    NonZero,
		Inside:  pts(64, 32, 92, 32, 64, 45),
		Outside: pts(64, 48, 88, 44, 96, 32),
		Width:   128,
		Height:  64,
		CTM:     matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:    "shear_horizontal",
		Path:    rectangle(-15, -15, 15, 15),
		Rule:    NonZero,
		Inside:  pts(32, 32, 52, 45),
		Outside: pts(20, 45, 44, 19),
		Bounds:  box(9.5, 17, 54.5, 47),
		Width:   64,
		Height:  64,
		CTM:     matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:    "shear_vertical",
		Path:    rectangle(-15, -15, 15, 15),
		Rule:    NonZero,
		Inside:  pts(32, 32, 45, 52),
		Outside: pts(45, 19, 19, 45),
		Bounds:  box(17, 9.5, 47, 54.5),
		Width:   64,
		Height:  64,
		CTM:     matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
	},

	// The stroke is computed in user space, so non-uniform scaling turns
	// round caps into half ellipses and scales the dash pattern.
	{
		Name:    "round_cap_nonuniform",
		Path:    horizontalLine(-20, 0, 20),
		Inside:  pts(64, 35, 18, 32, 110, 32),
		Outside: pts(64, 37, 14, 32, 114, 32),
		Width:   128,
		Height:  64,
		Stroke:  &Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
		CTM:     matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:    "round_join_rotated",
		Path:    cornerCentered(0, 0, 2*math.Pi/3),
		Inside:  pts(32, 32, 31, 33.73, 27, 23.34),
		Outside: pts(30, 35.46, 36, 25.07),
		Width:   64,
		Height:  64,
		Stroke:  &Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
		CTM:     matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:    "dash_scaled",
		Path:    horizontalLine(-25, 0, 25),
		Inside:  pts(19, 32, 67, 32, 99, 33),
		Outside: pts(27, 32, 75, 32, 67, 35),
		Width:   128,
		Height:  64,
		Stroke: &Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{5, 3},
		},
		CTM: matrix.Scale(2, 1).Translate(64, 32),
	},
}

// cornerCentered builds two arms of length 20 which meet at (cx, cy) with
// the given opening angle. The arms extend towards negative y.
func cornerCentered(cx, cy float64, angle float64) *path.Data {
	const length = 20.0
	dx := length * math.Sin(angle/2)
	dy := length * math.Cos(angle/2)
	return corner(cx-dx, cy-dy, cx, cy, cx+dx, cy-dy)
}
