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
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:    "triangle_nonzero",
		Path:    triangle(10, 50, 32, 10, 54, 50),
		Rule:    NonZero,
		Inside:  pts(32, 40, 32, 20),
		Outside: pts(10, 10, 60, 60, 20, 20),
		Bounds:  box(10, 10, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "triangle_evenodd",
		Path:    triangle(10, 50, 32, 10, 54, 50),
		Rule:    EvenOdd,
		Inside:  pts(32, 40, 32, 20),
		Outside: pts(10, 10, 60, 60, 20, 20),
		Bounds:  box(10, 10, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "triangle_open",
		Path:    openTriangle(10, 50, 32, 10, 54, 50),
		Rule:    NonZero,
		Inside:  pts(32, 40, 32, 20),
		Outside: pts(10, 10, 60, 60),
		Bounds:  box(10, 10, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "star_nonzero",
		Path:    fivePointStar(32, 32, 25),
		Rule:    NonZero,
		Inside:  pts(32, 32, 32, 12),
		Outside: pts(32, 50, 5, 5),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "star_evenodd",
		Path:    fivePointStar(32, 32, 25),
		Rule:    EvenOdd,
		Inside:  pts(32, 12),
		Outside: pts(32, 32, 32, 50, 5, 5),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rectangle",
		Path:    rectangle(10, 10, 44, 44),
		Rule:    NonZero,
		Inside:  pts(27, 27),
		Outside: pts(5, 5, 50, 27),
		Bounds:  box(10, 10, 44, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "diamond",
		Path:    diamond(32, 32, 20),
		Rule:    NonZero,
		Inside:  pts(32, 32, 40, 32),
		Outside: pts(45, 45, 12, 12),
		Bounds:  box(12, 12, 52, 52),
		Width:   64,
		Height:  64,
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return openTriangle(x1, y1, x2, y2, x3, y3).Close()
}

// openTriangle builds a triangular path without the closing segment.
func openTriangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}

// fivePointStar builds a five-pointed star (self-intersecting).
// The pentagon in the middle has winding number 2.
func fivePointStar(cx, cy, r float64) *path.Data {
	// five points, connecting every second point
	corners := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(corners[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(corners[i])
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// diamond builds a square rotated by 45 degrees, with the given distance
// from the center to each corner.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}
