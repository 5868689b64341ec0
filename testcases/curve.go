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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:    "quadratic",
		Path:    quadraticCurve(10, 50, 32, 10, 54, 50),
		Inside:  pts(32, 40),
		Outside: pts(32, 25, 5, 45),
		Bounds:  box(10, 30, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "quadratic_deep",
		Path:    quadraticCurve(10, 50, 32, 5, 54, 50), // control point far from chord
		Inside:  pts(32, 35),
		Outside: pts(32, 20),
		Bounds:  box(10, 27.5, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "quadratic_below",
		Path:    quadraticCurve(10, 20, 32, 55, 54, 20), // curves down
		Inside:  pts(32, 30),
		Outside: pts(32, 45, 32, 15),
		Bounds:  box(10, 20, 54, 37.5),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "quadratic_degenerate",
		Path:    quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start point
		Outside: pts(32, 20, 32, 40),
		Bounds:  box(10, 32, 54, 32),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "cubic",
		Path:    cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Inside:  pts(32, 30),
		Outside: pts(32, 15, 5, 45),
		Bounds:  box(10, 20, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "cubic_deep",
		Path:    cubicCurve(10, 50, 15, 5, 49, 5, 54, 50), // control points far from chord
		Inside:  pts(32, 25),
		Outside: pts(32, 10),
		Bounds:  box(10, 16.25, 54, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "cubic_degenerate",
		Path:    cubicCurve(32, 32, 32, 32, 32, 32, 32, 32), // all control points coincident
		Outside: pts(10, 10, 33, 32),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "circle",
		Path:    circle(32, 32, 25),
		Inside:  pts(32, 32, 45, 45),
		Outside: pts(32, 5, 52, 52),
		Bounds:  box(7, 7, 57, 57),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "circle_small",
		Path:    circle(32, 32, 5),
		Inside:  pts(32, 32, 34, 34),
		Outside: pts(38, 32, 32, 26),
		Bounds:  box(27, 27, 37, 37),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "ellipse",
		Path:    ellipse(32, 32, 28, 14),
		Inside:  pts(32, 32, 50, 32),
		Outside: pts(32, 16, 58, 40),
		Bounds:  box(4, 18, 60, 46),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "arc",
		Path:    arc(32, 32, 25, 0, 0.75), // partial circle (3/4)
		Inside:  pts(20, 20, 20, 44, 44, 20),
		Outside: pts(44, 44, 60, 60),
		Bounds:  box(7, 7, 57, 57),
		Width:   64,
		Height:  64,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}

// reverseCircle builds a circle like circle, but traversed in the opposite
// direction.
func reverseCircle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// arc builds a pie slice covering the given fraction of a full circle,
// in multiples of a quarter, starting from the right.
func arc(cx, cy, r float64, startFraction, endFraction float64) *path.Data {
	k := r * kappa

	totalFraction := endFraction - startFraction
	if totalFraction <= 0 {
		return &path.Data{}
	}
	numQuadrants := min(max(int(totalFraction*4), 1), 4)

	// start at center
	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))

	if numQuadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if numQuadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if numQuadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if numQuadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p.Close()
}
