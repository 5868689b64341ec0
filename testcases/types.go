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

// Package testcases provides a corpus of paths together with points which
// are known to be inside or outside of each path.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single containment test.
type TestCase struct {
	Name    string     // lowercase a-z, 0-9 and _ only
	Path    *path.Data // the geometry to test
	Rule    FillRule   // fill rule used for containment
	Inside  []vec.Vec2 // points which must be contained in the path
	Outside []vec.Vec2 // points which must not be contained in the path
	Bounds  *rect.Rect // the visible bounding box, if it is known exactly
	Width   int        // canvas width in pixels
	Height  int        // canvas height in pixels

	// Stroke, if set, makes the points refer to the area covered when
	// the path is stroked. Rule is then ignored.
	Stroke *Stroke

	// CTM maps the path (or its stroke outline) to the coordinates used
	// by the points and the bounds. The zero matrix means no transform.
	CTM matrix.Matrix
}

// Stroke describes the pen for stroked test cases.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// pts creates a list of points from alternating x and y coordinates.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}

// box creates an expected bounding box.
func box(llx, lly, urx, ury float64) *rect.Rect {
	return &rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}
}
