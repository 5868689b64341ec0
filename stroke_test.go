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
package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

func horizontalLine() *Path {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	return p
}

type strokePoint struct {
	x, y float64
	want bool
}

func checkPoints(t *testing.T, p *Path, s *Stroke, points []strokePoint) {
	t.Helper()
	for _, pt := range points {
		if got := p.StrokeContains(pt.x, pt.y, s); got != pt.want {
			t.Errorf("StrokeContains(%g, %g) = %t, want %t", pt.x, pt.y, got, pt.want)
		}
	}
}

func TestStrokeButt(t *testing.T) {
	s := NewStroke(2)
	out := s.Outline(horizontalLine())

	if out.FillRule() != NonZero {
		t.Errorf("outline uses %s", out.FillRule())
	}
	if !out.IsPolyline() || !out.IsClosed() {
		t.Error("outline is not a closed polygon")
	}
	want := "M0 1 L10 1 L10 -1 L0 -1 Z"
	if got := out.String(); got != want {
		t.Errorf("outline = %q, want %q", got, want)
	}

	checkPoints(t, horizontalLine(), s, []strokePoint{
		{5, 0.5, true},
		{5, -0.5, true},
		{5, 1.5, false},
		{-0.5, 0, false},
		{10.5, 0, false},
	})
}

func TestStrokeCaps(t *testing.T) {
	square := NewStroke(2)
	square.Cap = graphics.LineCapSquare
	b, ok := square.Outline(horizontalLine()).Bounds()
	if !ok {
		t.Fatal("empty outline")
	}
	want := rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 1}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("square cap bounds (-want +got):\n%s", d)
	}
	checkPoints(t, horizontalLine(), square, []strokePoint{
		{-0.5, 0.5, true},
		{10.9, -0.9, true},
		{11.1, 0, false},
	})

	round := NewStroke(2)
	round.Cap = graphics.LineCapRound
	checkPoints(t, horizontalLine(), round, []strokePoint{
		{10.5, 0, true},
		{-0.5, 0, true},
		{10.9, 0.9, false},
		{-0.9, -0.9, false},
	})
	b, _ = round.Outline(horizontalLine()).Bounds()
	if d := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("round cap bounds (-want +got):\n%s", d)
	}
}

func TestStrokeClosedSquare(t *testing.T) {
	miter := NewStroke(2)
	checkPoints(t, square(NonZero), miter, []strokePoint{
		{5, 5, false},
		{5, 0.5, true},
		{5, 10.5, true},
		{-0.5, 5, true},
		{-0.9, -0.9, true},
		{10.9, 10.9, true},
		{5, -1.5, false},
		{1.5, 1.5, false},
	})
	b, _ := miter.Outline(square(NonZero)).Bounds()
	want := rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 11}
	if d := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("miter bounds (-want +got):\n%s", d)
	}

	bevel := NewStroke(2)
	bevel.Join = graphics.LineJoinBevel
	checkPoints(t, square(NonZero), bevel, []strokePoint{
		{-0.9, -0.9, false},
		{-0.4, -0.4, true},
		{5, 5, false},
	})

	// the miter length of a right angle is √2 times the line width
	limited := NewStroke(2)
	limited.MiterLimit = 1.2
	checkPoints(t, square(NonZero), limited, []strokePoint{
		{-0.9, -0.9, false},
	})

	round := NewStroke(2)
	round.Join = graphics.LineJoinRound
	checkPoints(t, square(NonZero), round, []strokePoint{
		{-0.9, -0.9, false},
		{-0.6, -0.6, true},
	})
}

func TestStrokeDash(t *testing.T) {
	s := NewStroke(2)
	s.Dash = []float64{2, 2}
	checkPoints(t, horizontalLine(), s, []strokePoint{
		{1, 0, true},
		{3, 0, false},
		{5, 0, true},
		{7, 0, false},
		{9, 0, true},
	})

	s.DashPhase = 2
	checkPoints(t, horizontalLine(), s, []strokePoint{
		{1, 0, false},
		{3, 0, true},
		{5, 0, false},
	})

	// an odd number of elements is repeated
	s = NewStroke(2)
	s.Dash = []float64{3}
	checkPoints(t, horizontalLine(), s, []strokePoint{
		{1, 0, true},
		{4, 0, false},
		{7, 0, true},
	})
}

func TestStrokeDegenerate(t *testing.T) {
	dot := New(NonZero)
	dot.MoveTo(5, 5)
	dot.LineTo(5, 5)

	s := NewStroke(2)
	if out := s.Outline(dot); !out.IsEmpty() {
		t.Errorf("butt cap dot has outline %s", out)
	}

	s.Cap = graphics.LineCapRound
	checkPoints(t, dot, s, []strokePoint{
		{5.5, 5, true},
		{5, 4.5, true},
		{6.5, 5, false},
	})

	if out := NewStroke(0).Outline(horizontalLine()); !out.IsEmpty() {
		t.Errorf("zero width stroke has outline %s", out)
	}
	if out := NewStroke(1).Outline(New(NonZero)); !out.IsEmpty() {
		t.Errorf("empty path has outline %s", out)
	}
}

func TestStrokeCurve(t *testing.T) {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.QuadTo(10, 10, 20, 0)

	s := NewStroke(1)
	checkPoints(t, p, s, []strokePoint{
		{10, 5, true},
		{10, 5.4, true},
		{10, 6, false},
		{10, 4, false},
	})
}

func TestStrokeSubpaths(t *testing.T) {
	p := horizontalLine()
	p.MoveTo(0, 20)
	p.LineTo(10, 20)

	out := NewStroke(2).Outline(p)
	moves := 0
	for s := range out.Segments() {
		if s.Cmd == CmdMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("outline has %d polygons, want 2", moves)
	}
	checkPoints(t, p, NewStroke(2), []strokePoint{
		{5, 0, true},
		{5, 20, true},
		{5, 10, false},
	})
}
