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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestBoundsSquare(t *testing.T) {
	p := square(NonZero)
	want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

	b, ok := p.Bounds()
	if !ok || b != want {
		t.Errorf("Bounds() = %v, %t", b, ok)
	}
	b, ok = p.ControlBounds()
	if !ok || b != want {
		t.Errorf("ControlBounds() = %v, %t", b, ok)
	}
}

func TestBoundsEmpty(t *testing.T) {
	p := New(NonZero)
	if _, ok := p.Bounds(); ok {
		t.Error("empty path has bounds")
	}
	if _, ok := p.ControlBounds(); ok {
		t.Error("empty path has control bounds")
	}

	p.MoveTo(3, 4)
	if _, ok := p.Bounds(); ok {
		t.Error("MoveTo only path has visible bounds")
	}
	b, ok := p.ControlBounds()
	if want := (rect.Rect{LLx: 3, LLy: 4, URx: 3, URy: 4}); !ok || b != want {
		t.Errorf("ControlBounds() = %v, %t", b, ok)
	}
}

func TestBoundsCurve(t *testing.T) {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.QuadTo(10, 20, 20, 0)

	b, _ := p.Bounds()
	if d := cmp.Diff(rect.Rect{URx: 20, URy: 10}, b); d != "" {
		t.Errorf("visible bounds (-want +got):\n%s", d)
	}
	b, _ = p.ControlBounds()
	if d := cmp.Diff(rect.Rect{URx: 20, URy: 20}, b); d != "" {
		t.Errorf("control bounds (-want +got):\n%s", d)
	}
}

func TestBoundsZeroLength(t *testing.T) {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.MoveTo(100, 100)
	p.LineTo(100, 100)

	b, ok := p.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	want := rect.Rect{URx: 10, URy: 10}
	if b != want {
		t.Errorf("got %v, want %v", b, want)
	}

	dot := New(NonZero)
	dot.MoveTo(5, 5)
	dot.LineTo(5, 5)
	dot.Close()
	if b, ok := dot.Bounds(); ok {
		t.Errorf("zero-length line has visible bounds %v", b)
	}
	if b, ok := dot.ControlBounds(); !ok || b != (rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 5}) {
		t.Errorf("ControlBounds = %v, %t", b, ok)
	}
}

func TestBoundsInvalidation(t *testing.T) {
	type step struct {
		name   string
		mutate func(p *Path)
		want   rect.Rect
	}
	steps := []step{
		{"LineTo", func(p *Path) { p.LineTo(20, 20) }, rect.Rect{URx: 20, URy: 20}},
		{"QuadTo", func(p *Path) { p.QuadTo(30, 20, 30, 30) }, rect.Rect{URx: 30, URy: 30}},
		{"CubeTo", func(p *Path) { p.CubeTo(30, 40, 40, 40, 40, 30) }, rect.Rect{URx: 40, URy: 40}},
		{"Close", func(p *Path) { p.Close() }, rect.Rect{URx: 40, URy: 40}},
		{"MoveTo", func(p *Path) { p.MoveTo(-5, -5) }, rect.Rect{LLx: -5, LLy: -5, URx: 40, URy: 40}},
		{"SetLastPoint", func(p *Path) { p.SetLastPoint(-8, -5) }, rect.Rect{LLx: -8, LLy: -5, URx: 40, URy: 40}},
		{"RemoveLast", func(p *Path) { p.RemoveLast() }, rect.Rect{URx: 40, URy: 40}},
		{"Remove", func(p *Path) { p.Remove(40, 30) }, rect.Rect{URx: 30, URy: 30}},
		{"Transform", func(p *Path) { p.Transform(matrix.Matrix{2, 0, 0, 2, 1, 1}) }, rect.Rect{LLx: 1, LLy: 1, URx: 61, URy: 61}},
		{"Clear", func(p *Path) { p.Clear() }, rect.Rect{}},
	}

	p := New(NonZero)
	p.MoveTo(0, 0)
	for _, s := range steps {
		p.Bounds()
		p.ControlBounds()

		s.mutate(p)
		if p.visible.valid || p.logical.valid {
			t.Errorf("%s: cached box survived", s.name)
		}
		got, _ := p.ControlBounds()
		if d := cmp.Diff(s.want, got); d != "" {
			t.Errorf("%s: control bounds (-want +got):\n%s", s.name, d)
		}
	}
}

func TestBoundsAppend(t *testing.T) {
	p := square(NonZero)
	p.Bounds()

	q := New(NonZero)
	q.MoveTo(20, 20)
	q.LineTo(30, 25)
	if err := p.Append(q.Iterator(), false); err != nil {
		t.Fatal(err)
	}
	b, _ := p.Bounds()
	if want := (rect.Rect{URx: 30, URy: 25}); b != want {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestExtent(t *testing.T) {
	var e extent
	if _, ok := e.rect(); ok {
		t.Error("empty extent has a rectangle")
	}
	for _, pt := range []vec.Vec2{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}} {
		e.add(pt)
	}
	r, ok := e.rect()
	if want := (rect.Rect{LLx: -2, LLy: -1, URx: 4, URy: 5}); !ok || r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}
