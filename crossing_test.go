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
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestCrossingsSquare(t *testing.T) {
	p := square(NonZero)

	cases := []struct {
		x, y float64
		want int
	}{
		{5, 5, 1},
		{20, 20, 0},
		{-5, 5, 0},
		{5, -5, 0},
		{10, 5, Intersects},
		{0, 0, Intersects},
		{10, 10, Intersects},
	}
	for _, tc := range cases {
		got, err := Crossings(p.Iterator(), Point{X: tc.x, Y: tc.y}, Standard)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("(%g, %g): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

// openSquare returns M(0,0) L(10,0) L(10,10) L(0,10) without Close.
func openSquare() *Path {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	return p
}

func TestCrossingsModes(t *testing.T) {
	p := openSquare()

	cases := []struct {
		q    Query
		mode Mode
		want int
	}{
		{Point{X: 5, Y: 5}, Standard, 1},
		{Point{X: 5, Y: 5}, AutoClose, 1},
		{Point{X: 5, Y: 5}, OnlyIntersectWhenOpen, 0},
		{Point{X: -5, Y: 5}, Standard, 1},
		{Point{X: -5, Y: 5}, AutoClose, 0},
		{Point{X: -5, Y: 5}, OnlyIntersectWhenOpen, 0},
		{Point{X: 0, Y: 5}, AutoClose, Intersects},
		{Point{X: 0, Y: 5}, OnlyIntersectWhenOpen, 0},
		{Point{X: 10, Y: 5}, OnlyIntersectWhenOpen, Intersects},
	}
	for _, tc := range cases {
		got, err := Crossings(p.Iterator(), tc.q, tc.mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%v, %s: got %d, want %d", tc.q, tc.mode, got, tc.want)
		}
	}
}

func TestCrossingsOpenRect(t *testing.T) {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	inside := Rect{LLx: 6, LLy: 1, URx: 8, URy: 3}
	touching := Rect{LLx: 9, LLy: 4, URx: 11, URy: 6}

	for _, mode := range []Mode{Standard, AutoClose} {
		got, err := Crossings(p.Iterator(), inside, mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != 2 {
			t.Errorf("%s: got %d, want 2", mode, got)
		}
	}

	got, err := Crossings(p.Iterator(), inside, OnlyIntersectWhenOpen)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("open path: got %d, want 0", got)
	}

	for _, mode := range []Mode{Standard, AutoClose, OnlyIntersectWhenOpen} {
		got, err := Crossings(p.Iterator(), touching, mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != Intersects {
			t.Errorf("%s: got %d, want Intersects", mode, got)
		}
	}
}

func TestCrossingsCurve(t *testing.T) {
	p := New(NonZero)
	p.MoveTo(0, 0)
	p.QuadTo(10, 20, 20, 0)
	p.Close()

	got, err := Crossings(p.Iterator(), Point{X: 10, Y: 5}, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("below the apex: got %d, want -1", got)
	}

	got, err = Crossings(p.Iterator(), Point{X: 10, Y: 15}, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("above the apex: got %d, want 0", got)
	}
}

func TestCrossingsSubpathsAccumulate(t *testing.T) {
	p := square(NonZero)
	p.MoveTo(2, 2)
	p.LineTo(8, 2)
	p.LineTo(8, 8)
	p.LineTo(2, 8)
	p.Close()

	got, err := Crossings(p.Iterator(), Point{X: 5, Y: 5}, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

// failingIterator yields a MoveTo and then reports an error.
type failingIterator struct {
	pos int
	err error
}

func (it *failingIterator) Next() (Segment, bool) {
	it.pos++
	if it.pos == 1 {
		return Segment{Cmd: CmdMoveTo}, true
	}
	return Segment{}, false
}

func (it *failingIterator) Err() error {
	if it.pos > 1 {
		return it.err
	}
	return nil
}

func (it *failingIterator) FillRule() FillRule { return NonZero }

func TestCrossingsErrors(t *testing.T) {
	q := Point{X: 1, Y: 1}

	n, err := Crossings(NewSliceIterator(nil, NonZero), q, Standard)
	if n != 0 || err != nil {
		t.Errorf("empty iterator: got %d, %v", n, err)
	}

	noMove := NewSliceIterator([]Segment{{Cmd: CmdLineTo}}, NonZero)
	if _, err := Crossings(noMove, q, Standard); !errors.Is(err, ErrMissingMove) {
		t.Errorf("got error %v, want %v", err, ErrMissingMove)
	}

	invalid := NewSliceIterator([]Segment{{Cmd: CmdMoveTo}, {Cmd: 0}}, NonZero)
	if _, err := Crossings(invalid, q, Standard); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCommand)
	}

	errBroken := errors.New("broken")
	if _, err := Crossings(&failingIterator{err: errBroken}, q, AutoClose); err != errBroken {
		t.Errorf("got error %v, want %v", err, errBroken)
	}

	var e *Error
	_, err = Crossings(noMove, q, Standard)
	if !errors.As(err, &e) || e.Op != "Crossings" {
		t.Errorf("error %v does not name the operation", err)
	}
}

func TestCrossingsCloseIdempotent(t *testing.T) {
	p := square(NonZero)
	q := square(NonZero)
	q.Close()
	for _, pt := range []vec.Vec2{{X: 5, Y: 5}, {X: -5, Y: 5}, {X: 15, Y: 5}} {
		a, _ := Crossings(p.Iterator(), Point(pt), AutoClose)
		b, _ := Crossings(q.Iterator(), Point(pt), AutoClose)
		if a != b {
			t.Errorf("%v: %d != %d", pt, a, b)
		}
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		Standard:              "Standard",
		AutoClose:             "AutoClose",
		OnlyIntersectWhenOpen: "OnlyIntersectWhenOpen",
	} {
		if got := mode.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestCrossingsOpenLastSubpath(t *testing.T) {
	p := square(NonZero)
	p.MoveTo(50, 50)
	p.LineTo(60, 50)

	inside := Rect{LLx: 4, LLy: 4, URx: 6, URy: 6}
	want, _ := Crossings(square(NonZero).Iterator(), inside, Standard)
	if want == 0 {
		t.Fatal("rectangle is not inside the square")
	}

	cases := []struct {
		mode Mode
		want int
	}{
		{Standard, want},
		{AutoClose, want},
		{OnlyIntersectWhenOpen, 0},
	}
	for _, tc := range cases {
		got, err := Crossings(p.Iterator(), inside, tc.mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.mode, got, tc.want)
		}
	}

	// a closed last subpath keeps the crossings of earlier open ones
	q := openSquare()
	q.MoveTo(50, 50)
	q.LineTo(60, 50)
	q.LineTo(60, 60)
	q.Close()
	for _, mode := range []Mode{Standard, AutoClose, OnlyIntersectWhenOpen} {
		got, err := Crossings(q.Iterator(), Point{X: 5, Y: 5}, mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("%s: got %d, want 1", mode, got)
		}
	}
}

func TestCrossingsOnlyLastSubpathCloses(t *testing.T) {
	p := openSquare()
	p.MoveTo(50, 50)
	p.LineTo(60, 50)
	p.LineTo(60, 60)

	// The first subpath is not closed, so its right edge is the only one
	// to the right of (-5, 5).
	got, err := Crossings(p.Iterator(), Point{X: -5, Y: 5}, AutoClose)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}

	// The last subpath is closed by the line from (60, 60) to (50, 50).
	got, err = Crossings(p.Iterator(), Point{X: 58, Y: 55}, AutoClose)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}
