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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func segments(p *Path) []Segment {
	var res []Segment
	for s := range p.Segments() {
		res = append(res, s)
	}
	return res
}

func TestParseSVG(t *testing.T) {
	cases := []struct {
		in   string
		want func() *Path
	}{
		{"M0 0 L10 0 L10 10 L0 10 Z", func() *Path { return square(NonZero) }},
		{"M0,0 10,0 10,10 0,10z", func() *Path { return square(NonZero) }},
		{"m0 0 h10 v10 h-10 z", func() *Path { return square(NonZero) }},
		{"M0 0 H10 V10 H0 Z", func() *Path { return square(NonZero) }},
		{"m1 1 l2 0 l0 2 z l-1 0", func() *Path {
			p := New(NonZero)
			p.MoveTo(1, 1)
			p.LineTo(3, 1)
			p.LineTo(3, 3)
			p.Close()
			p.LineTo(0, 1)
			return p
		}},
		{"M-1-2L1e1 2.5e-1", func() *Path {
			p := New(NonZero)
			p.MoveTo(-1, -2)
			p.LineTo(10, 0.25)
			return p
		}},
		{"M0 0 Q5 10 10 0 T20 0", func() *Path {
			p := New(NonZero)
			p.MoveTo(0, 0)
			p.QuadTo(5, 10, 10, 0)
			p.QuadTo(15, -10, 20, 0)
			return p
		}},
		{"M0 0 C1 2 3 4 5 6 S9 10 11 12", func() *Path {
			p := New(NonZero)
			p.MoveTo(0, 0)
			p.CubeTo(1, 2, 3, 4, 5, 6)
			p.CubeTo(7, 8, 9, 10, 11, 12)
			return p
		}},
		{"M0 0 s1 1 2 2 t1 0", func() *Path {
			p := New(NonZero)
			p.MoveTo(0, 0)
			p.CubeTo(0, 0, 1, 1, 2, 2)
			p.QuadTo(2, 2, 3, 2)
			return p
		}},
		{"M1 1 M2 2 L3 3", func() *Path {
			p := New(NonZero)
			p.MoveTo(2, 2)
			p.LineTo(3, 3)
			return p
		}},
		{"", func() *Path { return New(NonZero) }},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSVG(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(segments(tc.want()), segments(got)); d != "" {
				t.Errorf("segments (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseSVGErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"M0 0 A5 5 0 0 1 10 0", ErrArc},
		{"L1 1", ErrMissingMove},
		{"M0 0 L1", nil},
		{"M0 0 X1 1", nil},
		{"10 10", nil},
	}
	for _, tc := range cases {
		_, err := ParseSVG(tc.in)
		if err == nil {
			t.Errorf("%q: no error", tc.in)
			continue
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%q: got error %v, want %v", tc.in, err, tc.want)
		}
	}

	mustPanic(t, ErrArc, func() { MustParseSVG("M0 0 a1 1 0 0 0 1 1") })
}

func TestParseSVGErrorPosition(t *testing.T) {
	cases := []struct {
		in  string
		pos string
	}{
		{"M0 0 X1 1", "position 6"},
		{"M0 0 L1", "position 8"},
		{"10 10", "position 1"},
		{"M0 0 Z 3", "position 8"},
	}
	for _, tc := range cases {
		_, err := ParseSVG(tc.in)
		if err == nil {
			t.Errorf("%q: no error", tc.in)
			continue
		}
		if !strings.HasSuffix(err.Error(), tc.pos) {
			t.Errorf("%q: got %q, want %s", tc.in, err, tc.pos)
		}
	}
}

func TestSVGRoundTrip(t *testing.T) {
	p := New(EvenOdd)
	p.MoveTo(0.5, -1)
	p.LineTo(10, 0)
	p.QuadTo(12, 3, 10, 6)
	p.CubeTo(8, 9, 2, 9, 0, 6)
	p.Close()
	p.MoveTo(3, 3)
	p.LineTo(4, 4)

	s := p.String()
	want := "M0.5 -1 L10 0 Q12 3 10 6 C8 9 2 9 0 6 Z M3 3 L4 4"
	if s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}

	q, err := ParseSVG(s)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(segments(p), segments(q)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
	if q.FillRule() != NonZero {
		t.Error("parsed path does not use NonZero")
	}
}

func TestSegmentString(t *testing.T) {
	s := Segment{
		Cmd:  CmdLineTo,
		From: vec.Vec2{X: 0, Y: 0},
		To:   vec.Vec2{X: 10, Y: 0},
	}
	if got := s.String(); got != "L(0 0 -> 10 0)" {
		t.Errorf("got %q", got)
	}
}
