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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var sizes = []int{20, 200, 2000}

// BenchmarkContainsO tests every pixel centre of a size x size grid against
// an "O" shape, for comparison with BenchmarkVectorO.
func BenchmarkContainsO(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := makeOPath(float64(size))
			step := max(1, size/100)

			b.ReportAllocs()
			for b.Loop() {
				for y := 0; y < size; y += step {
					for x := 0; x < size; x += step {
						p.Contains(float64(x)+0.5, float64(y)+0.5)
					}
				}
			}
		})
	}
}

func BenchmarkIntersectsO(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := makeOPath(float64(size))
			s := float64(size)

			b.ReportAllocs()
			for b.Loop() {
				p.IntersectsRect(0.45*s, 0.45*s, 0.1*s, 0.1*s)
				p.IntersectsCircle(0.5*s, 0.5*s, 0.2*s)
				p.IntersectsLine(0, 0, s, s)
			}
		})
	}
}

func BenchmarkFlattenO(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := makeOPath(float64(size))

			b.ReportAllocs()
			for b.Loop() {
				it := p.Flatten(DefaultFlatness, DefaultLimit)
				for _, ok := it.Next(); ok; _, ok = it.Next() {
				}
			}
		})
	}
}

func BenchmarkBoundsO(b *testing.B) {
	p := makeOPath(200)

	b.ReportAllocs()
	for b.Loop() {
		p.invalidate()
		p.Bounds()
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeOPath creates an "O" shape centred in a size x size square.
// The outer circle is counter-clockwise, the inner circle is clockwise.
func makeOPath(size float64) *Path {
	p := New(NonZero)
	c := size / 2
	addCircle(p, c, c, size*0.45, false)
	addCircle(p, c, c, size*0.30, true)
	return p
}

// circleKappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleKappa = 0.5522847498

func addCircle(p *Path, cx, cy, r float64, clockwise bool) {
	kr := circleKappa * r
	p.MoveTo(cx, cy-r)
	if clockwise {
		p.CubeTo(cx-kr, cy-r, cx-r, cy-kr, cx-r, cy)
		p.CubeTo(cx-r, cy+kr, cx-kr, cy+r, cx, cy+r)
		p.CubeTo(cx+kr, cy+r, cx+r, cy+kr, cx+r, cy)
		p.CubeTo(cx+r, cy-kr, cx+kr, cy-r, cx, cy-r)
	} else {
		p.CubeTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
		p.CubeTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
		p.CubeTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
		p.CubeTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	}
	p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(circleKappa)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

func TestOPath(t *testing.T) {
	p := makeOPath(200)
	if p.Contains(100, 100) {
		t.Error("centre of the O is filled")
	}
	if !p.Contains(100, 25) {
		t.Error("ring of the O is not filled")
	}
	if p.Contains(5, 5) {
		t.Error("corner is filled")
	}
	if !p.IsClosed() {
		t.Error("O is not closed")
	}
}
