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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/primitive"
)

// Transform applies the affine transformation m to every point of the path.
// Matrices use the PDF convention, mapping (x, y) to
// (m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]).
func (p *Path) Transform(m matrix.Matrix) {
	apply := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	for i := range p.segs {
		s := &p.segs[i]
		s.From = apply(s.From)
		s.To = apply(s.To)
		switch s.Cmd {
		case CmdQuadTo:
			s.C1 = apply(s.C1)
		case CmdCubeTo:
			s.C1 = apply(s.C1)
			s.C2 = apply(s.C2)
		}
	}
	p.invalidate()
}

// Length returns the total length of all lines and curves in the path,
// including the closing lines of closed subpaths. Curves are measured
// along their flattened approximation.
func (p *Path) Length() float64 {
	total := 0.0
	it := p.Flatten(DefaultFlatness/10, DefaultLimit)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		if s.Cmd == CmdLineTo || s.Cmd == CmdClose {
			total += s.To.Sub(s.From).Length()
		}
	}
	return total
}

// DistanceSquared returns the squared distance from (x, y) to the nearest
// point on a line or curve of the path. If the path has no lines or curves,
// +Inf is returned.
func (p *Path) DistanceSquared(x, y float64) float64 {
	_, d := p.closest(x, y)
	return d
}

// ClosestPoint returns the point of the path's lines and curves which is
// closest to (x, y). The second return value is false if the path has no
// lines or curves.
func (p *Path) ClosestPoint(x, y float64) (vec.Vec2, bool) {
	pt, d := p.closest(x, y)
	return pt, !math.IsInf(d, 1)
}

func (p *Path) closest(x, y float64) (vec.Vec2, float64) {
	best := math.Inf(1)
	var bestPt vec.Vec2
	it := p.Flatten(DefaultFlatness/10, DefaultLimit)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		if s.Cmd != CmdLineTo && s.Cmd != CmdClose {
			continue
		}
		qx, qy := primitive.ClosestPointOnSegment(x, y, s.From.X, s.From.Y, s.To.X, s.To.Y)
		dx := x - qx
		dy := y - qy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bestPt = vec.Vec2{X: qx, Y: qy}
		}
	}
	return bestPt, best
}
