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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/primitive"
)

// Point is a query for a single point.
// It casts one ray, so its crossing count is the winding number.
type Point vec.Vec2

// Crossings implements [Query].
func (pt Point) Crossings(crossings int, a, b vec.Vec2) int {
	c := primitive.PointCrossings(pt.X, pt.Y, a.X, a.Y, b.X, b.Y)
	if c == Intersects {
		return Intersects
	}
	return crossings + c
}

func (Point) rays() int { return 1 }

// Rect is a query for an axis-aligned rectangle.
// Rectangles without positive width and height never touch anything.
type Rect rect.Rect

// Crossings implements [Query].
func (r Rect) Crossings(crossings int, a, b vec.Vec2) int {
	return primitive.RectCrossings(crossings, r.LLx, r.LLy, r.URx, r.URy, a.X, a.Y, b.X, b.Y)
}

func (r Rect) degenerate() bool {
	return !(r.URx > r.LLx && r.URy > r.LLy)
}

// Circle is a query for a closed disk.
// Circles without positive radius never touch anything.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Crossings implements [Query].
func (c Circle) Crossings(crossings int, a, b vec.Vec2) int {
	return primitive.CircleCrossings(crossings, c.Center.X, c.Center.Y, c.Radius, a.X, a.Y, b.X, b.Y)
}

func (c Circle) degenerate() bool {
	return !(c.Radius > 0)
}

// Ellipse is a query for the closed axis-aligned ellipse inscribed in a
// rectangle. Ellipses without positive width and height never touch
// anything.
type Ellipse rect.Rect

// Crossings implements [Query].
func (e Ellipse) Crossings(crossings int, a, b vec.Vec2) int {
	return primitive.EllipseCrossings(crossings, e.LLx, e.LLy, e.URx-e.LLx, e.URy-e.LLy, a.X, a.Y, b.X, b.Y)
}

func (e Ellipse) degenerate() bool {
	return !(e.URx > e.LLx && e.URy > e.LLy)
}

// Line is a query for the closed straight segment from A to B.
type Line struct {
	A, B vec.Vec2
}

// Crossings implements [Query].
func (l Line) Crossings(crossings int, a, b vec.Vec2) int {
	return primitive.SegmentCrossings(crossings, l.A.X, l.A.Y, l.B.X, l.B.Y, a.X, a.Y, b.X, b.Y)
}

// raysOf returns the number of rays cast by q. Every query except [Point]
// casts two rays, so that a boundary crossing is counted twice.
func raysOf(q Query) int {
	if r, ok := q.(interface{ rays() int }); ok {
		return r.rays()
	}
	return 2
}

func isDegenerate(q Query) bool {
	d, ok := q.(interface{ degenerate() bool })
	return ok && d.degenerate()
}

// Contains reports whether the point (x, y) is inside the path.
// If the last subpath is open, it is closed by a straight line back to its
// start. Points on the boundary are inside.
func (p *Path) Contains(x, y float64) bool {
	n := p.crossings(Point{X: x, Y: y}, AutoClose)
	if n == Intersects {
		return true
	}
	return p.rule.Fills(n)
}

// ContainsPoint reports whether pt is inside the path.
// See [Path.Contains].
func (p *Path) ContainsPoint(pt vec.Vec2) bool {
	return p.Contains(pt.X, pt.Y)
}

// ContainsRect reports whether the rectangle with corner (x, y), width w
// and height h lies completely inside the path. The rectangle must not
// touch the boundary of the path.
func (p *Path) ContainsRect(x, y, w, h float64) bool {
	q := Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
	if q.degenerate() || p.IsEmpty() {
		return false
	}
	n := p.crossings(q, AutoClose)
	if n == Intersects {
		return false
	}
	return n&p.rule.mask(2) != 0
}

// Intersects reports whether the query q touches the boundary or the
// interior of the path. If the last subpath is open, only edges touching
// q count.
//
// For a [Shadow], the fill rule is applied to one vertex of every subpath
// of the shadow's path separately, so that regions of opposite winding in
// p cannot cancel each other out.
func (p *Path) Intersects(q Query) bool {
	if isDegenerate(q) || p.IsEmpty() {
		return false
	}
	n := p.crossings(q, OnlyIntersectWhenOpen)
	if n == Intersects {
		return true
	}
	if s, ok := q.(*Shadow); ok {
		for _, a := range s.anchors {
			c := p.crossings(Point(a), OnlyIntersectWhenOpen)
			if c == Intersects || p.rule.Fills(c) {
				return true
			}
		}
		return false
	}
	return n&p.rule.mask(raysOf(q)) != 0
}

// IntersectsRect reports whether the rectangle with corner (x, y), width w
// and height h intersects the path.
func (p *Path) IntersectsRect(x, y, w, h float64) bool {
	return p.Intersects(Rect{LLx: x, LLy: y, URx: x + w, URy: y + h})
}

// IntersectsCircle reports whether the disk with center (cx, cy) and
// radius r intersects the path.
func (p *Path) IntersectsCircle(cx, cy, r float64) bool {
	return p.Intersects(Circle{Center: vec.Vec2{X: cx, Y: cy}, Radius: r})
}

// IntersectsEllipse reports whether the ellipse inscribed in the rectangle
// with corner (x, y), width w and height h intersects the path.
func (p *Path) IntersectsEllipse(x, y, w, h float64) bool {
	return p.Intersects(Ellipse{LLx: x, LLy: y, URx: x + w, URy: y + h})
}

// IntersectsLine reports whether the segment from (x0, y0) to (x1, y1)
// intersects the path.
func (p *Path) IntersectsLine(x0, y0, x1, y1 float64) bool {
	return p.Intersects(Line{A: vec.Vec2{X: x0, Y: y0}, B: vec.Vec2{X: x1, Y: y1}})
}

// IntersectsPath reports whether the two paths intersect. This is the case
// if their boundaries touch, or if one of them lies inside the other.
func (p *Path) IntersectsPath(q *Path) bool {
	if p.IsEmpty() || q.IsEmpty() {
		return false
	}
	return p.Intersects(NewShadow(q)) || q.Intersects(NewShadow(p))
}
