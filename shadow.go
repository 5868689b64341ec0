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

// Shadow uses another path as a query.
//
// An edge touches the shadow if it intersects one of the drawn edges of
// the other path. If no edge touches, every subpath of the other path lies
// either completely inside or completely outside the filled area of the
// path being queried; this is decided by testing one vertex per subpath,
// see [Path.Intersects].
//
// A Shadow is a snapshot: later changes to the path are not reflected.
type Shadow struct {
	edges   []edge
	anchors []vec.Vec2 // one vertex of every subpath with drawn edges
	box     rect.Rect
}

type edge struct {
	a, b vec.Vec2
}

// NewShadow returns a query for the path q, with curves flattened using
// [DefaultFlatness].
func NewShadow(q *Path) *Shadow {
	s := &Shadow{}
	var ext extent
	fresh := true
	it := q.Flatten(DefaultFlatness, DefaultLimit)
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		switch seg.Cmd {
		case CmdMoveTo:
			fresh = true
			continue
		case CmdClose:
			if seg.From == seg.To {
				fresh = true
				continue
			}
		case CmdLineTo:
		default:
			continue
		}
		if fresh {
			s.anchors = append(s.anchors, seg.From)
			fresh = false
		}
		s.edges = append(s.edges, edge{a: seg.From, b: seg.To})
		ext.add(seg.From)
		ext.add(seg.To)
		if seg.Cmd == CmdClose {
			fresh = true
		}
	}
	s.box, _ = ext.rect()
	return s
}

// Crossings implements [Query]. It returns Intersects if the edge from a
// to b touches one of the edges of the shadow, and crossings otherwise.
func (s *Shadow) Crossings(crossings int, a, b vec.Vec2) int {
	if len(s.edges) == 0 {
		return crossings
	}
	box := &s.box
	if (a.Y < box.LLy && b.Y < box.LLy) ||
		(a.Y > box.URy && b.Y > box.URy) ||
		(a.X < box.LLx && b.X < box.LLx) ||
		(a.X > box.URx && b.X > box.URx) {
		return crossings
	}
	for _, e := range s.edges {
		if primitive.SegmentsIntersect(e.a.X, e.a.Y, e.b.X, e.b.Y, a.X, a.Y, b.X, b.Y) {
			return Intersects
		}
	}
	return crossings
}

func (s *Shadow) degenerate() bool {
	return len(s.edges) == 0
}
