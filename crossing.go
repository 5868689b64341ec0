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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/primitive"
)

// Intersects is returned by [Crossings] instead of a crossing count when
// the query touches the boundary of the path.
const Intersects = primitive.Intersects

// Mode selects how [Crossings] treats subpaths which are not closed.
type Mode int

const (
	// Standard counts the crossings of the segments as given.
	Standard Mode = iota

	// AutoClose adds the crossings of an implied straight line from the
	// end of the last subpath back to its start, if that subpath is open.
	// Subpaths before the last are not closed.
	AutoClose

	// OnlyIntersectWhenOpen reports 0 crossings if the last subpath is
	// open, so that such a path only counts where it touches the query.
	OnlyIntersectWhenOpen
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case AutoClose:
		return "AutoClose"
	case OnlyIntersectWhenOpen:
		return "OnlyIntersectWhenOpen"
	default:
		return "Mode(?)"
	}
}

// Query is a geometric primitive which can be tested against the edges of
// a path.
type Query interface {
	// Crossings adds the crossing contribution of the straight edge from a
	// to b to crossings and returns the result. If the edge touches the
	// query, Intersects is returned instead.
	Crossings(crossings int, a, b vec.Vec2) int
}

// Crossings walks the segments produced by it and accumulates the crossing
// contributions of all edges with respect to q. The crossings of all
// subpaths are added up; mode only applies to the final subpath.
//
// Curves are flattened using [DefaultFlatness] and [DefaultLimit]. The walk
// stops as soon as an edge touches q, and Intersects is returned. An error
// is returned if it fails or does not start with a MoveTo segment.
// An empty sequence has no crossings.
func Crossings(it SegmentIterator, q Query, mode Mode) (int, error) {
	s, ok := it.Next()
	if !ok {
		return 0, it.Err()
	}
	if s.Cmd != CmdMoveTo {
		return 0, &Error{Op: "Crossings", Err: ErrMissingMove}
	}

	cur := s.To
	start := cur
	n := 0
	for {
		s, ok := it.Next()
		if !ok {
			break
		}

		switch s.Cmd {
		case CmdMoveTo:
			cur = s.To
			start = cur

		case CmdLineTo:
			n = q.Crossings(n, cur, s.To)
			cur = s.To

		case CmdQuadTo, CmdCubeTo:
			sub, err := curveCrossings(q, cur, s)
			if err != nil {
				return 0, err
			}
			if sub == Intersects {
				return Intersects, nil
			}
			n += sub
			cur = s.To

		case CmdClose:
			if cur != start {
				n = q.Crossings(n, cur, start)
			}
			cur = start

		default:
			return 0, &Error{Op: "Crossings", Err: ErrInvalidCommand}
		}

		if n == Intersects {
			return Intersects, nil
		}
	}
	if err := it.Err(); err != nil {
		return 0, err
	}

	if cur == start {
		return n, nil
	}
	switch mode {
	case AutoClose:
		return q.Crossings(n, cur, start), nil
	case OnlyIntersectWhenOpen:
		return 0, nil
	default:
		return n, nil
	}
}

// curveCrossings returns the crossings of a single curve segment starting
// at from.
func curveCrossings(q Query, from vec.Vec2, curve Segment) (int, error) {
	flat := NewFlatIterator(newCurveSource(from, curve), DefaultFlatness, DefaultLimit)
	return Crossings(flat, q, Standard)
}

// crossings runs the engine over the path. A Path always starts with a
// MoveTo, so the engine cannot fail.
func (p *Path) crossings(q Query, mode Mode) int {
	n, err := Crossings(p.Iterator(), q, mode)
	if err != nil {
		panic(err)
	}
	return n
}
