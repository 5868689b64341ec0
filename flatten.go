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
	"iter"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/primitive"
)

const (
	// DefaultFlatness is the flatness tolerance used for bounding boxes
	// and for curves inside crossing computations.
	DefaultFlatness = 0.1

	// DefaultLimit is the default maximal subdivision depth per curve.
	DefaultLimit = 10

	// maxHoldPrealloc bounds the initial capacity of the hold stack.
	maxHoldPrealloc = 64
)

// FlatIterator converts a segment sequence into an equivalent sequence of
// MoveTo, LineTo and Close segments.
//
// Curves are bisected until every control point is within the flatness
// tolerance of the chord, or until the subdivision depth reaches the
// limit. A curve therefore produces at most 2^limit lines.
//
// The iterator is used like a [bufio.Scanner]: call Next until it returns
// false, then check Err.
type FlatIterator struct {
	src    SegmentIterator
	flatSq float64
	limit  int

	// hold contains the pending pieces of the curve being subdivided.
	// The top of the stack is the piece closest to the current point.
	hold []piece

	cur, start vec.Vec2
	started    bool
	done       bool
	err        error
}

// piece is a quadratic (three points) or cubic (four points) Bézier curve
// together with the number of bisections which produced it.
type piece struct {
	cmd   Command
	p     [4]vec.Vec2
	level int
}

// NewFlatIterator returns an iterator which flattens the segments of src.
// The flatness is the maximal distance of a control point from its chord,
// limit bounds the number of bisections applied to a single curve.
// A non-positive flatness selects [DefaultFlatness] and a negative limit
// selects [DefaultLimit].
func NewFlatIterator(src SegmentIterator, flatness float64, limit int) *FlatIterator {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}
	if limit < 0 {
		limit = DefaultLimit
	}
	return &FlatIterator{
		src:    src,
		flatSq: flatness * flatness,
		limit:  limit,
		hold:   make([]piece, 0, min(limit, maxHoldPrealloc)+1),
	}
}

// Flatten returns an iterator over a flattened version of the path.
func (p *Path) Flatten(flatness float64, limit int) *FlatIterator {
	return NewFlatIterator(p.Iterator(), flatness, limit)
}

// Flattened returns a copy of the path where all curves have been
// replaced by straight lines.
func (p *Path) Flattened(flatness float64, limit int) *Path {
	q := New(p.rule)
	it := p.Flatten(flatness, limit)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		q.segs = append(q.segs, s)
	}
	q.polyline = flagTrue
	return q
}

// FillRule returns the fill rule of the underlying sequence.
func (it *FlatIterator) FillRule() FillRule {
	return it.src.FillRule()
}

// Err returns the error which ended the iteration, if any.
func (it *FlatIterator) Err() error {
	return it.err
}

// Next returns the next segment. The second return value is false once
// the sequence is finished or an error occurred.
// Calling Next again after it returned false panics.
func (it *FlatIterator) Next() (Segment, bool) {
	if it.done {
		panic(&Error{Op: "Next", Err: ErrExhausted})
	}

	for {
		if n := len(it.hold); n > 0 {
			pc := it.hold[n-1]
			it.hold = it.hold[:n-1]
			for pc.level < it.limit && pc.flatnessSq() > it.flatSq {
				left, right := pc.split()
				it.hold = append(it.hold, right)
				pc = left
			}
			s := Segment{Cmd: CmdLineTo, From: it.cur, To: pc.end()}
			it.cur = s.To
			return s, true
		}

		s, ok := it.src.Next()
		if !ok {
			it.done = true
			it.err = it.src.Err()
			return Segment{}, false
		}
		first := !it.started
		if first {
			if s.Cmd != CmdMoveTo {
				it.done = true
				it.err = &Error{Op: "Flatten", Err: ErrMissingMove}
				return Segment{}, false
			}
			it.started = true
		}

		switch s.Cmd {
		case CmdMoveTo:
			s.From = it.cur
			if first {
				s.From = s.To
			}
			it.cur = s.To
			it.start = s.To
			return s, true
		case CmdLineTo:
			s.From = it.cur
			it.cur = s.To
			return s, true
		case CmdClose:
			s.From = it.cur
			s.To = it.start
			it.cur = it.start
			return s, true
		case CmdQuadTo:
			it.hold = append(it.hold, piece{
				cmd: CmdQuadTo,
				p:   [4]vec.Vec2{it.cur, s.C1, s.To},
			})
		case CmdCubeTo:
			it.hold = append(it.hold, piece{
				cmd: CmdCubeTo,
				p:   [4]vec.Vec2{it.cur, s.C1, s.C2, s.To},
			})
		default:
			it.done = true
			it.err = &Error{Op: "Flatten", Err: ErrInvalidCommand}
			return Segment{}, false
		}
	}
}

// All returns the remaining segments as a sequence. Iteration stops
// early if the sequence ends with an error; check Err afterwards.
func (it *FlatIterator) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if it.done {
			return
		}
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

func (pc *piece) end() vec.Vec2 {
	if pc.cmd == CmdQuadTo {
		return pc.p[2]
	}
	return pc.p[3]
}

// flatnessSq returns the squared distance of the control points from the
// chord.
func (pc *piece) flatnessSq() float64 {
	p := &pc.p
	if pc.cmd == CmdQuadTo {
		return primitive.SquaredDistancePointToSegment(p[1].X, p[1].Y, p[0].X, p[0].Y, p[2].X, p[2].Y)
	}
	d1 := primitive.SquaredDistancePointToSegment(p[1].X, p[1].Y, p[0].X, p[0].Y, p[3].X, p[3].Y)
	d2 := primitive.SquaredDistancePointToSegment(p[2].X, p[2].Y, p[0].X, p[0].Y, p[3].X, p[3].Y)
	return max(d1, d2)
}

// split bisects the curve at t = 1/2.
func (pc *piece) split() (left, right piece) {
	p := &pc.p
	left.cmd, right.cmd = pc.cmd, pc.cmd
	left.level = pc.level + 1
	right.level = pc.level + 1

	if pc.cmd == CmdQuadTo {
		p01 := mid(p[0], p[1])
		p12 := mid(p[1], p[2])
		m := mid(p01, p12)
		left.p = [4]vec.Vec2{p[0], p01, m}
		right.p = [4]vec.Vec2{m, p12, p[2]}
		return left, right
	}

	p01 := mid(p[0], p[1])
	p12 := mid(p[1], p[2])
	p23 := mid(p[2], p[3])
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)
	left.p = [4]vec.Vec2{p[0], p01, p012, m}
	right.p = [4]vec.Vec2{m, p123, p23, p[3]}
	return left, right
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}
