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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/primitive"
)

// Command identifies the type of a path segment.
type Command uint8

// These are the segment types.
const (
	CmdMoveTo Command = iota + 1
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Segment is one element of a path.
//
// From is the current point before the segment is drawn and To is the new
// current point. C1 is the control point of a quadratic segment; C1 and C2
// are the control points of a cubic segment. For CmdClose, To is the start
// point of the subpath being closed.
type Segment struct {
	Cmd    Command
	From   vec.Vec2
	C1, C2 vec.Vec2
	To     vec.Vec2
}

// Drawable reports whether the segment covers more than a single point.
// MoveTo segments are never drawable.
func (s Segment) Drawable() bool {
	switch s.Cmd {
	case CmdLineTo, CmdClose:
		return !samePoint(s.From, s.To)
	case CmdQuadTo:
		return !samePoint(s.From, s.To) || !samePoint(s.From, s.C1)
	case CmdCubeTo:
		return !samePoint(s.From, s.To) || !samePoint(s.From, s.C1) || !samePoint(s.From, s.C2)
	default:
		return false
	}
}

// points returns the coordinates stored for the segment, in path order.
func (s Segment) points(buf *[3]vec.Vec2) []vec.Vec2 {
	switch s.Cmd {
	case CmdMoveTo, CmdLineTo:
		buf[0] = s.To
		return buf[:1]
	case CmdQuadTo:
		buf[0], buf[1] = s.C1, s.To
		return buf[:2]
	case CmdCubeTo:
		buf[0], buf[1], buf[2] = s.C1, s.C2, s.To
		return buf[:3]
	default:
		return buf[:0]
	}
}

func (s Segment) String() string {
	switch s.Cmd {
	case CmdMoveTo:
		return fmt.Sprintf("M(%g %g)", s.To.X, s.To.Y)
	case CmdLineTo:
		return fmt.Sprintf("L(%g %g -> %g %g)", s.From.X, s.From.Y, s.To.X, s.To.Y)
	case CmdQuadTo:
		return fmt.Sprintf("Q(%g %g -> %g %g -> %g %g)",
			s.From.X, s.From.Y, s.C1.X, s.C1.Y, s.To.X, s.To.Y)
	case CmdCubeTo:
		return fmt.Sprintf("C(%g %g -> %g %g -> %g %g -> %g %g)",
			s.From.X, s.From.Y, s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	case CmdClose:
		return fmt.Sprintf("Z(%g %g -> %g %g)", s.From.X, s.From.Y, s.To.X, s.To.Y)
	default:
		return s.Cmd.String()
	}
}

func samePoint(a, b vec.Vec2) bool {
	return primitive.IsEpsilonEqual(a.X, b.X) && primitive.IsEpsilonEqual(a.Y, b.Y)
}

// SegmentIterator produces the segments of a path one at a time.
//
// Next returns false once the sequence is finished; Err then reports whether
// it ended because of an error. Calling Next again after it has returned
// false panics with ErrExhausted.
type SegmentIterator interface {
	Next() (Segment, bool)
	Err() error
	FillRule() FillRule
}

// SliceIterator iterates over a slice of segments.
type SliceIterator struct {
	segs []Segment
	rule FillRule
	pos  int
	done bool
}

// NewSliceIterator returns an iterator over segs. The slice is not copied
// and must not be modified while the iterator is in use.
func NewSliceIterator(segs []Segment, rule FillRule) *SliceIterator {
	return &SliceIterator{segs: segs, rule: rule}
}

// Next implements [SegmentIterator].
func (it *SliceIterator) Next() (Segment, bool) {
	if it.done {
		panic(&Error{Op: "Next", Err: ErrExhausted})
	}
	if it.pos >= len(it.segs) {
		it.done = true
		return Segment{}, false
	}
	s := it.segs[it.pos]
	it.pos++
	return s, true
}

// Err implements [SegmentIterator]. It always returns nil.
func (it *SliceIterator) Err() error {
	return nil
}

// FillRule implements [SegmentIterator].
func (it *SliceIterator) FillRule() FillRule {
	return it.rule
}

// curveSource yields MoveTo(from) followed by a single curve segment.
// It lets a curve be flattened without building a Path around it.
type curveSource struct {
	segs [2]Segment
	pos  int
	done bool
}

func newCurveSource(from vec.Vec2, curve Segment) *curveSource {
	curve.From = from
	return &curveSource{
		segs: [2]Segment{{Cmd: CmdMoveTo, From: from, To: from}, curve},
	}
}

func (c *curveSource) Next() (Segment, bool) {
	if c.done {
		panic(&Error{Op: "Next", Err: ErrExhausted})
	}
	if c.pos >= len(c.segs) {
		c.done = true
		return Segment{}, false
	}
	s := c.segs[c.pos]
	c.pos++
	return s, true
}

func (c *curveSource) Err() error { return nil }

func (c *curveSource) FillRule() FillRule { return NonZero }
