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

// Package shape represents 2D paths made of line, quadratic and cubic
// segments, and answers containment and intersection queries for them.
//
// Containment is decided by casting horizontal rays to the right of the
// query and counting signed crossings with the path boundary. Curves are
// approximated by polylines using adaptive subdivision, see [FlatIterator].
//
// A Path is not safe for concurrent use. Readers such as [Crossings] or
// [FlatIterator] assume that the path is not modified while they run.
package shape

import (
	"iter"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Path is a sequence of segments together with a fill rule.
//
// Every non-empty path starts with a MoveTo segment. The zero value is an
// empty path using the NonZero fill rule.
type Path struct {
	segs []Segment
	rule FillRule

	visible  boxSlot
	logical  boxSlot
	empty    flag
	polyline flag
}

// boxSlot memoizes a bounding box. ok is false if the path has no
// geometry contributing to the box.
type boxSlot struct {
	valid bool
	ok    bool
	r     rect.Rect
}

type flag uint8

const (
	flagUnknown flag = iota
	flagFalse
	flagTrue
)

// New returns an empty path using the given fill rule.
func New(rule FillRule) *Path {
	return &Path{rule: rule}
}

// FillRule returns the fill rule of the path.
func (p *Path) FillRule() FillRule {
	return p.rule
}

// SetFillRule changes the fill rule of the path.
func (p *Path) SetFillRule(rule FillRule) {
	p.rule = rule
}

// touch discards the memoized bounding boxes.
func (p *Path) touch() {
	p.visible.valid = false
	p.logical.valid = false
}

// invalidate discards all derived information.
func (p *Path) invalidate() {
	p.touch()
	p.empty = flagUnknown
	p.polyline = flagUnknown
}

// appended updates the cached flags after s has been added to the path.
func (p *Path) appended(s Segment) {
	p.touch()
	if s.Drawable() {
		p.empty = flagFalse
	}
	if s.Cmd == CmdQuadTo || s.Cmd == CmdCubeTo {
		p.polyline = flagFalse
	}
}

// CurrentPoint returns the end point of the last segment.
// The second return value is false if the path is empty.
func (p *Path) CurrentPoint() (vec.Vec2, bool) {
	if len(p.segs) == 0 {
		return vec.Vec2{}, false
	}
	return p.segs[len(p.segs)-1].To, true
}

// current returns the current point, panicking if there is none.
func (p *Path) current(op string) vec.Vec2 {
	if len(p.segs) == 0 {
		panic(&Error{Op: op, Err: ErrMissingMove})
	}
	return p.segs[len(p.segs)-1].To
}

// subpathStart returns the target of the most recent MoveTo.
func (p *Path) subpathStart() vec.Vec2 {
	for i := len(p.segs) - 1; i >= 0; i-- {
		if p.segs[i].Cmd == CmdMoveTo {
			return p.segs[i].To
		}
	}
	return vec.Vec2{}
}

// MoveTo starts a new subpath at (x, y).
// If the last segment is a MoveTo, its target is replaced instead.
func (p *Path) MoveTo(x, y float64) {
	pt := vec.Vec2{X: x, Y: y}
	n := len(p.segs)
	if n > 0 && p.segs[n-1].Cmd == CmdMoveTo {
		p.segs[n-1].To = pt
		if n == 1 {
			p.segs[0].From = pt
		}
		p.touch()
		return
	}

	from := pt
	if n > 0 {
		from = p.segs[n-1].To
	}
	s := Segment{Cmd: CmdMoveTo, From: from, To: pt}
	p.segs = append(p.segs, s)
	p.appended(s)
}

// LineTo appends a straight line from the current point to (x, y).
// LineTo panics if the path has no current point.
func (p *Path) LineTo(x, y float64) {
	s := Segment{
		Cmd:  CmdLineTo,
		From: p.current("LineTo"),
		To:   vec.Vec2{X: x, Y: y},
	}
	p.segs = append(p.segs, s)
	p.appended(s)
}

// QuadTo appends a quadratic Bézier curve with control point (cx, cy),
// ending at (x, y). QuadTo panics if the path has no current point.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	s := Segment{
		Cmd:  CmdQuadTo,
		From: p.current("QuadTo"),
		C1:   vec.Vec2{X: cx, Y: cy},
		To:   vec.Vec2{X: x, Y: y},
	}
	p.segs = append(p.segs, s)
	p.appended(s)
}

// CubeTo appends a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y), ending at (x, y). CubeTo panics if the path has no current
// point.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s := Segment{
		Cmd:  CmdCubeTo,
		From: p.current("CubeTo"),
		C1:   vec.Vec2{X: c1x, Y: c1y},
		C2:   vec.Vec2{X: c2x, Y: c2y},
		To:   vec.Vec2{X: x, Y: y},
	}
	p.segs = append(p.segs, s)
	p.appended(s)
}

// Close closes the current subpath with a straight line back to its start.
// Close does nothing if the path is empty or if the last segment is a
// MoveTo or a Close.
func (p *Path) Close() {
	n := len(p.segs)
	if n == 0 {
		return
	}
	if last := p.segs[n-1].Cmd; last == CmdMoveTo || last == CmdClose {
		return
	}
	s := Segment{
		Cmd:  CmdClose,
		From: p.segs[n-1].To,
		To:   p.subpathStart(),
	}
	p.segs = append(p.segs, s)
	p.appended(s)
}

// IsEmpty reports whether the path contains no drawable segment.
func (p *Path) IsEmpty() bool {
	if p.empty == flagUnknown {
		p.empty = flagTrue
		for _, s := range p.segs {
			if s.Drawable() {
				p.empty = flagFalse
				break
			}
		}
	}
	return p.empty == flagTrue
}

// IsPolyline reports whether the path consists of straight segments only.
func (p *Path) IsPolyline() bool {
	if p.polyline == flagUnknown {
		p.polyline = flagTrue
		for _, s := range p.segs {
			if s.Cmd == CmdQuadTo || s.Cmd == CmdCubeTo {
				p.polyline = flagFalse
				break
			}
		}
	}
	return p.polyline == flagTrue
}

// IsClosed reports whether every subpath which contains a drawable segment
// ends with a Close segment.
func (p *Path) IsClosed() bool {
	open := false
	for _, s := range p.segs {
		switch s.Cmd {
		case CmdMoveTo:
			if open {
				return false
			}
		case CmdClose:
			open = false
		default:
			if s.Drawable() {
				open = true
			}
		}
	}
	return !open
}

// Size returns the number of coordinate values stored in the path:
// two for each MoveTo and LineTo, four for each QuadTo and six for each
// CubeTo.
func (p *Path) Size() int {
	n := 0
	for _, s := range p.segs {
		switch s.Cmd {
		case CmdMoveTo, CmdLineTo:
			n += 2
		case CmdQuadTo:
			n += 4
		case CmdCubeTo:
			n += 6
		}
	}
	return n
}

// AppendCoords appends the coordinate values of the path to dst, in the
// order described for [Path.Size], and returns the extended slice.
func (p *Path) AppendCoords(dst []float64) []float64 {
	var buf [3]vec.Vec2
	for _, s := range p.segs {
		for _, pt := range s.points(&buf) {
			dst = append(dst, pt.X, pt.Y)
		}
	}
	return dst
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.segs)
}

// At returns the i-th segment of the path.
func (p *Path) At(i int) Segment {
	return p.segs[i]
}

// Segments returns an iterator over the segments of the path.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range p.segs {
			if !yield(s) {
				return
			}
		}
	}
}

// Iterator returns a [SegmentIterator] over the segments of the path.
func (p *Path) Iterator() SegmentIterator {
	return NewSliceIterator(p.segs, p.rule)
}

// SetLastPoint moves the end point of the last segment which has one.
// Close segments following it are adjusted accordingly.
// SetLastPoint panics if the path is empty.
func (p *Path) SetLastPoint(x, y float64) {
	for i := len(p.segs) - 1; i >= 0; i-- {
		if p.segs[i].Cmd != CmdClose {
			p.segs[i].To = vec.Vec2{X: x, Y: y}
			p.rechain()
			p.invalidate()
			return
		}
	}
	panic(&Error{Op: "SetLastPoint", Err: ErrMissingMove})
}

// RemoveLast removes the last segment of the path.
func (p *Path) RemoveLast() {
	if len(p.segs) == 0 {
		return
	}
	p.segs = p.segs[:len(p.segs)-1]
	p.normalize()
	p.invalidate()
}

// Remove deletes every segment which ends at (x, y) and reports whether
// any segment was removed. Close segments are never matched.
func (p *Path) Remove(x, y float64) bool {
	pt := vec.Vec2{X: x, Y: y}
	n := len(p.segs)
	p.segs = slices.DeleteFunc(p.segs, func(s Segment) bool {
		return s.Cmd != CmdClose && samePoint(s.To, pt)
	})
	if len(p.segs) == n {
		return false
	}
	p.normalize()
	p.invalidate()
	return true
}

// normalize restores the structural rules of a path after segments have
// been removed: the path starts with a MoveTo, no two MoveTo segments are
// adjacent, and no Close directly follows a MoveTo or a Close.
func (p *Path) normalize() {
	out := p.segs[:0]
	for _, s := range p.segs {
		n := len(out)
		switch {
		case n == 0 && s.Cmd == CmdClose:
			continue
		case n == 0 && s.Cmd != CmdMoveTo:
			s = Segment{Cmd: CmdMoveTo, To: s.To}
		case n > 0 && s.Cmd == CmdMoveTo && out[n-1].Cmd == CmdMoveTo:
			out[n-1] = s
			continue
		case n > 0 && s.Cmd == CmdClose &&
			(out[n-1].Cmd == CmdMoveTo || out[n-1].Cmd == CmdClose):
			continue
		}
		out = append(out, s)
	}
	p.segs = out
	p.rechain()
}

// rechain recomputes the From fields of all segments, and the To fields of
// Close segments.
func (p *Path) rechain() {
	var cur, start vec.Vec2
	for i := range p.segs {
		s := &p.segs[i]
		switch s.Cmd {
		case CmdMoveTo:
			if i == 0 {
				cur = s.To
			}
			start = s.To
		case CmdClose:
			s.To = start
		}
		s.From = cur
		cur = s.To
	}
}

// Clear removes all segments from the path. The fill rule is kept.
func (p *Path) Clear() {
	p.segs = p.segs[:0]
	p.invalidate()
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	q := *p
	q.segs = slices.Clone(p.segs)
	return &q
}

// Append adds the segments produced by it to the path.
//
// If connect is true and the path has an open subpath, an initial MoveTo
// from the iterator is replaced by a LineTo, joining the two paths.
// Append returns an error if the iterator fails or does not start with a
// MoveTo; in this case the path is not modified.
func (p *Path) Append(it SegmentIterator, connect bool) error {
	var segs []Segment
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		if len(segs) == 0 && s.Cmd != CmdMoveTo {
			return &Error{Op: "Append", Err: ErrMissingMove}
		}
		if s.Cmd < CmdMoveTo || s.Cmd > CmdClose {
			return &Error{Op: "Append", Err: ErrInvalidCommand}
		}
		segs = append(segs, s)
	}
	if err := it.Err(); err != nil {
		return err
	}

	for i, s := range segs {
		switch s.Cmd {
		case CmdMoveTo:
			if i == 0 && connect && len(p.segs) > 0 && p.segs[len(p.segs)-1].Cmd != CmdClose {
				if cur := p.segs[len(p.segs)-1].To; !samePoint(cur, s.To) {
					p.LineTo(s.To.X, s.To.Y)
				}
				continue
			}
			p.MoveTo(s.To.X, s.To.Y)
		case CmdLineTo:
			p.LineTo(s.To.X, s.To.Y)
		case CmdQuadTo:
			p.QuadTo(s.C1.X, s.C1.Y, s.To.X, s.To.Y)
		case CmdCubeTo:
			p.CubeTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
		case CmdClose:
			p.Close()
		}
	}
	return nil
}
