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
)

// Bounds returns the bounding box of the visible part of the path.
// Curves are flattened first, so control points which do not lie on the
// curve are not included, and segments of length zero are ignored.
// The second return value is false if the path has no drawable segment.
func (p *Path) Bounds() (rect.Rect, bool) {
	if !p.visible.valid {
		var ext extent
		it := p.Flatten(DefaultFlatness, DefaultLimit)
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if s.Cmd != CmdMoveTo && s.Drawable() {
				ext.add(s.From)
				ext.add(s.To)
			}
		}
		p.visible.r, p.visible.ok = ext.rect()
		p.visible.valid = true
	}
	return p.visible.r, p.visible.ok
}

// ControlBounds returns the bounding box of all points stored in the path,
// including curve control points and the targets of MoveTo segments.
// The second return value is false if the path is empty.
func (p *Path) ControlBounds() (rect.Rect, bool) {
	if !p.logical.valid {
		var ext extent
		var buf [3]vec.Vec2
		for _, s := range p.segs {
			for _, pt := range s.points(&buf) {
				ext.add(pt)
			}
		}
		p.logical.r, p.logical.ok = ext.rect()
		p.logical.valid = true
	}
	return p.logical.r, p.logical.ok
}

// extent accumulates the bounding box of a set of points.
type extent struct {
	r  rect.Rect
	ok bool
}

func (e *extent) add(pt vec.Vec2) {
	if !e.ok {
		e.r = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
		e.ok = true
		return
	}
	e.r.LLx = min(e.r.LLx, pt.X)
	e.r.LLy = min(e.r.LLy, pt.Y)
	e.r.URx = max(e.r.URx, pt.X)
	e.r.URy = max(e.r.URy, pt.Y)
}

func (e *extent) rect() (rect.Rect, bool) {
	return e.r, e.ok
}
