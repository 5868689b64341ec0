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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromIter builds a Path from a geom path iterator.
// An error is returned if the iterator does not start with a MoveTo.
func FromIter(src path.Path, rule FillRule) (*Path, error) {
	p := New(rule)
	for cmd, pts := range src {
		if len(p.segs) == 0 && cmd != path.CmdMoveTo {
			return nil, &Error{Op: "FromIter", Err: ErrMissingMove}
		}
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.CubeTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.Close()
		default:
			return nil, &Error{Op: "FromIter", Err: ErrInvalidCommand}
		}
	}
	return p, nil
}

// FromData builds a Path from geom path data.
func FromData(d *path.Data, rule FillRule) (*Path, error) {
	return FromIter(d.Iter(), rule)
}

// Data returns the path as geom path data.
func (p *Path) Data() *path.Data {
	d := &path.Data{
		Cmds:   make([]path.Command, 0, len(p.segs)),
		Coords: make([]vec.Vec2, 0, p.Size()/2),
	}
	var buf [3]vec.Vec2
	for _, s := range p.segs {
		d.Cmds = append(d.Cmds, geomCommand(s.Cmd))
		d.Coords = append(d.Coords, s.points(&buf)...)
	}
	return d
}

// Iter returns an iterator over the path in the form used by the geom
// package.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for _, s := range p.segs {
			if !yield(geomCommand(s.Cmd), s.points(&buf)) {
				return
			}
		}
	}
}

func geomCommand(c Command) path.Command {
	switch c {
	case CmdMoveTo:
		return path.CmdMoveTo
	case CmdLineTo:
		return path.CmdLineTo
	case CmdQuadTo:
		return path.CmdQuadTo
	case CmdCubeTo:
		return path.CmdCubeTo
	default:
		return path.CmdClose
	}
}
