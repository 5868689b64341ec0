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
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"
)

// svgArgs gives the number of arguments of each SVG path command.
var svgArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

// ParseSVG parses SVG path data, like "M0 0 L10 0 L10 10 Z", into a path
// using the NonZero fill rule. All commands except elliptical arcs are
// supported, in absolute and relative form.
// Positions in error messages count bytes from 1.
func ParseSVG(d string) (*Path, error) {
	p := New(NonZero)
	b := []byte(d)

	var args [6]float64
	var cur, start, ctrl vec.Vec2
	var prev byte // last command, in upper case
	var next byte // command implied by a repeated argument list

	i := skipCommaWhitespace(b)
	for i < len(b) {
		c := b[i]
		cmdPos := i
		cmd := next
		if isLetter(c) {
			cmd = c
			i++
			i += skipCommaWhitespace(b[i:])
		} else if cmd == 0 {
			return nil, fmt.Errorf("shape: SVG path data: unexpected %q at position %d", c, i+1)
		}

		upper := cmd &^ 0x20
		n, ok := svgArgs[upper]
		if !ok {
			return nil, fmt.Errorf("shape: SVG path data: unknown command %q at position %d", cmd, cmdPos+1)
		}
		if upper == 'A' {
			return nil, &Error{Op: "ParseSVG", Err: ErrArc}
		}
		if upper != 'M' && p.Len() == 0 {
			return nil, &Error{Op: "ParseSVG", Err: ErrMissingMove}
		}
		for j := range n {
			v, k := strconv.ParseFloat(b[i:])
			if k == 0 {
				return nil, fmt.Errorf("shape: SVG path data: command %q needs %d numbers, position %d", cmd, n, i+1)
			}
			args[j] = v
			i += k
			i += skipCommaWhitespace(b[i:])
		}

		var base vec.Vec2
		if cmd != upper {
			base = cur
		}
		at := func(j int) vec.Vec2 {
			return vec.Vec2{X: base.X + args[j], Y: base.Y + args[j+1]}
		}

		next = cmd
		switch upper {
		case 'M':
			cur = at(0)
			start = cur
			p.MoveTo(cur.X, cur.Y)
			next = cmd + 'L' - 'M'
		case 'L':
			cur = at(0)
			p.LineTo(cur.X, cur.Y)
		case 'H':
			cur.X = base.X + args[0]
			p.LineTo(cur.X, cur.Y)
		case 'V':
			cur.Y = base.Y + args[0]
			p.LineTo(cur.X, cur.Y)
		case 'C':
			c1, c2, to := at(0), at(2), at(4)
			p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
			ctrl, cur = c2, to
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'S' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			c2, to := at(0), at(2)
			p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
			ctrl, cur = c2, to
		case 'Q':
			c1, to := at(0), at(2)
			p.QuadTo(c1.X, c1.Y, to.X, to.Y)
			ctrl, cur = c1, to
		case 'T':
			c1 := cur
			if prev == 'Q' || prev == 'T' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			to := at(0)
			p.QuadTo(c1.X, c1.Y, to.X, to.Y)
			ctrl, cur = c1, to
		case 'Z':
			p.Close()
			cur = start
			next = 0
		}
		prev = upper
	}
	return p, nil
}

// MustParseSVG is like [ParseSVG] but panics on malformed input.
func MustParseSVG(d string) *Path {
	p, err := ParseSVG(d)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path in SVG path data notation.
// Only absolute commands are used.
func (p *Path) String() string {
	var sb strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Cmd {
		case CmdMoveTo:
			fmt.Fprintf(&sb, "M%g %g", s.To.X, s.To.Y)
		case CmdLineTo:
			fmt.Fprintf(&sb, "L%g %g", s.To.X, s.To.Y)
		case CmdQuadTo:
			fmt.Fprintf(&sb, "Q%g %g %g %g", s.C1.X, s.C1.Y, s.To.X, s.To.Y)
		case CmdCubeTo:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
		case CmdClose:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
