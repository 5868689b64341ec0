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

import "errors"

var (
	// ErrMissingMove indicates a path or segment stream which does not
	// start with a MoveTo, or a drawing operation without a current point.
	ErrMissingMove = errors.New("path does not start with MoveTo")

	// ErrExhausted is the panic value when Next is called on an iterator
	// which has already reported its end.
	ErrExhausted = errors.New("iterator is exhausted")

	// ErrArc is returned when SVG path data contains elliptical arcs,
	// which have no segment representation.
	ErrArc = errors.New("elliptical arcs are not supported")

	// ErrInvalidCommand indicates a segment with an unknown command.
	ErrInvalidCommand = errors.New("invalid segment command")
)

// Error records the operation which failed together with the cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "shape: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
