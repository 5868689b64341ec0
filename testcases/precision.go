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
package testcases

import (
	"seehuhn.de/go/geom/path"
)

var precisionCases = []TestCase{
	{
		Name:    "subpixel_offset_00",
		Path:    offsetRectangle(20, 20, 24, 24, 0.0),
		Inside:  pts(32, 32, 20.1, 32),
		Outside: pts(19.9, 32, 44.1, 32),
		Bounds:  box(20, 20, 44, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "subpixel_offset_25",
		Path:    offsetRectangle(20, 20, 24, 24, 0.25),
		Inside:  pts(32, 32, 20.35, 32),
		Outside: pts(20.15, 32, 44.35, 32),
		Bounds:  box(20.25, 20.25, 44.25, 44.25),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "subpixel_offset_50",
		Path:    offsetRectangle(20, 20, 24, 24, 0.5),
		Inside:  pts(32, 32, 20.6, 32),
		Outside: pts(20.4, 32, 44.6, 32),
		Bounds:  box(20.5, 20.5, 44.5, 44.5),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "subpixel_offset_75",
		Path:    offsetRectangle(20, 20, 24, 24, 0.75),
		Inside:  pts(32, 32, 20.85, 32),
		Outside: pts(20.65, 32, 44.85, 32),
		Bounds:  box(20.75, 20.75, 44.75, 44.75),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "large_coord",
		Path:    offsetRectangle(1e6-10, 1e6-10, 20, 20, 0),
		Inside:  pts(1e6, 1e6, 1e6+9.9, 1e6),
		Outside: pts(1e6+10.1, 1e6, 32, 32),
		Bounds:  box(1e6-10, 1e6-10, 1e6+10, 1e6+10),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "small_shape_large_offset",
		Path:    offsetRectangle(9999, 9999, 2, 2, 0),
		Inside:  pts(10000, 10000, 10000.9, 10000),
		Outside: pts(10001.1, 10000, 9998.9, 10000),
		Bounds:  box(9999, 9999, 10001, 10001),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "float64_precision",
		Path:    float64PrecisionShape(),
		Inside:  pts(22.123456790, 32, 42.123456788, 32),
		Outside: pts(22.123456788, 32, 42.123456790, 32),
		Width:   64,
		Height:  64,
	},
}

// offsetRectangle builds a rectangular path with an offset applied to all
// coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *path.Data {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	return rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
