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

import "seehuhn.de/go/pdf/graphics"

// The dashed lines run from (5, 32) to (59, 32), the dashed corners have
// arms of length sqrt(1384) ≈ 37.2 meeting at (32, 20).
var dashCases = []TestCase{
	{
		Name:    "dash_single_element",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(10, 32, 30, 32, 50, 32),
		Outside: pts(20, 32, 40, 32, 57, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 0, 10),
	},
	{
		Name:    "dash_three_element",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(7, 32, 17, 32, 27.5, 32, 39, 32),
		Outside: pts(11.5, 32, 23, 32, 33, 32, 55, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 0, 5, 3, 8),
	},
	{
		Name:    "dash_equal",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(10, 32, 30, 32, 50, 32),
		Outside: pts(20, 32, 40, 32, 10, 35),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 0, 10, 10),
	},
	{
		Name:    "dash_phase_half",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(7, 32, 20, 32, 35, 32),
		Outside: pts(12, 32, 27, 32, 57, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 5, 10, 5),
	},
	{
		Name:    "dash_phase_dash_len",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(15, 32, 30, 32),
		Outside: pts(7, 32, 22, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 10, 10, 5),
	},
	{
		Name:    "dash_phase_pattern_len",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(10, 32, 25, 32),
		Outside: pts(17, 32, 32, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 15, 10, 5),
	},
	{
		Name:    "dash_phase_negative",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(15, 32, 30, 32),
		Outside: pts(7, 32, 22, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, -5, 10, 5),
	},
	{
		Name:    "dash_phase_large_neg",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(10, 32, 25, 32),
		Outside: pts(17, 32, 32, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, -30, 10, 5),
	},
	{
		Name:    "dash_zero_round",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(5, 32, 10, 32, 20, 33, 55, 32),
		Outside: pts(7.5, 32, 12.5, 32, 10, 35),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapRound, 0, 0, 5),
	},
	{
		Name:    "dash_zero_butt",
		Path:    horizontalLine(5, 32, 59),
		Outside: pts(5, 32, 10, 32, 30, 32, 12.5, 32),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 0, 0, 5),
	},
	{
		Name:    "dash_zero_mixed",
		Path:    horizontalLine(5, 32, 59),
		Inside:  pts(5, 32, 15, 32, 25, 32, 35, 32, 45, 32, 55, 32),
		Outside: pts(7.5, 32, 22.5, 32, 15, 35),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapRound, 0, 0, 5, 10, 5),
	},
	{
		Name:    "dash_corner_in_dash",
		Path:    corner(10, 50, 32, 20, 54, 50),
		Inside:  pts(32, 20, 32, 18, 21, 35),
		Outside: pts(35.13, 24.27, 32, 15),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 0, 40, 5),
	},
	{
		Name:    "dash_corner_in_gap",
		Path:    corner(10, 50, 32, 20, 54, 50),
		Inside:  pts(26.26, 27.82, 52.58, 48.06),
		Outside: pts(32, 20, 32, 18, 21, 35),
		Width:   64,
		Height:  64,
		Stroke:  dashed(4, graphics.LineCapButt, 20, 5, 40),
	},
}

// dashed returns a dashed pen with miter joins.
func dashed(width float64, capStyle graphics.LineCapStyle, phase float64, dash ...float64) *Stroke {
	return &Stroke{
		Width:      width,
		Cap:        capStyle,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       dash,
		DashPhase:  phase,
	}
}
