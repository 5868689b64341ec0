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

// Package primitive implements the per-edge formulas used when casting
// rays against the boundary of a path.
//
// All crossing functions consider rays which start at a point of the query
// primitive and extend to the right (towards +x). An edge from (x0, y0) to
// (x1, y1) contributes +1 for every ray it crosses while y increases and -1
// while y decreases. The vertical extent of an edge is treated as half-open,
// min(y0, y1) <= y < max(y0, y1), so that a ray through a shared vertex is
// counted exactly once. Horizontal edges never contribute.
//
// Functions which take a crossings argument add the contribution of the edge
// to it and return the new total, or [Intersects] if the edge touches the
// query primitive.
package primitive

import "math"

// Intersects is returned by the crossing functions instead of a crossing
// count when the edge touches the query primitive.
const Intersects = math.MinInt

// Epsilon is the absolute tolerance used for coincidence tests.
const Epsilon = 1e-10

// IsEpsilonEqual reports whether a and b differ by at most Epsilon.
func IsEpsilonEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// IsEpsilonZero reports whether |v| is at most Epsilon.
func IsEpsilonZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// IsUnitVector reports whether (x, y) has length 1, up to Epsilon.
func IsUnitVector(x, y float64) bool {
	return IsEpsilonEqual(x*x+y*y, 1)
}

// SquaredDistancePointToSegment returns the squared distance between the
// point (px, py) and the closest point of the segment from (x0, y0) to
// (x1, y1).
func SquaredDistancePointToSegment(px, py, x0, y0, x1, y1 float64) float64 {
	qx, qy := ClosestPointOnSegment(px, py, x0, y0, x1, y1)
	dx := px - qx
	dy := py - qy
	return dx*dx + dy*dy
}

// ClosestPointOnSegment returns the point of the segment from (x0, y0) to
// (x1, y1) which is closest to (px, py).
func ClosestPointOnSegment(px, py, x0, y0, x1, y1 float64) (float64, float64) {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x0, y0
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = max(0, min(1, t))
	return x0 + t*dx, y0 + t*dy
}

// PointCrossings returns the number of times the edge from (x0, y0) to
// (x1, y1) crosses the ray from (px, py) to the right.
// If the point lies on the edge, Intersects is returned.
func PointCrossings(px, py, x0, y0, x1, y1 float64) int {
	if SquaredDistancePointToSegment(px, py, x0, y0, x1, y1) <= Epsilon*Epsilon {
		return Intersects
	}
	if py < y0 && py < y1 {
		return 0
	}
	if py >= y0 && py >= y1 {
		return 0
	}
	if px >= x0 && px >= x1 {
		return 0
	}

	dir := -1
	if y0 < y1 {
		dir = 1
	}
	if px < x0 && px < x1 {
		return dir
	}
	xIntercept := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px >= xIntercept {
		return 0
	}
	return dir
}

// RectCrossings adds the crossings of the edge from (x0, y0) to (x1, y1)
// with the right shadow of the rectangle [xMin, xMax] × [yMin, yMax].
//
// The shadow is bounded by the two rays from (xMax, yMin) and (xMax, yMax),
// so an edge traversing the whole shadow contributes 2.
// An edge which passes through the interior of the rectangle yields
// Intersects.
func RectCrossings(crossings int, xMin, yMin, xMax, yMax, x0, y0, x1, y1 float64) int {
	if y0 >= yMax && y1 >= yMax {
		return crossings
	}
	if y0 <= yMin && y1 <= yMin {
		return crossings
	}
	if x0 <= xMin && x1 <= xMin {
		return crossings
	}
	if x0 >= xMax && x1 >= xMax {
		// The edge is entirely to the right of the rectangle and the
		// vertical ranges overlap, so it crosses the shadow partly or fully.
		return crossings + shadowSpan(yMin, yMax, y0, y1)
	}

	// Both the x and the y ranges overlap.  An endpoint inside the
	// rectangle is a direct hit.
	if (x0 > xMin && x0 < xMax && y0 > yMin && y0 < yMax) ||
		(x1 > xMin && x1 < xMax && y1 > yMin && y1 < yMax) {
		return Intersects
	}

	// Clip the edge to the horizontal band of the rectangle and see where
	// the clipped endpoints fall.
	xi0 := x0
	if y0 < yMin {
		xi0 += (yMin - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > yMax {
		xi0 += (yMax - y0) * (x1 - x0) / (y1 - y0)
	}
	xi1 := x1
	if y1 < yMin {
		xi1 += (yMin - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > yMax {
		xi1 += (yMax - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 <= xMin && xi1 <= xMin {
		return crossings
	}
	if xi0 >= xMax && xi1 >= xMax {
		return crossings + shadowSpan(yMin, yMax, y0, y1)
	}
	return Intersects
}

// shadowSpan counts how many of the two horizontal lines y = yMin and
// y = yMax are passed by an edge with the given vertical extent.
func shadowSpan(yMin, yMax, y0, y1 float64) int {
	n := 0
	if y0 < y1 {
		if y0 <= yMin {
			n++
		}
		if y1 >= yMax {
			n++
		}
	} else if y1 < y0 {
		if y1 <= yMin {
			n--
		}
		if y0 >= yMax {
			n--
		}
	}
	return n
}

// CircleCrossings adds the crossings of the edge from (x0, y0) to (x1, y1)
// with the rays to the right of the topmost and bottommost points of the
// circle with center (cx, cy) and the given radius.
// An edge which touches the closed disk yields Intersects.
func CircleCrossings(crossings int, cx, cy, radius, x0, y0, x1, y1 float64) int {
	r := math.Abs(radius)
	yMin := cy - r
	yMax := cy + r
	if (y0 < yMin && y1 < yMin) || (y0 > yMax && y1 > yMax) || (x0 < cx-r && x1 < cx-r) {
		return crossings
	}
	if SquaredDistancePointToSegment(cx, cy, x0, y0, x1, y1) <= r*r {
		return Intersects
	}
	return twoRays(crossings, cx, yMin, cx, yMax, x0, y0, x1, y1)
}

// EllipseCrossings adds the crossings of the edge from (x0, y0) to (x1, y1)
// with the rays to the right of the topmost and bottommost points of the
// axis-aligned ellipse inscribed in the rectangle with corner (ex, ey),
// width ew and height eh.
// An edge which touches the closed ellipse yields Intersects.
func EllipseCrossings(crossings int, ex, ey, ew, eh, x0, y0, x1, y1 float64) int {
	a := ew / 2
	b := eh / 2
	cx := ex + a
	cy := ey + b
	yMin := min(ey, ey+eh)
	yMax := max(ey, ey+eh)
	if (y0 < yMin && y1 < yMin) || (y0 > yMax && y1 > yMax) || (x0 < min(ex, ex+ew) && x1 < min(ex, ex+ew)) {
		return crossings
	}

	// In coordinates where the ellipse is the unit circle, the edge touches
	// the ellipse iff it comes within distance 1 of the origin.
	ux0 := (x0 - cx) / a
	uy0 := (y0 - cy) / b
	ux1 := (x1 - cx) / a
	uy1 := (y1 - cy) / b
	if SquaredDistancePointToSegment(0, 0, ux0, uy0, ux1, uy1) <= 1 {
		return Intersects
	}
	return twoRays(crossings, cx, yMin, cx, yMax, x0, y0, x1, y1)
}

// SegmentCrossings adds the crossings of the edge from (x0, y0) to (x1, y1)
// with the rays to the right of the two endpoints of the query segment from
// (sx0, sy0) to (sx1, sy1).
// An edge which touches the query segment yields Intersects.
func SegmentCrossings(crossings int, sx0, sy0, sx1, sy1, x0, y0, x1, y1 float64) int {
	yMin := min(sy0, sy1)
	yMax := max(sy0, sy1)
	xMin := min(sx0, sx1)
	if (y0 < yMin && y1 < yMin) || (y0 > yMax && y1 > yMax) || (x0 < xMin && x1 < xMin) {
		return crossings
	}
	if SegmentsIntersect(sx0, sy0, sx1, sy1, x0, y0, x1, y1) {
		return Intersects
	}
	return twoRays(crossings, sx0, sy0, sx1, sy1, x0, y0, x1, y1)
}

// twoRays adds the crossings of the edge from (x0, y0) to (x1, y1) with
// the rays to the right of (ax, ay) and (bx, by).
// If either point lies on the edge, Intersects is returned.
func twoRays(crossings int, ax, ay, bx, by, x0, y0, x1, y1 float64) int {
	c0 := PointCrossings(ax, ay, x0, y0, x1, y1)
	if c0 == Intersects {
		return Intersects
	}
	c1 := PointCrossings(bx, by, x0, y0, x1, y1)
	if c1 == Intersects {
		return Intersects
	}
	return crossings + c0 + c1
}

// SegmentsIntersect reports whether the closed segments from (ax0, ay0) to
// (ax1, ay1) and from (bx0, by0) to (bx1, by1) have a point in common.
// Touching endpoints and collinear overlaps count as intersections.
func SegmentsIntersect(ax0, ay0, ax1, ay1, bx0, by0, bx1, by1 float64) bool {
	o1 := orientation(ax0, ay0, ax1, ay1, bx0, by0)
	o2 := orientation(ax0, ay0, ax1, ay1, bx1, by1)
	o3 := orientation(bx0, by0, bx1, by1, ax0, ay0)
	o4 := orientation(bx0, by0, bx1, by1, ax1, ay1)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	if o1 == 0 && inBox(bx0, by0, ax0, ay0, ax1, ay1) {
		return true
	}
	if o2 == 0 && inBox(bx1, by1, ax0, ay0, ax1, ay1) {
		return true
	}
	if o3 == 0 && inBox(ax0, ay0, bx0, by0, bx1, by1) {
		return true
	}
	if o4 == 0 && inBox(ax1, ay1, bx0, by0, bx1, by1) {
		return true
	}
	return false
}

// orientation returns the sign of the turn (x0,y0) → (x1,y1) → (px,py):
// +1 for counter-clockwise, -1 for clockwise and 0 for collinear points.
func orientation(x0, y0, x1, y1, px, py float64) int {
	cross := (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
	scale := max(math.Abs(x1-x0)+math.Abs(y1-y0), 1)
	switch {
	case cross > Epsilon*scale:
		return 1
	case cross < -Epsilon*scale:
		return -1
	default:
		return 0
	}
}

// inBox reports whether (px, py) lies in the bounding box of the segment
// from (x0, y0) to (x1, y1), up to Epsilon.
func inBox(px, py, x0, y0, x1, y1 float64) bool {
	return px >= min(x0, x1)-Epsilon && px <= max(x0, x1)+Epsilon &&
		py >= min(y0, y1)-Epsilon && py <= max(y0, y1)+Epsilon
}
