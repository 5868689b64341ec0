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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	// DefaultMiterLimit is the miter limit used by [NewStroke].
	DefaultMiterLimit = 10.0

	// zeroLengthThreshold is the length below which stroke segments are
	// ignored.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin θ| below which two consecutive
	// stroke segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cos θ below which a corner is treated
	// as a cusp and gets two caps instead of a join.
	cuspCosineThreshold = -0.9999
)

// Stroke describes the pen used to draw the outline of a path.
type Stroke struct {
	// Width is the line width. Paths stroked with a non-positive width
	// have an empty outline.
	Width float64

	// Cap sets the style for the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join sets the style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the length of miter joins, relative to the line
	// width. Values below 1 are treated as 1.
	MiterLimit float64

	// Dash specifies alternating on/off lengths. All elements must be
	// non-negative. Nil means solid.
	Dash []float64

	// DashPhase offsets into the dash pattern.
	DashPhase float64

	// Flatness is the tolerance used for curves, round caps and round
	// joins. A non-positive value selects [DefaultFlatness].
	Flatness float64
}

// NewStroke returns a solid stroke of the given width, with butt caps and
// miter joins.
func NewStroke(width float64) *Stroke {
	return &Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: DefaultMiterLimit,
	}
}

// StrokeContains reports whether (x, y) is covered when the path is drawn
// using s.
func (p *Path) StrokeContains(x, y float64, s *Stroke) bool {
	return s.Outline(p).Contains(x, y)
}

// Outline returns a path, using the NonZero fill rule, which covers the
// area painted when p is drawn using s. The outline consists of one closed
// polygon per subpath or dash.
func (s *Stroke) Outline(p *Path) *Path {
	o := &outliner{
		Stroke:   s,
		d:        s.Width / 2,
		miter:    max(s.MiterLimit, 1),
		flatness: s.Flatness,
	}
	if o.flatness <= 0 {
		o.flatness = DefaultFlatness
	}
	out := New(NonZero)
	if s.Width <= 0 {
		return out
	}

	o.flatten(p)
	if len(o.segsOffsets) == 0 && len(o.degeneratePoints) == 0 {
		return out
	}

	// subpaths without orientation only produce a dot for round caps
	if s.Cap == graphics.LineCapRound {
		for _, pt := range o.degeneratePoints {
			start := len(o.stroke)
			o.addArc(pt, o.d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			o.strokeOffsets = append(o.strokeOffsets, start)
		}
	}

	if len(s.Dash) > 0 {
		o.strokeDashedSubpaths()
	} else {
		o.strokeAllSubpaths()
	}

	o.emit(out)
	return out
}

// strokeSegment is a flattened line segment with precomputed direction.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A to B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

// outliner holds the buffers used while computing a stroke outline.
type outliner struct {
	*Stroke
	d        float64 // half the line width
	miter    float64
	flatness float64

	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	dashedSegs []strokeSegment
	dashes     []span // ranges in dashedSegs

	stroke        []vec.Vec2 // polygon vertices, all polygons contiguous
	strokeOffsets []int      // start of each polygon in stroke
}

// emit appends the collected polygons to out.
func (o *outliner) emit(out *Path) {
	for i, start := range o.strokeOffsets {
		end := len(o.stroke)
		if i+1 < len(o.strokeOffsets) {
			end = o.strokeOffsets[i+1]
		}
		poly := o.stroke[start:end]
		if len(poly) < 2 {
			continue
		}
		out.MoveTo(poly[0].X, poly[0].Y)
		for _, pt := range poly[1:] {
			out.LineTo(pt.X, pt.Y)
		}
		out.Close()
	}
}

func (o *outliner) strokeAllSubpaths() {
	for i := range o.segsOffsets {
		start := len(o.stroke)
		o.strokeSubpath(subpathOf(o.segs, o.segsOffsets, i), o.subpathClosed[i])
		o.keep(start)
	}
}

func (o *outliner) strokeDashedSubpaths() {
	o.applyDashPattern()

	for _, r := range o.dashes {
		segs := o.dashedSegs[r.start:r.end]

		// zero-length dashes keep the orientation of the underlying path
		if len(segs) == 1 && segs[0].A == segs[0].B {
			seg := &segs[0]
			start := len(o.stroke)
			switch o.Cap {
			case graphics.LineCapRound:
				o.addArc(seg.A, o.d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
				o.strokeOffsets = append(o.strokeOffsets, start)
			case graphics.LineCapSquare:
				o.addSquare(seg.A, seg.T, o.d)
				o.strokeOffsets = append(o.strokeOffsets, start)
			}
			continue
		}

		start := len(o.stroke)
		o.strokeSubpath(segs, false)
		o.keep(start)
	}
}

// keep records the polygon starting at start, or discards it if it has
// fewer than three vertices.
func (o *outliner) keep(start int) {
	if len(o.stroke)-start >= 3 {
		o.strokeOffsets = append(o.strokeOffsets, start)
	} else {
		o.stroke = o.stroke[:start]
	}
}

type span struct {
	start, end int
}

func subpathOf(segs []strokeSegment, offsets []int, i int) []strokeSegment {
	end := len(segs)
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	return segs[offsets[i]:end]
}

// flatten splits the flattened path into subpaths of stroke segments.
// Subpaths which contain drawing operations but no segment of positive
// length are recorded in degeneratePoints.
func (o *outliner) flatten(p *Path) {
	var cur, start vec.Vec2
	startIdx := 0
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(o.segs) > startIdx:
			o.segsOffsets = append(o.segsOffsets, startIdx)
			o.subpathClosed = append(o.subpathClosed, closed)
		case drawn || closed:
			o.degeneratePoints = append(o.degeneratePoints, start)
		}
		startIdx = len(o.segs)
		inSubpath = false
		drawn = false
	}

	it := p.Flatten(o.flatness, DefaultLimit)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		switch s.Cmd {
		case CmdMoveTo:
			if inSubpath {
				finish(false)
			}
			cur, start = s.To, s.To
			inSubpath = true
		case CmdLineTo:
			if !inSubpath {
				// a line after Close starts a new subpath at the old start
				start = cur
				inSubpath = true
			}
			drawn = true
			o.addStrokeSegment(cur, s.To)
			cur = s.To
		case CmdClose:
			if !inSubpath {
				continue
			}
			if cur != start {
				o.addStrokeSegment(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	if inSubpath {
		finish(false)
	}
}

func (o *outliner) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	o.segs = append(o.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath appends the outline of a single subpath as one polygon:
// the +N side forward, then the -N side backward. Joins are added on the
// outer side of each corner.
func (o *outliner) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := o.d
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		sinClose := cross(last.T, first.T)

		// forward pass, +N side
		o.stroke = append(o.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			if i < len(segs)-1 {
				next = &segs[i+1]
			}
			sinTheta := cross(seg.T, next.T)
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				o.stroke = append(o.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
			case sinTheta > 0:
				o.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, d, true)
			default:
				o.stroke = append(o.stroke, seg.B.Add(seg.N.Mul(d)))
				o.addJoin(seg.B, seg.T, next.T, d, true)
				o.stroke = append(o.stroke, next.A.Add(next.N.Mul(d)))
			}
		}

		// backward pass, -N side, starting at the closing corner
		switch {
		case math.Abs(sinClose) < collinearityThreshold:
			o.stroke = append(o.stroke, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
		case sinClose > 0:
			o.stroke = append(o.stroke, first.A.Sub(first.N.Mul(d)))
			o.addJoin(first.A, last.T, first.T, d, false)
			o.stroke = append(o.stroke, last.B.Sub(last.N.Mul(d)))
		default:
			o.addInnerIntersectionOrOffsets(first.A, last.T, first.T, last.N, first.N, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := cross(prev.T, seg.T)
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				o.stroke = append(o.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
			case sinTheta > 0:
				o.stroke = append(o.stroke, seg.A.Sub(seg.N.Mul(d)))
				o.addJoin(seg.A, prev.T, seg.T, d, false)
				o.stroke = append(o.stroke, prev.B.Sub(prev.N.Mul(d)))
			default:
				o.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
			}
		}
		o.stroke = append(o.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	o.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			o.stroke = append(o.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			o.stroke = append(o.stroke, seg.B.Add(seg.N.Mul(d)))
			continue
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			o.stroke = append(o.stroke, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			skip = o.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			o.stroke = append(o.stroke, seg.B.Add(seg.N.Mul(d)))
			o.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	o.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			o.stroke = append(o.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			o.stroke = append(o.stroke, seg.A.Sub(seg.N.Mul(d)))
			continue
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			o.stroke = append(o.stroke, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			o.stroke = append(o.stroke, seg.A.Sub(seg.N.Mul(d)))
			o.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = o.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds a line cap at P. T is the outward tangent direction.
func (o *outliner) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch o.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		o.stroke = append(o.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from N through T to -N
		o.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the two inner offset lines
// of a corner meet. The second return value is false for nearly collinear
// tangents.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positive bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfAngle := math.Sqrt((1 + cosTheta) / 2) // cos(θ/2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	dir := N1.Add(N2)
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * halfAngle))), true
}

// addInnerIntersectionOrOffsets handles the inner side of a corner.
// It reports whether the intersection point was used, in which case the
// offset point of the following segment must be skipped.
func (o *outliner) addInnerIntersectionOrOffsets(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	if pt, ok := innerIntersection(P, T1, T2, d, positive); ok {
		o.stroke = append(o.stroke, pt)
		return true
	}
	if positive {
		o.stroke = append(o.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		o.stroke = append(o.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds a line join at P, where the tangent changes from T1 to T2.
func (o *outliner) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		o.addCap(P, T1, d)
		o.addCap(P, T2.Mul(-1), d)
		return
	}

	switch o.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= o.miter+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				o.stroke = append(o.stroke, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
			return
		}
		// bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				o.addArc(P, d, N1, angle, false)
			} else {
				o.addArc(P, d, N1, -angle, false)
			}
		} else {
			// the backward pass runs from -N of T2 to -N of T1
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				o.addArc(P, d, N2, -angle, false)
			} else {
				o.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc appends the vertices of a circular arc around center.
// The arc starts in direction startDir and sweeps by the given angle,
// counter-clockwise for positive sweeps.
func (o *outliner) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	rotate := func(angle float64) vec.Vec2 {
		cos, sin := math.Cos(angle), math.Sin(angle)
		return vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
	}

	if radius < o.flatness {
		if includeStart {
			o.stroke = append(o.stroke, center.Add(startDir.Mul(radius)))
		}
		o.stroke = append(o.stroke, center.Add(rotate(sweep).Mul(radius)))
		return
	}

	// A chord spanning the angle θ deviates from the circle by
	// r(1 - cos(θ/2)).
	step := 2 * math.Acos(1-o.flatness/radius)
	if step <= 0 || math.IsNaN(step) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	dt := sweep / float64(n)
	i0 := 0
	if !includeStart {
		i0 = 1
	}
	for i := i0; i <= n; i++ {
		o.stroke = append(o.stroke, center.Add(rotate(float64(i)*dt).Mul(radius)))
	}
}

// addSquare adds a square of side 2d, centred at center and aligned
// with T.
func (o *outliner) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	o.stroke = append(o.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// applyDashPattern splits the flattened subpaths into dashes.
func (o *outliner) applyDashPattern() {
	dash := o.Dash
	dashLen := len(dash)

	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 {
		return
	}

	phase := math.Mod(o.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	for spIdx := range o.segsOffsets {
		segments := subpathOf(o.segs, o.segsOffsets, spIdx)
		closed := o.subpathClosed[spIdx]

		dashIdx := 0
		dist := phase
		for dist >= dash[dashIdx%dashLen] && dash[dashIdx%dashLen] > 0 {
			dist -= dash[dashIdx%dashLen]
			dashIdx++
		}
		remaining := dash[dashIdx%dashLen] - dist
		isOn := dashIdx%2 == 0

		// a zero-length dash at the start becomes a dot
		if isOn && remaining == 0 {
			seg := segments[0]
			o.dashedSegs = append(o.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			o.dashes = append(o.dashes, span{len(o.dashedSegs) - 1, len(o.dashedSegs)})
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		startedOn := isOn
		firstDashStart, firstDashEnd := -1, -1

		dashStart := len(o.dashedSegs)
		segIdx := 0
		segDist := 0.0
		for segIdx < len(segments) {
			seg := segments[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			segRemaining := segLen - segDist

			if remaining >= segRemaining {
				if isOn {
					if segDist > 0 {
						a := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
						o.dashedSegs = append(o.dashedSegs, strokeSegment{A: a, B: seg.B, T: seg.T, N: seg.N})
					} else {
						o.dashedSegs = append(o.dashedSegs, seg)
					}
				}
				remaining -= segRemaining
				segIdx++
				segDist = 0
				continue
			}

			endDist := segDist + remaining
			split := seg.A.Add(seg.B.Sub(seg.A).Mul(endDist / segLen))
			if isOn {
				a := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
				if l := split.Sub(a).Length(); l > zeroLengthThreshold {
					o.dashedSegs = append(o.dashedSegs, strokeSegment{A: a, B: split, T: seg.T, N: seg.N})
				} else if len(o.dashedSegs) == dashStart {
					o.dashedSegs = append(o.dashedSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
				}

				if firstDashStart < 0 && len(o.dashedSegs) > dashStart {
					firstDashStart = dashStart
					firstDashEnd = len(o.dashedSegs)
				}
				if len(o.dashedSegs) > dashStart {
					o.dashes = append(o.dashes, span{dashStart, len(o.dashedSegs)})
					dashStart = len(o.dashedSegs)
				}
			}

			segDist = endDist
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		if len(o.dashedSegs) > dashStart {
			// on a closed subpath, the last dash continues into the first
			if closed && startedOn && isOn && firstDashStart >= 0 {
				o.dashedSegs = append(o.dashedSegs, o.dashedSegs[firstDashStart:firstDashEnd]...)
				o.dashes = slices.DeleteFunc(o.dashes, func(r span) bool {
					return r.start == firstDashStart
				})
			}
			o.dashes = append(o.dashes, span{dashStart, len(o.dashedSegs)})
		}
	}
}
