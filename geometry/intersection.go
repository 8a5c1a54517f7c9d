package geometry

import (
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// SegmentsIntersect reports whether segment p1p2 crosses segment q1q2,
// including boundary-touching configurations (shared endpoints, a T-junction,
// or overlapping collinear segments). It is the general four-orientation
// test plus the four collinear-overlap special cases that the sweep uses to
// decide whether a candidate sight line crosses an obstacle edge.
func SegmentsIntersect(p1, p2, q1, q2 point.Point, opts options.GeometryOptions) bool {
	o1 := Orientation(p1, p2, q1, opts)
	o2 := Orientation(p1, p2, q2, opts)
	o3 := Orientation(q1, q2, p1, opts)
	o4 := Orientation(q1, q2, p2, opts)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && OnSegment(p1, q1, p2) {
		return true
	}
	if o2 == Collinear && OnSegment(p1, q2, p2) {
		return true
	}
	if o3 == Collinear && OnSegment(q1, p1, q2) {
		return true
	}
	if o4 == Collinear && OnSegment(q1, p2, q2) {
		return true
	}

	return false
}

// IntersectPoint returns the point where line p1p2 crosses edge's line,
// along with whether such a point exists (parallel or coincident lines have
// none). If p1 or p2 is already an endpoint of edge, that endpoint is
// returned directly rather than recomputed, matching the convention the
// active-edge distance ordering relies on.
func IntersectPoint(p1, p2 point.Point, edge point.Edge) (point.Point, bool) {
	if edge.Has(p1) {
		return p1, true
	}
	if edge.Has(p2) {
		return p2, true
	}

	e1, e2 := edge.P1(), edge.P2()

	if e1.X() == e2.X() {
		if p1.X() == p2.X() {
			return point.Point{}, false
		}
		pslope := (p1.Y() - p2.Y()) / (p1.X() - p2.X())
		ix := e1.X()
		iy := pslope*(ix-p1.X()) + p1.Y()
		return point.New(ix, iy), true
	}

	if p1.X() == p2.X() {
		eslope := (e1.Y() - e2.Y()) / (e1.X() - e2.X())
		ix := p1.X()
		iy := eslope*(ix-e1.X()) + e1.Y()
		return point.New(ix, iy), true
	}

	pslope := (p1.Y() - p2.Y()) / (p1.X() - p2.X())
	eslope := (e1.Y() - e2.Y()) / (e1.X() - e2.X())
	if eslope == pslope {
		return point.Point{}, false
	}
	ix := (eslope*e1.X() - pslope*p1.X() + p1.Y() - e1.Y()) / (eslope - pslope)
	iy := eslope*(ix-e1.X()) + e1.Y()
	return point.New(ix, iy), true
}
