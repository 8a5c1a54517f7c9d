// Package geometry provides the planar predicates the visibility sweep is
// built on: orientation, segment intersection, angle, and distance.
//
// # Tolerance scale
//
// Every predicate that can be thrown off by floating-point noise near a
// collinear or tangent configuration scales its intermediate result by a
// Tolerance (default 10^10), truncates toward zero, and rescales, per the
// engine's coordinate-domain contract. This turns borderline-collinear
// configurations into exactly-collinear outcomes, which is what lets the
// sweep's case analysis (§4.3 of the design) stay a clean three-way branch
// instead of an epsilon-band of "maybe." The scale is configuration, not a
// process global — see options.GeometryOptions.
package geometry

import (
	"fmt"
	"math"

	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// OrientationType is the result of a three-point orientation test.
type OrientationType int8

const (
	// Collinear means A, B, C lie on a single line.
	Collinear OrientationType = iota
	// Counterclockwise means A, B, C turn left.
	Counterclockwise
	// Clockwise means A, B, C turn right.
	Clockwise
)

// String renders the orientation for debugging and log output.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("geometry: unsupported orientation %d", o))
	}
}

// truncate scales v by opts.Tolerance, truncates toward zero, and rescales.
// This is the stabilizing step every predicate in this file routes through
// before comparing against zero.
func truncate(v float64, opts options.GeometryOptions) float64 {
	return math.Trunc(v*opts.Tolerance) / opts.Tolerance
}

// Orientation determines whether A, B, C form a clockwise turn, a
// counterclockwise turn, or are collinear, from the sign of the cross
// product of (B-A) and (C-A), after truncation through opts.Tolerance.
func Orientation(a, b, c point.Point, opts options.GeometryOptions) OrientationType {
	area := (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
	area = truncate(area, opts)
	switch {
	case area > 0:
		return Counterclockwise
	case area < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// OnSegment reports whether q lies within the axis-aligned bounding box of
// p and r. It is only meaningful — and only ever called — once p, q, r are
// already known to be collinear.
func OnSegment(p, q, r point.Point) bool {
	return (p.X() <= q.X() && q.X() <= r.X() || r.X() <= q.X() && q.X() <= p.X()) &&
		(p.Y() <= q.Y() && q.Y() <= r.Y() || r.Y() <= q.Y() && q.Y() <= p.Y())
}
