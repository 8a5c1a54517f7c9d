package geometry

import (
	"math"

	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// Angle returns the angle, in radians over [0, 2*pi), of target as seen from
// center, measured counterclockwise from the positive x-axis. This is the
// sort key the sweep orders obstacle vertices by before sweeping the ray
// around center.
func Angle(center, target point.Point) float64 {
	dx := target.X() - center.X()
	dy := target.Y() - center.Y()

	switch {
	case dx == 0 && dy > 0:
		return math.Pi / 2
	case dx == 0 && dy < 0:
		return 3 * math.Pi / 2
	case dy == 0 && dx > 0:
		return 0
	case dy == 0 && dx < 0:
		return math.Pi
	}

	a := math.Atan(dy / dx)
	switch {
	case dx < 0:
		return math.Pi + a
	case dy < 0:
		return 2*math.Pi + a
	default:
		return a
	}
}

// AngleABC returns the interior angle at vertex b of triangle a-b-c, in
// radians over [0, pi], via the law of cosines. It is the tie-break the
// active-edge ordering falls back to when two candidate edges lie at equal
// distance from the sweep's source point: the edge whose far endpoint turns
// through the smaller angle is ordered first.
func AngleABC(a, b, c point.Point, opts options.GeometryOptions) float64 {
	distCB2 := square(c.X()-b.X()) + square(c.Y()-b.Y())
	distCA2 := square(c.X()-a.X()) + square(c.Y()-a.Y())
	distBA2 := square(b.X()-a.X()) + square(b.Y()-a.Y())

	denom := 2 * math.Sqrt(distCB2) * math.Sqrt(distBA2)
	if denom == 0 {
		denom = opts.AngleEpsilon
	}

	cosValue := (distCB2 + distBA2 - distCA2) / denom
	cosValue = truncate(cosValue, opts)
	cosValue = math.Max(-1, math.Min(1, cosValue))
	return math.Acos(cosValue)
}

func square(v float64) float64 { return v * v }
