package geometry

import (
	"math"

	"github.com/kushrm2803/visgraph/point"
)

// EdgeDistance returns the Euclidean distance between a and b.
func EdgeDistance(a, b point.Point) float64 {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	return math.Sqrt(dx*dx + dy*dy)
}

// PointEdgeDistance returns the distance from source to the point where the
// line through source and towards meets edge's line, or 0 if the two lines
// are parallel or coincide. The 0 return is a degenerate-geometry case, not
// an error.
func PointEdgeDistance(source, towards point.Point, edge point.Edge) float64 {
	ip, ok := IntersectPoint(source, towards, edge)
	if !ok {
		return 0
	}
	return EdgeDistance(source, ip)
}
