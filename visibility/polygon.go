package visibility

import (
	"github.com/kushrm2803/visgraph/geometry"
	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// edgeInteriorToPolygon reports whether the open segment p1-p2 cuts through
// the interior of the polygon its endpoints belong to. A candidate edge
// whose endpoints belong to different polygons, or to no polygon, can never
// be interior, since "interior" only has meaning within a single polygon.
func edgeInteriorToPolygon(p1, p2 point.Point, g *obstacle.Graph, opts options.GeometryOptions) bool {
	if p1.PolygonID() != p2.PolygonID() || p1.PolygonID() == point.Unassigned {
		return false
	}
	mid := point.New((p1.X()+p2.X())/2, (p1.Y()+p2.Y())/2)
	return polygonCrossing(mid, g.Polygon(p1.PolygonID()), opts)
}

// polygonCrossing reports whether p lies inside the polygon described by
// polyEdges, via the crossing-number algorithm: a horizontal ray from p to
// (Infinity, p.y) is cast, and p is inside iff the ray crosses the boundary
// an odd number of times. Edges collinear with the ray are handled by
// counting only the endpoint whose other side lies above the ray, avoiding
// the double-count a naive crossing test would make at a shared vertex.
func polygonCrossing(p point.Point, polyEdges []point.Edge, opts options.GeometryOptions) bool {
	ray := point.New(opts.Infinity, p.Y())
	crossings := 0

	for _, edge := range polyEdges {
		e1, e2 := edge.P1(), edge.P2()

		if p.Y() < e1.Y() && p.Y() < e2.Y() {
			continue
		}
		if p.Y() > e1.Y() && p.Y() > e2.Y() {
			continue
		}
		if p.X() > e1.X() && p.X() > e2.X() {
			continue
		}

		e1Collinear := geometry.Orientation(p, e1, ray, opts) == geometry.Collinear
		e2Collinear := geometry.Orientation(p, e2, ray, opts) == geometry.Collinear

		switch {
		case e1Collinear && e2Collinear:
			continue
		case e1Collinear:
			if edge.Other(e1).Y() > p.Y() {
				crossings++
			}
		case e2Collinear:
			if edge.Other(e2).Y() > p.Y() {
				crossings++
			}
		case geometry.SegmentsIntersect(p, ray, e1, e2, opts):
			crossings++
		}
	}

	return crossings%2 != 0
}
