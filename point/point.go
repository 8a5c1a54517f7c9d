// Package point defines the foundational vertex type of the visibility-graph
// engine: a planar point tagged with the id of the polygon it belongs to.
//
// # Overview
//
// A Point is identified purely by its coordinates — the polygon_id is
// metadata carried alongside it, not part of its identity. Two Points with
// the same coordinates are the same vertex, whatever their tags say. This
// matters because the same coordinate pair can show up in an obstacle
// polygon, in a second obstacle polygon that happens to touch the first, or
// as an ad-hoc query endpoint; the engine must treat all of these as one
// vertex.
package point

import (
	"fmt"
	"math"
)

// Point is a vertex in the plane, in double precision, with a polygon tag.
//
// PolygonID is -1 for vertices that do not belong to any obstacle polygon:
// ad-hoc query endpoints, and isolated points/edges contributed by
// degenerate (1–2 point) polygon inputs.
//
// Point is immutable after construction; there is no setter for PolygonID.
// The tag is decided once, by the obstacle graph builder, before the Point
// is ever handed out — see obstacle.Build.
type Point struct {
	x, y      float64
	polygonID int
}

// Unassigned is the polygon id carried by free vertices: ad-hoc query
// endpoints and the isolated points of degenerate (fewer than 3 vertex)
// polygon inputs.
const Unassigned = -1

// New creates a Point with no polygon tag (PolygonID == Unassigned).
func New(x, y float64) Point {
	return Point{x: x, y: y, polygonID: Unassigned}
}

// NewTagged creates a Point already tagged with the id of its owning
// polygon. Used by obstacle.Build, which knows every vertex's polygon id
// before constructing any Point.
func NewTagged(x, y float64, polygonID int) Point {
	return Point{x: x, y: y, polygonID: polygonID}
}

// X returns the x-coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the y-coordinate.
func (p Point) Y() float64 { return p.y }

// PolygonID returns the id of the polygon this vertex belongs to, or
// Unassigned if the point is free.
func (p Point) PolygonID() int { return p.polygonID }

// Finite reports whether both coordinates are finite (not NaN, not ±Inf).
// Obstacle validation uses this to reject malformed polygon input.
func (p Point) Finite() bool {
	return !math.IsNaN(p.x) && !math.IsInf(p.x, 0) &&
		!math.IsNaN(p.y) && !math.IsInf(p.y, 0)
}

// Eq reports whether p and q are the same vertex. Equality is by
// coordinates only, exactly (no epsilon): per the data model, polygon_id is
// metadata and does not participate in identity.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// Less gives Points a total order by (x, y), used to keep vertex sets
// (obstacle.Graph's btree-backed index) and Edge's canonical endpoint
// ordering deterministic.
func (p Point) Less(q Point) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
