// Package visgraph builds visibility graphs over polygonal obstacles and
// computes shortest paths across them.
//
// # Coordinate System
//
// The package assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward. Orientation
// tests (clockwise/counterclockwise) follow this convention.
//
// # Building a graph
//
// Build takes a set of polygons (each an ordered ring of corner
// points representing an opaque obstacle) and computes, for every corner,
// the set of other corners it can see in an unobstructed straight line. The
// result is a visibility graph suitable for shortest-path queries via
// Engine.ShortestPath.
//
// # Precision
//
// Geometric predicates tolerate floating-point noise by truncating
// intermediate results to a configurable scale rather than comparing against
// an epsilon band; see options.GeometryOptions.
//
// # Acknowledgments
//
// The rotational-sweep algorithm this package implements, and its polygon
// crossing-number interior test, follow the approach described by the
// PyVisGraph project for computing visibility graphs from shapefile
// obstacle data.
package visgraph

func init() {
	logDebugf("debug logging enabled")
}
