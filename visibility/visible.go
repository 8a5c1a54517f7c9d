// Package visibility implements the rotational sweep that determines, for a
// single source point, which vertices of an obstacle graph it can see in a
// straight, obstacle-free line.
package visibility

import (
	"sort"

	"github.com/kushrm2803/visgraph/activeedge"
	"github.com/kushrm2803/visgraph/geometry"
	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// Visible returns every vertex of g visible from source, optionally treating
// origin and destination as additional candidate vertices to test (without
// adding them to g). A vertex is visible from source if the open segment
// between them crosses no obstacle edge and, when source and the vertex carry
// the same polygon id, does not pass through that polygon's interior. The
// interior test reads the polygon id of source itself, so a source made with
// point.New is not tested against any polygon's interior, even where it
// coincides with an obstacle vertex.
//
// This is the O(n log n)-per-source rotational sweep: candidate vertices are
// sorted by angle around source, a ray is swept counterclockwise from the
// positive x-axis, and an active-edge set (package activeedge) tracks which
// obstacle edges currently cross the ray, nearest first.
func Visible(source point.Point, g *obstacle.Graph, origin, destination *point.Point, opts options.GeometryOptions) []point.Point {
	candidates := g.Points()
	if origin != nil {
		candidates = append(candidates, *origin)
	}
	if destination != nil {
		candidates = append(candidates, *destination)
	}

	sort.Slice(candidates, func(i, j int) bool {
		ai := geometry.Angle(source, candidates[i])
		aj := geometry.Angle(source, candidates[j])
		if ai != aj {
			return ai < aj
		}
		return geometry.EdgeDistance(source, candidates[i]) < geometry.EdgeDistance(source, candidates[j])
	})

	open := activeedge.New(source, opts)
	rayEnd := point.New(opts.Infinity, source.Y())
	for _, edge := range g.Edges() {
		if edge.Has(source) {
			continue
		}
		if !geometry.SegmentsIntersect(source, rayEnd, edge.P1(), edge.P2(), opts) {
			continue
		}
		if geometry.OnSegment(source, edge.P1(), rayEnd) {
			continue
		}
		if geometry.OnSegment(source, edge.P2(), rayEnd) {
			continue
		}
		open.SetTarget(rayEnd)
		open.Insert(edge)
	}

	var visible []point.Point
	var prev *point.Point
	prevVisible := false

	for _, p := range candidates {
		if p.Eq(source) {
			continue
		}

		open.SetTarget(p)
		if open.Len() > 0 {
			for _, edge := range g.AdjacentEdges(p) {
				if geometry.Orientation(source, p, edge.Other(p), opts) == geometry.Clockwise {
					open.Delete(edge)
				}
			}
		}

		isVisible := false
		switch {
		case prev == nil || geometry.Orientation(source, *prev, p, opts) != geometry.Collinear || !geometry.OnSegment(source, *prev, p):
			if open.Len() == 0 {
				isVisible = true
			} else if smallest, ok := open.Smallest(); ok && !geometry.SegmentsIntersect(source, p, smallest.P1(), smallest.P2(), opts) {
				isVisible = true
			}
		case !prevVisible:
			isVisible = false
		default:
			isVisible = true
			open.SetTarget(p)
			open.Each(func(edge point.Edge) bool {
				if !edge.Has(*prev) && geometry.SegmentsIntersect(*prev, p, edge.P1(), edge.P2(), opts) {
					isVisible = false
					return false
				}
				return true
			})
			if isVisible && edgeInteriorToPolygon(*prev, p, g, opts) {
				isVisible = false
			}
		}

		if isVisible && !contains(g.AdjacentPoints(source), p) {
			isVisible = !edgeInteriorToPolygon(source, p, g, opts)
		}

		if isVisible {
			visible = append(visible, p)
		}

		for _, edge := range g.AdjacentEdges(p) {
			if edge.Has(source) {
				continue
			}
			if geometry.Orientation(source, p, edge.Other(p), opts) == geometry.Counterclockwise {
				open.SetTarget(p)
				open.Insert(edge)
			}
		}

		prevCopy := p
		prev = &prevCopy
		prevVisible = isVisible
	}

	return visible
}

func contains(points []point.Point, p point.Point) bool {
	for _, q := range points {
		if q.Eq(p) {
			return true
		}
	}
	return false
}
