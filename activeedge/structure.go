// Package activeedge implements the rotational sweep's active-edge set: the
// obstacle edges currently crossing the sweep ray from a fixed source point,
// ordered by distance from that source so the nearest blocking edge is
// always a cheap lookup away.
package activeedge

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kushrm2803/visgraph/geometry"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// Structure is the active-edge set for a single sweep originating at a fixed
// source point. Its ordering is relative to a target point that changes as
// the sweep advances from one angularly-sorted vertex to the next; callers
// must call SetTarget before each Insert/Delete/Smallest that belongs to a
// new target, mirroring the reference sweep's practice of comparing open
// edges against the ray from source through whichever vertex is currently
// being tested.
type Structure struct {
	tree   *rbt.Tree
	source point.Point
	target point.Point
	opts   options.GeometryOptions
}

// New returns an empty active-edge set swept from source.
func New(source point.Point, opts options.GeometryOptions) *Structure {
	s := &Structure{source: source, opts: opts}
	s.tree = rbt.NewWith(s.compare)
	return s
}

// SetTarget updates the ray endpoint (source -> target) that Insert, Delete,
// and Smallest order edges against.
func (s *Structure) SetTarget(target point.Point) {
	s.target = target
}

// Insert adds edge to the active set.
func (s *Structure) Insert(edge point.Edge) {
	s.tree.Put(edge, nil)
}

// Delete removes edge from the active set, if present.
func (s *Structure) Delete(edge point.Edge) {
	s.tree.Remove(edge)
}

// Smallest returns the edge nearest the source along the current ray, and
// whether the set is non-empty.
func (s *Structure) Smallest() (point.Edge, bool) {
	node := s.tree.Left()
	if node == nil {
		return point.Edge{}, false
	}
	return node.Key.(point.Edge), true
}

// Len returns the number of edges currently active.
func (s *Structure) Len() int {
	return s.tree.Size()
}

// Each calls fn for every active edge, nearest-first, stopping early if fn
// returns false.
func (s *Structure) Each(fn func(point.Edge) bool) {
	iter := s.tree.Iterator()
	for iter.Next() {
		if !fn(iter.Key().(point.Edge)) {
			return
		}
	}
}

// compare orders two edges along the ray from s.source to s.target: an edge
// the ray does not cross sorts after one it does, closer edges sort before
// farther ones, and edges at equal distance (sharing a vertex) are
// tie-broken by the angle at the pivot s.target between s.source and each
// edge's other endpoint, so the edge bending away from the ray least sorts
// first.
func (s *Structure) compare(a, b any) int {
	edge1 := a.(point.Edge)
	edge2 := b.(point.Edge)

	if edge1.Eq(edge2) {
		return 0
	}

	less := s.less(edge1, edge2)
	greater := s.less(edge2, edge1)
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

func (s *Structure) less(edge1, edge2 point.Edge) bool {
	if !geometry.SegmentsIntersect(s.source, s.target, edge2.P1(), edge2.P2(), s.opts) {
		return true
	}

	dist1 := geometry.PointEdgeDistance(s.source, s.target, edge1)
	dist2 := geometry.PointEdgeDistance(s.source, s.target, edge2)
	if dist1 != dist2 {
		return dist1 < dist2
	}

	shared, ok := sharedEndpoint(edge1, edge2)
	if !ok {
		return false
	}
	angle1 := geometry.AngleABC(s.source, s.target, edge1.Other(shared), s.opts)
	angle2 := geometry.AngleABC(s.source, s.target, edge2.Other(shared), s.opts)
	return angle1 < angle2
}

func sharedEndpoint(edge1, edge2 point.Edge) (point.Point, bool) {
	switch {
	case edge2.Has(edge1.P1()):
		return edge1.P1(), true
	case edge2.Has(edge1.P2()):
		return edge1.P2(), true
	default:
		return point.Point{}, false
	}
}
