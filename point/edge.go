package point

import "fmt"

// Edge is an unordered pair of Points. Edge(a, b) and Edge(b, a) are the
// same edge: NewEdge canonicalizes endpoint order internally (p1 is never
// greater than p2, under Point.Less), so Edge's ordinary Go struct equality
// already agrees with symmetric edge equality — no custom Hash/Eq
// combination is needed to use Edge directly as a map key or as a
// btree.BTreeG element (see SPEC_FULL.md's resolution of the §9 open question
// on order-independent edge hashing). Go's == on Edge, and so its use as a
// map key, also compares the endpoints' polygon ids; Eq does not.
//
// An Edge never self-loops; NewEdge panics if given two equal points, since
// neither the obstacle graph (polygon processing skips degenerate
// zero-length sides) nor the sweep (which never reports a vertex as visible
// from itself) ever constructs one.
type Edge struct {
	p1, p2 Point
}

// NewEdge builds the Edge between a and b.
func NewEdge(a, b Point) Edge {
	if a.Eq(b) {
		panic(fmt.Sprintf("point: degenerate edge at %s", a))
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{p1: a, p2: b}
}

// P1 returns the lexicographically smaller endpoint.
func (e Edge) P1() Point { return e.p1 }

// P2 returns the lexicographically larger endpoint.
func (e Edge) P2() Point { return e.p2 }

// Eq reports whether e and other connect the same two vertices.
func (e Edge) Eq(other Edge) bool {
	return e.p1.Eq(other.p1) && e.p2.Eq(other.p2)
}

// Other returns the endpoint of e that is not p. Other panics if p is not
// an endpoint of e — callers only ever call this having already confirmed
// p is one of e's two points (via Has or by construction).
func (e Edge) Other(p Point) Point {
	switch {
	case p.Eq(e.p1):
		return e.p2
	case p.Eq(e.p2):
		return e.p1
	default:
		panic(fmt.Sprintf("point: %s is not an endpoint of edge %s", p, e))
	}
}

// Has reports whether p is one of e's two endpoints.
func (e Edge) Has(p Point) bool {
	return p.Eq(e.p1) || p.Eq(e.p2)
}

// Less orders Edges lexicographically by canonical endpoints, giving
// btree.BTreeG a total order to sort edge sets by.
func (e Edge) Less(other Edge) bool {
	if !e.p1.Eq(other.p1) {
		return e.p1.Less(other.p1)
	}
	return e.p2.Less(other.p2)
}

// String renders e as "p1-p2".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.p1, e.p2)
}
