// Package obstacle builds and holds the planar graph of obstacle polygons
// that the visibility sweep treats as opaque: vertices are polygon corners
// (plus any free-standing points), edges are polygon sides.
package obstacle

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/btree"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// Sentinel errors returned by Build.
var (
	// ErrInvalidPolygon is returned for a polygon with fewer than one point,
	// or with a non-finite (NaN/Inf) coordinate.
	ErrInvalidPolygon = errors.New("obstacle: invalid polygon")

	// ErrDomainOverflow is returned when a coordinate's magnitude is not
	// safely smaller than half the configured Infinity sentinel, which would
	// let the sweep's synthetic horizontal ray land inside the data instead
	// of strictly beyond it.
	ErrDomainOverflow = errors.New("obstacle: coordinate exceeds domain bound")
)

// Graph is the obstacle graph: every polygon corner is a vertex, every
// polygon side is an edge, and vertices belonging to the same ≥3-vertex
// polygon are tagged with a shared polygon id.
//
// Graph's edge and vertex sets are backed by btree.BTreeG so that Points and
// Edges iterate in a fixed, input-independent order — the same
// deterministic-ordering guarantee the rest of the engine relies on when
// multiple build workers independently sweep different vertices.
type Graph struct {
	// adjacency is keyed by untagged coordinates (point.New), so a lookup
	// finds a vertex's edges whatever polygon id the query point carries.
	adjacency map[point.Point][]point.Edge
	edges     *btree.BTreeG[point.Edge]
	vertices  *btree.BTreeG[point.Point]
	polygons  map[int][]point.Edge
}

// NewGraph returns an empty obstacle graph, ready to have edges added via
// AddEdge. Build is the usual entry point for obstacles; NewGraph is exposed
// directly for assembling other graphs of the same shape, such as the
// visibility graph the root package's builder fills.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[point.Point][]point.Edge),
		edges:     btree.NewG(32, point.Edge.Less),
		vertices:  btree.NewG(32, point.Point.Less),
		polygons:  make(map[int][]point.Edge),
	}
}

// Build constructs the obstacle graph from a list of polygons, each given as
// an ordered ring of vertices. A polygon whose first and last point coincide
// is treated as already-closed and the duplicate trailing point is dropped.
// Polygons with three or more distinct vertices have every vertex tagged
// with a shared, zero-based polygon id (in input order) and their edges
// recorded for later polygon-interior testing; polygons of one or two
// distinct vertices contribute a lone vertex or an edge to the graph but get
// no polygon id (their vertices keep point.Unassigned) since "interior" is
// meaningless for a point or a segment. A repeated consecutive vertex is a
// zero-length side and contributes no edge.
func Build(polygonsIn [][]point.Point, opts options.GeometryOptions) (*Graph, error) {
	g := NewGraph()
	bound := opts.Infinity / 2

	nextPolygonID := 0
	for _, ring := range polygonsIn {
		ring, err := closeRing(ring)
		if err != nil {
			return nil, err
		}
		for _, p := range ring {
			if !p.Finite() {
				return nil, fmt.Errorf("%w: non-finite coordinate %s", ErrInvalidPolygon, p)
			}
			if math.Abs(p.X()) >= bound || math.Abs(p.Y()) >= bound {
				return nil, fmt.Errorf("%w: %s exceeds +/-%g", ErrDomainOverflow, p, bound)
			}
		}

		distinct := make(map[[2]float64]struct{}, len(ring))
		for _, p := range ring {
			distinct[[2]float64{p.X(), p.Y()}] = struct{}{}
		}
		polygonID := point.Unassigned
		if len(distinct) > 2 {
			polygonID = nextPolygonID
			nextPolygonID++
		}

		n := len(ring)
		if n == 1 {
			// A single free-standing point contributes a vertex but no edge:
			// there is no sibling to pair it with.
			g.addVertex(point.NewTagged(ring[0].X(), ring[0].Y(), polygonID))
			continue
		}

		for i := range ring {
			a := point.NewTagged(ring[i].X(), ring[i].Y(), polygonID)
			b := point.NewTagged(ring[(i+1)%n].X(), ring[(i+1)%n].Y(), polygonID)
			if a.Eq(b) {
				g.addVertex(a)
				continue
			}
			edge := point.NewEdge(a, b)
			g.AddEdge(edge)
			if polygonID != point.Unassigned {
				g.polygons[polygonID] = append(g.polygons[polygonID], edge)
			}
		}
	}

	return g, nil
}

// closeRing drops a duplicated closing vertex (ring[0] == ring[len-1]) and
// rejects empty rings.
func closeRing(ring []point.Point) ([]point.Point, error) {
	if len(ring) < 1 {
		return nil, fmt.Errorf("%w: empty ring", ErrInvalidPolygon)
	}
	if len(ring) > 1 && ring[0].Eq(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	return ring, nil
}

// AddEdge inserts edge into the graph, updating both endpoints' adjacency
// lists. Adding an edge already present is a no-op.
func (g *Graph) AddEdge(edge point.Edge) {
	if g.edges.Has(edge) {
		return
	}
	g.edges.ReplaceOrInsert(edge)
	g.addVertex(edge.P1())
	g.addVertex(edge.P2())
	k1 := point.New(edge.P1().X(), edge.P1().Y())
	k2 := point.New(edge.P2().X(), edge.P2().Y())
	g.adjacency[k1] = append(g.adjacency[k1], edge)
	g.adjacency[k2] = append(g.adjacency[k2], edge)
}

func (g *Graph) addVertex(p point.Point) {
	if !g.vertices.Has(p) {
		g.vertices.ReplaceOrInsert(p)
	}
}

// HasPoint reports whether p is a vertex of the graph.
func (g *Graph) HasPoint(p point.Point) bool {
	return g.vertices.Has(p)
}

// HasEdge reports whether edge is present in the graph.
func (g *Graph) HasEdge(edge point.Edge) bool {
	return g.edges.Has(edge)
}

// Points returns every vertex of the graph in ascending point.Point.Less
// order.
func (g *Graph) Points() []point.Point {
	out := make([]point.Point, 0, g.vertices.Len())
	g.vertices.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Edges returns every edge of the graph in ascending point.Edge.Less order.
func (g *Graph) Edges() []point.Edge {
	out := make([]point.Edge, 0, g.edges.Len())
	g.edges.Ascend(func(e point.Edge) bool {
		out = append(out, e)
		return true
	})
	return out
}

// AdjacentEdges returns the edges incident on p, in insertion order.
func (g *Graph) AdjacentEdges(p point.Point) []point.Edge {
	return g.adjacency[point.New(p.X(), p.Y())]
}

// AdjacentPoints returns the neighbors of p across its incident edges.
func (g *Graph) AdjacentPoints(p point.Point) []point.Point {
	edges := g.adjacency[point.New(p.X(), p.Y())]
	out := make([]point.Point, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Other(p))
	}
	return out
}

// Polygon returns the edges of the polygon with the given id, or nil if no
// polygon has that id.
func (g *Graph) Polygon(id int) []point.Edge {
	return g.polygons[id]
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int {
	return g.vertices.Len()
}
