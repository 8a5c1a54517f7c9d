// Package shortestpath computes least-cost routes over a weighted graph of
// point.Point vertices using Dijkstra's algorithm with a lazy decrease-key
// priority queue.
package shortestpath

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/kushrm2803/visgraph/geometry"
	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/point"
)

// Sentinel errors returned by Path.
var (
	// ErrNoPath is returned when destination is unreachable from origin.
	ErrNoPath = errors.New("shortestpath: no path exists")

	// ErrNegativeCycle is returned if relaxation ever improves the distance
	// to a vertex already finalized, which can only happen with a negative
	// edge weight — edge weights here are Euclidean distances and so should
	// never be negative, but the check is cheap and catches a corrupted
	// graph early instead of silently returning a wrong path.
	ErrNegativeCycle = errors.New("shortestpath: graph contains a negative-weight cycle")
)

// item is one entry in the priority queue: a candidate distance to a vertex
// at the time it was pushed. Stale entries (pushed before a shorter distance
// was found) are skipped lazily on pop rather than decrease-keyed in place.
type item struct {
	vertex point.Point
	dist   float64
	index  int
}

type priorityQueue []*item

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// Path computes the shortest path from origin to destination over the edges
// of g, plus any supplementary edges in extra (which may be nil). It returns
// the vertices on the path in order, including origin and destination.
func Path(g *obstacle.Graph, origin, destination point.Point, extra map[point.Point][]point.Edge) ([]point.Point, error) {
	dist := map[point.Point]float64{origin: 0}
	finalized := map[point.Point]bool{}
	predecessor := map[point.Point]point.Point{}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &item{vertex: origin, dist: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*item)
		if finalized[current.vertex] {
			continue
		}
		finalized[current.vertex] = true

		if current.vertex.Eq(destination) {
			break
		}

		edges := g.AdjacentEdges(current.vertex)
		if extraEdges := extra[current.vertex]; len(extraEdges) > 0 {
			combined := make([]point.Edge, 0, len(edges)+len(extraEdges))
			edges = append(append(combined, edges...), extraEdges...)
		}

		for _, edge := range edges {
			neighbor := edge.Other(current.vertex)
			candidate := dist[current.vertex] + geometry.EdgeDistance(current.vertex, neighbor)

			if finalized[neighbor] {
				if candidate < dist[neighbor] {
					return nil, fmt.Errorf("%w: at %s", ErrNegativeCycle, neighbor)
				}
				continue
			}

			if existing, ok := dist[neighbor]; !ok || candidate < existing {
				dist[neighbor] = candidate
				predecessor[neighbor] = current.vertex
				heap.Push(pq, &item{vertex: neighbor, dist: candidate})
			}
		}
	}

	if !finalized[destination] {
		return nil, fmt.Errorf("%w: from %s to %s", ErrNoPath, origin, destination)
	}

	path := []point.Point{destination}
	for !path[len(path)-1].Eq(origin) {
		prev, ok := predecessor[path[len(path)-1]]
		if !ok {
			return nil, fmt.Errorf("%w: from %s to %s", ErrNoPath, origin, destination)
		}
		path = append(path, prev)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
