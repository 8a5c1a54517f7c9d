package visgraph

import (
	"sync"

	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
	"github.com/kushrm2803/visgraph/visibility"
)

// visibilityEdges computes the visibility edges for every vertex in
// vertices; one call handles one batch, the unit of dispatched work.
func visibilityEdges(g *obstacle.Graph, vertices []point.Point, opts options.GeometryOptions) []point.Edge {
	var edges []point.Edge
	for _, source := range vertices {
		for _, target := range visibility.Visible(source, g, nil, nil, opts) {
			edges = append(edges, point.NewEdge(source, target))
		}
	}
	return edges
}

// buildVisibilityGraph dispatches the per-vertex sweep across workers
// goroutines, batchSize vertices at a time, reporting progress via onProgress
// if non-nil. With workers <= 1 it runs the batches sequentially on the
// calling goroutine instead of spinning up a pool, since a single-worker
// channel round-trip buys nothing.
func buildVisibilityGraph(g *obstacle.Graph, workers, batchSize int, opts options.GeometryOptions, onProgress func(done, total int)) *obstacle.Graph {
	vertices := g.Points()
	var batches [][]point.Point
	for i := 0; i < len(vertices); i += batchSize {
		end := i + batchSize
		if end > len(vertices) {
			end = len(vertices)
		}
		batches = append(batches, vertices[i:end])
	}

	visGraph := obstacle.NewGraph()
	total := len(batches)

	if workers <= 1 {
		for i, batch := range batches {
			for _, edge := range visibilityEdges(g, batch, opts) {
				visGraph.AddEdge(edge)
			}
			if onProgress != nil {
				onProgress(i+1, total)
			}
		}
		return visGraph
	}

	jobs := make(chan []point.Point, total)
	results := make(chan []point.Edge, total)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				results <- visibilityEdges(g, batch, opts)
			}
		}()
	}

	for _, batch := range batches {
		jobs <- batch
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for edges := range results {
		for _, edge := range edges {
			visGraph.AddEdge(edge)
		}
		done++
		if onProgress != nil {
			onProgress(done, total)
		}
	}

	return visGraph
}
