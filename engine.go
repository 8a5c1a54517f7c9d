package visgraph

import (
	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
	"github.com/kushrm2803/visgraph/shortestpath"
	"github.com/kushrm2803/visgraph/visibility"
)

// Engine holds an obstacle graph and its derived visibility graph, and
// answers shortest-path and visibility queries against them.
type Engine struct {
	obstacles *obstacle.Graph
	visible   *obstacle.Graph
	opts      options.GeometryOptions
}

// NewEngine returns an Engine with no graph built yet. Call Build or Load
// before ShortestPath or FindVisible.
func NewEngine() *Engine {
	return &Engine{opts: options.DefaultGeometryOptions()}
}

// Build computes the visibility graph for polygons, a set of obstacle rings
// given as ordered corner points. It returns ErrInvalidPolygon or
// ErrDomainOverflow if any ring is malformed, per obstacle.Build.
func Build(polygons [][]point.Point, opts ...options.EngineOptionFunc) (*Engine, error) {
	cfg := options.ApplyEngineOptions(opts...)

	obstacles, err := obstacle.Build(polygons, cfg.Geometry)
	if err != nil {
		return nil, err
	}

	var onProgress func(done, total int)
	if cfg.ShowProgress {
		onProgress = cfg.OnProgress
	}

	logDebugf("building visibility graph for %d vertices with %d worker(s)", obstacles.Len(), cfg.Workers)
	visGraph := buildVisibilityGraph(obstacles, cfg.Workers, cfg.BatchSize, cfg.Geometry, onProgress)

	return &Engine{obstacles: obstacles, visible: visGraph, opts: cfg.Geometry}, nil
}

// ShortestPath computes the shortest obstacle-avoiding path from origin to
// destination. If either point is not already a vertex of the visibility
// graph, its visibility edges are computed on the fly and used only for this
// call — they are never added to the engine's stored graph.
func (e *Engine) ShortestPath(origin, destination point.Point) ([]point.Point, error) {
	if e.obstacles == nil || e.visible == nil {
		return nil, ErrNotBuilt
	}

	originKnown := e.visible.HasPoint(origin)
	destKnown := e.visible.HasPoint(destination)

	// A known endpoint is swapped for the graph's own, polygon-tagged copy
	// of that vertex, since shortestpath.Path keys its bookkeeping by Point.
	if originKnown || destKnown {
		for _, v := range e.visible.Points() {
			if originKnown && v.Eq(origin) {
				origin = v
			}
			if destKnown && v.Eq(destination) {
				destination = v
			}
		}
	}

	if originKnown && destKnown {
		return shortestpath.Path(e.visible, origin, destination, nil)
	}

	extra := make(map[point.Point][]point.Edge)
	addExtra := func(a, b point.Point) {
		edge := point.NewEdge(a, b)
		extra[a] = append(extra[a], edge)
		extra[b] = append(extra[b], edge)
	}

	if !originKnown {
		var destPtr *point.Point
		if !destKnown {
			destPtr = &destination
		}
		for _, vertex := range visibility.Visible(origin, e.obstacles, nil, destPtr, e.opts) {
			addExtra(origin, vertex)
		}
	}

	if !destKnown {
		var originPtr *point.Point
		if !originKnown {
			originPtr = &origin
		}
		for _, vertex := range visibility.Visible(destination, e.obstacles, originPtr, nil, e.opts) {
			addExtra(destination, vertex)
		}
	}

	return shortestpath.Path(e.visible, origin, destination, extra)
}

// FindVisible returns every vertex of the engine's obstacle graph visible
// from p, without adding p to the graph.
func (e *Engine) FindVisible(p point.Point) ([]point.Point, error) {
	if e.obstacles == nil {
		return nil, ErrNotBuilt
	}
	return visibility.Visible(p, e.obstacles, nil, nil, e.opts), nil
}
