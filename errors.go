package visgraph

import (
	"errors"

	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/shortestpath"
)

// Sentinel errors an Engine call can return. Build surfaces the obstacle
// package's validation errors directly; ShortestPath surfaces the
// shortestpath package's routing errors directly. Both are re-exported here
// so callers only need to import this package to check with errors.Is.
var (
	ErrInvalidPolygon = obstacle.ErrInvalidPolygon
	ErrDomainOverflow = obstacle.ErrDomainOverflow
	ErrNoPath         = shortestpath.ErrNoPath
	ErrNegativeCycle  = shortestpath.ErrNegativeCycle

	// ErrIOFailure wraps an underlying filesystem or encoding error from
	// Save or Load.
	ErrIOFailure = errors.New("visgraph: I/O failure")

	// ErrNotBuilt is returned by ShortestPath and FindVisible when called
	// before Build or Load has populated the engine.
	ErrNotBuilt = errors.New("visgraph: engine has no graph; call Build or Load first")
)
