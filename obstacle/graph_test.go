package obstacle

import (
	"errors"
	"testing"

	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []point.Point {
	return []point.Point{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	}
}

func TestBuild_TagsPolygonVertices(t *testing.T) {
	g, err := Build([][]point.Point{square()}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	for _, p := range g.Points() {
		assert.Equal(t, 0, p.PolygonID())
	}
	assert.Len(t, g.Polygon(0), 4)
}

func TestBuild_ClosedRingDeduplicates(t *testing.T) {
	ring := append(square(), point.New(0, 0))
	g, err := Build([][]point.Point{ring}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestBuild_FreePointGetsNoPolygonID(t *testing.T) {
	g, err := Build([][]point.Point{{point.New(1, 1)}}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, point.Unassigned, g.Points()[0].PolygonID())
}

func TestBuild_TwoPointEdgeGetsNoPolygonID(t *testing.T) {
	g, err := Build([][]point.Point{{point.New(0, 0), point.New(1, 0)}}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	for _, p := range g.Points() {
		assert.Equal(t, point.Unassigned, p.PolygonID())
	}
	assert.Len(t, g.Edges(), 1)
}

func TestBuild_RejectsEmptyRing(t *testing.T) {
	_, err := Build([][]point.Point{{}}, options.DefaultGeometryOptions())
	assert.ErrorIs(t, err, ErrInvalidPolygon)
}

func TestBuild_RejectsNonFiniteCoordinate(t *testing.T) {
	_, err := Build([][]point.Point{{point.New(0, 0), point.New(1.0/zero(), 0)}}, options.DefaultGeometryOptions())
	assert.ErrorIs(t, err, ErrInvalidPolygon)
}

func zero() float64 { return 0 }

func TestBuild_RejectsDomainOverflow(t *testing.T) {
	opts := options.DefaultGeometryOptions()
	_, err := Build([][]point.Point{{point.New(0, 0), point.New(opts.Infinity, 0)}}, opts)
	assert.ErrorIs(t, err, ErrDomainOverflow)
}

func TestGraph_AdjacencyAndPoints(t *testing.T) {
	g, err := Build([][]point.Point{square()}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	origin := point.New(0, 0)
	adj := g.AdjacentPoints(origin)
	assert.Len(t, adj, 2)
}

func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := NewGraph()
	a, b := point.New(0, 0), point.New(1, 1)
	e := point.NewEdge(a, b)
	g.AddEdge(e)
	g.AddEdge(e)
	assert.Len(t, g.Edges(), 1)
	assert.Len(t, g.AdjacentEdges(a), 1)
}

func TestGraph_DeterministicIterationOrder(t *testing.T) {
	g, err := Build([][]point.Point{square()}, options.DefaultGeometryOptions())
	require.NoError(t, err)
	first := g.Points()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Points())
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	_, err := Build([][]point.Point{{}}, options.DefaultGeometryOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPolygon))
}
