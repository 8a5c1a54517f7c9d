package visgraph

import (
	"testing"

	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barrier() [][]point.Point {
	return [][]point.Point{
		{point.New(4, 0), point.New(6, 0), point.New(6, 10), point.New(4, 10)},
	}
}

func TestBuild_RejectsInvalidPolygon(t *testing.T) {
	_, err := Build([][]point.Point{{}})
	assert.ErrorIs(t, err, ErrInvalidPolygon)
}

func TestEngine_ShortestPath_AroundBarrier(t *testing.T) {
	eng, err := Build(barrier())
	require.NoError(t, err)

	path, err := eng.ShortestPath(point.New(0, 5), point.New(10, 5))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(path), 3)
	assert.True(t, path[0].Eq(point.New(0, 5)))
	assert.True(t, path[len(path)-1].Eq(point.New(10, 5)))
}

func TestEngine_ShortestPath_DirectWhenUnobstructed(t *testing.T) {
	eng, err := Build([][]point.Point{{point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1)}})
	require.NoError(t, err)

	path, err := eng.ShortestPath(point.New(-5, -5), point.New(-5, 5))
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestEngine_FindVisible_RequiresBuild(t *testing.T) {
	eng := NewEngine()
	_, err := eng.FindVisible(point.New(0, 0))
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestEngine_ShortestPath_RequiresBuild(t *testing.T) {
	eng := NewEngine()
	_, err := eng.ShortestPath(point.New(0, 0), point.New(1, 1))
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	sequential, err := Build(barrier(), options.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := Build(barrier(), options.WithWorkers(4))
	require.NoError(t, err)

	seqPath, err := sequential.ShortestPath(point.New(0, 5), point.New(10, 5))
	require.NoError(t, err)
	parPath, err := parallel.ShortestPath(point.New(0, 5), point.New(10, 5))
	require.NoError(t, err)

	require.Equal(t, len(seqPath), len(parPath))
	for i := range seqPath {
		assert.True(t, seqPath[i].Eq(parPath[i]))
	}
}

func TestBuild_ProgressCallbackFires(t *testing.T) {
	calls := 0
	_, err := Build(barrier(), options.WithProgress(func(done, total int) { calls++ }))
	require.NoError(t, err)
	assert.Greater(t, calls, 0)
}
