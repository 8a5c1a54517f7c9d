package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		a, b Point
		want bool
	}{
		"same coordinates, same tag":  {New(1, 2), New(1, 2), true},
		"same coordinates, diff tags": {NewTagged(1, 2, 0), NewTagged(1, 2, 7), true},
		"different coordinates":       {New(1, 2), New(1, 3), false},
		"exact float comparison":      {New(0.1+0.2, 0), New(0.3, 0), 0.1+0.2 == 0.3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Eq(tc.b))
		})
	}
}

func TestPoint_PolygonID(t *testing.T) {
	assert.Equal(t, Unassigned, New(0, 0).PolygonID())
	assert.Equal(t, 3, NewTagged(0, 0, 3).PolygonID())
}

func TestPoint_Finite(t *testing.T) {
	assert.True(t, New(1, 2).Finite())
	assert.False(t, New(1.0/zero(), 2).Finite())
	assert.False(t, New(0, zero()/zero()).Finite())
}

func zero() float64 { return 0 }

func TestPoint_Less(t *testing.T) {
	require.True(t, New(1, 1).Less(New(2, 0)))
	require.True(t, New(1, 1).Less(New(1, 2)))
	require.False(t, New(1, 1).Less(New(1, 1)))
}

func TestEdge_SymmetricEquality(t *testing.T) {
	a, b := New(0, 0), New(1, 1)
	e1 := NewEdge(a, b)
	e2 := NewEdge(b, a)
	assert.True(t, e1.Eq(e2))
	assert.Equal(t, e1, e2)
}

func TestEdge_Other(t *testing.T) {
	a, b := New(0, 0), New(1, 1)
	e := NewEdge(a, b)
	assert.True(t, e.Other(a).Eq(b))
	assert.True(t, e.Other(b).Eq(a))
}

func TestEdge_Has(t *testing.T) {
	a, b, c := New(0, 0), New(1, 1), New(2, 2)
	e := NewEdge(a, b)
	assert.True(t, e.Has(a))
	assert.True(t, e.Has(b))
	assert.False(t, e.Has(c))
}

func TestEdge_DegenerateEdgePanics(t *testing.T) {
	a := New(1, 1)
	assert.Panics(t, func() { NewEdge(a, a) })
}

func TestEdge_AsMapKey(t *testing.T) {
	a, b := New(0, 0), New(3, 4)
	set := map[Edge]struct{}{
		NewEdge(a, b): {},
	}
	_, ok := set[NewEdge(b, a)]
	assert.True(t, ok)
}
