package geometry

import (
	"math"
	"testing"

	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOpts = options.DefaultGeometryOptions()

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		a, b, c point.Point
		want    OrientationType
	}{
		"ccw turn":   {point.New(0, 0), point.New(1, 0), point.New(1, 1), Counterclockwise},
		"cw turn":    {point.New(0, 0), point.New(1, 1), point.New(1, 0), Clockwise},
		"collinear":  {point.New(0, 0), point.New(1, 1), point.New(2, 2), Collinear},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Orientation(tc.a, tc.b, tc.c, defaultOpts))
		})
	}
}

func TestOrientation_String(t *testing.T) {
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Panics(t, func() { _ = OrientationType(99).String() })
}

func TestOnSegment(t *testing.T) {
	assert.True(t, OnSegment(point.New(0, 0), point.New(1, 1), point.New(2, 2)))
	assert.False(t, OnSegment(point.New(0, 0), point.New(3, 3), point.New(2, 2)))
}

func TestSegmentsIntersect(t *testing.T) {
	tests := map[string]struct {
		p1, p2, q1, q2 point.Point
		want           bool
	}{
		"crossing X": {
			point.New(0, 0), point.New(2, 2), point.New(0, 2), point.New(2, 0), true,
		},
		"disjoint": {
			point.New(0, 0), point.New(1, 0), point.New(0, 1), point.New(1, 1), false,
		},
		"shared endpoint": {
			point.New(0, 0), point.New(1, 1), point.New(1, 1), point.New(2, 0), true,
		},
		"collinear overlap": {
			point.New(0, 0), point.New(2, 0), point.New(1, 0), point.New(3, 0), true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, SegmentsIntersect(tc.p1, tc.p2, tc.q1, tc.q2, defaultOpts))
		})
	}
}

func TestIntersectPoint(t *testing.T) {
	edge := point.NewEdge(point.New(0, 0), point.New(0, 2))
	ip, ok := IntersectPoint(point.New(-1, 1), point.New(1, 1), edge)
	require.True(t, ok)
	assert.InDelta(t, 0, ip.X(), 1e-9)
	assert.InDelta(t, 1, ip.Y(), 1e-9)

	_, ok = IntersectPoint(point.New(0, -1), point.New(0, 1), point.NewEdge(point.New(1, -1), point.New(1, 1)))
	assert.False(t, ok)

	edgeWithShared := point.NewEdge(point.New(5, 5), point.New(6, 6))
	ip2, ok := IntersectPoint(point.New(5, 5), point.New(9, 9), edgeWithShared)
	require.True(t, ok)
	assert.True(t, ip2.Eq(point.New(5, 5)))
}

func TestEdgeDistance(t *testing.T) {
	assert.InDelta(t, 5, EdgeDistance(point.New(0, 0), point.New(3, 4)), 1e-9)
}

func TestAngle(t *testing.T) {
	tests := map[string]struct {
		center, target point.Point
		want           float64
	}{
		"east":  {point.New(0, 0), point.New(1, 0), 0},
		"north": {point.New(0, 0), point.New(0, 1), math.Pi / 2},
		"west":  {point.New(0, 0), point.New(-1, 0), math.Pi},
		"south": {point.New(0, 0), point.New(0, -1), 3 * math.Pi / 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Angle(tc.center, tc.target), 1e-9)
		})
	}
}

func TestAngleABC_RightAngle(t *testing.T) {
	a := point.New(0, 1)
	b := point.New(0, 0)
	c := point.New(1, 0)
	got := AngleABC(a, b, c, defaultOpts)
	assert.InDelta(t, math.Pi/2, got, 1e-6)
}

func TestAngleABC_Straight(t *testing.T) {
	a := point.New(-1, 0)
	b := point.New(0, 0)
	c := point.New(1, 0)
	got := AngleABC(a, b, c, defaultOpts)
	assert.InDelta(t, math.Pi, got, 1e-6)
}

func TestAngleABC_CoincidentGuardedByEpsilon(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(0, 0)
	c := point.New(1, 1)
	assert.NotPanics(t, func() { AngleABC(a, b, c, defaultOpts) })
}
