// Package options provides the functional-options configuration used across
// the visibility-graph engine, in the style of geom2d's options package:
// small, explicit config structs built up via With* functions instead of
// long positional parameter lists.
package options

// GeometryOptions configures the planar predicates in package geometry.
type GeometryOptions struct {
	// Tolerance is the scale factor T used to stabilize orientation and
	// angle computations against floating-point noise: intermediate
	// results are multiplied by Tolerance, truncated toward zero, and
	// divided back down. Spec default: 10^10.
	Tolerance float64

	// Infinity is a coordinate magnitude guaranteed larger than any point
	// in the working domain. It is used to build the sweep's initial
	// horizontal ray and the crossing-number test's ray to (Infinity,
	// mid.y). Coordinates with |x| or |y| >= Infinity/2 are rejected by
	// obstacle.Build as DomainOverflow.
	Infinity float64

	// AngleEpsilon is the additive guard on AngleABC's denominator,
	// preventing division by zero for coincident points. Spec default:
	// 1e-6.
	AngleEpsilon float64
}

// DefaultGeometryOptions returns the spec's default tolerance scale,
// infinity sentinel, and angle guard.
func DefaultGeometryOptions() GeometryOptions {
	return GeometryOptions{
		Tolerance:    1e10,
		Infinity:     1e4,
		AngleEpsilon: 1e-6,
	}
}

// GeometryOptionFunc mutates a GeometryOptions in place.
type GeometryOptionFunc func(*GeometryOptions)

// ApplyGeometryOptions starts from DefaultGeometryOptions and applies each
// GeometryOptionFunc in order.
func ApplyGeometryOptions(opts ...GeometryOptionFunc) GeometryOptions {
	o := DefaultGeometryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance overrides the default tolerance scale T.
func WithTolerance(t float64) GeometryOptionFunc {
	return func(o *GeometryOptions) {
		if t > 0 {
			o.Tolerance = t
		}
	}
}

// WithInfinity overrides the default INFINITY sentinel. Callers whose
// coordinate domain does not fit comfortably inside ±1e4/2 must set this
// larger than any coordinate magnitude in their data — see §6 of the
// design: failing to do so is a correctness bug, not a tuning knob.
func WithInfinity(inf float64) GeometryOptionFunc {
	return func(o *GeometryOptions) {
		if inf > 0 {
			o.Infinity = inf
		}
	}
}

// WithAngleEpsilon overrides the additive guard used in AngleABC.
func WithAngleEpsilon(eps float64) GeometryOptionFunc {
	return func(o *GeometryOptions) {
		if eps > 0 {
			o.AngleEpsilon = eps
		}
	}
}
