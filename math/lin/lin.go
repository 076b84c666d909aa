// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear math this renderer core needs:
// vectors, a 4x4 matrix, and the scalar/vector comparison and clamping
// helpers used throughout trace and shade. Unlike the teacher's
// original package, there are no quaternions, rigid transforms, or 3x3
// matrix ops here - nothing in a ray-traced-sphere renderer composes
// rotations or transform hierarchies, so that machinery has no caller
// and is left out rather than carried unused.
package lin

import "math"

// Epsilon is used to distinguish when a float is close enough to a number.
const Epsilon float64 = 0.000001

// AeqZ (~=0) almost-equals-zero returns true if x is close enough to
// zero that the difference makes no practical difference.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if a and b are close enough that
// the difference makes no practical difference.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}
