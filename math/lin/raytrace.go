// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// raytrace.go extends the vector/matrix kernel with the operations needed
// by ray casting and shading: per-channel pow, reflection, a quadratic
// solver, and a lookat view matrix. These follow the receiver-mutating,
// non-allocating convention used throughout the rest of the package.

import "math"

// Dist returns the distance between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V4) Dist(a *V4) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the distance squared between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V4) DistSqr(a *V4) float64 {
	dx, dy, dz, dw := a.X-v.X, a.Y-v.Y, a.Z-v.Z, a.W-v.W
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// Pow updates v to be vector a with math.Pow(_, p) applied
// channel-by-channel against the matching channel of p. Used for the
// Phong specular term where the shininess itself is stored as a color
// (see surface attributes), so the exponent varies per channel too.
func (v *V4) Pow(a, p *V4) *V4 {
	v.X, v.Y, v.Z, v.W = math.Pow(a.X, p.X), math.Pow(a.Y, p.Y), math.Pow(a.Z, p.Z), math.Pow(a.W, p.W)
	return v
}

// Reflect updates v to be the reflection of direction d about normal n:
//
//	v = d - 2*(d.n)*n
//
// n is expected to be a unit vector. The inputs d, n are unchanged;
// v may alias d or n.
func (v *V4) Reflect(d, n *V4) *V4 {
	s := 2 * d.Dot(n)
	v.X, v.Y, v.Z, v.W = d.X-s*n.X, d.Y-s*n.Y, d.Z-s*n.Z, d.W-s*n.W
	return v
}

// QuadSolve finds the real roots of a*x^2 + b*x + c = 0, returned
// ascending: x0 <= x1. The ok result is false when the discriminant is
// negative, in which case x0 and x1 are left at zero. A zero
// discriminant yields a double root repeated in both outputs.
func QuadSolve(a, b, c float64) (x0, x1 float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r0 := (-b - sq) / (2 * a)
	r1 := (-b + sq) / (2 * a)
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, true
}

// Lookat sets m to a right handed view matrix for an eye positioned at
// eye, looking towards interest, with the given up direction. The
// forward axis f points from eye to interest; -f is the view's +Z axis,
// so the view looks down -Z.
// The updated matrix m is returned. Undefined if eye == interest or if
// up is parallel to interest-eye.
func (m *M4) Lookat(eye, interest, up *V4) *M4 {
	eyePos := NewV3S(eye.X, eye.Y, eye.Z)
	upDir := NewV3S(up.X, up.Y, up.Z)

	var f, s, u V3
	f.SetS(interest.X-eye.X, interest.Y-eye.Y, interest.Z-eye.Z).Unit()
	s.Cross(&f, upDir).Unit()
	u.Cross(&s, &f)

	m.Xx, m.Yx, m.Zx = s.X, s.Y, s.Z
	m.Xy, m.Yy, m.Zy = u.X, u.Y, u.Z
	m.Xz, m.Yz, m.Zz = -f.X, -f.Y, -f.Z
	m.Xw, m.Yw, m.Zw = 0, 0, 0
	m.Wx = -s.Dot(eyePos)
	m.Wy = -u.Dot(eyePos)
	m.Wz = f.Dot(eyePos)
	m.Ww = 1
	return m
}
