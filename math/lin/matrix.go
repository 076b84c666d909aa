// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix holds the one matrix type this renderer core needs: a 4x4,
// explicitly-field-addressable transform used to build the camera's
// view matrix (see raytrace.go's Lookat) and to carry it down to the
// per-pixel ray generator. The 3x3 matrix, quaternion-to-matrix
// conversion, orthographic/perspective projection builders, and general
// inverse that the teacher's kernel carries are not needed here: the
// renderer never composes a model/view/projection stack, it builds one
// view matrix per frame and applies it directly to camera-space points.
//
// Row or Column Major order? No matter the convention, the end result of a
// vector point (x, y, z, 1) multiplied with a transform matrix must be:
//   x' = x*Xx + y*Yx + z*Zx + Tx
//   y' = x*Xy + y*Yy + z*Zy + Ty
//	 z' = x*Xz + y*Yz + z*Zz + Tz
// Where x, y, z is the original vector and X, Y, Z are the three axes of the
// coordinate system.
//
// Conforming to the above memory layout, this matrix implementation uses
// explicitly indexed, Row-Major, matrix members as follows:
//               4x4 M4
//	     [Xx, Xy, Xz, Xw]  X-Axis
//	     [Yx, Yy, Yz, Yw]  Y-Axis
//	     [Zx, Zy, Zz, Zw]  Z-Axis
//	     [Wx, Wy, Wz, Ww]  Translation vector, Ww == 1.

// M4 is a 4x4 matrix where the matrix elements are individually addressable.
type M4 struct {
	Xx, Xy, Xz, Xw float64 // indices 0, 1, 2, 3  [00, 01, 02, 03] X-Axis
	Yx, Yy, Yz, Yw float64 // indices 4, 5, 6, 7  [10, 11, 12, 13] Y-Axis
	Zx, Zy, Zz, Zw float64 // indices 8, 9, a, b  [20, 21, 22, 23] Z-Axis
	Wx, Wy, Wz, Ww float64 // indices c, d, e, f  [30, 31, 32, 33]
}

// NewM4 creates a new, all zero, 4x4 matrix.
func NewM4() *M4 { return &M4{} }
