// Copyright © 2024 Galvanized Logic Inc.

// Package volume defines the bounding-volume primitives used for ray
// intersection: the shapes a scene's geometry and bounding-volume
// components can take, and the collision routine that tests a ray
// against one. Modeled on the tag-interface, dispatch-table shape
// design in physics/shape.go and physics/caster.go, generalized from
// physics collision to ray-casting and limited to the shapes actually
// needed there.
package volume

import "github.com/lucent3d/obscura/math/lin"

// Enumerate the volume kinds handled by Collide and returned by
// Volume.Type.
const (
	BallVolume = iota
	BoxVolume
	FrustumVolume
	RayVolume
	NumVolumes
)

// Volume is a ray-casting collision primitive in local space, centered
// at the origin. Combine with a world position to place it in a scene.
// Volumes do not allocate; Collide returns its Collision by value.
type Volume interface {
	Type() int
}

// Ball is a bounding sphere of radius R.
type Ball struct{ R float64 }

func NewBall(r float64) *Ball  { return &Ball{R: r} }
func (b *Ball) Type() int      { return BallVolume }

// Box is an axis-aligned bounding box defined by half-extents.
type Box struct{ Hx, Hy, Hz float64 }

func NewBox(hx, hy, hz float64) *Box { return &Box{hx, hy, hz} }
func (b *Box) Type() int             { return BoxVolume }

// Frustum is a six-plane bounding volume kind. No Collide pair is
// registered for it, so Collide reports a miss for any pair involving
// a Frustum, and no scene camera carries one. Fields and field order match
// ObscuraCollidableFrustum's bottom/left/right/top/near/far plane
// coefficients directly, not a fovy/aspect camera parameterization.
type Frustum struct{ B, L, R, T, N, F float64 }

func NewFrustum(b, l, r, t, n, f float64) *Frustum {
	return &Frustum{b, l, r, t, n, f}
}
func (f *Frustum) Type() int { return FrustumVolume }

// Ray is a ray's direction, used as a Volume so rays can be dispatched
// through the same Collide table as every other shape.
type Ray struct{ Dx, Dy, Dz float64 }

func NewRay(dx, dy, dz float64) *Ray { return &Ray{dx, dy, dz} }
func (r *Ray) Type() int            { return RayVolume }

// Collision is the result of testing one Volume against another.
// HitPoint and HitNormal are only meaningful when Hit is true.
type Collision struct {
	Hit       bool
	HitPoint  lin.V4
	HitNormal lin.V4
}

// collide tests volume a, positioned at pa, against volume b,
// positioned at pb, filling in col. The a/b ordering matches the pair
// registered in the dispatch table; callers needing the reverse order
// use Collide, which tries both orderings.
type collide func(a, b Volume, pa, pb *lin.V4, col *Collision)

// pairs dispatches on the concrete (Type, Type) of the two volumes
// being tested. Only ray-against-ball is implemented; any other pair
// reports a miss rather than panicking, since bounding-volume kinds
// are attached to scene nodes generically and not every pair is ever
// exercised by a correctly built scene.
var pairs = map[[2]int]collide{
	{RayVolume, BallVolume}: collideRayBall,
}

// Collide tests a against b, trying both orderings of the registered
// pair table, and returns the resulting Collision. A pair with no
// registered routine reports Hit=false.
func Collide(a, b Volume, pa, pb *lin.V4) Collision {
	var col Collision
	if fn, ok := pairs[[2]int{a.Type(), b.Type()}]; ok {
		fn(a, b, pa, pb, &col)
		return col
	}
	if fn, ok := pairs[[2]int{b.Type(), a.Type()}]; ok {
		fn(b, a, pb, pa, &col)
		return col
	}
	return col
}

// collideRayBall solves the ray/sphere quadratic directly, matching
// the reference implementation's ray_ball_intersect rather than the
// geometric shortcut in physics/caster.go's castRaySphere, since the
// spec this is grounded on requires an explicit two-root quadratic
// solve with the smallest positive root chosen as the hit.
func collideRayBall(a, b Volume, pa, pb *lin.V4, col *Collision) {
	ray := a.(*Ray)
	ball := b.(*Ball)

	dx, dy, dz := ray.Dx, ray.Dy, ray.Dz
	px, py, pz := pa.X-pb.X, pa.Y-pb.Y, pa.Z-pb.Z

	A := dx*dx + dy*dy + dz*dz
	B := 2 * (dx*px + dy*py + dz*pz)
	C := px*px + py*py + pz*pz - ball.R*ball.R

	x0, x1, ok := lin.QuadSolve(A, B, C)
	if !ok {
		return
	}
	x := x0
	if x0 <= 0 && x1 > 0 {
		x = x1
	}
	if x <= 0 {
		return
	}

	col.Hit = true
	col.HitPoint.X = pa.X + dx*x
	col.HitPoint.Y = pa.Y + dy*x
	col.HitPoint.Z = pa.Z + dz*x
	col.HitPoint.W = 1

	nx := col.HitPoint.X - pb.X
	ny := col.HitPoint.Y - pb.Y
	nz := col.HitPoint.Z - pb.Z
	inv := 1.0
	if ball.R != 0 {
		inv = 1.0 / ball.R
	}
	col.HitNormal.X = nx * inv
	col.HitNormal.Y = ny * inv
	col.HitNormal.Z = nz * inv
	col.HitNormal.W = 0
}
