// Copyright © 2024 Galvanized Logic Inc.

package volume

import (
	"math"
	"testing"

	"github.com/lucent3d/obscura/math/lin"
)

func TestCollideRayBallHit(t *testing.T) {
	ball := NewBall(1)
	ballPos := lin.V4{X: 0, Y: 0, Z: 5, W: 1}
	ray := NewRay(0, 0, 1)
	rayPos := lin.V4{X: 0, Y: 0, Z: 0, W: 1}

	col := Collide(ray, ball, &rayPos, &ballPos)
	if !col.Hit {
		t.Fatal("expected hit")
	}
	if math.Abs(col.HitPoint.Z-4) > 1e-9 {
		t.Fatalf("expected hit at z=4, got %v", col.HitPoint.Z)
	}
	if n := col.HitNormal; math.Abs(n.Z-(-1)) > 1e-9 {
		t.Fatalf("expected normal -Z, got %v", n)
	}
}

func TestCollideRayBallMissBehind(t *testing.T) {
	ball := NewBall(1)
	ballPos := lin.V4{X: 0, Y: 0, Z: -5, W: 1}
	ray := NewRay(0, 0, 1)
	rayPos := lin.V4{X: 0, Y: 0, Z: 0, W: 1}

	col := Collide(ray, ball, &rayPos, &ballPos)
	if col.Hit {
		t.Fatal("expected miss for ball behind ray origin")
	}
}

func TestCollideOrderIndependent(t *testing.T) {
	ball := NewBall(1)
	ballPos := lin.V4{X: 0, Y: 0, Z: 5, W: 1}
	ray := NewRay(0, 0, 1)
	rayPos := lin.V4{X: 0, Y: 0, Z: 0, W: 1}

	a := Collide(ray, ball, &rayPos, &ballPos)
	b := Collide(ball, ray, &ballPos, &rayPos)
	if a.Hit != b.Hit || a.HitPoint != b.HitPoint {
		t.Fatalf("expected symmetric collide result, got %v vs %v", a, b)
	}
}

func TestCollideUnregisteredPairMisses(t *testing.T) {
	box := NewBox(1, 1, 1)
	ball := NewBall(1)
	pa := lin.V4{}
	pb := lin.V4{}
	col := Collide(box, ball, &pa, &pb)
	if col.Hit {
		t.Fatal("expected miss for unregistered pair")
	}
}
