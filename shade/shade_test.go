// Copyright © 2024 Galvanized Logic Inc.

package shade

import (
	"math"
	"testing"

	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/stat"
	"github.com/lucent3d/obscura/trace"
	"github.com/lucent3d/obscura/trace/volume"
)

func buildBallScene(t *testing.T, emission lin.V4) (*scene.Scene, scene.Ref, scene.Ref) {
	t.Helper()
	s := scene.NewScene(scene.Capacities{})

	view := s.CreateNode()
	n, _ := s.Node(view)
	n.Position = lin.V4{X: 0, Y: 0, Z: 0, W: 1}
	n.Interest = lin.V4{X: 0, Y: 0, Z: -1, W: 0}

	ball := s.CreateNode()
	bn, _ := s.Node(ball)
	bn.Position = lin.V4{X: 0, Y: 0, Z: -5, W: 1}

	geom := s.AcquireComponent(scene.GeometryFamily)
	s.SetGeometry(geom, scene.NewParametricSphereGeometry(1))
	s.AttachComponent(ball, geom)

	bv := s.AcquireComponent(scene.BoundingVolumeFamily)
	s.SetBoundingVolume(bv, scene.NewBoundingVolume(volume.NewBall(1)))
	s.AttachComponent(ball, bv)

	mat := s.AcquireComponent(scene.MaterialFamily)
	s.SetMaterial(mat, scene.NewConstantMaterial(emission))
	s.AttachComponent(ball, mat)

	return s, view, ball
}

func TestShadeConstantAmbient(t *testing.T) {
	emission := lin.V4{X: 1, Y: 0, Z: 0, W: 1}
	s, view, ball := buildBallScene(t, emission)

	light := s.CreateNode()
	lightComp := s.AcquireComponent(scene.LightFamily)
	s.SetLight(lightComp, scene.NewAmbientLight(lin.V4{X: 1, Y: 1, Z: 1, W: 1}))
	s.AttachComponent(light, lightComp)

	origin := lin.V4{X: 0, Y: 0, Z: 0, W: 1}
	ray := volume.NewRay(0, 0, -1)
	visible := trace.Ray(s, origin, ray)
	if !visible.Hit || visible.Node != ball {
		t.Fatalf("expected to hit ball, got %+v", visible)
	}

	color := Shade(s, visible, light, view)
	if math.Abs(color.X-1) > 1e-9 || color.Y != 0 || color.Z != 0 {
		t.Fatalf("expected pure red, got %+v", color)
	}
}

func TestShadowOccludedByNearerBall(t *testing.T) {
	s, _, _ := buildBallScene(t, lin.V4{X: 1, Y: 1, Z: 1, W: 1})

	blocker := s.CreateNode()
	bn, _ := s.Node(blocker)
	bn.Position = lin.V4{X: 0, Y: 0, Z: -2, W: 1}
	geom := s.AcquireComponent(scene.GeometryFamily)
	s.SetGeometry(geom, scene.NewParametricSphereGeometry(1))
	s.AttachComponent(blocker, geom)
	bv := s.AcquireComponent(scene.BoundingVolumeFamily)
	s.SetBoundingVolume(bv, scene.NewBoundingVolume(volume.NewBall(1)))
	s.AttachComponent(blocker, bv)

	light := s.CreateNode()
	ln, _ := s.Node(light)
	ln.Position = lin.V4{X: 0, Y: 0, Z: 10, W: 1}
	lightComp := s.AcquireComponent(scene.LightFamily)
	// Direction matches renderer.c's literal shadow-ray wiring: the ray
	// travels from hitPoint along this same vector, so it must point at
	// the blocker (z=-2) rather than away from it (z=-4 -> z=-2 is +Z).
	s.SetLight(lightComp, scene.NewDirectionalLight(lin.V4{X: 1, Y: 1, Z: 1, W: 1}, lin.V4{X: 0, Y: 0, Z: 1, W: 0}))
	s.AttachComponent(light, lightComp)

	counters := &stat.Counters{}
	hitPoint := lin.V4{X: 0, Y: 0, Z: -4, W: 1} // surface of the far ball, facing the light
	if !ShadowOccluded(s, counters, light, hitPoint) {
		t.Fatal("expected the nearer blocking ball to occlude the light")
	}
	if counters.Value(stat.Shadow) != 1 {
		t.Fatalf("expected one shadow ray cast, got %d", counters.Value(stat.Shadow))
	}
}

func TestBlendIsComponentwiseMultiply(t *testing.T) {
	a := lin.V4{X: 1, Y: 0.5, Z: 0, W: 1}
	b := lin.V4{X: 1, Y: 1, Z: 1, W: 1}
	c := Blend(a, b)
	if c.X != 1 || c.Y != 0.5 || c.Z != 0 {
		t.Fatalf("expected a unchanged by blend with ones, got %+v", c)
	}
}
