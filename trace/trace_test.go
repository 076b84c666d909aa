// Copyright © 2024 Galvanized Logic Inc.

package trace

import (
	"testing"

	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/trace/volume"
)

func addSphere(s *scene.Scene, z, radius float64) scene.Ref {
	node := s.CreateNode()
	n, _ := s.Node(node)
	n.Position = lin.V4{X: 0, Y: 0, Z: z, W: 1}

	geom := s.AcquireComponent(scene.GeometryFamily)
	s.SetGeometry(geom, scene.NewParametricSphereGeometry(radius))
	s.AttachComponent(node, geom)

	bv := s.AcquireComponent(scene.BoundingVolumeFamily)
	s.SetBoundingVolume(bv, scene.NewBoundingVolume(volume.NewBall(radius)))
	s.AttachComponent(node, bv)

	return node
}

func TestRayHitsNearestSphere(t *testing.T) {
	// The ray is cast down -Z, the camera convention under which the
	// greatest-Z hit that Ray keeps is the one nearest the origin.
	s := scene.NewScene(scene.Capacities{})
	far := addSphere(s, -10, 1)
	near := addSphere(s, -5, 1)

	origin := lin.V4{X: 0, Y: 0, Z: 0, W: 1}
	ray := volume.NewRay(0, 0, -1)

	v := Ray(s, origin, ray)
	if !v.Hit {
		t.Fatal("expected hit")
	}
	if v.Node != near {
		t.Fatalf("expected nearest sphere %v, got %v (far was %v)", near, v.Node, far)
	}
}

func TestRayMissesEmptyScene(t *testing.T) {
	s := scene.NewScene(scene.Capacities{})
	origin := lin.V4{X: 0, Y: 0, Z: 0, W: 1}
	ray := volume.NewRay(0, 0, 1)

	v := Ray(s, origin, ray)
	if v.Hit {
		t.Fatal("expected miss on empty scene")
	}
}

func TestRaySkipsNodeMissingBoundingVolume(t *testing.T) {
	s := scene.NewScene(scene.Capacities{})
	node := s.CreateNode()
	n, _ := s.Node(node)
	n.Position = lin.V4{X: 0, Y: 0, Z: 5, W: 1}
	geom := s.AcquireComponent(scene.GeometryFamily)
	s.SetGeometry(geom, scene.NewParametricSphereGeometry(1))
	s.AttachComponent(node, geom)

	origin := lin.V4{X: 0, Y: 0, Z: 0, W: 1}
	ray := volume.NewRay(0, 0, 1)
	if v := Ray(s, origin, ray); v.Hit {
		t.Fatal("expected miss for geometry without a bounding volume")
	}
}
