// Copyright © 2024 Galvanized Logic Inc.

package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucent3d/obscura/scene"
)

const testDoc = `
view:
  position: {x: 0, y: 0, z: 0, w: 1}
  interest: {x: 0, y: 0, z: -1, w: 0}
  up: {x: 0, y: 1, z: 0, w: 0}
  camera:
    fovy: 60
    aspect: 1
    near: 0.1
    far: 100
    filter: color
    aa: none
lights:
  - kind: ambient
    color: {x: 1, y: 1, z: 1, w: 1}
balls:
  - position: {x: 0, y: 0, z: -5, w: 1}
    radius: 1
    material:
      kind: constant
      emission: {x: 1, y: 0, z: 0, w: 1}
`

func writeTestDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testDoc), 0644); err != nil {
		t.Fatalf("write test doc: %v", err)
	}
	return path
}

func TestSceneLoadsViewLightsAndBalls(t *testing.T) {
	path := writeTestDoc(t)

	s, err := Scene(path, scene.Capacities{})
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}

	view, ok := s.Node(s.View)
	if !ok {
		t.Fatal("expected view node to exist")
	}
	if view.Interest.Z != -1 {
		t.Fatalf("view.Interest.Z = %v, want -1", view.Interest.Z)
	}

	camRef, ok := s.FindComponent(s.View, scene.CameraFamily, 0)
	if !ok {
		t.Fatal("expected view node to carry a camera component")
	}
	cam, _ := s.Camera(camRef)
	if cam.Fovy != 60 {
		t.Fatalf("cam.Fovy = %v, want 60", cam.Fovy)
	}

	found := 0
	s.Traverse(func(sc *scene.Scene, node scene.Ref) {
		if _, ok := sc.FindAnyComponent(node, scene.LightFamily); ok {
			found++
		}
	})
	if found != 1 {
		t.Fatalf("expected 1 light node, got %d", found)
	}

	found = 0
	s.Traverse(func(sc *scene.Scene, node scene.Ref) {
		if _, ok := sc.FindAnyComponent(node, scene.GeometryFamily); ok {
			found++
		}
	})
	if found != 1 {
		t.Fatalf("expected 1 geometry node, got %d", found)
	}
}

func TestSceneRejectsUnknownMaterialKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := `
view: {}
balls:
  - position: {x: 0, y: 0, z: -1, w: 1}
    radius: 1
    material: {kind: mystery}
`
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatalf("write bad doc: %v", err)
	}
	if _, err := Scene(path, scene.Capacities{}); err == nil {
		t.Fatal("expected an error for an unknown material kind")
	}
}
