// Copyright © 2024 Galvanized Logic Inc.

// Package trace implements the nearest-hit ray-scene visibility query:
// traverse every node, test the ones carrying a Geometry and a
// BoundingVolume against the ray, and keep the hit with the greatest Z
// (the closest one for rays cast down -Z, as camera rays are). Modeled on
// original_source/src/visibility.c's trace visitor and
// ObscuraTraceRay.
package trace

import (
	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/trace/volume"
)

// Visible is the result of a ray cast: the nearest node whose
// Geometry/BoundingVolume pair intersected the ray, and the
// intersection itself. Hit is false and Node is the zero Ref when
// nothing was struck.
type Visible struct {
	Hit       bool
	Node      scene.Ref
	Collision volume.Collision
}

// Ray casts a ray from origin in the direction described by dir
// against every node in s carrying both a Geometry and a
// BoundingVolume component, keeping the node whose hit point has the
// greatest Z. That tie-break - furthest along +Z wins, not nearest by
// distance - matches visibility.c's
// "collision.hit_point[2] > info->visible->collision.hit_point[2]"
// comparison and is correct under this renderer's right-handed,
// camera-looks-down--Z view convention: among two hits along one ray,
// the one with the larger Z coordinate is the one nearer the camera.
func Ray(s *scene.Scene, origin lin.V4, dir *volume.Ray) Visible {
	var best Visible

	s.Traverse(func(sc *scene.Scene, node scene.Ref) {
		_, hasGeom := sc.FindAnyComponent(node, scene.GeometryFamily)
		if !hasGeom {
			return
		}
		bvRef, hasVol := sc.FindAnyComponent(node, scene.BoundingVolumeFamily)
		if !hasVol {
			return
		}
		bv, ok := sc.BoundingVolume(bvRef)
		if !ok {
			return
		}
		n, ok := sc.Node(node)
		if !ok {
			return
		}

		col := volume.Collide(dir, bv.Volume, &origin, &n.Position)
		if !col.Hit {
			return
		}
		if !best.Hit || col.HitPoint.Z > best.Collision.HitPoint.Z {
			best = Visible{Hit: true, Node: node, Collision: col}
		}
	})

	return best
}
