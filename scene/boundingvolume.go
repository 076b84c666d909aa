// Copyright © 2024 Galvanized Logic Inc.

package scene

import "github.com/lucent3d/obscura/trace/volume"

// BoundingVolume is the scene-store component wrapping a
// trace/volume.Volume so it can live in a per-family pool and be
// found by family/variant the same way every other component is.
type BoundingVolume struct {
	Volume volume.Volume
}

func NewBoundingVolume(v volume.Volume) BoundingVolume {
	return BoundingVolume{Volume: v}
}

// Variant implements the variant interface, delegating to the
// wrapped volume's own tag.
func (b BoundingVolume) Variant() int { return b.Volume.Type() }
