// Copyright © 2024 Galvanized Logic Inc.

package scene

// Enumerate the geometry variants a Geometry component can hold. Only
// ParametricSphere is realized; the rest are reserved, matching the
// physics/shape.go "FUTURE:" convention for shapes never wired into a
// dispatch table.
const (
	ParametricSphereGeometry = iota
)

// Geometry is the renderable shape a node carries. A node with a
// Geometry component must also carry a BoundingVolume and a Material
// (not checked by AttachComponent; Draw assumes it holds).
type Geometry struct {
	kind   int
	Radius float64
}

// NewParametricSphereGeometry returns a sphere Geometry of the given
// radius.
func NewParametricSphereGeometry(radius float64) Geometry {
	return Geometry{kind: ParametricSphereGeometry, Radius: radius}
}

// Variant implements the variant interface.
func (g Geometry) Variant() int { return g.kind }
