// Copyright © 2024 Galvanized Logic Inc.

package scene

import "github.com/lucent3d/obscura/math/lin"

// Enumerate the material variants a Material component can hold.
const (
	ConstantMaterial = iota
	PhongMaterial
)

// Material is a surface's shading attributes. Reflective, Transparent
// and Ior are reserved for recursive reflection/refraction, which
// Shade never performs; Texture is reserved for a future sampled-color
// variant. Both are never read, matching the teacher's "FUTURE:"
// placeholder convention seen throughout physics/shape.go.
type Material struct {
	kind int

	Emission lin.V4 // constant-shaded and ambient-lit color.
	Ambient  lin.V4
	Diffuse  lin.V4
	Specular lin.V4

	// Shininess is a color, not a scalar: Shade raises Specular to the
	// per-channel power (1 - Shininess), matching shade.c's
	// vec4_pow(surface.specular_color, 1 - surface.shininess).
	Shininess lin.V4

	// Reserved: no recursive ray is ever cast from Shade.
	Reflective   bool
	Reflectivity float64
	Transparent  bool
	Transparency float64
	Ior          float64

	// Texture is reserved for a sampled-color variant. Never read by
	// Shade; present only so the data model has a home for it.
	Texture string
}

// NewConstantMaterial returns a Material whose only non-zero attribute
// is its emission color; lights still modulate it through Shade.
func NewConstantMaterial(emission lin.V4) Material {
	return Material{kind: ConstantMaterial, Emission: emission}
}

// NewPhongMaterial returns a Material shaded with ambient, diffuse and
// specular terms against every light in the scene. shininess is a
// color, following the reference; a uniform scalar shininess s is
// passed as lin.V4{X: s, Y: s, Z: s, W: s}.
func NewPhongMaterial(ambient, diffuse, specular, shininess lin.V4) Material {
	return Material{kind: PhongMaterial, Ambient: ambient, Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// Kind reports whether this Material is constant- or Phong-shaded.
func (m Material) Kind() int { return m.kind }

// Variant implements the variant interface.
func (m Material) Variant() int { return m.kind }

// SurfaceAttributes is the unified view over either Material variant
// that Shade operates on; a Constant material surfaces zero-valued
// ambient/diffuse/specular/shininess fields so the same light-response
// formulas apply to both, matching shade.c's ObscuraSurfaceAttrs.
type SurfaceAttributes struct {
	Emission  lin.V4
	Ambient   lin.V4
	Diffuse   lin.V4
	Specular  lin.V4
	Shininess lin.V4
}

// Attrs returns m's unified surface attributes.
func (m Material) Attrs() SurfaceAttributes {
	return SurfaceAttributes{
		Emission:  m.Emission,
		Ambient:   m.Ambient,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Shininess: m.Shininess,
	}
}
