// Copyright © 2024 Galvanized Logic Inc.

package scene

import "github.com/lucent3d/obscura/math/lin"

// Enumerate the light variants a Light component can hold.
const (
	AmbientLight = iota
	DirectionalLight
	PointLight
	SpotLight
)

// Light is a tagged union over the four light variants. Direction is
// used by Directional and Spot; Constant/Linear/Quadratic are used by
// Point and Spot; FalloffAngle/FalloffExponent belong to Spot only and
// are stored but not read by shade. Mirrors shade.c's enlighten switch
// over light->type.
type Light struct {
	kind int

	Color lin.V4

	Direction lin.V4 // Directional, Spot.

	Constant, Linear, Quadratic float64 // Point, Spot attenuation triple.

	FalloffAngle, FalloffExponent float64 // Spot only.
}

func NewAmbientLight(color lin.V4) Light {
	return Light{kind: AmbientLight, Color: color}
}

func NewDirectionalLight(color, direction lin.V4) Light {
	return Light{kind: DirectionalLight, Color: color, Direction: direction}
}

func NewPointLight(color lin.V4, constant, linear, quadratic float64) Light {
	return Light{kind: PointLight, Color: color, Constant: constant, Linear: linear, Quadratic: quadratic}
}

func NewSpotLight(color, direction lin.V4, constant, linear, quadratic, falloffAngle, falloffExponent float64) Light {
	return Light{
		kind: SpotLight, Color: color, Direction: direction,
		Constant: constant, Linear: linear, Quadratic: quadratic,
		FalloffAngle: falloffAngle, FalloffExponent: falloffExponent,
	}
}

// Kind reports which of the four light variants this is.
func (l Light) Kind() int { return l.kind }

// Variant implements the variant interface.
func (l Light) Variant() int { return l.kind }

// Attenuation returns the attenuation divisor k_c + k_l*d + k_q*d^2 at
// distance d. Only meaningful for Point and Spot lights.
func (l Light) Attenuation(d float64) float64 {
	return l.Constant + l.Linear*d + l.Quadratic*d*d
}
