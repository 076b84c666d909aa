// Copyright © 2024 Galvanized Logic Inc.

package scene

// Filter selects what a camera's cast writes to its output: a shaded
// color, a linear depth value, or a surface normal. Mirrors camera.go's
// SetTransform-style small integer enum convention.
type Filter int

const (
	ColorFilter Filter = iota
	DepthFilter
	NormalFilter
)

// AA selects a camera's antialiasing technique.
type AA int

const (
	NoAA AA = iota
	StochasticSSAA
)

// Camera is a perspective projection plus antialiasing and output
// filter settings. Position and orientation live on the owning node
// (Node.Position/Interest/Up), matching camera.go's separation of a
// pov from the projection state it owns.
type Camera struct {
	Fovy, Aspect, Near, Far float64
	Filter                  Filter
	AA                      AA
	Samples                 int // sample count when AA is StochasticSSAA.
}

// Variant implements the variant interface. Cameras have a single
// kind, so the only component family without meaningful sub-variants
// still satisfies find_component's (family, variant) contract.
func (c Camera) Variant() int { return 0 }
