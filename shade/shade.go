// Copyright © 2024 Galvanized Logic Inc.

// Package shade evaluates a hit surface's color under a single light,
// and casts the shadow ray a light needs before it is allowed to
// contribute. Modeled directly on
// original_source/src/shade.c's enlighten/ObscuraShade and
// original_source/src/renderer.c's overcast.
package shade

import (
	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/stat"
	"github.com/lucent3d/obscura/trace"
	"github.com/lucent3d/obscura/trace/volume"
)

var one = lin.V4{X: 1, Y: 1, Z: 1, W: 1}

// Shade resolves visible's material and lightNode's light component and
// returns the color contribution of that single light. view is the
// node carrying the scene's camera; its Interest field stands in for
// the eye direction in the specular term, matching shade.c exactly.
func Shade(s *scene.Scene, visible trace.Visible, lightNode, view scene.Ref) lin.V4 {
	materialRef, _ := s.FindAnyComponent(visible.Node, scene.MaterialFamily)
	material, _ := s.Material(materialRef)
	surface := material.Attrs()

	lightRef, _ := s.FindAnyComponent(lightNode, scene.LightFamily)
	light, _ := s.Light(lightRef)

	lightPos := lin.V4{}
	if n, ok := s.Node(lightNode); ok {
		lightPos = n.Position
	}

	viewInterest := lin.V4{}
	if n, ok := s.Node(view); ok {
		viewInterest = n.Interest
	}

	normal := visible.Collision.HitNormal
	hitPoint := visible.Collision.HitPoint

	switch light.Kind() {
	case scene.AmbientLight:
		var sum lin.V4
		sum.Add(&surface.Emission, &surface.Ambient)
		var color lin.V4
		color.Mult(&sum, &light.Color)
		return color

	case scene.DirectionalLight:
		return enlighten(surface, normal, light.Direction, light.Color, viewInterest)

	case scene.PointLight:
		var dir lin.V4
		dir.Sub(&lightPos, &hitPoint)
		dir.Unit()
		color := enlighten(surface, normal, dir, light.Color, viewInterest)
		att := light.Attenuation(hitPoint.Dist(&lightPos))
		color.Div(att)
		return color

	case scene.SpotLight:
		// The falloff angle/exponent cone term is never applied to the
		// color, matching the reference's unfinished spot implementation.
		color := enlighten(surface, normal, light.Direction, light.Color, viewInterest)
		att := light.Attenuation(hitPoint.Dist(&lightPos))
		color.Div(att)
		return color
	}

	return lin.V4{}
}

// enlighten computes the diffuse+specular response shared by
// Directional, Point and Spot lights, differing only in the light
// direction vector L and whether the result is later attenuated.
func enlighten(surface scene.SurfaceAttributes, normal, L, lightColor, eye lin.V4) lin.V4 {
	diffuse := surface.Diffuse
	d := lin.Clamp(normal.Dot(&L), 0, 1)
	diffuse.Scale(&diffuse, d)

	var reflection lin.V4
	reflection.Reflect(&L, &normal)
	specular := surface.Specular
	s := lin.Clamp(reflection.Dot(&eye), 0, 1)
	specular.Scale(&specular, s)

	var exponent lin.V4
	exponent.Sub(&one, &surface.Shininess)
	specular.Pow(&specular, &exponent)

	var sum lin.V4
	sum.Add(&surface.Emission, &surface.Ambient)
	sum.Add(&sum, &diffuse)
	sum.Add(&sum, &specular)

	var color lin.V4
	color.Mult(&sum, &lightColor)
	return color
}

// Blend combines two shaded colors by componentwise multiply
// (modulation), matching shade.c's blend reducer used both inside
// enlighten and by the renderer driver to accumulate multiple lights.
// This darkens as lights are added rather than brightening, an
// unusual choice carried over from the reference rather than replaced
// with additive accumulation.
func Blend(a, b lin.V4) lin.V4 {
	var c lin.V4
	c.Mult(&a, &b)
	return c
}

// ShadowOccluded casts a shadow ray from hitPoint toward lightNode's
// light and reports whether anything blocks it. Ambient lights are
// never occluded. The spot case sets a zero ray direction, matching
// renderer.c's overcast: the reference never assigns
// bounds.direction in its spot branch, a gap preserved here rather
// than silently fixed.
func ShadowOccluded(s *scene.Scene, counters *stat.Counters, lightNode scene.Ref, hitPoint lin.V4) bool {
	lightRef, _ := s.FindAnyComponent(lightNode, scene.LightFamily)
	light, _ := s.Light(lightRef)

	if light.Kind() == scene.AmbientLight {
		return false
	}

	var dir volume.Ray
	switch light.Kind() {
	case scene.DirectionalLight:
		dir = volume.Ray{Dx: light.Direction.X, Dy: light.Direction.Y, Dz: light.Direction.Z}
	case scene.PointLight:
		lightPos := lin.V4{}
		if n, ok := s.Node(lightNode); ok {
			lightPos = n.Position
		}
		var d lin.V4
		d.Sub(&lightPos, &hitPoint)
		d.Unit()
		dir = volume.Ray{Dx: d.X, Dy: d.Y, Dz: d.Z}
	case scene.SpotLight:
		dir = volume.Ray{} // zero direction, matching the reference gap.
	}

	counters.Inc(stat.Shadow)
	v := trace.Ray(s, hitPoint, &dir)
	return v.Hit
}
