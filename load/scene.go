// Copyright © 2024 Galvanized Logic Inc.

// Package load reads a scene description from disk and populates a
// scene.Scene through its public component-store API only - no
// concession is made here to making the loader itself part of the
// renderer's contract. Modeled on shd.go's pattern of decoding a YAML
// document into intermediate structs and then translating those into
// engine types field by field.
package load

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/trace/volume"
)

// doc is the on-disk shape of a scene description. Field names match
// the YAML keys directly, following shd.go's convention of a flat
// struct per document section rather than a generic map walk.
type doc struct {
	View   nodeDoc   `yaml:"view"`
	Lights []lightDoc `yaml:"lights"`
	Balls  []ballDoc  `yaml:"balls"`
}

type v4Doc struct {
	X, Y, Z, W float64
}

func (v v4Doc) vec() lin.V4 { return lin.V4{X: v.X, Y: v.Y, Z: v.Z, W: v.W} }

type nodeDoc struct {
	Position v4Doc `yaml:"position"`
	Interest v4Doc `yaml:"interest"`
	Up       v4Doc `yaml:"up"`
	Camera   *cameraDoc `yaml:"camera"`
}

type cameraDoc struct {
	Fovy    float64 `yaml:"fovy"`
	Aspect  float64 `yaml:"aspect"`
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
	Filter  string  `yaml:"filter"`
	AA      string  `yaml:"aa"`
	Samples int     `yaml:"samples"`
}

type lightDoc struct {
	Kind      string `yaml:"kind"`
	Color     v4Doc  `yaml:"color"`
	Direction v4Doc  `yaml:"direction"`
	Position  v4Doc  `yaml:"position"`
	Constant  float64 `yaml:"constant"`
	Linear    float64 `yaml:"linear"`
	Quadratic float64 `yaml:"quadratic"`
}

type ballDoc struct {
	Position v4Doc      `yaml:"position"`
	Radius   float64    `yaml:"radius"`
	Material materialDoc `yaml:"material"`
}

type materialDoc struct {
	Kind      string `yaml:"kind"`
	Emission  v4Doc  `yaml:"emission"`
	Ambient   v4Doc  `yaml:"ambient"`
	Diffuse   v4Doc  `yaml:"diffuse"`
	Specular  v4Doc  `yaml:"specular"`
	Shininess v4Doc  `yaml:"shininess"`
}

// Scene reads the YAML scene description at path and builds a
// scene.Scene from it, returning the populated scene. Any BOM at the
// start of the file is stripped before the YAML decoder sees it,
// matching the teacher's preference for tolerating editor-written
// files over rejecting them.
func Scene(path string, cap scene.Capacities) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer file.Close()

	reader := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	var d doc
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	s := scene.NewScene(cap)
	view, _ := s.Node(s.View)
	view.Position = d.View.Position.vec()
	view.Interest = d.View.Interest.vec()
	view.Up = d.View.Up.vec()

	if d.View.Camera != nil {
		camRef := s.AcquireComponent(scene.CameraFamily)
		s.SetCamera(camRef, buildCamera(*d.View.Camera))
		s.AttachComponent(s.View, camRef)
	}

	for _, ld := range d.Lights {
		node := s.CreateNode()
		n, _ := s.Node(node)
		n.Position = ld.Position.vec()

		light, err := buildLight(ld)
		if err != nil {
			return nil, err
		}
		ref := s.AcquireComponent(scene.LightFamily)
		s.SetLight(ref, light)
		s.AttachComponent(node, ref)
	}

	for _, bd := range d.Balls {
		node := s.CreateNode()
		n, _ := s.Node(node)
		n.Position = bd.Position.vec()

		geom := s.AcquireComponent(scene.GeometryFamily)
		s.SetGeometry(geom, scene.NewParametricSphereGeometry(bd.Radius))
		s.AttachComponent(node, geom)

		bv := s.AcquireComponent(scene.BoundingVolumeFamily)
		s.SetBoundingVolume(bv, scene.NewBoundingVolume(volume.NewBall(bd.Radius)))
		s.AttachComponent(node, bv)

		mat, err := buildMaterial(bd.Material)
		if err != nil {
			return nil, err
		}
		matRef := s.AcquireComponent(scene.MaterialFamily)
		s.SetMaterial(matRef, mat)
		s.AttachComponent(node, matRef)
	}

	return s, nil
}

var cameraFilters = map[string]scene.Filter{
	"color":  scene.ColorFilter,
	"depth":  scene.DepthFilter,
	"normal": scene.NormalFilter,
}

var cameraAA = map[string]scene.AA{
	"none":       scene.NoAA,
	"stochastic": scene.StochasticSSAA,
}

func buildCamera(c cameraDoc) scene.Camera {
	return scene.Camera{
		Fovy:    c.Fovy,
		Aspect:  c.Aspect,
		Near:    c.Near,
		Far:     c.Far,
		Filter:  cameraFilters[c.Filter],
		AA:      cameraAA[c.AA],
		Samples: c.Samples,
	}
}

func buildLight(ld lightDoc) (scene.Light, error) {
	switch ld.Kind {
	case "ambient":
		return scene.NewAmbientLight(ld.Color.vec()), nil
	case "directional":
		return scene.NewDirectionalLight(ld.Color.vec(), ld.Direction.vec()), nil
	case "point":
		return scene.NewPointLight(ld.Color.vec(), ld.Constant, ld.Linear, ld.Quadratic), nil
	default:
		return scene.Light{}, fmt.Errorf("load: unknown light kind %q", ld.Kind)
	}
}

func buildMaterial(md materialDoc) (scene.Material, error) {
	switch md.Kind {
	case "constant":
		return scene.NewConstantMaterial(md.Emission.vec()), nil
	case "phong":
		return scene.NewPhongMaterial(md.Ambient.vec(), md.Diffuse.vec(), md.Specular.vec(), md.Shininess.vec()), nil
	default:
		return scene.Material{}, fmt.Errorf("load: unknown material kind %q", md.Kind)
	}
}
