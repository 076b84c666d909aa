// Copyright © 2024 Galvanized Logic Inc.

// Package render is the per-frame driver: it partitions the
// framebuffer into row bands, submits one task per band to a
// work.Queue, and within each task generates primary rays (with
// optional stochastic supersampling), casts them through trace and
// shade, and paints the result. Modeled directly on
// original_source/src/renderer.c's draw/cast/shade/ObscuraDraw.
package render

import (
	"math"
	"math/rand"

	"github.com/lucent3d/obscura/math/lin"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/shade"
	"github.com/lucent3d/obscura/stat"
	"github.com/lucent3d/obscura/trace"
	"github.com/lucent3d/obscura/trace/volume"
	"github.com/lucent3d/obscura/work"
)

// Paint is the renderer's only side-effecting interface: one call per
// finished pixel, color packed 0x00RRGGBB. Must not block.
type Paint func(x, y int, color uint32)

// Driver owns a read-only reference to a Scene and a Queue to
// distribute row bands across; Counters accumulate ray-kind totals
// over the course of one Draw call.
type Driver struct {
	Scene    *scene.Scene
	Queue    *work.Queue
	Counters *stat.Counters
	Width    int
	Height   int
	Paint    Paint

	lights []scene.Ref
}

// NewDriver wires a Scene, a Queue and a framebuffer size together.
func NewDriver(s *scene.Scene, q *work.Queue, width, height int, paint Paint) *Driver {
	return &Driver{Scene: s, Queue: q, Counters: &stat.Counters{}, Width: width, Height: height, Paint: paint}
}

// Draw renders one frame: resets the counters, rebuilds the light
// list, partitions rows across the queue's workers, and blocks until
// every band finishes. Any remainder rows past
// Height/Queue.Nprocs()*Queue.Nprocs() are dropped, matching
// ObscuraDraw's row partitioning exactly (see §9 in the design notes).
func (d *Driver) Draw() {
	d.Counters.Reset()
	d.enumerateLights()

	camRef, ok := d.Scene.FindComponent(d.Scene.View, scene.CameraFamily, 0)
	if !ok {
		panic("render: view node has no camera component")
	}
	cam, _ := d.Scene.Camera(camRef)

	view, ok := d.Scene.Node(d.Scene.View)
	if !ok {
		panic("render: view node reference is stale")
	}

	var transform lin.M4
	transform.Lookat(&view.Position, &view.Interest, &view.Up)
	origin := view.Position

	nprocs := int(d.Queue.Nprocs())
	if nprocs <= 0 {
		nprocs = 1
	}
	partitionSize := d.Height / nprocs

	for i := 0; i < nprocs; i++ {
		y0 := i * partitionSize
		y1 := y0 + partitionSize
		d.Queue.Submit(func() {
			d.drawBand(y0, y1, cam, &transform, origin)
		})
	}
	d.Queue.WaitAll()
}

// enumerateLights rebuilds the driver's light-node list via a full
// scene traversal, matching renderer.c's enumlights visitor.
func (d *Driver) enumerateLights() {
	d.lights = d.lights[:0]
	d.Scene.Traverse(func(s *scene.Scene, node scene.Ref) {
		if _, ok := s.FindAnyComponent(node, scene.LightFamily); ok {
			d.lights = append(d.lights, node)
		}
	})
}

func (d *Driver) drawBand(y0, y1 int, cam scene.Camera, transform *lin.M4, origin lin.V4) {
	scale := math.Tan(cam.Fovy / 2 * math.Pi / 180)

	for y := y0; y < y1; y++ {
		for x := 0; x < d.Width; x++ {
			var color lin.V4

			if cam.AA == scene.StochasticSSAA {
				samples := cam.Samples
				if samples < 1 {
					samples = 1
				}
				for i := 0; i < samples; i++ {
					u, v := rand.Float64(), rand.Float64()
					dir := d.pixelRay(x, y, u, v, cam, transform, scale)
					sample := d.cast(origin, dir, cam.Filter)
					color.Add(&color, &sample)
				}
				color.Scale(&color, 1/float64(samples))
			} else {
				dir := d.pixelRay(x, y, 0.5, 0.5, cam, transform, scale)
				color = d.cast(origin, dir, cam.Filter)
			}

			d.Paint(x, y, scene.Pack(color))
		}
	}
}

// pixelRay maps a jittered (u,v) sample offset within pixel (x,y) to a
// world-space ray direction: NDC -> screen (Y flipped) -> camera plane
// scaled by aspect and half-fov tangent -> world, via the view
// transform applied directly (not inverted) to the camera-space point,
// matching renderer.c's "mat4_transform(transformation, pt)" followed
// by a normalize.
func (d *Driver) pixelRay(x, y int, u, v float64, cam scene.Camera, transform *lin.M4, scale float64) volume.Ray {
	ndcX := (float64(x) + u) / float64(d.Width)
	ndcY := (float64(y) + v) / float64(d.Height)
	screenX := 2*ndcX - 1
	screenY := 1 - 2*ndcY
	camX := screenX * cam.Aspect * scale
	camY := screenY * scale

	pt := lin.V4{X: camX, Y: camY, Z: -1, W: 1}
	var dir lin.V4
	dir.MultvM(&pt, transform)
	dir.Unit()
	return volume.Ray{Dx: dir.X, Dy: dir.Y, Dz: dir.Z}
}

// cast traces one ray, increments the camera ray counter, and converts
// a hit into a color according to filter. A miss always returns the
// reference's diagnostic clear color (0,0,1,0).
func (d *Driver) cast(origin lin.V4, dir volume.Ray, filter scene.Filter) lin.V4 {
	d.Counters.Inc(stat.Camera)

	visible := trace.Ray(d.Scene, origin, &dir)
	if !visible.Hit {
		return lin.V4{X: 0, Y: 0, Z: 1, W: 0}
	}

	switch filter {
	case scene.DepthFilter:
		z := visible.Collision.HitPoint.Z
		return lin.V4{X: z, Y: z, Z: z, W: 0}
	case scene.NormalFilter:
		n := visible.Collision.HitNormal
		return lin.V4{X: (n.X + 1) * 0.5, Y: (n.Y + 1) * 0.5, Z: (n.Z + 1) * 0.5, W: 0}
	default:
		return d.shadeColor(visible)
	}
}

// shadeColor evaluates the Color filter: start from the hit surface's
// own emission (so an unlit or fully emissive surface still renders as
// itself) and blend in every unoccluded light's contribution by
// componentwise multiply. The reference instead starts the
// accumulator at (0,0,0,0), which under a multiplicative reducer makes
// every lit pixel black outright; seeding with Emission is this
// rewrite's resolution of that open question (see DESIGN.md).
func (d *Driver) shadeColor(visible trace.Visible) lin.V4 {
	matRef, ok := d.Scene.FindAnyComponent(visible.Node, scene.MaterialFamily)
	if !ok {
		return lin.V4{}
	}
	mat, _ := d.Scene.Material(matRef)
	color := mat.Emission

	for _, light := range d.lights {
		if shade.ShadowOccluded(d.Scene, d.Counters, light, visible.Collision.HitPoint) {
			continue
		}
		contribution := shade.Shade(d.Scene, visible, light, d.Scene.View)
		color = shade.Blend(color, contribution)
	}
	return color
}
