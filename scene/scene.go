// Copyright © 2024 Galvanized Logic Inc.

// Package scene implements the entity-component scene store: a bounded
// node pool plus five bounded per-family component pools, attach/detach
// between them, and post-order traversal. Generalized from entity.go's
// single global pool of generational entity ids into one generational
// pool per component family and one for nodes (see ref.go).
package scene

import (
	"fmt"

	"github.com/lucent3d/obscura/math/lin"
)

// Node is a point in the scene graph: a position/interest/up frame, an
// ordered list of children, and an unordered list of attached
// components. Nodes do not own their components; components are owned
// by the scene's per-family pools and simply referenced here.
type Node struct {
	Position lin.V4
	Interest lin.V4
	Up       lin.V4

	children []Ref
	attached []Ref
}

// Variant implements the variant interface. Nodes have no sub-kind.
func (n Node) Variant() int { return 0 }

// Children returns n's child node references, in traversal order.
func (n *Node) Children() []Ref { return n.children }

// Attached returns n's attached component references, family and order
// unspecified.
func (n *Node) Attached() []Ref { return n.attached }

// Capacities declares the bounded size of each of a Scene's pools.
// Each field left at zero defaults to 64, matching the data model's
// stated default.
type Capacities struct {
	Nodes           int
	Cameras         int
	BoundingVolumes int
	Geometries      int
	Lights          int
	Materials       int
}

const defaultCapacity = 64

func (c Capacities) withDefaults() Capacities {
	if c.Nodes == 0 {
		c.Nodes = defaultCapacity
	}
	if c.Cameras == 0 {
		c.Cameras = defaultCapacity
	}
	if c.BoundingVolumes == 0 {
		c.BoundingVolumes = defaultCapacity
	}
	if c.Geometries == 0 {
		c.Geometries = defaultCapacity
	}
	if c.Lights == 0 {
		c.Lights = defaultCapacity
	}
	if c.Materials == 0 {
		c.Materials = defaultCapacity
	}
	return c
}

// Scene owns the node pool, the five component-family pools, and a
// reference to the node used as the camera's view.
type Scene struct {
	nodes     *pool[Node]
	cameras   *pool[Camera]
	volumes   *pool[BoundingVolume]
	geoms     *pool[Geometry]
	lights    *pool[Light]
	materials *pool[Material]

	View Ref
}

// NewScene creates an empty scene with the given per-family pool
// capacities, creates an initial node, and sets it as View. Callers
// populate the scene via CreateNode/AcquireComponent/AttachComponent
// before the render loop starts; attach/detach is not safe to call
// concurrently with Traverse.
func NewScene(cap Capacities) *Scene {
	cap = cap.withDefaults()
	s := &Scene{
		nodes:     newPool[Node](nodeFamily, cap.Nodes),
		cameras:   newPool[Camera](CameraFamily, cap.Cameras),
		volumes:   newPool[BoundingVolume](BoundingVolumeFamily, cap.BoundingVolumes),
		geoms:     newPool[Geometry](GeometryFamily, cap.Geometries),
		lights:    newPool[Light](LightFamily, cap.Lights),
		materials: newPool[Material](MaterialFamily, cap.Materials),
	}
	s.View = s.CreateNode()
	return s
}

// Close releases every pool's backing storage. The scene must not be
// used afterward.
func (s *Scene) Close() {
	*s = Scene{}
}

// CreateNode acquires a new, empty node and returns its reference.
func (s *Scene) CreateNode() Ref {
	ref, _ := s.nodes.acquire()
	return ref
}

// DestroyNode releases a node. Its attached component refs and child
// refs become meaningless to future traversals once the node itself is
// gone; it does not recursively destroy children or detach components,
// matching invariant (ii): detach/destroy never implicitly frees
// components other than the node's own slot.
func (s *Scene) DestroyNode(node Ref) {
	s.nodes.release(node)
}

// Node returns a pointer to node's live data, or nil, false if node is
// stale.
func (s *Scene) Node(node Ref) (*Node, bool) {
	return s.nodes.get(node)
}

// AttachChild appends child to parent's ordered child list.
func (s *Scene) AttachChild(parent, child Ref) {
	n, ok := s.Node(parent)
	if !ok {
		return
	}
	n.children = append(n.children, child)
}

// DetachChild removes child from parent's child list via swap-remove,
// leaving it otherwise live. A no-op if child is not present.
func (s *Scene) DetachChild(parent, child Ref) {
	n, ok := s.Node(parent)
	if !ok {
		return
	}
	for i, c := range n.children {
		if c == child {
			last := len(n.children) - 1
			n.children[i] = n.children[last]
			n.children = n.children[:last]
			return
		}
	}
}

// AcquireComponent allocates a zero-valued component in family's pool
// and returns its reference. Callers fill in the payload with
// SetCamera/SetBoundingVolume/SetGeometry/SetLight/SetMaterial.
func (s *Scene) AcquireComponent(family Family) Ref {
	switch family {
	case CameraFamily:
		ref, _ := s.cameras.acquire()
		return ref
	case BoundingVolumeFamily:
		ref, _ := s.volumes.acquire()
		return ref
	case GeometryFamily:
		ref, _ := s.geoms.acquire()
		return ref
	case LightFamily:
		ref, _ := s.lights.acquire()
		return ref
	case MaterialFamily:
		ref, _ := s.materials.acquire()
		return ref
	default:
		panic(fmt.Sprintf("scene: unknown component family %d", family))
	}
}

// ReleaseComponent frees ref's backing slot in its family's pool via
// swap-remove. It does not detach ref from any node that still
// references it (invariant (ii)); callers detach first.
func (s *Scene) ReleaseComponent(ref Ref) {
	switch ref.family {
	case CameraFamily:
		s.cameras.release(ref)
	case BoundingVolumeFamily:
		s.volumes.release(ref)
	case GeometryFamily:
		s.geoms.release(ref)
	case LightFamily:
		s.lights.release(ref)
	case MaterialFamily:
		s.materials.release(ref)
	}
}

// SetCamera stores v as ref's payload. ref must have come from
// AcquireComponent(CameraFamily).
func (s *Scene) SetCamera(ref Ref, v Camera) bool { return set(s.cameras, ref, v) }

// SetBoundingVolume stores v as ref's payload.
func (s *Scene) SetBoundingVolume(ref Ref, v BoundingVolume) bool { return set(s.volumes, ref, v) }

// SetGeometry stores v as ref's payload.
func (s *Scene) SetGeometry(ref Ref, v Geometry) bool { return set(s.geoms, ref, v) }

// SetLight stores v as ref's payload.
func (s *Scene) SetLight(ref Ref, v Light) bool { return set(s.lights, ref, v) }

// SetMaterial stores v as ref's payload.
func (s *Scene) SetMaterial(ref Ref, v Material) bool { return set(s.materials, ref, v) }

func set[T variant](p *pool[T], ref Ref, v T) bool {
	slot, ok := p.get(ref)
	if !ok {
		return false
	}
	*slot = v
	return true
}

// Camera returns ref's payload, or ok=false if stale or not a camera.
func (s *Scene) Camera(ref Ref) (Camera, bool) { return get(s.cameras, ref) }

// BoundingVolume returns ref's payload.
func (s *Scene) BoundingVolume(ref Ref) (BoundingVolume, bool) { return get(s.volumes, ref) }

// Geometry returns ref's payload.
func (s *Scene) Geometry(ref Ref) (Geometry, bool) { return get(s.geoms, ref) }

// Light returns ref's payload.
func (s *Scene) Light(ref Ref) (Light, bool) { return get(s.lights, ref) }

// Material returns ref's payload.
func (s *Scene) Material(ref Ref) (Material, bool) { return get(s.materials, ref) }

func get[T variant](p *pool[T], ref Ref) (T, bool) {
	slot, ok := p.get(ref)
	if !ok {
		var zero T
		return zero, false
	}
	return *slot, true
}

// AttachComponent appends comp to node's attached list. Attaching a
// Geometry component to a node that does not yet carry both a
// BoundingVolume and a Material is permitted here (loaders build nodes
// incrementally) but Draw assumes invariant (iv) holds by the time
// traversal runs.
func (s *Scene) AttachComponent(node, comp Ref) {
	n, ok := s.Node(node)
	if !ok {
		return
	}
	n.attached = append(n.attached, comp)
}

// DetachComponent removes comp from node's attached list via
// swap-remove. The component itself is not released (invariant (ii)).
func (s *Scene) DetachComponent(node, comp Ref) {
	n, ok := s.Node(node)
	if !ok {
		return
	}
	for i, c := range n.attached {
		if c == comp {
			last := len(n.attached) - 1
			n.attached[i] = n.attached[last]
			n.attached = n.attached[:last]
			return
		}
	}
}

// FindAnyComponent returns the first component attached to node
// belonging to family, regardless of variant.
func (s *Scene) FindAnyComponent(node Ref, family Family) (Ref, bool) {
	n, ok := s.Node(node)
	if !ok {
		return Ref{}, false
	}
	for _, c := range n.attached {
		if c.family == family {
			return c, true
		}
	}
	return Ref{}, false
}

// FindComponent returns the first component attached to node belonging
// to family with the given variant tag.
func (s *Scene) FindComponent(node Ref, family Family, variant int) (Ref, bool) {
	n, ok := s.Node(node)
	if !ok {
		return Ref{}, false
	}
	for _, c := range n.attached {
		if c.family != family {
			continue
		}
		if s.variantOf(c) == variant {
			return c, true
		}
	}
	return Ref{}, false
}

func (s *Scene) variantOf(ref Ref) int {
	switch ref.family {
	case CameraFamily:
		v, _ := s.Camera(ref)
		return v.Variant()
	case BoundingVolumeFamily:
		v, _ := s.BoundingVolume(ref)
		return v.Variant()
	case GeometryFamily:
		v, _ := s.Geometry(ref)
		return v.Variant()
	case LightFamily:
		v, _ := s.Light(ref)
		return v.Variant()
	case MaterialFamily:
		v, _ := s.Material(ref)
		return v.Variant()
	}
	return -1
}

// Visitor is invoked once per node during Traverse, children before
// parent.
type Visitor func(s *Scene, node Ref)

// Traverse walks the scene's nodes in post-order: each node in the node
// pool that is not attached as a child of another node is a root, and
// every node's children are visited before the node itself. A node
// attached as a child is reached only through its parent.
func (s *Scene) Traverse(visit Visitor) {
	s.nodes.each(func(ref Ref, _ *Node) {
		for i := range s.nodes.dense {
			for _, c := range s.nodes.dense[i].children {
				if c == ref {
					return
				}
			}
		}
		s.traverse(ref, visit)
	})
}

func (s *Scene) traverse(node Ref, visit Visitor) {
	n, ok := s.Node(node)
	if !ok {
		return
	}
	for _, child := range n.children {
		s.traverse(child, visit)
	}
	visit(s, node)
}
