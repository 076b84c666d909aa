// Copyright © 2024 Galvanized Logic Inc.

package scene

// ref.go provides generational references into the scene's component
// and node pools. A Ref stays meaningful after other entries in its pool
// are swap-removed, unlike a raw index or pointer - see entity.go in the
// engine this package was adapted from for the originating id/edition
// scheme, generalized here from one global pool to one pool per
// component family plus one for nodes.

// Family identifies one of the five component families a Ref can point
// into, or the node pool.
type Family int

const (
	CameraFamily Family = iota
	BoundingVolumeFamily
	GeometryFamily
	LightFamily
	MaterialFamily
	numFamilies

	// nodeFamily tags Refs into the node pool. It is distinct from every
	// component family so a stray node Ref can never alias a component
	// Ref of the same index and generation.
	nodeFamily = numFamilies
)

// Ref is a generational reference to a component or node. It remains
// valid (Scene methods return ok=false otherwise) until the referenced
// slot is released, even though release compacts the backing pool with
// a swap-remove.
type Ref struct {
	family Family
	idx    uint32
	gen    uint32
}

// variant is implemented by every component payload type so that
// find_component can match on (family, variant) as well as family alone.
type variant interface {
	Variant() int
}

// pool is a bounded, generation-tracked, swap-remove compacting store of
// T. Acquire never allocates past cap; exhaustion is a programming error
// and panics, matching the fatal posture the rest of this module uses
// for resource exhaustion.
type pool[T variant] struct {
	family   Family
	cap      int
	dense    []T      // compact live storage, order not significant.
	denseID  []uint32 // denseID[i] is the slot id owning dense[i].
	slot     []uint32 // slot[id] is the dense index for id, if occupied[id].
	occupied []bool   // occupied[id] is true while id is live.
	edition  []uint32 // edition[id] increments each time id is released.
	free     []uint32 // ids available for reuse.
}

func newPool[T variant](family Family, capacity int) *pool[T] {
	return &pool[T]{family: family, cap: capacity}
}

// acquire allocates a new zero-valued T, returning a Ref and a pointer
// to the slot for the caller to fill in. Panics if the pool's declared
// capacity is exhausted.
func (p *pool[T]) acquire() (Ref, *T) {
	var id uint32
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		id = uint32(len(p.occupied))
		if int(id) >= p.cap {
			panic("scene: component pool exhausted")
		}
		p.occupied = append(p.occupied, false)
		p.slot = append(p.slot, 0)
		p.edition = append(p.edition, 0)
	}
	p.occupied[id] = true
	p.dense = append(p.dense, *new(T))
	p.denseID = append(p.denseID, id)
	p.slot[id] = uint32(len(p.dense) - 1)

	ref := Ref{family: p.family, idx: id, gen: p.edition[id]}
	return ref, &p.dense[p.slot[id]]
}

// release swap-removes ref's backing entry and bumps its edition so any
// remaining copies of ref are reported invalid.
func (p *pool[T]) release(ref Ref) {
	if !p.valid(ref) {
		return
	}
	id := ref.idx
	di := p.slot[id]
	last := len(p.dense) - 1
	p.dense[di] = p.dense[last]
	p.denseID[di] = p.denseID[last]
	p.slot[p.denseID[di]] = di
	p.dense = p.dense[:last]
	p.denseID = p.denseID[:last]

	p.occupied[id] = false
	p.edition[id]++
	p.free = append(p.free, id)
}

// valid reports whether ref still refers to a live entry in this pool.
func (p *pool[T]) valid(ref Ref) bool {
	if ref.family != p.family {
		return false
	}
	if int(ref.idx) >= len(p.occupied) || !p.occupied[ref.idx] {
		return false
	}
	return p.edition[ref.idx] == ref.gen
}

// get returns a pointer to ref's live entry, or nil, false if ref is
// stale or belongs to a different family.
func (p *pool[T]) get(ref Ref) (*T, bool) {
	if !p.valid(ref) {
		return nil, false
	}
	return &p.dense[p.slot[ref.idx]], true
}

// each calls fn once per live entry, in dense storage order (no
// particular creation order, since release compacts with swap-remove).
func (p *pool[T]) each(fn func(ref Ref, item *T)) {
	for i := range p.dense {
		ref := Ref{family: p.family, idx: p.denseID[i], gen: p.edition[p.denseID[i]]}
		fn(ref, &p.dense[i])
	}
}
