package physics

import (
	"sync"

	"orbitcam/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// BodyType says how a collider's body moves.
type BodyType int

const (
	Fixed BodyType = iota
	KinematicPositionBased
	KinematicVelocityBased
	Dynamic
)

func (b BodyType) String() string {
	switch b {
	case Fixed:
		return "fixed"
	case KinematicPositionBased:
		return "kinematic_position"
	case KinematicVelocityBased:
		return "kinematic_velocity"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

func (b BodyType) kinematic() bool {
	return b == KinematicPositionBased || b == KinematicVelocityBased
}

// Handle refers to a collider inserted into a World.
type Handle uint32

// Collider is a shape attached to a body.
type Collider struct {
	Name   string
	Shape  Shape
	Body   BodyType
	Sensor bool
}

// QueryFilterFlags exclude whole classes of colliders from a query.
type QueryFilterFlags uint32

const (
	ExcludeFixed QueryFilterFlags = 1 << iota
	ExcludeKinematic
	ExcludeDynamic
	ExcludeSensors
	ExcludeSolids
)

// QueryFilter narrows which colliders a ray query may hit.
type QueryFilter struct {
	Flags QueryFilterFlags
	// Predicate, when set, must also accept the collider.
	Predicate func(Handle, Collider) bool
}

// OnlyFixed keeps colliders attached to fixed bodies.
func OnlyFixed() QueryFilter {
	return QueryFilter{Flags: ExcludeKinematic | ExcludeDynamic}
}

func (f QueryFilter) accepts(h Handle, c Collider) bool {
	switch {
	case f.Flags&ExcludeFixed != 0 && c.Body == Fixed,
		f.Flags&ExcludeKinematic != 0 && c.Body.kinematic(),
		f.Flags&ExcludeDynamic != 0 && c.Body == Dynamic,
		f.Flags&ExcludeSensors != 0 && c.Sensor,
		f.Flags&ExcludeSolids != 0 && !c.Sensor:
		return false
	}
	if f.Predicate != nil && !f.Predicate(h, c) {
		return false
	}
	return true
}

// Hit is the nearest collider a ray touched.
type Hit struct {
	Handle Handle
	Toi    float32
}

// World stores colliders and answers read-only queries against them.
type World struct {
	mu        sync.RWMutex
	colliders map[Handle]Collider
	next      Handle
}

func NewWorld() *World {
	return &World{colliders: make(map[Handle]Collider)}
}

func (w *World) Insert(c Collider) Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	w.colliders[w.next] = c
	return w.next
}

func (w *World) Remove(h Handle) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.colliders[h]; !ok {
		return false
	}
	delete(w.colliders, h)
	return true
}

func (w *World) Get(h Handle) (Collider, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.colliders[h]
	return c, ok
}

// SetPosition moves the collider's shape to center.
func (w *World) SetPosition(h Handle, center mgl32.Vec3) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.colliders[h]
	if !ok {
		return false
	}
	c.Shape = c.Shape.WithPosition(center)
	w.colliders[h] = c
	return true
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.colliders)
}

// Each calls fn for every collider in unspecified order.
func (w *World) Each(fn func(Handle, Collider)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for h, c := range w.colliders {
		fn(h, c)
	}
}

// CastRay returns the closest collider accepted by filter whose time of
// impact along dir lies in [0, maxToi].
func (w *World) CastRay(origin, dir mgl32.Vec3, maxToi float32, solid bool, filter QueryFilter) (Hit, bool) {
	defer profiling.Track("physics.CastRay")()

	w.mu.RLock()
	defer w.mu.RUnlock()

	best := Hit{}
	found := false
	for h, c := range w.colliders {
		if c.Shape == nil || !filter.accepts(h, c) {
			continue
		}
		toi, ok := c.Shape.intersectRay(origin, dir, solid)
		if !ok || toi > maxToi {
			continue
		}
		if !found || toi < best.Toi || (toi == best.Toi && h < best.Handle) {
			best = Hit{Handle: h, Toi: toi}
			found = true
		}
	}
	return best, found
}
