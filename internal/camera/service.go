package camera

import (
	"fmt"
	"log"
	"sort"

	"orbitcam/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// EntityID identifies the entity a rig is attached to.
type EntityID uint32

// Frame carries everything one camera update needs from the outside world.
type Frame struct {
	Dt float32
	// Movement is the pointer delta since the last frame, nil when no
	// input source is active.
	Movement *mgl32.Vec2
	Caster   RayCaster
}

type entry struct {
	rig      *Rig
	rendered Transform
	last     LineOfSight
}

// Service owns one rig per camera entity and runs the per-frame pipeline.
// It is not safe for concurrent use; drive it from the frame loop.
type Service struct {
	settings Settings
	entries  map[EntityID]*entry
}

func NewService(s Settings) *Service {
	return &Service{
		settings: s,
		entries:  make(map[EntityID]*entry),
	}
}

func (s *Service) Settings() Settings {
	return s.settings
}

// SetSettings swaps the tuning used from the next update on.
func (s *Service) SetSettings(settings Settings) {
	s.settings = settings
}

// Spawn attaches a rig to id, starting from the entity's current transform.
func (s *Service) Spawn(id EntityID, spawn Transform) *Rig {
	if spawn.Rotation.Len() == 0 {
		spawn.Rotation = mgl32.QuatIdent()
	}
	if _, ok := s.entries[id]; ok {
		log.Printf("camera: respawning rig for entity %d", id)
	}
	rig := NewRig(spawn)
	s.entries[id] = &entry{rig: rig, rendered: spawn}
	return rig
}

func (s *Service) Despawn(id EntityID) {
	delete(s.entries, id)
}

func (s *Service) Has(id EntityID) bool {
	_, ok := s.entries[id]
	return ok
}

// IDs returns the tracked entities in ascending order.
func (s *Service) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Rig returns the rig for id. Asking for an entity that was never spawned
// is a setup bug and panics.
func (s *Service) Rig(id EntityID) *Rig {
	return s.mustEntry(id).rig
}

// Rendered returns the transform last written for id.
func (s *Service) Rendered(id EntityID) Transform {
	return s.mustEntry(id).rendered
}

// LastLineOfSight returns the occlusion result of the latest update for id.
func (s *Service) LastLineOfSight(id EntityID) LineOfSight {
	return s.mustEntry(id).last
}

// ViewMatrix returns the view matrix for the rendered transform of id.
func (s *Service) ViewMatrix(id EntityID) mgl32.Mat4 {
	return s.mustEntry(id).rendered.ViewMatrix()
}

// Update runs follow, orbit, occlusion and smoothing for id, in that order.
func (s *Service) Update(id EntityID, f Frame) Transform {
	e := s.mustEntry(id)

	func() {
		defer profiling.Track("camera.Follow")()
		Follow(e.rig)
	}()
	func() {
		defer profiling.Track("camera.Orbit")()
		Orbit(e.rig, f.Movement, s.settings.Sensitivity)
	}()
	func() {
		defer profiling.Track("camera.ResolveLineOfSight")()
		e.last = ResolveLineOfSight(e.rig, f.Caster, s.settings)
	}()
	func() {
		defer profiling.Track("camera.Smooth")()
		Smooth(&e.rendered, e.last, e.rig, f.Dt, s.settings)
	}()

	return e.rendered
}

// UpdateAll updates every rig with the same frame.
func (s *Service) UpdateAll(f Frame) {
	for _, id := range s.IDs() {
		s.Update(id, f)
	}
}

func (s *Service) mustEntry(id EntityID) *entry {
	e, ok := s.entries[id]
	if !ok {
		panic(fmt.Sprintf("camera: no rig for entity %d", id))
	}
	return e
}
