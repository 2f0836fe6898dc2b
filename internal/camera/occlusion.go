package camera

import (
	"orbitcam/internal/physics"
	"orbitcam/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// RayCaster answers line-of-sight queries against the physical world.
// *physics.World satisfies it.
type RayCaster interface {
	CastRay(origin, dir mgl32.Vec3, maxToi float32, solid bool, filter physics.QueryFilter) (physics.Hit, bool)
}

// Correction tells the smoother whether the eye is being pulled in front of
// an obstacle or allowed back out.
type Correction int

const (
	Closer Correction = iota
	Further
)

func (c Correction) String() string {
	if c == Closer {
		return "closer"
	}
	return "further"
}

// LineOfSight is where the eye has to sit to keep the target visible.
type LineOfSight struct {
	Location   mgl32.Vec3
	Distance   float32
	Correction Correction
}

// ResolveLineOfSight casts from the pending target toward the pending eye
// and places the eye in front of the first static obstacle.
func ResolveLineOfSight(r *Rig, caster RayCaster, s Settings) LineOfSight {
	origin := r.pending.Target
	desired := r.pending.Eye.Translation.Sub(origin)
	dir := normalizeOr(desired, defaultAxis)

	distance := RaycastDistance(caster, origin, dir, s.MaxDistance, s.Clearance)
	correction := Further
	if distance*distance < desired.LenSqr() {
		correction = Closer
	}
	return LineOfSight{
		Location:   origin.Add(dir.Mul(distance)),
		Distance:   distance,
		Correction: correction,
	}
}

// RaycastDistance returns how far along dir the eye can go before touching
// fixed, non-sensor geometry, minus clearance. Misses return maxDistance.
// A hit closer than clearance yields a negative distance, which puts the
// eye just behind origin.
func RaycastDistance(caster RayCaster, origin, dir mgl32.Vec3, maxDistance, clearance float32) float32 {
	if caster == nil {
		return maxDistance
	}
	defer profiling.Track("camera.RaycastDistance")()

	filter := physics.OnlyFixed()
	filter.Flags |= physics.ExcludeSensors

	hit, ok := caster.CastRay(origin, dir, maxDistance, true, filter)
	if !ok {
		return maxDistance
	}
	return hit.Toi - clearance
}
