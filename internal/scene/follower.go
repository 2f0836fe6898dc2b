package scene

import (
	"orbitcam/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	WalkSpeed = 4.0
	// stepProbe is how far above the feet the ground probe starts.
	stepProbe = 0.5
)

// Follower is the entity the camera orbits: it walks on the ground plane
// relative to where the camera is facing.
type Follower struct {
	Position mgl32.Vec3
	Speed    float32
}

func NewFollower(pos mgl32.Vec3) *Follower {
	return &Follower{Position: pos, Speed: WalkSpeed}
}

// Move walks the follower. forward is the camera's view direction; only
// its horizontal part is used. strafe and ahead are in [-1, 1].
func (f *Follower) Move(forward mgl32.Vec3, strafe, ahead, dt float32, w *physics.World) {
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() < 1e-5 {
		flat = mgl32.Vec3{0, 0, -1}
	}
	flat = flat.Normalize()
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	dir := flat.Mul(ahead).Add(right.Mul(strafe))
	if dir.Len() < 1e-5 {
		return
	}
	step := dir.Normalize().Mul(f.Speed * dt)
	next := f.Position.Add(step)

	if w != nil {
		if blocked(w, f.Position, step) {
			return
		}
		next[1] = w.GroundLevel(next.X(), next.Z(), f.Position.Y()+stepProbe, f.Position.Y())
	}
	f.Position = next
}

// Focus returns the point the camera should orbit.
func (f *Follower) Focus(height float32) mgl32.Vec3 {
	return f.Position.Add(mgl32.Vec3{0, height, 0})
}

// blocked reports whether a waist-high probe along step hits fixed solid
// geometry.
func blocked(w *physics.World, from, step mgl32.Vec3) bool {
	filter := physics.OnlyFixed()
	filter.Flags |= physics.ExcludeSensors

	const radius = 0.3
	origin := from.Add(mgl32.Vec3{0, 1, 0})
	_, hit := w.CastRay(origin, step.Normalize(), step.Len()+radius, false, filter)
	return hit
}
