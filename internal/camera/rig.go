package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is one fully specified camera placement.
type Pose struct {
	Eye    Transform
	Target mgl32.Vec3
}

// Rig holds the committed pose of a camera and the pose being computed for
// the current frame.
type Rig struct {
	current Pose
	pending Pose
	up      mgl32.Vec3

	// targeted is false until SetTarget has been called once.
	targeted bool
}

// NewRig creates a rig whose committed eye starts at the spawn transform so
// the camera does not jump when it appears.
func NewRig(spawn Transform) *Rig {
	return &Rig{
		current: Pose{Eye: spawn},
		pending: Pose{Eye: Transform{Rotation: mgl32.QuatIdent()}},
		up:      axisY,
	}
}

// SetTarget moves the point the camera orbits around. The first target a
// rig receives is also taken as the committed one, so the eye does not
// jump by the whole target position on the first frame.
func (r *Rig) SetTarget(target mgl32.Vec3) *Rig {
	r.pending.Target = target
	if !r.targeted {
		r.current.Target = target
		r.targeted = true
	}
	return r
}

// SetUp overrides the reference up axis. Callers keep it unit length.
func (r *Rig) SetUp(up mgl32.Vec3) *Rig {
	r.up = up
	return r
}

// Forward returns the forward direction of the pending eye.
func (r *Rig) Forward() mgl32.Vec3 {
	return r.pending.Eye.Forward()
}

func (r *Rig) Up() mgl32.Vec3 {
	return r.up
}

// Current returns the last committed pose.
func (r *Rig) Current() Pose {
	return r.current
}

// Pending returns the pose being computed this frame.
func (r *Rig) Pending() Pose {
	return r.pending
}

// commit makes the pending pose the baseline for the next frame.
func (r *Rig) commit() {
	r.current = r.pending
}
