package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	tau = 2 * math.Pi

	// Closest the forward vector may get to the up axis while looking down.
	mostAcuteFromAbove = tau / 10
	// Closest the forward vector may get to the up axis while looking up.
	mostAcuteFromBelow = tau / 7

	minPitchStep = 0.01
)

// Follow carries the pending eye along with the target's movement since the
// last committed frame and re-aims it at the target.
func Follow(r *Rig) {
	delta := collapseApproxZero(r.pending.Target.Sub(r.current.Target))
	r.pending.Eye.Translation = r.current.Eye.Translation.Add(delta)

	if !isApproxZero(r.pending.Target.Sub(r.pending.Eye.Translation)) {
		r.pending.Eye.LookAt(r.pending.Target, r.up)
	}
}

// Orbit rotates the pending eye around the target by the frame's pointer
// movement. A nil movement means no input source is active.
func Orbit(r *Rig, movement *mgl32.Vec2, sensitivity float32) {
	if movement == nil {
		return
	}
	m := movement.Mul(sensitivity)
	if isApproxZero2(m) {
		return
	}

	yaw := -mgl32.Clamp(m.X(), -math.Pi, math.Pi)
	yawRotation := mgl32.QuatRotate(yaw, r.up.Normalize())

	pitch := clampPitch(r.pending.Eye.Forward(), r.up, -m.Y())
	pitchRotation := mgl32.QuatRotate(pitch, r.pending.Eye.LocalX().Normalize())

	r.pending.Eye.RotateAround(r.pending.Target, yawRotation.Mul(pitchRotation))
}

// clampPitch keeps the forward vector out of the cones around the up axis
// where look-at orientations degenerate. Positive pitch tilts the view up.
func clampPitch(forward, up mgl32.Vec3, angle float32) float32 {
	angleToAxis := angleBetween(forward, up)

	var acute, mostAcute, sign float32
	if angleToAxis > math.Pi/2 {
		acute, mostAcute, sign = math.Pi-angleToAxis, mostAcuteFromAbove, -1
	} else {
		acute, mostAcute, sign = angleToAxis, mostAcuteFromBelow, 1
	}
	if acute < mostAcute {
		angle -= sign * (mostAcute - acute)
	}

	// Pitching by angle moves angleToAxis to angleToAxis-angle; keep that
	// inside the allowed band so a single large step cannot cross the limit.
	lo := angleToAxis - (math.Pi - mostAcuteFromAbove)
	hi := angleToAxis - mostAcuteFromBelow
	angle = mgl32.Clamp(angle, lo, hi)

	if mgl32.Abs(angle) < minPitchStep {
		return 0
	}
	return angle
}
