package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// GroundLevel returns the height of the highest fixed, solid surface below
// (x, fromY, z), or fallback when nothing is there.
func (w *World) GroundLevel(x, z, fromY, fallback float32) float32 {
	filter := OnlyFixed()
	filter.Flags |= ExcludeSensors

	const reach = 512
	hit, ok := w.CastRay(mgl32.Vec3{x, fromY, z}, mgl32.Vec3{0, -1, 0}, reach, true, filter)
	if !ok {
		return fallback
	}
	return fromY - hit.Toi
}
