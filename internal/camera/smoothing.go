package camera

import (
	"math"
)

// Smooth moves the rendered transform toward the resolved eye placement and
// commits the rig's pending pose.
func Smooth(rendered *Transform, los LineOfSight, r *Rig, dt float32, s Settings) {
	rate := s.FurtherRate
	if los.Correction == Closer {
		rate = s.CloserRate
	}
	step := los.Location.Sub(rendered.Translation)
	rendered.Translation = rendered.Translation.Add(step.Mul(blendFactor(rate, dt, s.Damping)))

	rendered.Rotation = slerpShortest(rendered.Rotation, r.pending.Eye.Rotation, blendFactor(s.RotationRate, dt, s.Damping))

	r.commit()
}

func blendFactor(rate, dt float32, d Damping) float32 {
	if dt <= 0 {
		return 0
	}
	if d == DampingExponential {
		return 1 - float32(math.Exp(-float64(rate*dt)))
	}
	return min(rate*dt, 1)
}
