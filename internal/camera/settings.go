package camera

// Damping selects how smoothing rates are turned into per-frame blend factors.
type Damping int

const (
	// DampingLinear uses min(rate*dt, 1), which snaps fully once dt >= 1/rate.
	DampingLinear Damping = iota
	// DampingExponential uses 1 - exp(-rate*dt).
	DampingExponential
)

func (d Damping) String() string {
	switch d {
	case DampingExponential:
		return "exponential"
	default:
		return "linear"
	}
}

// Settings tunes a rig. The zero value is not usable; start from
// DefaultSettings.
type Settings struct {
	Sensitivity float32
	MaxDistance float32
	Clearance   float32

	CloserRate   float32
	FurtherRate  float32
	RotationRate float32
	Damping      Damping
}

const (
	DefaultSensitivity  = 1e-2
	DefaultMaxDistance  = 5.0
	DefaultClearance    = 0.01
	DefaultCloserRate   = 25.0
	DefaultFurtherRate  = 10.0
	DefaultRotationRate = 15.0
)

func DefaultSettings() Settings {
	return Settings{
		Sensitivity:  DefaultSensitivity,
		MaxDistance:  DefaultMaxDistance,
		Clearance:    DefaultClearance,
		CloserRate:   DefaultCloserRate,
		FurtherRate:  DefaultFurtherRate,
		RotationRate: DefaultRotationRate,
		Damping:      DampingLinear,
	}
}
