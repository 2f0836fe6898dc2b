package config

import (
	"sync"

	"orbitcam/internal/camera"
)

// CameraSettings holds the tunables of the third-person camera.
type CameraSettings struct {
	mu       sync.RWMutex
	settings camera.Settings
	// focusHeight lifts the orbit target above the followed entity's feet.
	focusHeight float32
}

const DefaultFocusHeight = 1.5

var globalCameraSettings = &CameraSettings{
	settings:    camera.DefaultSettings(),
	focusHeight: DefaultFocusHeight,
}

// GetCamera returns a snapshot of the camera settings.
func GetCamera() camera.Settings {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.settings
}

// SetCamera replaces the camera settings, clamping values that would break
// the rig.
func SetCamera(s camera.Settings) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.settings = clampCamera(s)
}

// GetFocusHeight returns how far above the followed entity the camera aims.
func GetFocusHeight() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.focusHeight
}

func SetFocusHeight(h float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.focusHeight = h
}

// ResetCamera restores the defaults.
func ResetCamera() {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.settings = camera.DefaultSettings()
	globalCameraSettings.focusHeight = DefaultFocusHeight
}

func clampCamera(s camera.Settings) camera.Settings {
	d := camera.DefaultSettings()
	if s.Sensitivity <= 0 {
		s.Sensitivity = d.Sensitivity
	}
	if s.MaxDistance < 0.5 {
		s.MaxDistance = 0.5
	}
	if s.MaxDistance > 50 {
		s.MaxDistance = 50
	}
	if s.Clearance < 0 {
		s.Clearance = 0
	}
	if s.Clearance >= s.MaxDistance {
		s.Clearance = d.Clearance
	}
	for _, rate := range []*float32{&s.CloserRate, &s.FurtherRate, &s.RotationRate} {
		if *rate <= 0 {
			*rate = 1
		}
	}
	if s.Damping != camera.DampingExponential {
		s.Damping = camera.DampingLinear
	}
	return s
}
