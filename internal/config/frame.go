package config

import "sync"

// FrameSettings controls pacing of the main loop.
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

const DefaultFPSLimit = 144

var globalFrameSettings = &FrameSettings{fpsLimit: DefaultFPSLimit}

// GetFPSLimit returns the frame cap; 0 means uncapped.
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

func SetFPSLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()
	globalFrameSettings.fpsLimit = limit
}
