package config

import (
	"fmt"
	"os"
	"strings"

	"orbitcam/internal/camera"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of the camera config. Missing fields keep
// their current value.
type File struct {
	Camera struct {
		Sensitivity  *float32 `yaml:"sensitivity"`
		MaxDistance  *float32 `yaml:"max_distance"`
		Clearance    *float32 `yaml:"clearance"`
		CloserRate   *float32 `yaml:"closer_rate"`
		FurtherRate  *float32 `yaml:"further_rate"`
		RotationRate *float32 `yaml:"rotation_rate"`
		Damping      string   `yaml:"damping"`
		FocusHeight  *float32 `yaml:"focus_height"`
	} `yaml:"camera"`
	FPSLimit *int `yaml:"fps_limit"`
}

// Parse decodes a YAML config document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if _, err := parseDamping(f.Camera.Damping); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads path and applies it over the current settings.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	f.Apply()
	return nil
}

// Apply overlays the fields present in f onto the global settings.
func (f File) Apply() {
	s := GetCamera()
	c := f.Camera
	setIf(&s.Sensitivity, c.Sensitivity)
	setIf(&s.MaxDistance, c.MaxDistance)
	setIf(&s.Clearance, c.Clearance)
	setIf(&s.CloserRate, c.CloserRate)
	setIf(&s.FurtherRate, c.FurtherRate)
	setIf(&s.RotationRate, c.RotationRate)
	if c.Damping != "" {
		s.Damping, _ = parseDamping(c.Damping)
	}
	SetCamera(s)

	if c.FocusHeight != nil {
		SetFocusHeight(*c.FocusHeight)
	}
	if f.FPSLimit != nil {
		SetFPSLimit(*f.FPSLimit)
	}
}

func setIf(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

func parseDamping(s string) (camera.Damping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return camera.DampingLinear, nil
	case "exponential":
		return camera.DampingExponential, nil
	}
	return camera.DampingLinear, fmt.Errorf("config: unknown damping %q", s)
}
