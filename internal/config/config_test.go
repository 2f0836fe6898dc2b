package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"orbitcam/internal/camera"
)

func TestDefaultsMatchCamera(t *testing.T) {
	ResetCamera()
	if GetCamera() != camera.DefaultSettings() {
		t.Errorf("GetCamera() = %+v, want defaults", GetCamera())
	}
	if GetFocusHeight() != DefaultFocusHeight {
		t.Errorf("GetFocusHeight() = %f, want %f", GetFocusHeight(), DefaultFocusHeight)
	}
}

func TestSetCameraClamps(t *testing.T) {
	defer ResetCamera()

	s := camera.DefaultSettings()
	s.Sensitivity = -1
	s.MaxDistance = 500
	s.Clearance = -0.5
	s.FurtherRate = 0
	s.Damping = camera.Damping(9)
	SetCamera(s)

	got := GetCamera()
	if got.Sensitivity != camera.DefaultSensitivity {
		t.Errorf("Sensitivity = %f, want default", got.Sensitivity)
	}
	if got.MaxDistance != 50 {
		t.Errorf("MaxDistance = %f, want 50", got.MaxDistance)
	}
	if got.Clearance != 0 {
		t.Errorf("Clearance = %f, want 0", got.Clearance)
	}
	if got.FurtherRate != 1 {
		t.Errorf("FurtherRate = %f, want 1", got.FurtherRate)
	}
	if got.Damping != camera.DampingLinear {
		t.Errorf("Damping = %v, want linear", got.Damping)
	}
}

func TestApplyOverlaysPresentFields(t *testing.T) {
	defer ResetCamera()

	f, err := Parse([]byte(`
camera:
  max_distance: 8
  further_rate: 4
  damping: exponential
  focus_height: 2
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Apply()

	got := GetCamera()
	want := camera.DefaultSettings()
	want.MaxDistance = 8
	want.FurtherRate = 4
	want.Damping = camera.DampingExponential
	if got != want {
		t.Errorf("GetCamera() = %+v, want %+v", got, want)
	}
	if GetFocusHeight() != 2 {
		t.Errorf("GetFocusHeight() = %f, want 2", GetFocusHeight())
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "camera: [1, 2"},
		{"unknown damping", "camera:\n  damping: springy\n"},
		{"wrong type", "camera:\n  max_distance: far\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.doc)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load of a missing file should fail")
	}
}

func TestWatchReloads(t *testing.T) {
	defer ResetCamera()

	path := filepath.Join(t.TempDir(), "camera.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  max_distance: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera:\n  max_distance: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-w.Reloaded:
			if GetCamera().MaxDistance == 9 {
				return
			}
		case <-deadline:
			t.Fatalf("config was not reloaded, MaxDistance = %f", GetCamera().MaxDistance)
		}
	}
}

func TestFPSLimit(t *testing.T) {
	defer SetFPSLimit(DefaultFPSLimit)

	f, err := Parse([]byte("fps_limit: 60\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Apply()
	if GetFPSLimit() != 60 {
		t.Errorf("GetFPSLimit() = %d, want 60", GetFPSLimit())
	}

	SetFPSLimit(-5)
	if GetFPSLimit() != 0 {
		t.Errorf("negative limit should mean uncapped, got %d", GetFPSLimit())
	}
}
