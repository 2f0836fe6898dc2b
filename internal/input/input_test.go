package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if !im.JustPressed(ActionToggleCursor) || !im.IsActive(ActionToggleCursor) {
		t.Fatalf("Escape should press ActionToggleCursor")
	}
	im.PostUpdate()
	if im.JustPressed(ActionToggleCursor) {
		t.Errorf("JustPressed should clear after PostUpdate")
	}
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	if !im.JustReleased(ActionToggleCursor) || im.IsActive(ActionToggleCursor) {
		t.Errorf("release edge not detected")
	}
}

func TestAxis(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if got := im.Axis(ActionMoveBackward, ActionMoveForward); got != 1 {
		t.Errorf("Axis = %f, want 1", got)
	}
	im.HandleKeyEvent(glfw.KeyDown, glfw.Press)
	if got := im.Axis(ActionMoveBackward, ActionMoveForward); got != 0 {
		t.Errorf("opposing keys: Axis = %f, want 0", got)
	}
}

func TestTakeCameraMovement(t *testing.T) {
	im := NewInputManager()

	if im.TakeCameraMovement() != nil {
		t.Fatalf("no pointer events should give nil")
	}

	// First position is only a reference.
	im.HandleCursorPos(100, 100)
	if im.TakeCameraMovement() != nil {
		t.Fatalf("first cursor position should not count as movement")
	}

	im.HandleCursorPos(103, 98)
	im.HandleCursorPos(110, 95)
	got := im.TakeCameraMovement()
	if got == nil || *got != (mgl32.Vec2{10, -5}) {
		t.Fatalf("movement = %v, want {10 -5}", got)
	}
	if im.TakeCameraMovement() != nil {
		t.Errorf("movement should be consumed")
	}

	// Moving back to the same spot is zero movement, not absence.
	im.HandleCursorPos(110, 95)
	got = im.TakeCameraMovement()
	if got == nil || *got != (mgl32.Vec2{}) {
		t.Errorf("movement = %v, want zero vector", got)
	}

	im.ResetCursor()
	im.HandleCursorPos(500, 500)
	if im.TakeCameraMovement() != nil {
		t.Errorf("position after reset should not count as movement")
	}
}

func TestFrozen(t *testing.T) {
	im := NewInputManager()
	im.SetFrozen(true)
	if !im.Frozen() {
		t.Errorf("Frozen() = false after SetFrozen(true)")
	}
}

type fakeWindow struct {
	mode int
	sets int
}

func (w *fakeWindow) GetInputMode(mode glfw.InputMode) int {
	return w.mode
}

func (w *fakeWindow) SetInputMode(mode glfw.InputMode, value int) {
	w.mode = value
	w.sets++
}

func TestCursorGate(t *testing.T) {
	w := &fakeWindow{mode: glfw.CursorNormal}
	g := NewCursorGate(w)

	if g.Update(false, false) || g.Captured() {
		t.Fatalf("no key press should leave the cursor free")
	}
	if !g.Update(true, false) || !g.Captured() {
		t.Fatalf("toggle should capture the cursor")
	}
	if g.Update(true, false) || g.Captured() {
		t.Fatalf("second toggle should free the cursor")
	}

	g.Capture()
	if g.Update(true, true) || g.Captured() {
		t.Errorf("frozen input must always free the cursor")
	}
	sets := w.sets
	g.Update(false, true)
	if w.sets != sets {
		t.Errorf("releasing an already free cursor should not touch the window")
	}
}

func TestCameraLook(t *testing.T) {
	move := func(im *InputManager) {
		im.HandleCursorPos(0, 0)
		im.HandleCursorPos(4, -2)
	}

	tests := []struct {
		name     string
		captured bool
		drag     bool
		frozen   bool
		want     bool
	}{
		{"captured", true, false, false, true},
		{"free pointer", false, false, false, false},
		{"free pointer with drag", false, true, false, true},
		{"frozen", true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewInputManager()
			if tt.drag {
				im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
			}
			im.SetFrozen(tt.frozen)
			move(im)

			got := im.CameraLook(tt.captured)
			if (got != nil) != tt.want {
				t.Fatalf("CameraLook = %v, want look=%v", got, tt.want)
			}
			if got != nil && *got != (mgl32.Vec2{4, -2}) {
				t.Errorf("CameraLook = %v, want {4 -2}", *got)
			}
			if im.TakeCameraMovement() != nil {
				t.Errorf("movement should be drained even when it is not used")
			}
		})
	}
}

func TestCaptureOnClick(t *testing.T) {
	w := &fakeWindow{mode: glfw.CursorNormal}
	g := NewCursorGate(w)

	if g.CaptureOnClick(true, true) || g.Captured() {
		t.Fatalf("frozen input must not capture on click")
	}
	if g.CaptureOnClick(false, false) {
		t.Fatalf("no click should not capture")
	}
	if !g.CaptureOnClick(true, false) || !g.Captured() {
		t.Fatalf("click should capture a free pointer")
	}
	if g.CaptureOnClick(true, false) {
		t.Errorf("click on a captured pointer should report no new capture")
	}
}
