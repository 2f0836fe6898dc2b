package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// CursorWindow is the part of *glfw.Window the cursor gate needs.
type CursorWindow interface {
	GetInputMode(mode glfw.InputMode) int
	SetInputMode(mode glfw.InputMode, value int)
}

// CursorGate switches the pointer between free and captured.
type CursorGate struct {
	window CursorWindow
}

func NewCursorGate(window CursorWindow) *CursorGate {
	return &CursorGate{window: window}
}

// Captured reports whether the pointer is currently hidden and locked.
func (g *CursorGate) Captured() bool {
	return g.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

// Update applies one frame of cursor policy. While frozen the cursor is
// always free; otherwise togglePressed flips between free and captured.
// It returns true when the cursor was captured this frame.
func (g *CursorGate) Update(togglePressed, frozen bool) bool {
	if frozen {
		g.Release()
		return false
	}
	if !togglePressed {
		return false
	}
	if g.Captured() {
		g.Release()
		return false
	}
	g.Capture()
	return true
}

// CaptureOnClick grabs a free pointer when the window is clicked. It
// returns true when the pointer was captured.
func (g *CursorGate) CaptureOnClick(clicked, frozen bool) bool {
	if frozen || !clicked || g.Captured() {
		return false
	}
	g.Capture()
	return true
}

func (g *CursorGate) Capture() {
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (g *CursorGate) Release() {
	if g.window.GetInputMode(glfw.CursorMode) != glfw.CursorNormal {
		g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
