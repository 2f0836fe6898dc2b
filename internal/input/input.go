package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionToggleCursor
	ActionToggleDebug
	ActionQuit
	ActionCapture  // click into the window to grab the pointer
	ActionDragLook // orbit while held, without capturing the pointer
	ActionCount // Sentinel value for array sizing
)

// InputManager manages keyboard and mouse input state and maps physical keys/buttons to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Pointer movement accumulated since the last TakeCameraMovement
	lastCursor  mgl32.Vec2
	hasCursor   bool
	cursorDelta mgl32.Vec2
	cursorMoved bool

	// frozen is set while menus own the input
	frozen bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	// Set default key bindings
	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionToggleCursor)
	im.BindKey(glfw.KeyF3, ActionToggleDebug)
	im.BindKey(glfw.KeyQ, ActionQuit)

	// Set default mouse button bindings
	im.BindMouseButton(glfw.MouseButtonLeft, ActionCapture)
	im.BindMouseButton(glfw.MouseButtonRight, ActionDragLook)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
// This can be called from a custom key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !isPressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
	im.mu.Unlock()
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
// This can be called from a custom mouse button callback
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !isPressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
	im.mu.Unlock()
}

// Attach installs key, mouse button and cursor callbacks on window.
// This should be called once during initialization
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
}

// HandleCursorPos accumulates pointer movement. The first position after a
// reset only establishes the reference point.
func (im *InputManager) HandleCursorPos(xpos, ypos float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	pos := mgl32.Vec2{float32(xpos), float32(ypos)}
	if !im.hasCursor {
		im.lastCursor = pos
		im.hasCursor = true
		return
	}
	im.cursorDelta = im.cursorDelta.Add(pos.Sub(im.lastCursor))
	im.lastCursor = pos
	im.cursorMoved = true
}

// ResetCursor forgets the reference position, e.g. after the cursor was
// recaptured and jumped.
func (im *InputManager) ResetCursor() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.hasCursor = false
	im.cursorDelta = mgl32.Vec2{}
	im.cursorMoved = false
}

// TakeCameraMovement returns the pointer movement since the previous call,
// or nil when the pointer has not moved.
func (im *InputManager) TakeCameraMovement() *mgl32.Vec2 {
	im.mu.Lock()
	defer im.mu.Unlock()
	if !im.cursorMoved {
		return nil
	}
	delta := im.cursorDelta
	im.cursorDelta = mgl32.Vec2{}
	im.cursorMoved = false
	return &delta
}

// CameraLook drains the pointer movement and returns it when it should
// drive the camera: the pointer is captured, or the drag button is held.
// Frozen input never looks.
func (im *InputManager) CameraLook(captured bool) *mgl32.Vec2 {
	look := im.TakeCameraMovement()
	if im.Frozen() {
		return nil
	}
	if !captured && !im.IsActive(ActionDragLook) {
		return nil
	}
	return look
}

// SetFrozen marks input as owned by a menu; camera and cursor capture
// ignore the player while frozen.
func (im *InputManager) SetFrozen(frozen bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.frozen = frozen
}

func (im *InputManager) Frozen() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.frozen
}

// Axis returns -1, 0 or 1 from a pair of opposing actions.
func (im *InputManager) Axis(negative, positive Action) float32 {
	var v float32
	if im.IsActive(negative) {
		v--
	}
	if im.IsActive(positive) {
		v++
	}
	return v
}

// PostUpdate must be called at the end of each frame to update edge detection states
// This should be called after all input checks are done
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	// Reset edge flags and update prev state
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.prevState[i] = im.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
