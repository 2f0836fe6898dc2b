package game

import (
	"log"
	"time"

	"orbitcam/internal/graphics"
	"orbitcam/internal/input"
	"orbitcam/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	cursor       *input.CursorGate

	session  *Session
	renderer *graphics.DebugRenderer
	debug    bool

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, session *Session) (*App, error) {
	width, height := window.GetFramebufferSize()
	r := graphics.NewDebugRenderer(width, height)
	if err := r.Init(); err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: im,
		cursor:       input.NewCursorGate(window),
		session:      session,
		renderer:     r,
		debug:        true,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.SetViewport(width, height)
		a.RefreshRender()
	})

	a.cursor.Capture()
	im.ResetCursor()
	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	im := a.inputManager
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleDebug) {
		a.debug = !a.debug
	}
	captured := a.cursor.Update(im.JustPressed(input.ActionToggleCursor), im.Frozen())
	captured = a.cursor.CaptureOnClick(im.JustPressed(input.ActionCapture), im.Frozen()) || captured
	if captured {
		// The pointer jumps when it is recaptured
		im.ResetCursor()
	}

	controls := Controls{
		Strafe: im.Axis(input.ActionMoveLeft, input.ActionMoveRight),
		Ahead:  im.Axis(input.ActionMoveBackward, input.ActionMoveForward),
		Look:   im.CameraLook(a.cursor.Captured()),
	}

	a.session.Update(float32(dt), controls)
	a.render()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	im.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(im.Frozen())
}

func (a *App) render() {
	var markers []graphics.Marker
	if a.debug {
		pending := a.session.Cameras.Rig(PlayerCamera).Pending()
		los := a.session.Cameras.LastLineOfSight(PlayerCamera)
		markers = []graphics.Marker{
			{Position: pending.Target, Size: 0.2, Target: true},
			{Position: los.Location, Size: 0.1},
		}
	}
	a.renderer.Render(a.session.ViewMatrix(), a.session.World, markers...)
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.render()
	a.window.SwapBuffers()
}

func (a *App) Close() {
	a.renderer.Dispose()
}
