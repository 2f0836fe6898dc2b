package game

import (
	"fmt"

	"orbitcam/internal/camera"
	"orbitcam/internal/config"
	"orbitcam/internal/physics"
	"orbitcam/internal/profiling"
	"orbitcam/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// PlayerCamera is the entity id of the camera following the player.
const PlayerCamera camera.EntityID = 1

// Controls is one frame of player intent, already read from the devices.
type Controls struct {
	Strafe float32
	Ahead  float32
	// Look is nil when the pointer is not driving the camera.
	Look *mgl32.Vec2
}

// Session is a loaded scene with a follower and the camera orbiting it.
type Session struct {
	World    *physics.World
	Cameras  *camera.Service
	Follower *scene.Follower
	Scene    *scene.Scene
}

func NewSession(sc *scene.Scene) (*Session, error) {
	world := physics.NewWorld()
	if _, err := sc.Build(world); err != nil {
		return nil, fmt.Errorf("game: build scene %q: %w", sc.Name, err)
	}

	spawn := mgl32.Vec3(sc.Spawn)
	spawn[1] = world.GroundLevel(spawn.X(), spawn.Z(), spawn.Y()+2, spawn.Y())
	follower := scene.NewFollower(spawn)

	settings := config.GetCamera()
	cameras := camera.NewService(settings)

	// Start behind the follower looking at it
	focus := follower.Focus(config.GetFocusHeight())
	eye := camera.NewTransform(focus.Add(mgl32.Vec3{0, settings.MaxDistance * 0.4, settings.MaxDistance}))
	eye.LookAt(focus, mgl32.Vec3{0, 1, 0})
	cameras.Spawn(PlayerCamera, eye).SetTarget(focus)

	return &Session{
		World:    world,
		Cameras:  cameras,
		Follower: follower,
		Scene:    sc,
	}, nil
}

// Update advances the follower and the camera by dt seconds and returns
// the transform to render from.
func (s *Session) Update(dt float32, c Controls) camera.Transform {
	rig := s.Cameras.Rig(PlayerCamera)

	func() {
		defer profiling.Track("scene.Follower.Move")()
		s.Follower.Move(rig.Forward(), c.Strafe, c.Ahead, dt, s.World)
	}()
	rig.SetTarget(s.Follower.Focus(config.GetFocusHeight()))

	s.Cameras.SetSettings(config.GetCamera())
	return s.Cameras.Update(PlayerCamera, camera.Frame{
		Dt:       dt,
		Movement: c.Look,
		Caster:   s.World,
	})
}

// ViewMatrix is the view matrix of the player camera.
func (s *Session) ViewMatrix() mgl32.Mat4 {
	return s.Cameras.ViewMatrix(PlayerCamera)
}
