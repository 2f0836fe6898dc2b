package scene

import (
	"fmt"
	"os"
	"strings"

	"orbitcam/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ObjectSpec describes one collider in a scene file.
type ObjectSpec struct {
	Name   string     `yaml:"name"`
	Shape  string     `yaml:"shape"`
	Center [3]float32 `yaml:"center"`
	Size   [3]float32 `yaml:"size"`
	Radius float32    `yaml:"radius"`
	Body   string     `yaml:"body"`
	Sensor bool       `yaml:"sensor"`
}

// Scene is a static playground level.
type Scene struct {
	Name    string       `yaml:"name"`
	Spawn   [3]float32   `yaml:"spawn"`
	Objects []ObjectSpec `yaml:"objects"`
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	for i, o := range s.Objects {
		if _, err := o.Collider(); err != nil {
			return nil, fmt.Errorf("scene: object %d (%s): %w", i, o.Name, err)
		}
	}
	return &s, nil
}

// Collider converts the object into a physics collider.
func (o ObjectSpec) Collider() (physics.Collider, error) {
	body, err := parseBody(o.Body)
	if err != nil {
		return physics.Collider{}, err
	}
	center := mgl32.Vec3(o.Center)

	var shape physics.Shape
	switch strings.ToLower(o.Shape) {
	case "", "box":
		size := mgl32.Vec3(o.Size)
		if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
			return physics.Collider{}, fmt.Errorf("box size must be positive, got %v", o.Size)
		}
		shape = physics.Box{Center: center, HalfExtents: size.Mul(0.5)}
	case "sphere":
		if o.Radius <= 0 {
			return physics.Collider{}, fmt.Errorf("sphere radius must be positive, got %v", o.Radius)
		}
		shape = physics.Sphere{Center: center, Radius: o.Radius}
	default:
		return physics.Collider{}, fmt.Errorf("unknown shape %q", o.Shape)
	}

	return physics.Collider{Name: o.Name, Shape: shape, Body: body, Sensor: o.Sensor}, nil
}

// Build inserts every object into w and returns their handles in order.
func (s *Scene) Build(w *physics.World) ([]physics.Handle, error) {
	handles := make([]physics.Handle, 0, len(s.Objects))
	for i, o := range s.Objects {
		c, err := o.Collider()
		if err != nil {
			return handles, fmt.Errorf("scene: object %d (%s): %w", i, o.Name, err)
		}
		handles = append(handles, w.Insert(c))
	}
	return handles, nil
}

func parseBody(s string) (physics.BodyType, error) {
	switch strings.ToLower(s) {
	case "", "fixed":
		return physics.Fixed, nil
	case "kinematic", "kinematic_position":
		return physics.KinematicPositionBased, nil
	case "kinematic_velocity":
		return physics.KinematicVelocityBased, nil
	case "dynamic":
		return physics.Dynamic, nil
	}
	return physics.Fixed, fmt.Errorf("unknown body type %q", s)
}

const houseScale = 3

// Default returns a built-in level: a floor with a small house on it, a
// doorway in the front wall and a trigger volume inside.
func Default() *Scene {
	box := func(name string, cx, cy, cz, sx, sy, sz float32) ObjectSpec {
		return ObjectSpec{
			Name:   name,
			Shape:  "box",
			Center: [3]float32{cx * houseScale, cy * houseScale, cz * houseScale},
			Size:   [3]float32{sx * houseScale, sy * houseScale, sz * houseScale},
			Body:   "fixed",
		}
	}

	objects := []ObjectSpec{
		{Name: "ground", Shape: "box", Center: [3]float32{0, -0.5, 0}, Size: [3]float32{80, 1, 80}, Body: "fixed"},
		box("wall_back", 0, 0.5, -2, 4, 1, 0.1),
		box("wall_left", -2, 0.5, 0, 0.1, 1, 4),
		box("wall_right", 2, 0.5, 0, 0.1, 1, 4),
		box("wall_front_left", -1.25, 0.5, 2, 1.5, 1, 0.1),
		box("wall_front_right", 1.25, 0.5, 2, 1.5, 1, 0.1),
		box("lintel", 0, 0.9, 2, 1, 0.2, 0.1),
		box("roof", 0, 1.05, 0, 4.4, 0.1, 4.4),
	}
	trigger := box("doorway_trigger", 0, 0.4, 2, 1, 0.8, 0.5)
	trigger.Sensor = true
	objects = append(objects, trigger,
		ObjectSpec{Name: "barrel", Shape: "sphere", Center: [3]float32{8, 0.6, 8}, Radius: 0.6, Body: "dynamic"},
		ObjectSpec{Name: "pillar", Shape: "box", Center: [3]float32{-10, 2, 10}, Size: [3]float32{1, 4, 1}, Body: "fixed"},
	)

	return &Scene{
		Name:    "house",
		Spawn:   [3]float32{0, 0, 14},
		Objects: objects,
	}
}
