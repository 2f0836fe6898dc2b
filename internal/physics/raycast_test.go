package physics_test

import (
	"orbitcam/internal/physics"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func unitBox(x, y, z float32) physics.Box {
	return physics.Box{Center: mgl32.Vec3{x, y, z}, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}}
}

func TestCastRay(t *testing.T) {
	w := physics.NewWorld()

	// Wall whose near face sits at x=4.5
	wall := w.Insert(physics.Collider{Name: "wall", Shape: unitBox(5, 0, 0), Body: physics.Fixed})

	start := mgl32.Vec3{0, 0, 0}
	dir := mgl32.Vec3{1, 0, 0}

	// Test 1: ray hits the wall
	hit, ok := w.CastRay(start, dir, 10, true, physics.QueryFilter{})
	if !ok {
		t.Fatalf("Expected hit, got miss")
	}
	if hit.Handle != wall {
		t.Errorf("Expected hit on %v, got %v", wall, hit.Handle)
	}
	if hit.Toi < 4.499 || hit.Toi > 4.501 {
		t.Errorf("Expected toi 4.5, got %f", hit.Toi)
	}

	// Test 2: wall is beyond maxToi
	if _, ok := w.CastRay(start, dir, 4, true, physics.QueryFilter{}); ok {
		t.Errorf("Expected miss due to maxToi")
	}

	// Test 3: wrong direction
	if _, ok := w.CastRay(start, mgl32.Vec3{0, 1, 0}, 10, true, physics.QueryFilter{}); ok {
		t.Errorf("Expected miss, got hit")
	}

	// Test 4: diagonal ray onto a box at (2,2,2); near corner at 1.5 on every axis
	w.Insert(physics.Collider{Shape: unitBox(2, 2, 2), Body: physics.Fixed})
	diag := mgl32.Vec3{1, 1, 1}.Normalize()
	hit, ok = w.CastRay(start, diag, 10, true, physics.QueryFilter{})
	if !ok {
		t.Fatalf("Expected diagonal hit, got miss")
	}
	want := float32(1.5 * 1.7320508)
	if mgl32.Abs(hit.Toi-want) > 1e-3 {
		t.Errorf("Expected toi %f, got %f", want, hit.Toi)
	}
}

func TestCastRayPicksNearest(t *testing.T) {
	w := physics.NewWorld()
	w.Insert(physics.Collider{Shape: unitBox(6, 0, 0), Body: physics.Fixed})
	near := w.Insert(physics.Collider{Shape: unitBox(3, 0, 0), Body: physics.Fixed})
	w.Insert(physics.Collider{Shape: unitBox(9, 0, 0), Body: physics.Fixed})

	hit, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 20, true, physics.QueryFilter{})
	if !ok || hit.Handle != near {
		t.Fatalf("Expected nearest box %v, got %v (ok=%v)", near, hit.Handle, ok)
	}
}

func TestCastRayFilters(t *testing.T) {
	w := physics.NewWorld()
	sensor := w.Insert(physics.Collider{Name: "trigger", Shape: unitBox(1, 0, 0), Body: physics.Fixed, Sensor: true})
	crate := w.Insert(physics.Collider{Name: "crate", Shape: unitBox(2, 0, 0), Body: physics.Dynamic})
	door := w.Insert(physics.Collider{Name: "door", Shape: unitBox(3, 0, 0), Body: physics.KinematicPositionBased})
	wall := w.Insert(physics.Collider{Name: "wall", Shape: unitBox(4, 0, 0), Body: physics.Fixed})

	cameraFilter := physics.OnlyFixed()
	cameraFilter.Flags |= physics.ExcludeSensors

	tests := []struct {
		name   string
		filter physics.QueryFilter
		want   physics.Handle
	}{
		{"no filter hits sensor", physics.QueryFilter{}, sensor},
		{"exclude sensors hits crate", physics.QueryFilter{Flags: physics.ExcludeSensors}, crate},
		{"exclude dynamic and sensors hits door", physics.QueryFilter{Flags: physics.ExcludeSensors | physics.ExcludeDynamic}, door},
		{"only fixed without sensors hits wall", cameraFilter, wall},
		{"only sensors", physics.QueryFilter{Flags: physics.ExcludeSolids}, sensor},
		{"predicate", physics.QueryFilter{Predicate: func(h physics.Handle, c physics.Collider) bool { return c.Name == "door" }}, door},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.CastRay(mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0}, 20, true, tt.filter)
			if !ok {
				t.Fatalf("Expected hit on %v, got miss", tt.want)
			}
			if hit.Handle != tt.want {
				t.Errorf("Expected hit on %v, got %v", tt.want, hit.Handle)
			}
		})
	}
}

func TestCastRayFromInside(t *testing.T) {
	w := physics.NewWorld()
	w.Insert(physics.Collider{Shape: physics.Box{Center: mgl32.Vec3{}, HalfExtents: mgl32.Vec3{2, 2, 2}}, Body: physics.Fixed})

	hit, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 10, true, physics.QueryFilter{})
	if !ok || hit.Toi != 0 {
		t.Errorf("solid: expected toi 0, got %f (ok=%v)", hit.Toi, ok)
	}

	hit, ok = w.CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 10, false, physics.QueryFilter{})
	if !ok || mgl32.Abs(hit.Toi-2) > 1e-5 {
		t.Errorf("hollow: expected toi 2, got %f (ok=%v)", hit.Toi, ok)
	}
}

func TestCastRaySphere(t *testing.T) {
	w := physics.NewWorld()
	w.Insert(physics.Collider{Shape: physics.Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1}, Body: physics.Fixed})

	hit, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 10, true, physics.QueryFilter{})
	if !ok || mgl32.Abs(hit.Toi-4) > 1e-4 {
		t.Errorf("Expected toi 4, got %f (ok=%v)", hit.Toi, ok)
	}

	// Grazing past the side
	if _, ok := w.CastRay(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{0, 0, -1}, 10, true, physics.QueryFilter{}); ok {
		t.Errorf("Expected miss beside the sphere")
	}

	// Pointing away
	if _, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 10, true, physics.QueryFilter{}); ok {
		t.Errorf("Expected miss pointing away")
	}
}

func TestWorldMutation(t *testing.T) {
	w := physics.NewWorld()
	h := w.Insert(physics.Collider{Shape: unitBox(5, 0, 0), Body: physics.Fixed})
	if w.Len() != 1 {
		t.Fatalf("Expected 1 collider, got %d", w.Len())
	}

	if !w.SetPosition(h, mgl32.Vec3{3, 0, 0}) {
		t.Fatalf("SetPosition on live handle failed")
	}
	hit, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 10, true, physics.QueryFilter{})
	if !ok || mgl32.Abs(hit.Toi-2.5) > 1e-5 {
		t.Errorf("Expected toi 2.5 after move, got %f (ok=%v)", hit.Toi, ok)
	}

	if !w.Remove(h) {
		t.Fatalf("Remove on live handle failed")
	}
	if w.Remove(h) {
		t.Errorf("Remove twice should report false")
	}
	if _, ok := w.CastRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 10, true, physics.QueryFilter{}); ok {
		t.Errorf("Expected miss in empty world")
	}
}

func TestGroundLevel(t *testing.T) {
	w := physics.NewWorld()
	w.Insert(physics.Collider{Shape: physics.Box{Center: mgl32.Vec3{0, -0.5, 0}, HalfExtents: mgl32.Vec3{10, 0.5, 10}}, Body: physics.Fixed})
	w.Insert(physics.Collider{Shape: unitBox(3, 0.5, 0), Body: physics.Fixed, Sensor: true})

	if got := w.GroundLevel(0, 0, 5, -10); mgl32.Abs(got) > 1e-5 {
		t.Errorf("Expected ground 0, got %f", got)
	}
	// Sensors are not ground
	if got := w.GroundLevel(3, 0, 5, -10); mgl32.Abs(got) > 1e-5 {
		t.Errorf("Expected ground 0 under sensor, got %f", got)
	}
	if got := w.GroundLevel(50, 50, 5, -10); got != -10 {
		t.Errorf("Expected fallback -10 off the floor, got %f", got)
	}
}
