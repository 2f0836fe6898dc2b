package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const parallelEpsilon = 1e-8

// Shape is a collision volume that can answer ray queries.
type Shape interface {
	Position() mgl32.Vec3
	WithPosition(c mgl32.Vec3) Shape
	// Bounds returns the axis-aligned min and max corners.
	Bounds() (mgl32.Vec3, mgl32.Vec3)
	// intersectRay returns the time of impact along dir. A solid shape hit
	// from inside reports 0; a hollow one reports where the ray exits.
	intersectRay(origin, dir mgl32.Vec3, solid bool) (float32, bool)
}

// Box is an axis-aligned cuboid.
type Box struct {
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
}

func (b Box) Position() mgl32.Vec3 { return b.Center }

func (b Box) WithPosition(c mgl32.Vec3) Shape {
	b.Center = c
	return b
}

func (b Box) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	return b.Center.Sub(b.HalfExtents), b.Center.Add(b.HalfExtents)
}

// Slab test against the three axis pairs.
func (b Box) intersectRay(origin, dir mgl32.Vec3, solid bool) (float32, bool) {
	lo, hi := b.Bounds()
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for i := 0; i < 3; i++ {
		if mgl32.Abs(dir[i]) < parallelEpsilon {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		if solid {
			return 0, true
		}
		return tmax, true
	}
	return tmin, true
}

// Sphere is a ball around Center.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func (s Sphere) Position() mgl32.Vec3 { return s.Center }

func (s Sphere) WithPosition(c mgl32.Vec3) Shape {
	s.Center = c
	return s
}

func (s Sphere) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return s.Center.Sub(r), s.Center.Add(r)
}

func (s Sphere) intersectRay(origin, dir mgl32.Vec3, solid bool) (float32, bool) {
	a := dir.Dot(dir)
	if a < parallelEpsilon {
		return 0, false
	}
	m := origin.Sub(s.Center)
	b := m.Dot(dir)
	c := m.Dot(m) - s.Radius*s.Radius
	disc := b*b - a*c

	if c <= 0 {
		if solid {
			return 0, true
		}
		return (-b + float32(math.Sqrt(float64(disc)))) / a, true
	}
	if b > 0 || disc < 0 {
		return 0, false
	}
	return (-b - float32(math.Sqrt(float64(disc)))) / a, true
}
