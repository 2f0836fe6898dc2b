package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 1280
	WinHeight = 720
)

// Projection handles the perspective matrix for the active viewpoint
type Projection struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		FOV:       70.0,
		NearPlane: 0.05,
		FarPlane:  500.0,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio; minimised windows report 0x0.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.AspectRatio, p.NearPlane, p.FarPlane)
}
