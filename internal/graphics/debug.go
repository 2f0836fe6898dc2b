package graphics

import (
	"orbitcam/internal/physics"
	"orbitcam/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const wireframeVert = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;
void main() {
	gl_Position = proj * view * model * vec4(aPos, 1.0);
}
`

const wireframeFrag = `#version 410 core
uniform vec3 color;
out vec4 FragColor;
void main() {
	FragColor = vec4(color, 1.0);
}
`

// Unit cube edges centred on the origin
var cubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

var (
	colorFixed     = mgl32.Vec3{0.85, 0.85, 0.85}
	colorSensor    = mgl32.Vec3{0.2, 0.9, 0.3}
	colorKinematic = mgl32.Vec3{0.3, 0.5, 1.0}
	colorDynamic   = mgl32.Vec3{1.0, 0.6, 0.1}
	colorTarget    = mgl32.Vec3{1.0, 0.2, 0.2}
	colorEye       = mgl32.Vec3{1.0, 1.0, 0.2}
)

// Marker is an extra cube drawn on top of the colliders.
type Marker struct {
	Position mgl32.Vec3
	Size     float32
	Target   bool
}

// DebugRenderer draws every collider in a physics world as a wireframe box
type DebugRenderer struct {
	shader     *Shader
	vao        uint32
	vbo        uint32
	projection *Projection
}

func NewDebugRenderer(width, height int) *DebugRenderer {
	return &DebugRenderer{projection: NewProjection(width, height)}
}

// Init compiles the shader and uploads the cube; needs a current GL context
func (d *DebugRenderer) Init() error {
	gl.Enable(gl.DEPTH_TEST)

	var err error
	d.shader, err = NewShader(wireframeVert, wireframeFrag)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	return nil
}

func (d *DebugRenderer) SetViewport(width, height int) {
	d.projection.SetViewport(width, height)
}

// Render clears the frame and draws the world from view
func (d *DebugRenderer) Render(view mgl32.Mat4, w *physics.World, markers ...Marker) {
	defer profiling.Track("graphics.Render")()

	gl.ClearColor(0.12, 0.13, 0.16, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := d.projection.Matrix()
	d.shader.Use()
	d.shader.SetMatrix4("proj", &proj[0])
	d.shader.SetMatrix4("view", &view[0])
	gl.BindVertexArray(d.vao)
	gl.LineWidth(1.0)

	if w != nil {
		w.Each(func(_ physics.Handle, c physics.Collider) {
			if c.Shape == nil {
				return
			}
			d.drawCube(ColliderModel(c), ColliderColor(c))
		})
	}
	for _, m := range markers {
		color := colorEye
		if m.Target {
			color = colorTarget
		}
		model := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
			Mul4(mgl32.Scale3D(m.Size, m.Size, m.Size))
		d.drawCube(model, color)
	}
}

func (d *DebugRenderer) drawCube(model mgl32.Mat4, color mgl32.Vec3) {
	d.shader.SetMatrix4("model", &model[0])
	d.shader.SetVector3("color", color.X(), color.Y(), color.Z())
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
}

// Dispose cleans up OpenGL resources
func (d *DebugRenderer) Dispose() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.shader != nil {
		d.shader.Dispose()
	}
}

// ColliderModel maps the unit cube onto the collider's bounding box
func ColliderModel(c physics.Collider) mgl32.Mat4 {
	lo, hi := c.Shape.Bounds()
	center := lo.Add(hi).Mul(0.5)
	size := hi.Sub(lo)
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

func ColliderColor(c physics.Collider) mgl32.Vec3 {
	switch {
	case c.Sensor:
		return colorSensor
	case c.Body == physics.Dynamic:
		return colorDynamic
	case c.Body == physics.KinematicPositionBased, c.Body == physics.KinematicVelocityBased:
		return colorKinematic
	}
	return colorFixed
}
