package demo

import (
	"embed"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/flycam/geometry"
	"github.com/paperboard/flycam/glutil"
)

//go:embed shaders
var shaders embed.FS

// must match the layout qualifiers in shaders/cube.vert
const (
	attribVertexPosition = 0
	attribVertexColor    = 1
)

type renderer struct {
	program    uint32
	mvpUniform int32
	mesh       *glutil.Mesh
	models     []mgl32.Mat4
}

func newRenderer(layout geometry.Layout) (*renderer, error) {

	// cleared background color = dark blue
	gl.ClearColor(0, 0, 0.4, 1)

	// draw nearer fragments over farther ones
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	program, err := glutil.LoadProgram(shaders, "shaders/cube.vert", "shaders/cube.frag")
	if err != nil {
		return nil, err
	}

	mvp, err := glutil.UniformLocation(program, "mvp")
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	mesh, err := glutil.NewStaticMesh(geometry.Interleaved(), geometry.VertexSize,
		glutil.Attrib{Location: attribVertexPosition, Size: geometry.VertexPositionSize, Offset: 0},
		glutil.Attrib{Location: attribVertexColor, Size: geometry.VertexColorSize, Offset: geometry.VertexPositionSize},
	)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	return &renderer{program: program, mvpUniform: mvp, mesh: mesh, models: layout.Models}, nil

}

// draw renders every cube instance with projection * view * model.
func (r *renderer) draw(viewProjection mgl32.Mat4) error {

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	for _, model := range r.models {
		mvp := viewProjection.Mul4(model)
		gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
		r.mesh.Draw()
	}

	gl.UseProgram(0)

	// check for accumulated OpenGL errors
	return glutil.CheckError()

}

func (r *renderer) delete() {
	r.mesh.Delete()
	gl.DeleteProgram(r.program)
}
