package shaders

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/logging"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the program and deletes the attached shader objects, which are
// no longer needed afterwards.
func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
	}

	return getProgramLinkErrors(sp.Id)
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (sp *ShaderProgram) Delete() {
	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}
