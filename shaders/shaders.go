package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/logging"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

// ShaderSource is one shader stage's source text, as extracted from a
// combined shader file.
type ShaderSource struct {
	Type ShaderType
	Src  []byte
}

// ParseCombinedShaderSrc splits a combined shader file into its stages.
// Stages are marked with '//shader:vertex', '//shader:fragment' or
// '//shader:geometry'. Vertex and fragment stages are mandatory.
func ParseCombinedShaderSrc(combinedSrc []byte) ([]ShaderSource, error) {

	sections := bytes.Split(combinedSrc, []byte("//shader:"))
	if len(sections) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	out := make([]ShaderSource, 0, 2)
	hasVertex := false
	hasFragment := false

	for i := 0; i < len(sections); i++ {

		src := sections[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[len("vertex"):]
			shdrType = ShaderType_Vertex
			hasVertex = true
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[len("fragment"):]
			shdrType = ShaderType_Fragment
			hasFragment = true
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[len("geometry"):]
			shdrType = ShaderType_Geometry
		} else {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		out = append(out, ShaderSource{Type: shdrType, Src: src})
	}

	if !hasVertex {
		return nil, errors.New("no vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFragment {
		return nil, errors.New("no fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return out, nil
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err: ", err)
		return ShaderProgram{}, err
	}

	return LoadAndCompileCombinedShaderSrc(combinedSource)
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	srcs, err := ParseCombinedShaderSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, errors.New("failed to create new shader program. Err: " + err.Error())
	}

	for i := 0; i < len(srcs); i++ {

		shdr, err := CompileShaderOfType(srcs[i].Src, srcs[i].Type)
		if err != nil {
			return ShaderProgram{}, err
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

// CompileTwoStageProgram compiles separate vertex and fragment sources into
// a linked program.
func CompileTwoStageProgram(vertSrc, fragSrc []byte) (ShaderProgram, error) {

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, err
	}

	vertShdr, err := CompileShaderOfType(vertSrc, ShaderType_Vertex)
	if err != nil {
		return ShaderProgram{}, err
	}
	shdrProg.AttachShader(vertShdr)

	fragShdr, err := CompileShaderOfType(fragSrc, ShaderType_Fragment)
	if err != nil {
		vertShdr.Delete()
		return ShaderProgram{}, err
	}
	shdrProg.AttachShader(fragShdr)

	if err := shdrProg.Link(); err != nil {
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}

func getProgramLinkErrors(progId uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(progId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Linking of program with id ", progId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
