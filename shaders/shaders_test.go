package shaders_test

import (
	"testing"

	"github.com/norman784/amethyst/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombinedShaderSrc(t *testing.T) {

	src := []byte(`//shader:vertex
void main() { v(); }

//shader:fragment
void main() { f(); }
`)

	srcs, err := shaders.ParseCombinedShaderSrc(src)
	require.NoError(t, err)
	require.Len(t, srcs, 2)

	assert.Equal(t, shaders.ShaderType_Vertex, srcs[0].Type)
	assert.Contains(t, string(srcs[0].Src), "v();")

	assert.Equal(t, shaders.ShaderType_Fragment, srcs[1].Type)
	assert.Contains(t, string(srcs[1].Src), "f();")
}

func TestParseCombinedShaderSrcWithGeometry(t *testing.T) {

	src := []byte(`//shader:vertex
vert
//shader:geometry
geom
//shader:fragment
frag
`)

	srcs, err := shaders.ParseCombinedShaderSrc(src)
	require.NoError(t, err)
	require.Len(t, srcs, 3)
	assert.Equal(t, shaders.ShaderType_Geometry, srcs[1].Type)
}

func TestParseCombinedShaderSrcErrors(t *testing.T) {

	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "no markers", src: "void main() {}"},
		{name: "missing fragment", src: "//shader:vertex\nvert\n"},
		{name: "missing vertex", src: "//shader:fragment\nfrag\n"},
		{name: "unknown stage", src: "//shader:vertex\nvert\n//shader:compute\nbad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shaders.ParseCombinedShaderSrc([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}
