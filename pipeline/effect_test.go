package pipeline_test

import (
	"errors"
	"testing"

	"github.com/norman784/amethyst/buffers"
	"github.com/norman784/amethyst/pipeline"
	"github.com/norman784/amethyst/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFactory struct {
	err      error
	calls    int
	lastVert string
	lastFrag string
}

func (f *fakeFactory) BuildProgram(vertSrc, fragSrc string) (shaders.ShaderProgram, error) {

	f.calls++
	f.lastVert = vertSrc
	f.lastFrag = fragSrc

	if f.err != nil {
		return shaders.ShaderProgram{}, f.err
	}
	return shaders.ShaderProgram{Id: 1}, nil
}

func TestBuildOpaqueDefaults(t *testing.T) {

	factory := &fakeFactory{}
	depth := pipeline.DepthMode_LessEqualWrite

	eff, err := (&pipeline.NewEffect{Factory: factory}).
		Simple("vert", "frag").
		WithRawConstantBuffer("VertexArgs", 192, 1).
		WithRawVertexBuffer(pipeline.NewVertexLayout(buffers.DataTypeVec3, buffers.DataTypeVec4)).
		WithOutput("color", &depth).
		Build()

	require.NoError(t, err)
	require.NotNil(t, eff)

	assert.Equal(t, 1, factory.calls)
	assert.Equal(t, "vert", factory.lastVert)
	assert.Equal(t, "frag", factory.lastFrag)

	assert.Equal(t, pipeline.ColorMask_All, eff.Output.Mask)
	assert.Nil(t, eff.Output.Blend)
	require.NotNil(t, eff.Output.Depth)
	assert.Equal(t, pipeline.DepthMode_LessEqualWrite, *eff.Output.Depth)

	cb := eff.FindConstantBuffer("VertexArgs")
	require.NotNil(t, cb)
	assert.Equal(t, int32(192), cb.Size)
	assert.Equal(t, int32(1), cb.Copies)

	assert.Nil(t, eff.FindConstantBuffer("FragmentArgs"))
}

func TestBuildBlendedOutput(t *testing.T) {

	factory := &fakeFactory{}
	depth := pipeline.DepthMode_LessEqualTest

	eff, err := (&pipeline.NewEffect{Factory: factory}).
		Simple("vert", "frag").
		WithRawVertexBuffer(pipeline.NewVertexLayout(buffers.DataTypeVec3, buffers.DataTypeVec4)).
		WithBlendedOutput("color", pipeline.ColorMask_Red|pipeline.ColorMask_Green, pipeline.AlphaBlend, &depth).
		Build()

	require.NoError(t, err)

	assert.Equal(t, pipeline.ColorMask_Red|pipeline.ColorMask_Green, eff.Output.Mask)
	require.NotNil(t, eff.Output.Blend)
	assert.Equal(t, pipeline.AlphaBlend, *eff.Output.Blend)
	require.NotNil(t, eff.Output.Depth)
	assert.Equal(t, pipeline.DepthMode_LessEqualTest, *eff.Output.Depth)
}

func TestBuildBlendedOutputNilDepth(t *testing.T) {

	factory := &fakeFactory{}

	eff, err := (&pipeline.NewEffect{Factory: factory}).
		Simple("vert", "frag").
		WithRawVertexBuffer(pipeline.NewVertexLayout(buffers.DataTypeVec3)).
		WithBlendedOutput("color", pipeline.ColorMask_All, pipeline.AlphaBlend, nil).
		Build()

	require.NoError(t, err)
	assert.Nil(t, eff.Output.Depth)
}

func TestBuildValidation(t *testing.T) {

	depth := pipeline.DepthMode_LessEqualWrite

	tests := []struct {
		name  string
		build func(f *fakeFactory) (*pipeline.Effect, error)
	}{
		{
			name: "no vertex layout",
			build: func(f *fakeFactory) (*pipeline.Effect, error) {
				return (&pipeline.NewEffect{Factory: f}).
					Simple("vert", "frag").
					WithOutput("color", &depth).
					Build()
			},
		},
		{
			name: "no output",
			build: func(f *fakeFactory) (*pipeline.Effect, error) {
				return (&pipeline.NewEffect{Factory: f}).
					Simple("vert", "frag").
					WithRawVertexBuffer(pipeline.NewVertexLayout(buffers.DataTypeVec3)).
					Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			factory := &fakeFactory{}
			eff, err := tt.build(factory)

			assert.Nil(t, eff)
			var cerr *pipeline.CompileError
			require.ErrorAs(t, err, &cerr)

			// The factory must never run for an invalid description
			assert.Equal(t, 0, factory.calls)
		})
	}
}

func TestBuildFactoryFailure(t *testing.T) {

	baseErr := errors.New("program rejected")
	factory := &fakeFactory{err: baseErr}
	depth := pipeline.DepthMode_LessEqualWrite

	eff, err := (&pipeline.NewEffect{Factory: factory}).
		Simple("vert", "frag").
		WithRawVertexBuffer(pipeline.NewVertexLayout(buffers.DataTypeVec3)).
		WithOutput("color", &depth).
		Build()

	assert.Nil(t, eff)

	var cerr *pipeline.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, baseErr)
}

func TestNewVertexLayout(t *testing.T) {

	tests := []struct {
		name        string
		types       []buffers.ElementType
		wantOffsets []int32
		wantStride  int32
	}{
		{name: "pos color", types: []buffers.ElementType{buffers.DataTypeVec3, buffers.DataTypeVec4}, wantOffsets: []int32{0, 12}, wantStride: 28},
		{name: "pos normal", types: []buffers.ElementType{buffers.DataTypeVec3, buffers.DataTypeVec3}, wantOffsets: []int32{0, 12}, wantStride: 24},
		{name: "pos uv", types: []buffers.ElementType{buffers.DataTypeVec3, buffers.DataTypeVec2}, wantOffsets: []int32{0, 12}, wantStride: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			l := pipeline.NewVertexLayout(tt.types...)

			require.Len(t, l.Elements, len(tt.wantOffsets))
			for i := range l.Elements {
				assert.Equal(t, tt.wantOffsets[i], l.Elements[i].Offset, "element %d", i)
				assert.Equal(t, tt.types[i], l.Elements[i].ElementType, "element %d", i)
			}
			assert.Equal(t, tt.wantStride, l.Stride)
		})
	}
}
