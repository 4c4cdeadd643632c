package buffers_test

import (
	"testing"

	"github.com/norman784/amethyst/buffers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStd140Fields(t *testing.T) {

	tests := []struct {
		name        string
		inputs      []buffers.UniformBufferFieldInput
		wantOffsets []int32
		wantSize    int32
	}{
		{
			name: "three mat4",
			inputs: []buffers.UniformBufferFieldInput{
				{Id: 0, Type: buffers.DataTypeMat4},
				{Id: 1, Type: buffers.DataTypeMat4},
				{Id: 2, Type: buffers.DataTypeMat4},
			},
			wantOffsets: []int32{0, 64, 128},
			wantSize:    192,
		},
		{
			name: "float vec3 float mat2",
			inputs: []buffers.UniformBufferFieldInput{
				{Id: 0, Type: buffers.DataTypeFloat32},
				{Id: 1, Type: buffers.DataTypeVec3},
				{Id: 2, Type: buffers.DataTypeFloat32},
				{Id: 3, Type: buffers.DataTypeMat2},
			},
			wantOffsets: []int32{0, 16, 32, 48},
			wantSize:    80,
		},
		{
			name: "float then vec2",
			inputs: []buffers.UniformBufferFieldInput{
				{Id: 0, Type: buffers.DataTypeFloat32},
				{Id: 1, Type: buffers.DataTypeVec2},
			},
			wantOffsets: []int32{0, 8},
			wantSize:    16,
		},
		{
			name: "single float pads to sixteen",
			inputs: []buffers.UniformBufferFieldInput{
				{Id: 0, Type: buffers.DataTypeFloat32},
			},
			wantOffsets: []int32{0},
			wantSize:    16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			fields, size := buffers.BuildStd140Fields(tt.inputs)

			require.Len(t, fields, len(tt.wantOffsets))
			for i := range fields {
				assert.Equal(t, tt.wantOffsets[i], fields[i].AlignedOffset, "field %d", i)
				assert.Equal(t, tt.inputs[i].Id, fields[i].Id, "field %d", i)
				assert.Equal(t, tt.inputs[i].Type, fields[i].Type, "field %d", i)
			}
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        buffers.ElementType
		compCount int32
		size      int32
		alignment int32
	}{
		{dt: buffers.DataTypeFloat32, compCount: 1, size: 4, alignment: 4},
		{dt: buffers.DataTypeUint32, compCount: 1, size: 4, alignment: 4},
		{dt: buffers.DataTypeInt32, compCount: 1, size: 4, alignment: 4},
		{dt: buffers.DataTypeVec2, compCount: 2, size: 8, alignment: 8},
		{dt: buffers.DataTypeVec3, compCount: 3, size: 12, alignment: 16},
		{dt: buffers.DataTypeVec4, compCount: 4, size: 16, alignment: 16},
		{dt: buffers.DataTypeMat2, compCount: 4, size: 16, alignment: 16},
		{dt: buffers.DataTypeMat3, compCount: 9, size: 36, alignment: 16},
		{dt: buffers.DataTypeMat4, compCount: 16, size: 64, alignment: 16},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			assert.Equal(t, tt.compCount, tt.dt.CompCount())
			assert.Equal(t, tt.size, tt.dt.Size())
			assert.Equal(t, tt.alignment, tt.dt.Std140Alignment())
		})
	}
}
