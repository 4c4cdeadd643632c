package buffers

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/assert"
	"github.com/norman784/amethyst/logging"
)

// UniformBufferFieldInput declares one field of a uniform block in
// declaration order. Arrays and nested structs are not supported; per-draw
// constant blocks hold a handful of scalars/vectors/matrices.
type UniformBufferFieldInput struct {
	Id   uint16
	Type ElementType
}

type UniformBufferField struct {
	Id            uint16
	AlignedOffset int32
	Type          ElementType
}

type UniformBuffer struct {
	Id uint32
	// Size is the allocated memory in bytes on the GPU for this uniform buffer
	Size   int32
	Fields []UniformBufferField
}

// BuildStd140Fields computes std140 aligned offsets for the given fields and
// the total padded block size. Pure; usable without a GL context.
func BuildStd140Fields(inputs []UniformBufferFieldInput) (fields []UniformBufferField, size int32) {

	fields = make([]UniformBufferField, 0, len(inputs))

	var offset int32 = 0
	seen := make(map[uint16]ElementType, len(inputs))

	for _, in := range inputs {

		existing, ok := seen[in.Id]
		assert.T(!ok, "Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%s and then used on a different field with type=%s", in.Id, existing.String(), in.Type.String())
		seen[in.Id] = in.Type

		boundary := in.Type.Std140Alignment()
		if alignmentError := offset % boundary; alignmentError != 0 {
			offset += boundary - alignmentError
		}

		fields = append(fields, UniformBufferField{Id: in.Id, Type: in.Type, AlignedOffset: offset})

		// Matrices advance as arrays of vec4 columns
		offset += boundary * in.Type.std140Columns()
	}

	// Pad the whole block to a 16 byte boundary
	if alignmentError := offset % 16; alignmentError != 0 {
		offset += 16 - alignmentError
	}

	return fields, offset
}

// NewUniformBuffer allocates a GPU uniform buffer laid out per std140 from
// the given fields.
func NewUniformBuffer(inputs ...UniformBufferFieldInput) UniformBuffer {

	fields, size := BuildStd140Fields(inputs)

	ub := UniformBuffer{Size: size, Fields: fields}

	gl.GenBuffers(1, &ub.Id)
	if ub.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	ub.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, int(ub.Size), gl.Ptr(nil), BufUsage_Dynamic_Draw.ToGL())

	return ub
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *UniformBuffer) SetBindPoint(bindPointIndex uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id)
}

func (ub *UniformBuffer) getField(fieldId uint16, fieldType ElementType) UniformBufferField {

	for i := 0; i < len(ub.Fields); i++ {

		f := ub.Fields[i]
		if f.Id != fieldId {
			continue
		}

		assert.T(f.Type == fieldType, "Uniform buffer field id=%d has type=%s but was accessed as type=%s", fieldId, f.Type.String(), fieldType.String())
		return f
	}

	logging.ErrLog.Panicf("couldn't find uniform buffer field of id=%d and type=%s\n", fieldId, fieldType.String())
	return UniformBufferField{}
}

func (ub *UniformBuffer) SetFloat32(fieldId uint16, val float32) {
	f := ub.getField(fieldId, DataTypeFloat32)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4, gl.Ptr(&val))
}

func (ub *UniformBuffer) SetVec3(fieldId uint16, val *gglm.Vec3) {
	f := ub.getField(fieldId, DataTypeVec3)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*3, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetVec4(fieldId uint16, val *gglm.Vec4) {
	f := ub.getField(fieldId, DataTypeVec4)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*4, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetMat4(fieldId uint16, val *gglm.Mat4) {
	f := ub.getField(fieldId, DataTypeMat4)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*16, gl.Ptr(&val.Data[0][0]))
}
