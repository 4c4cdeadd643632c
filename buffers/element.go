package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/assert"
)

// Element is one attribute within a vertex buffer layout (e.g. a Vec3 at
// byte offset 12). Offsets are filled in by SetLayout.
type Element struct {
	Offset int32
	ElementType
}

// ElementType is the data type of a buffer element.
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	DataTypeMat2
	DataTypeMat3
	DataTypeMat4
)

func (dt ElementType) GLType() uint32 {

	switch dt {
	case DataTypeUint32:
		return gl.UNSIGNED_INT
	case DataTypeInt32:
		return gl.INT
	case DataTypeFloat32, DataTypeVec2, DataTypeVec3, DataTypeVec4,
		DataTypeMat2, DataTypeMat3, DataTypeMat4:
		return gl.FLOAT
	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint32, DataTypeInt32, DataTypeFloat32:
		return 1
	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4
	case DataTypeMat2:
		return 2 * 2
	case DataTypeMat3:
		return 3 * 3
	case DataTypeMat4:
		return 4 * 4
	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for Vec3 its 3*4=12 bytes).
// All supported component types are 4 bytes wide.
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}

// Std140Alignment returns the std140 base alignment boundary of the type
func (dt ElementType) Std140Alignment() int32 {

	switch dt {
	case DataTypeUint32, DataTypeInt32, DataTypeFloat32:
		return 4
	case DataTypeVec2:
		return 8
	case DataTypeVec3, DataTypeVec4, DataTypeMat2, DataTypeMat3, DataTypeMat4:
		return 16
	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// std140Columns returns how many vec4-aligned columns the type occupies in a
// uniform block. Matrices are laid out as arrays of column vectors.
func (dt ElementType) std140Columns() int32 {

	switch dt {
	case DataTypeMat2:
		return 2
	case DataTypeMat3:
		return 3
	case DataTypeMat4:
		return 4
	default:
		return 1
	}
}

func (dt ElementType) String() string {

	switch dt {
	case DataTypeUint32:
		return "uint32"
	case DataTypeInt32:
		return "int32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"
	case DataTypeMat2:
		return "Mat2"
	case DataTypeMat3:
		return "Mat3"
	case DataTypeMat4:
		return "Mat4"
	default:
		return "Unknown"
	}
}
