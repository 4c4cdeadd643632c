package pipeline

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/assert"
)

// DepthMode is the depth test/write policy of a pass output.
type DepthMode uint8

const (
	// DepthMode_LessEqualTest tests against the depth buffer without writing
	// to it. The usual choice for transparent geometry.
	DepthMode_LessEqualTest DepthMode = iota + 1
	// DepthMode_LessEqualWrite tests against and writes to the depth buffer.
	// The usual choice for opaque geometry.
	DepthMode_LessEqualWrite
)

func (d DepthMode) WritesDepth() bool {
	return d == DepthMode_LessEqualWrite
}

func (d DepthMode) String() string {

	switch d {
	case DepthMode_LessEqualTest:
		return "LessEqualTest"
	case DepthMode_LessEqualWrite:
		return "LessEqualWrite"
	default:
		return "Unknown"
	}
}

// ColorMask selects which color channels a draw writes.
type ColorMask uint8

const (
	ColorMask_Red ColorMask = 1 << iota
	ColorMask_Green
	ColorMask_Blue
	ColorMask_Alpha

	ColorMask_None ColorMask = 0
	ColorMask_All  ColorMask = ColorMask_Red | ColorMask_Green | ColorMask_Blue | ColorMask_Alpha
)

func (c ColorMask) Has(mask ColorMask) bool {
	return c&mask == mask
}

type BlendFactor uint8

const (
	BlendFactor_Zero BlendFactor = iota
	BlendFactor_One
	BlendFactor_SrcAlpha
	BlendFactor_OneMinusSrcAlpha
	BlendFactor_DstAlpha
	BlendFactor_OneMinusDstAlpha
)

func (b BlendFactor) ToGL() uint32 {

	switch b {
	case BlendFactor_Zero:
		return gl.ZERO
	case BlendFactor_One:
		return gl.ONE
	case BlendFactor_SrcAlpha:
		return gl.SRC_ALPHA
	case BlendFactor_OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendFactor_DstAlpha:
		return gl.DST_ALPHA
	case BlendFactor_OneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	}

	assert.T(false, "Unexpected BlendFactor value '%v'", b)
	return 0
}

type BlendEquation uint8

const (
	BlendEquation_Add BlendEquation = iota
	BlendEquation_Subtract
	BlendEquation_ReverseSubtract
	BlendEquation_Min
	BlendEquation_Max
)

func (b BlendEquation) ToGL() uint32 {

	switch b {
	case BlendEquation_Add:
		return gl.FUNC_ADD
	case BlendEquation_Subtract:
		return gl.FUNC_SUBTRACT
	case BlendEquation_ReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case BlendEquation_Min:
		return gl.MIN
	case BlendEquation_Max:
		return gl.MAX
	}

	assert.T(false, "Unexpected BlendEquation value '%v'", b)
	return 0
}

// BlendChannel is the blend function of one output channel group.
type BlendChannel struct {
	Equation BlendEquation
	Src      BlendFactor
	Dst      BlendFactor
}

// Blend is a full blend function: color and alpha channels blended
// separately.
type Blend struct {
	Color BlendChannel
	Alpha BlendChannel
}

// AlphaBlend is standard src-alpha over blending.
var AlphaBlend = Blend{
	Color: BlendChannel{Equation: BlendEquation_Add, Src: BlendFactor_SrcAlpha, Dst: BlendFactor_OneMinusSrcAlpha},
	Alpha: BlendChannel{Equation: BlendEquation_Add, Src: BlendFactor_One, Dst: BlendFactor_OneMinusSrcAlpha},
}
