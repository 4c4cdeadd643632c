package pipeline

import (
	"fmt"

	"github.com/norman784/amethyst/shaders"
)

// Factory realizes shader programs on a graphics backend. Pass compilation
// goes through this boundary so it can run (and be tested) without a live
// GL context.
type Factory interface {
	BuildProgram(vertSrc, fragSrc string) (shaders.ShaderProgram, error)
}

// CompileError is the fatal setup-time error class: the backend rejected
// the combined effect description. Never retried; surfaced to whoever is
// assembling the pass.
type CompileError struct {
	Reason string
	Err    error
}

func (e *CompileError) Error() string {

	if e.Err == nil {
		return "effect compilation failed: " + e.Reason
	}
	return fmt.Sprintf("effect compilation failed: %s: %s", e.Reason, e.Err.Error())
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConstantBuffer describes one per-draw uniform block of an effect.
type ConstantBuffer struct {
	Name string
	// Size in bytes of one instance of the block (std140 padded)
	Size int32
	// Copies is the number of instances bound per draw call
	Copies int32
}

// Output is the color/depth output configuration of an effect. A nil Blend
// means blending disabled; a nil Depth means depth test disabled.
type Output struct {
	Name  string
	Mask  ColorMask
	Blend *Blend
	Depth *DepthMode
}

// Effect is an immutable compiled pipeline description: the program plus
// the buffer layouts and output state the program is driven with. Reused
// across frames until explicitly recompiled.
type Effect struct {
	Prog            shaders.ShaderProgram
	Layout          VertexLayout
	ConstantBuffers []ConstantBuffer
	Output          Output
}

// FindConstantBuffer returns the effect's constant buffer of the given
// name, or nil.
func (e *Effect) FindConstantBuffer(name string) *ConstantBuffer {

	for i := range e.ConstantBuffers {
		if e.ConstantBuffers[i].Name == name {
			return &e.ConstantBuffers[i]
		}
	}
	return nil
}

// NewEffect is the entry point handed to a pass's Compile: it carries the
// factory that will realize the program.
type NewEffect struct {
	Factory Factory
}

// Simple starts building an effect from plain vertex+fragment sources.
func (n *NewEffect) Simple(vertSrc, fragSrc string) *EffectBuilder {

	return &EffectBuilder{
		factory: n.Factory,
		vertSrc: vertSrc,
		fragSrc: fragSrc,
	}
}

// EffectBuilder accumulates an effect description, then Build realizes it.
type EffectBuilder struct {
	factory Factory

	vertSrc string
	fragSrc string

	layout          VertexLayout
	constantBuffers []ConstantBuffer
	output          Output
	outputSet       bool
}

// WithRawConstantBuffer declares one per-draw uniform block.
func (b *EffectBuilder) WithRawConstantBuffer(name string, size int32, copies int32) *EffectBuilder {
	b.constantBuffers = append(b.constantBuffers, ConstantBuffer{Name: name, Size: size, Copies: copies})
	return b
}

// WithRawVertexBuffer declares the vertex buffer binding the effect reads.
func (b *EffectBuilder) WithRawVertexBuffer(layout VertexLayout) *EffectBuilder {
	b.layout = layout
	return b
}

// WithOutput requests a plain opaque color output with the given depth mode
// and no blending.
func (b *EffectBuilder) WithOutput(name string, depth *DepthMode) *EffectBuilder {

	b.output = Output{Name: name, Mask: ColorMask_All, Depth: depth}
	b.outputSet = true
	return b
}

// WithBlendedOutput requests a blended color output honoring exactly the
// given mask/blend/depth triple.
func (b *EffectBuilder) WithBlendedOutput(name string, mask ColorMask, blend Blend, depth *DepthMode) *EffectBuilder {

	b.output = Output{Name: name, Mask: mask, Blend: &blend, Depth: depth}
	b.outputSet = true
	return b
}

// Build validates the accumulated description and realizes the program
// through the factory. Any failure is a *CompileError.
func (b *EffectBuilder) Build() (*Effect, error) {

	if len(b.layout.Elements) == 0 {
		return nil, &CompileError{Reason: "no vertex buffer layout declared"}
	}

	if b.layout.Stride <= 0 {
		return nil, &CompileError{Reason: fmt.Sprintf("invalid vertex stride %d", b.layout.Stride)}
	}

	if !b.outputSet {
		return nil, &CompileError{Reason: "no output declared"}
	}

	prog, err := b.factory.BuildProgram(b.vertSrc, b.fragSrc)
	if err != nil {
		return nil, &CompileError{Reason: "program build rejected", Err: err}
	}

	return &Effect{
		Prog:            prog,
		Layout:          b.layout,
		ConstantBuffers: b.constantBuffers,
		Output:          b.output,
	}, nil
}
