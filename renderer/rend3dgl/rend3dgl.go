package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/norman784/amethyst/buffers"
	"github.com/norman784/amethyst/materials"
	"github.com/norman784/amethyst/pipeline"
	"github.com/norman784/amethyst/renderer"
	"github.com/norman784/amethyst/shaders"
)

var _ renderer.Render = &Rend3DGL{}
var _ pipeline.Factory = &Rend3DGL{}

// Field ids of the VertexArgs per-draw uniform block
const (
	vertexArgsProj uint16 = iota
	vertexArgsView
	vertexArgsModel
)

const vertexArgsBindPoint uint32 = 0

// Rend3DGL issues flat-pass draw calls through OpenGL. Redundant binds are
// elided by tracking the currently bound vao/program/effect.
type Rend3DGL struct {
	BoundVaoId  uint32
	BoundProgId uint32

	lastEffect *pipeline.Effect

	// Per-draw VertexArgs uniform buffer, created on first draw because GL
	// is not initialized when the renderer is constructed
	vertexArgs buffers.UniformBuffer

	// Uniform/block lookups cached per program id
	unifLocs     map[uint32]map[string]int32
	boundBlocks  map[uint32]bool
	identityMat4 gglm.Mat4
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{
		unifLocs:     make(map[uint32]map[string]int32),
		boundBlocks:  make(map[uint32]bool),
		identityMat4: gglm.NewMat4Diag(1),
	}
}

// BuildProgram implements pipeline.Factory.
func (r *Rend3DGL) BuildProgram(vertSrc, fragSrc string) (shaders.ShaderProgram, error) {
	return shaders.CompileTwoStageProgram([]byte(vertSrc), []byte(fragSrc))
}

func (r *Rend3DGL) DrawMesh(effect *pipeline.Effect, args *renderer.DrawMeshArgs) {

	if args.Mesh == nil {
		return
	}

	if effect != r.lastEffect {
		r.applyEffect(effect)
		r.lastEffect = effect
	}

	if args.Mesh.Vao.Id != r.BoundVaoId {
		args.Mesh.Vao.Bind()
		r.BoundVaoId = args.Mesh.Vao.Id
	}

	r.uploadVertexArgs(args)
	r.bindTextures(args)
	r.setTint(effect.Prog.Id, args.Tint)

	for i := 0; i < len(args.Mesh.SubMeshes); i++ {
		sub := &args.Mesh.SubMeshes[i]
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, sub.IndexCount, gl.UNSIGNED_INT, uintptr(sub.BaseIndex*4), sub.BaseVertex)
	}
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundProgId = 0
	r.lastEffect = nil
}

func (r *Rend3DGL) applyEffect(effect *pipeline.Effect) {

	if effect.Prog.Id != r.BoundProgId {
		effect.Prog.Bind()
		r.BoundProgId = effect.Prog.Id
	}

	if !r.boundBlocks[effect.Prog.Id] {
		r.bindVertexArgsBlock(effect)
		r.boundBlocks[effect.Prog.Id] = true
	}

	out := &effect.Output

	if out.Depth == nil {
		gl.Disable(gl.DEPTH_TEST)
	} else {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
		gl.DepthMask(out.Depth.WritesDepth())
	}

	if out.Blend == nil {
		gl.Disable(gl.BLEND)
	} else {
		gl.Enable(gl.BLEND)
		gl.BlendEquationSeparate(out.Blend.Color.Equation.ToGL(), out.Blend.Alpha.Equation.ToGL())
		gl.BlendFuncSeparate(out.Blend.Color.Src.ToGL(), out.Blend.Color.Dst.ToGL(), out.Blend.Alpha.Src.ToGL(), out.Blend.Alpha.Dst.ToGL())
	}

	gl.ColorMask(out.Mask.Has(pipeline.ColorMask_Red), out.Mask.Has(pipeline.ColorMask_Green), out.Mask.Has(pipeline.ColorMask_Blue), out.Mask.Has(pipeline.ColorMask_Alpha))
}

func (r *Rend3DGL) bindVertexArgsBlock(effect *pipeline.Effect) {

	cb := effect.FindConstantBuffer("VertexArgs")
	if cb == nil {
		return
	}

	nullStr := gl.Str("VertexArgs\x00")
	index := gl.GetUniformBlockIndex(effect.Prog.Id, nullStr)
	if index == gl.INVALID_INDEX {
		return
	}

	gl.UniformBlockBinding(effect.Prog.Id, index, vertexArgsBindPoint)
}

func (r *Rend3DGL) uploadVertexArgs(args *renderer.DrawMeshArgs) {

	if r.vertexArgs.Id == 0 {
		r.vertexArgs = buffers.NewUniformBuffer(
			buffers.UniformBufferFieldInput{Id: vertexArgsProj, Type: buffers.DataTypeMat4},
			buffers.UniformBufferFieldInput{Id: vertexArgsView, Type: buffers.DataTypeMat4},
			buffers.UniformBufferFieldInput{Id: vertexArgsModel, Type: buffers.DataTypeMat4},
		)
		r.vertexArgs.SetBindPoint(vertexArgsBindPoint)
	}

	model := args.Transform
	if model == nil {
		model = &r.identityMat4
	}

	r.vertexArgs.Bind()
	r.vertexArgs.SetMat4(vertexArgsProj, &args.Camera.Proj)
	r.vertexArgs.SetMat4(vertexArgsView, &args.Camera.View)
	r.vertexArgs.SetMat4(vertexArgsModel, model)
}

func (r *Rend3DGL) bindTextures(args *renderer.DrawMeshArgs) {

	gl.ActiveTexture(uint32(gl.TEXTURE0 + materials.TextureSlot_Albedo))
	gl.BindTexture(gl.TEXTURE_2D, materials.ResolveAlbedo(args.Material, &args.Defaults))

	gl.ActiveTexture(uint32(gl.TEXTURE0 + materials.TextureSlot_Emission))
	gl.BindTexture(gl.TEXTURE_2D, materials.ResolveEmission(args.Material, &args.Defaults))
}

func (r *Rend3DGL) setTint(progId uint32, tint *renderer.Rgba) {

	loc := r.getUnifLoc(progId, "tint")
	if loc == -1 {
		return
	}

	t := renderer.ResolveTint(tint)
	vals := [4]float32{t.R, t.G, t.B, t.A}
	gl.ProgramUniform4fv(progId, loc, 1, &vals[0])
}

func (r *Rend3DGL) getUnifLoc(progId uint32, uniformName string) int32 {

	locs, ok := r.unifLocs[progId]
	if !ok {
		locs = make(map[string]int32)
		r.unifLocs[progId] = locs
	}

	loc, ok := locs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(progId, name)
	locs[uniformName] = loc
	return loc
}
