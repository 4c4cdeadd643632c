// Package pass holds render passes: a pass compiles one pipeline effect at
// setup time and submits draw calls for it every frame.
package pass

import (
	_ "embed"

	"github.com/norman784/amethyst/buffers"
	"github.com/norman784/amethyst/camera"
	"github.com/norman784/amethyst/ecs"
	"github.com/norman784/amethyst/hidden"
	"github.com/norman784/amethyst/materials"
	"github.com/norman784/amethyst/meshes"
	"github.com/norman784/amethyst/pipeline"
	"github.com/norman784/amethyst/renderer"
	"github.com/norman784/amethyst/shaders"
	"github.com/norman784/amethyst/transform"
	"github.com/norman784/amethyst/visibility"
)

//go:embed flat.glsl
var flatShaderSrc []byte

// PosColorLayout is the vertex layout flat-colored geometry is stored in:
// position Vec3 at offset 0, color Vec4 at offset 12, stride 28.
func PosColorLayout() pipeline.VertexLayout {
	return pipeline.NewVertexLayout(buffers.DataTypeVec3, buffers.DataTypeVec4)
}

// Data is the frame state a flat pass reads. Everything is borrowed
// read-only for the duration of Apply and not retained. Visibility may be
// nil, meaning no culling ran this frame.
type Data struct {
	Active     camera.Active
	Cameras    *ecs.Storage[camera.Camera]
	MeshAssets *meshes.Assets
	Defaults   materials.Defaults
	Visibility *visibility.Visibility
	Hidden     *ecs.Storage[hidden.Hidden]
	HiddenProp *ecs.Storage[hidden.HiddenPropagate]
	Meshes     *ecs.Storage[meshes.Handle]
	Materials  *ecs.Storage[materials.Material]
	Globals    *ecs.Storage[transform.GlobalTransform]
	Rgbas      *ecs.Storage[renderer.Rgba]
}

type transparency struct {
	mask  pipeline.ColorMask
	blend pipeline.Blend
	depth *pipeline.DepthMode
}

// DrawFlatColored draws meshes without lighting, shaded by vertex color and
// tint only.
type DrawFlatColored struct {
	layout       pipeline.VertexLayout
	transparency *transparency
}

// NewDrawFlatColored creates the pass for geometry stored in the given
// vertex layout.
func NewDrawFlatColored(layout pipeline.VertexLayout) *DrawFlatColored {
	return &DrawFlatColored{layout: layout}
}

// WithTransparency enables alpha blending with exactly the given
// mask/blend/depth triple. Callers choose their own depth policy for
// transparent geometry, commonly test-without-write.
func (d *DrawFlatColored) WithTransparency(mask pipeline.ColorMask, blend pipeline.Blend, depth *pipeline.DepthMode) *DrawFlatColored {
	d.transparency = &transparency{mask: mask, blend: blend, depth: depth}
	return d
}

// Compile builds the pass's immutable effect. Runs once at setup or when
// the configuration changes; a failure is fatal to the pass and surfaced to
// the caller.
func (d *DrawFlatColored) Compile(eff *pipeline.NewEffect) (*pipeline.Effect, error) {

	srcs, err := shaders.ParseCombinedShaderSrc(flatShaderSrc)
	if err != nil {
		return nil, &pipeline.CompileError{Reason: "bad flat shader source", Err: err}
	}

	var vertSrc, fragSrc string
	for _, s := range srcs {
		switch s.Type {
		case shaders.ShaderType_Vertex:
			vertSrc = string(s.Src)
		case shaders.ShaderType_Fragment:
			fragSrc = string(s.Src)
		}
	}

	builder := eff.Simple(vertSrc, fragSrc)
	builder.
		WithRawConstantBuffer("VertexArgs", VertexArgsSize(), 1).
		WithRawVertexBuffer(d.layout)

	if d.transparency != nil {
		builder.WithBlendedOutput("color", d.transparency.mask, d.transparency.blend, d.transparency.depth)
	} else {
		depth := pipeline.DepthMode_LessEqualWrite
		builder.WithOutput("color", &depth)
	}

	return builder.Build()
}

// Apply submits this frame's draw calls. Resolves the camera, then runs one
// of two self-contained routines depending on whether a visibility result
// exists. Draws nothing without a camera.
func (d *DrawFlatColored) Apply(rend renderer.Render, effect *pipeline.Effect, data *Data) {

	cam := getCamera(data)
	if cam == nil {
		return
	}

	if data.Visibility == nil {
		d.drawUnculled(rend, effect, cam, data)
	} else {
		d.drawCulled(rend, effect, cam, data)
	}
}

// drawUnculled draws every entity bearing mesh+material+transform and
// bearing neither hidden flag, in mesh storage order. All geometry is
// treated as opaque so no ordering guarantee is needed.
func (d *DrawFlatColored) drawUnculled(rend renderer.Render, effect *pipeline.Effect, cam *renderer.CameraArgs, data *Data) {

	for _, e := range data.Meshes.Entities() {

		material := data.Materials.Get(e)
		if material == nil {
			continue
		}

		global := data.Globals.Get(e)
		if global == nil {
			continue
		}

		if data.Hidden.Has(e) || data.HiddenProp.Has(e) {
			continue
		}

		d.drawEntity(rend, effect, cam, data, e, material, global)
	}
}

// drawCulled draws the visibility result: the unordered set first, then the
// ordered sequence in its exact order. Hidden flags are not re-checked; the
// visibility resource is authoritative.
func (d *DrawFlatColored) drawCulled(rend renderer.Render, effect *pipeline.Effect, cam *renderer.CameraArgs, data *Data) {

	for _, e := range data.Meshes.Entities() {

		if !data.Visibility.IsUnordered(e) {
			continue
		}

		global := data.Globals.Get(e)
		if global == nil {
			continue
		}

		d.drawEntity(rend, effect, cam, data, e, data.Materials.Get(e), global)
	}

	for _, e := range data.Visibility.VisibleOrdered {

		if !data.Meshes.Has(e) {
			continue
		}

		// An entity with no resolvable transform is skipped rather than
		// drawn at an arbitrary position
		global := data.Globals.Get(e)
		if global == nil {
			continue
		}

		d.drawEntity(rend, effect, cam, data, e, data.Materials.Get(e), global)
	}
}

// drawEntity resolves the entity's mesh asset and optional tint and hands
// one draw to the binder. A mesh that is not yet GPU-resident skips the
// entity for this frame; never an error.
func (d *DrawFlatColored) drawEntity(rend renderer.Render, effect *pipeline.Effect, cam *renderer.CameraArgs, data *Data, e ecs.Entity, material *materials.Material, global *transform.GlobalTransform) {

	handle := data.Meshes.Get(e)
	if handle == nil {
		return
	}

	mesh := data.MeshAssets.Get(*handle)
	if mesh == nil {
		return
	}

	rend.DrawMesh(effect, &renderer.DrawMeshArgs{
		Mesh:      mesh,
		Material:  material,
		Defaults:  data.Defaults,
		Tint:      data.Rgbas.Get(e),
		Camera:    *cam,
		Transform: &global.Mat,
	})
}
