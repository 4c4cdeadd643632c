package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/norman784/amethyst/materials"
	"github.com/norman784/amethyst/meshes"
	"github.com/norman784/amethyst/pipeline"
)

// Rgba is a multiplicative color tint component. Entities without one are
// drawn with RgbaWhite.
type Rgba struct {
	R, G, B, A float32
}

var RgbaWhite = Rgba{R: 1, G: 1, B: 1, A: 1}

// ResolveTint maps an absent tint component to opaque white.
func ResolveTint(t *Rgba) Rgba {

	if t == nil {
		return RgbaWhite
	}
	return *t
}

// CameraArgs is the resolved view/projection pair a draw renders with.
type CameraArgs struct {
	Proj gglm.Mat4
	View gglm.Mat4
}

// DrawMeshArgs is everything a binder needs for one draw call. Optional
// fields resolve to documented defaults: nil Material means every texture
// slot uses the engine defaults, nil Tint means opaque white, nil Transform
// means identity placement.
type DrawMeshArgs struct {
	Mesh *meshes.Mesh
	// SkinnedMesh is a secondary mesh for skinning data. Unused by flat
	// passes; always nil there.
	SkinnedMesh *meshes.Mesh
	Material    *materials.Material
	Defaults    materials.Defaults
	Tint        *Rgba
	Camera      CameraArgs
	Transform   *gglm.Mat4
}

// Render is the resource binder boundary: one DrawMesh binds the mesh's
// buffers, uploads the per-draw uniforms, resolves textures from
// material-or-default, applies the tint and issues exactly one draw.
type Render interface {
	DrawMesh(effect *pipeline.Effect, args *DrawMeshArgs)
	FrameEnd()
}
