package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/norman784/amethyst/ecs"
	"github.com/norman784/amethyst/transform"
)

// Camera holds an entity's projection matrix. The view matrix comes from the
// camera entity's GlobalTransform (see ViewFromWorld).
type Camera struct {
	Proj gglm.Mat4
}

func NewPerspective(fovRad, aspectRatio, nearClip, farClip float32) Camera {
	return Camera{Proj: gglm.Perspective(fovRad, aspectRatio, nearClip, farClip)}
}

func NewOrtho(left, right, bottom, top, nearClip, farClip float32) Camera {
	return Camera{Proj: gglm.Ortho(left, right, bottom, top, nearClip, farClip).Mat4}
}

// Active designates the camera entity a frame should render with.
// NilEntity means no designation; passes fall back to any camera entity.
type Active struct {
	Entity ecs.Entity
}

// Resolve picks the camera entity for a frame: the active designation if it
// names an entity bearing both Camera and GlobalTransform, otherwise the
// first entity bearing both, otherwise NilEntity.
func Resolve(active Active, cams *ecs.Storage[Camera], globals *ecs.Storage[transform.GlobalTransform]) ecs.Entity {

	if active.Entity != ecs.NilEntity && cams.Has(active.Entity) && globals.Has(active.Entity) {
		return active.Entity
	}

	for _, e := range cams.Entities() {
		if globals.Has(e) {
			return e
		}
	}

	return ecs.NilEntity
}

// ViewFromWorld inverts a camera's world transform into a view matrix.
// Assumes a rigid transform (rotation + translation, no scale/shear).
func ViewFromWorld(world *gglm.Mat4) gglm.Mat4 {

	var view gglm.Mat4

	// Transpose the rotation block. gglm matrices are column major,
	// so Data[col][row].
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			view.Data[col][row] = world.Data[row][col]
		}
	}

	// view translation = -transpose(R) * t
	for row := 0; row < 3; row++ {
		var v float32
		for c := 0; c < 3; c++ {
			v += view.Data[c][row] * world.Data[3][c]
		}
		view.Data[3][row] = -v
	}

	view.Data[0][3] = 0
	view.Data[1][3] = 0
	view.Data[2][3] = 0
	view.Data[3][3] = 1

	return view
}
