package pass

import (
	"github.com/norman784/amethyst/buffers"
	"github.com/norman784/amethyst/camera"
	"github.com/norman784/amethyst/ecs"
	"github.com/norman784/amethyst/renderer"
)

// VertexArgsSize is the std140 padded byte size of the per-draw VertexArgs
// uniform block (proj, view, model matrices).
func VertexArgsSize() int32 {

	_, size := buffers.BuildStd140Fields([]buffers.UniformBufferFieldInput{
		{Id: 0, Type: buffers.DataTypeMat4},
		{Id: 1, Type: buffers.DataTypeMat4},
		{Id: 2, Type: buffers.DataTypeMat4},
	})

	return size
}

// getCamera resolves the frame's camera into view/projection arguments, or
// nil when no usable camera entity exists.
func getCamera(data *Data) *renderer.CameraArgs {

	e := camera.Resolve(data.Active, data.Cameras, data.Globals)
	if e == ecs.NilEntity {
		return nil
	}

	cam := data.Cameras.Get(e)
	global := data.Globals.Get(e)

	return &renderer.CameraArgs{
		Proj: cam.Proj,
		View: camera.ViewFromWorld(&global.Mat),
	}
}
