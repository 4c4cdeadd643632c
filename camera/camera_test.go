package camera_test

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/norman784/amethyst/camera"
	"github.com/norman784/amethyst/ecs"
	"github.com/norman784/amethyst/transform"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {

	w := ecs.NewWorld()

	camWithGlobal := w.NewEntity()
	camWithoutGlobal := w.NewEntity()
	plainEntity := w.NewEntity()

	cams := ecs.NewStorage[camera.Camera]()
	globals := ecs.NewStorage[transform.GlobalTransform]()

	cams.Set(camWithoutGlobal, camera.NewOrtho(-1, 1, -1, 1, 0.1, 10))
	cams.Set(camWithGlobal, camera.NewOrtho(-1, 1, -1, 1, 0.1, 10))
	globals.Set(camWithGlobal, transform.Identity())
	globals.Set(plainEntity, transform.Identity())

	tests := []struct {
		name   string
		active camera.Active
		want   ecs.Entity
	}{
		{name: "active designates a usable camera", active: camera.Active{Entity: camWithGlobal}, want: camWithGlobal},
		{name: "active without transform falls back", active: camera.Active{Entity: camWithoutGlobal}, want: camWithGlobal},
		{name: "active without camera falls back", active: camera.Active{Entity: plainEntity}, want: camWithGlobal},
		{name: "no designation picks first usable", active: camera.Active{}, want: camWithGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, camera.Resolve(tt.active, cams, globals))
		})
	}
}

func TestResolveNoUsableCamera(t *testing.T) {

	w := ecs.NewWorld()
	e := w.NewEntity()

	cams := ecs.NewStorage[camera.Camera]()
	globals := ecs.NewStorage[transform.GlobalTransform]()

	// Camera without a transform is not usable
	cams.Set(e, camera.NewOrtho(-1, 1, -1, 1, 0.1, 10))

	assert.Equal(t, ecs.NilEntity, camera.Resolve(camera.Active{}, cams, globals))
}

func TestViewFromWorldIdentity(t *testing.T) {

	world := gglm.NewMat4Diag(1)
	view := camera.ViewFromWorld(&world)

	assert.Equal(t, world.Data, view.Data)
}

func TestViewFromWorldTranslation(t *testing.T) {

	world := gglm.NewMat4Diag(1)
	world.Data[3][0] = 1
	world.Data[3][1] = 2
	world.Data[3][2] = 3

	view := camera.ViewFromWorld(&world)

	// Inverse of a pure translation negates it
	assert.InDelta(t, -1, view.Data[3][0], 1e-6)
	assert.InDelta(t, -2, view.Data[3][1], 1e-6)
	assert.InDelta(t, -3, view.Data[3][2], 1e-6)
	assert.InDelta(t, 1, view.Data[3][3], 1e-6)

	// Rotation block stays identity
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			want := float32(0)
			if col == row {
				want = 1
			}
			assert.InDelta(t, want, view.Data[col][row], 1e-6)
		}
	}
}

func TestViewFromWorldRotation(t *testing.T) {

	// 90 degree rotation around Y: columns are the rotated basis vectors
	world := gglm.NewMat4Diag(1)
	world.Data[0][0] = 0
	world.Data[0][2] = -1
	world.Data[2][0] = 1
	world.Data[2][2] = 0
	world.Data[3][0] = 5

	view := camera.ViewFromWorld(&world)

	// view rotation is the transpose
	assert.InDelta(t, 0, view.Data[0][0], 1e-6)
	assert.InDelta(t, 1, view.Data[0][2], 1e-6)
	assert.InDelta(t, -1, view.Data[2][0], 1e-6)
	assert.InDelta(t, 0, view.Data[2][2], 1e-6)

	// view translation = -transpose(R) * t, t = (5,0,0)
	assert.InDelta(t, 0, view.Data[3][0], 1e-6)
	assert.InDelta(t, 0, view.Data[3][1], 1e-6)
	assert.InDelta(t, -5, view.Data[3][2], 1e-6)
}
