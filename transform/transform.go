package transform

import (
	"github.com/bloeys/gglm/gglm"
)

// GlobalTransform is an entity's world-space transform matrix, as produced
// by whatever scene-hierarchy propagation ran before rendering.
type GlobalTransform struct {
	Mat gglm.Mat4
}

func Identity() GlobalTransform {
	return GlobalTransform{Mat: gglm.NewMat4Diag(1)}
}

func FromTrMat(tr *gglm.TrMat) GlobalTransform {
	return GlobalTransform{Mat: tr.Mat4}
}
