package visibility

import (
	"github.com/norman784/amethyst/ecs"
)

// Visibility is the result of a culling stage for one frame. Passes treat it
// as authoritative: hidden flags are assumed to have been applied already.
//
// VisibleUnordered holds opaque geometry whose draw order does not matter.
// VisibleOrdered holds geometry that must be drawn in exactly the given
// sequence (typically transparent geometry sorted back to front).
type Visibility struct {
	VisibleUnordered map[ecs.Entity]struct{}
	VisibleOrdered   []ecs.Entity
}

func New() *Visibility {
	return &Visibility{
		VisibleUnordered: make(map[ecs.Entity]struct{}),
	}
}

func (v *Visibility) AddUnordered(e ecs.Entity) {
	v.VisibleUnordered[e] = struct{}{}
}

func (v *Visibility) AppendOrdered(e ecs.Entity) {
	v.VisibleOrdered = append(v.VisibleOrdered, e)
}

func (v *Visibility) IsUnordered(e ecs.Entity) bool {
	_, ok := v.VisibleUnordered[e]
	return ok
}
