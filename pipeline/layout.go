package pipeline

import (
	"github.com/norman784/amethyst/buffers"
)

// VertexLayout is the ordered attribute list a pass reads per vertex, with
// tightly packed offsets and the combined byte stride. Passes receive it at
// construction; it must match the vertex buffers of every mesh they draw.
type VertexLayout struct {
	Elements []buffers.Element
	Stride   int32
}

func NewVertexLayout(types ...buffers.ElementType) VertexLayout {

	l := VertexLayout{
		Elements: make([]buffers.Element, 0, len(types)),
	}

	for _, t := range types {
		l.Elements = append(l.Elements, buffers.Element{Offset: l.Stride, ElementType: t})
		l.Stride += t.Size()
	}

	return l
}
