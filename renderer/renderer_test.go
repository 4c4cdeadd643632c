package renderer_test

import (
	"testing"

	"github.com/norman784/amethyst/renderer"
	"github.com/stretchr/testify/assert"
)

func TestResolveTint(t *testing.T) {

	// Absent tint means opaque white
	assert.Equal(t, renderer.RgbaWhite, renderer.ResolveTint(nil))

	tint := renderer.Rgba{R: 0.5, G: 0.25, B: 1, A: 0.75}
	assert.Equal(t, tint, renderer.ResolveTint(&tint))
}
