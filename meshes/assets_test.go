package meshes_test

import (
	"testing"

	"github.com/norman784/amethyst/meshes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsAddGet(t *testing.T) {

	a := meshes.NewAssets()

	m := &meshes.Mesh{Name: "tri"}
	h := a.Add(m)

	require.NotEqual(t, meshes.NilHandle, h)
	assert.Same(t, m, a.Get(h))
}

func TestAssetsReserveThenInsert(t *testing.T) {

	a := meshes.NewAssets()

	h := a.Reserve()

	// Reserved but not resident yet
	assert.Nil(t, a.Get(h))

	m := &meshes.Mesh{Name: "quad"}
	a.Insert(h, m)
	assert.Same(t, m, a.Get(h))
}

func TestAssetsGetUnknownHandle(t *testing.T) {

	a := meshes.NewAssets()

	assert.Nil(t, a.Get(meshes.NilHandle))
	assert.Nil(t, a.Get(meshes.Handle(42)))
}

func TestAssetsInsertInvalidHandle(t *testing.T) {

	a := meshes.NewAssets()

	// Inserting under a handle that was never reserved is ignored
	a.Insert(meshes.Handle(7), &meshes.Mesh{Name: "stray"})
	assert.Nil(t, a.Get(meshes.Handle(7)))

	a.Insert(meshes.NilHandle, &meshes.Mesh{Name: "nil"})
	assert.Nil(t, a.Get(meshes.NilHandle))
}
