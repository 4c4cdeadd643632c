package ecs_test

import (
	"testing"

	"github.com/norman784/amethyst/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSetGet(t *testing.T) {

	w := ecs.NewWorld()
	s := ecs.NewStorage[int]()

	e1 := w.NewEntity()
	e2 := w.NewEntity()

	s.Set(e1, 10)
	s.Set(e2, 20)

	require.True(t, s.Has(e1))
	require.True(t, s.Has(e2))
	assert.Equal(t, 2, s.Len())

	require.NotNil(t, s.Get(e1))
	assert.Equal(t, 10, *s.Get(e1))
	assert.Equal(t, 20, *s.Get(e2))

	// Overwrite keeps one entry
	s.Set(e1, 11)
	assert.Equal(t, 11, *s.Get(e1))
	assert.Equal(t, 2, s.Len())
}

func TestStorageGetMissing(t *testing.T) {

	w := ecs.NewWorld()
	s := ecs.NewStorage[int]()

	e1 := w.NewEntity()
	e2 := w.NewEntity()
	s.Set(e1, 1)

	assert.Nil(t, s.Get(e2))
	assert.False(t, s.Has(e2))
	assert.False(t, s.Has(ecs.NilEntity))
	assert.Nil(t, s.Get(ecs.NilEntity))
}

func TestStorageRemoveSwapsLast(t *testing.T) {

	w := ecs.NewWorld()
	s := ecs.NewStorage[string]()

	e1 := w.NewEntity()
	e2 := w.NewEntity()
	e3 := w.NewEntity()

	s.Set(e1, "a")
	s.Set(e2, "b")
	s.Set(e3, "c")

	s.Remove(e1)

	assert.False(t, s.Has(e1))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "b", *s.Get(e2))
	assert.Equal(t, "c", *s.Get(e3))

	// Last entity moved into the removed slot
	assert.Equal(t, []ecs.Entity{e3, e2}, s.Entities())

	// Removing again is a no-op
	s.Remove(e1)
	assert.Equal(t, 2, s.Len())
}

func TestStorageEntitiesDenseOrder(t *testing.T) {

	w := ecs.NewWorld()
	s := ecs.NewStorage[int]()

	e1 := w.NewEntity()
	e2 := w.NewEntity()
	e3 := w.NewEntity()

	s.Set(e2, 2)
	s.Set(e1, 1)
	s.Set(e3, 3)

	assert.Equal(t, []ecs.Entity{e2, e1, e3}, s.Entities())
}

func TestStorageNilReceiver(t *testing.T) {

	var s *ecs.Storage[int]

	assert.False(t, s.Has(1))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Entities())
}
