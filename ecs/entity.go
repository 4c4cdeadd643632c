package ecs

// Entity identifies an entity. Zero is never a valid entity.
type Entity uint32

const NilEntity Entity = 0

// World hands out entity ids. Component data lives in per-type Storages,
// not in the world itself.
type World struct {
	lastId Entity
}

func NewWorld() *World {
	return &World{}
}

func (w *World) NewEntity() Entity {
	w.lastId++
	return w.lastId
}
