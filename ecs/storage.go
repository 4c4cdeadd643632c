package ecs

// Storage is a sparse-set keyed by Entity holding one component of type T
// per entity. Iteration over Entities() follows dense (insertion, with
// swap-remove holes) order.
type Storage[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{}
}

func (s *Storage[T]) Has(e Entity) bool {

	if s == nil || e == NilEntity || int(e-1) >= len(s.sparse) {
		return false
	}

	idx := s.sparse[e-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns a pointer to the entity's component, or nil if absent.
// The pointer is valid until the next Set/Remove on this storage.
func (s *Storage[T]) Get(e Entity) *T {

	if !s.Has(e) {
		return nil
	}

	return &s.denseValues[s.sparse[e-1]]
}

func (s *Storage[T]) Set(e Entity, v T) {

	if e == NilEntity {
		return
	}

	for int(e-1) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}

	if s.Has(e) {
		s.denseValues[s.sparse[e-1]] = v
		return
	}

	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[e-1] = len(s.denseEntities) - 1
}

func (s *Storage[T]) Remove(e Entity) {

	if !s.Has(e) {
		return
	}

	idx := s.sparse[e-1]
	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e-1] = -1
}

func (s *Storage[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *Storage[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}
