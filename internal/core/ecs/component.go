package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a generic sparse-set component store. Components live in a dense
// slice so iteration order is stable for a given sequence of operations;
// removal swaps the last element into the hole.
// No reflect, no interface{}: pure generics.
type Store[T any] struct {
	sparse map[EntityID]int
	ids    []EntityID
	data   []*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		sparse: make(map[EntityID]int, 256),
		ids:    make([]EntityID, 0, 256),
		data:   make([]*T, 0, 256),
	}
}

// Set attaches c to id, replacing any previous component of this type.
func (s *Store[T]) Set(id EntityID, c *T) {
	if i, ok := s.sparse[id]; ok {
		s.data[i] = c
		return
	}
	s.sparse[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

// MustGet returns the component or panics. A missing component here is a
// programming error, not a runtime condition.
func (s *Store[T]) MustGet(id EntityID) *T {
	c, ok := s.Get(id)
	if !ok {
		var zero T
		panic(missingComponent(id, zero))
	}
	return c
}

func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.sparse[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.data[i] = s.data[last]
		s.sparse[s.ids[i]] = i
	}
	s.ids = s.ids[:last]
	s.data[last] = nil
	s.data = s.data[:last]
	delete(s.sparse, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Each visits every component in dense order. fn must not add or remove
// components of this store; collect ids and mutate after the loop.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i, id := range s.ids {
		fn(id, s.data[i])
	}
}

// IDs returns a copy of the ids currently holding this component.
func (s *Store[T]) IDs() []EntityID {
	out := make([]EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}
