package memstore

import (
	"slices"

	"github.com/google/uuid"
)

type entity[T any] interface {
	ID() uuid.UUID
	Clone() T
}

// table keeps rows in insertion order so listings are stable across calls.
type table[T entity[T]] struct {
	rows  map[uuid.UUID]T
	order []uuid.UUID
}

func newTable[T entity[T]]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]T)}
}

func (t *table[T]) insert(v T) {
	id := v.ID()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id uuid.UUID) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(o uuid.UUID) bool { return o == id })
}

// staged overlays uncommitted writes on a table. Reads never leak the
// stored pointer; callers always receive a copy.
type staged[T entity[T]] struct {
	base    *table[T]
	upserts map[uuid.UUID]T
	deletes map[uuid.UUID]struct{}
	created []uuid.UUID
}

func newStaged[T entity[T]](base *table[T]) *staged[T] {
	return &staged[T]{
		base:    base,
		upserts: make(map[uuid.UUID]T),
		deletes: make(map[uuid.UUID]struct{}),
	}
}

func (s *staged[T]) get(id uuid.UUID) (T, bool) {
	var zero T
	if _, gone := s.deletes[id]; gone {
		return zero, false
	}
	if v, ok := s.upserts[id]; ok {
		return v.Clone(), true
	}
	if v, ok := s.base.rows[id]; ok {
		return v.Clone(), true
	}
	return zero, false
}

func (s *staged[T]) exists(id uuid.UUID) bool {
	_, ok := s.get(id)
	return ok
}

func (s *staged[T]) list() []T {
	out := make([]T, 0, len(s.base.order)+len(s.created))
	for _, id := range append(slices.Clone(s.base.order), s.created...) {
		if v, ok := s.get(id); ok {
			out = append(out, v)
		}
	}
	return out
}

func (s *staged[T]) create(v T) {
	id := v.ID()
	if _, inBase := s.base.rows[id]; !inBase && !slices.Contains(s.created, id) {
		s.created = append(s.created, id)
	}
	delete(s.deletes, id)
	s.upserts[id] = v.Clone()
}

func (s *staged[T]) save(v T) {
	s.upserts[v.ID()] = v.Clone()
}

func (s *staged[T]) remove(id uuid.UUID) {
	delete(s.upserts, id)
	s.deletes[id] = struct{}{}
}

func (s *staged[T]) dirty() bool {
	return len(s.upserts) > 0 || len(s.deletes) > 0
}

func (s *staged[T]) commit() {
	for id := range s.deletes {
		s.base.remove(id)
	}
	// base rows first so the table keeps its original order
	for _, id := range s.base.order {
		if v, ok := s.upserts[id]; ok {
			s.base.rows[id] = v
		}
	}
	for _, id := range s.created {
		if v, ok := s.upserts[id]; ok {
			s.base.insert(v)
		}
	}
}
