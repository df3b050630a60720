package memory

import (
	"fmt"
	"sync"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/pkg/objectdto"
)

// documentStore keeps entities as flattened records keyed by ID and decodes
// them back into T on every read, so callers never share memory with the store.
type documentStore[T any] struct {
	mu    sync.RWMutex
	docs  map[string]objectdto.Record
	order []string
}

func newDocumentStore[T any]() *documentStore[T] {
	return &documentStore[T]{docs: make(map[string]objectdto.Record)}
}

func (s *documentStore[T]) put(id string, entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.docs[id] = objectdto.Flatten(entity)
}

func (s *documentStore[T]) exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[id]
	return ok
}

func (s *documentStore[T]) get(id string) (*T, error) {
	s.mu.RLock()
	rec, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return decode[T](rec)
}

// update decodes the document, applies fn and stores the result atomically.
func (s *documentStore[T]) update(id string, fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.docs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	v, err := decode[T](rec)
	if err != nil {
		return err
	}
	if err := fn(v); err != nil {
		return err
	}
	s.docs[id] = objectdto.Flatten(*v)
	return nil
}

// scan decodes every document in insertion order and keeps those matching keep.
func (s *documentStore[T]) scan(keep func(T) bool) ([]T, error) {
	s.mu.RLock()
	recs := make([]objectdto.Record, 0, len(s.order))
	for _, id := range s.order {
		recs = append(recs, s.docs[id])
	}
	s.mu.RUnlock()

	out := []T{}
	for _, rec := range recs {
		v, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(*v) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func decode[T any](rec objectdto.Record) (*T, error) {
	var v T
	if err := objectdto.Decode(rec, &v); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return &v, nil
}

// page applies limit/offset to an already filtered slice.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
