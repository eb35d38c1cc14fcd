package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/imrishuroy/storefront/internal/apperr"
)

// MemoryStore implements Store with a process-lifetime slice.
// Identifiers come from a counter that only moves forward, so deleted ids are never reused.
type MemoryStore struct {
	mu       sync.RWMutex
	products []Product
	nextID   int64
}

// NewMemoryStore returns a store holding products; the next id follows the highest one given.
func NewMemoryStore(products []Product) *MemoryStore {
	s := &MemoryStore{nextID: 1}
	for _, p := range products {
		s.products = append(s.products, p.clone())
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// List returns a copy of the catalog.
func (s *MemoryStore) List(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.clone())
	}
	return out, nil
}

// Create validates in before touching the counter, so a rejected create consumes no id.
func (s *MemoryStore) Create(_ context.Context, in NewProduct) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := build(s.nextID, in)
	if err != nil {
		return Product{}, err
	}
	s.nextID++
	s.products = append(s.products, p)
	return p.clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return Product{}, apperr.NotFound("product not found")
	}
	updated, err := apply(s.products[idx], patch)
	if err != nil {
		return Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	s.products[idx] = updated
	return updated.clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

func (s *MemoryStore) indexOf(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
