// Package store holds the UI-visible, in-memory product list and keeps
// it consistent with the latest known server state. Merges are
// last-writer-wins by product id; nothing here talks to the network.
package store

import (
	"sync"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
)

type ProductStore struct {
	mu    sync.RWMutex
	items []domain.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Snapshot returns a copy of the current list in display order.
func (s *ProductStore) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *ProductStore) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Merge reflects a canonical server record into the list: an entry with
// the same id is replaced in place, otherwise the record is appended.
func (s *ProductStore) Merge(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.items {
		if cur.ID == p.ID {
			s.items[i] = p
			return
		}
	}
	s.items = append(s.items, p)
}

// Remove drops the entry with the given id. It reports whether an entry
// was present.
func (s *ProductStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.items {
		if cur.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll swaps the whole list, used by hydration and the periodic
// refresh job.
func (s *ProductStore) ReplaceAll(items []domain.Product) {
	next := make([]domain.Product, len(items))
	copy(next, items)
	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
}
