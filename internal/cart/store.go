package cart

import (
	"context"
	"log"
	"sync"
)

// Store holds the ordered line items of a single cart. It is constructed once
// per client session and passed by handle to consumers; there is no package
// level cart state.
//
// Every mutation writes through to the Persister. Save errors are logged and
// never surfaced: the in-memory state is the source of truth for the active
// session, so a failed write does not roll back or block a mutation.
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	persister Persister
	logger    *log.Logger
}

// NewStore builds a store rehydrated from the persister. A load or decode
// failure degrades to an empty cart, never an error.
func NewStore(ctx context.Context, p Persister, logger *log.Logger) *Store {
	s := &Store{persister: p, logger: logger}
	if p == nil {
		return s
	}

	items, err := p.Load(ctx)
	if err != nil {
		logger.Printf("cart load failed, starting empty: %v", err)
		return s
	}
	for _, it := range items {
		if it.ID == "" || it.Quantity < 1 {
			// stale or hand-edited state; drop the row rather than carry an
			// item that violates the quantity invariant
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

// AddItem appends a new line item with quantity 1, or increments the quantity
// of the existing line when the product id is already present. Insertion order
// is preserved; an increment never reorders the row.
func (s *Store) AddItem(p Product) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.persistLocked()
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, LineItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.ImageRef,
		Category:  p.Category,
		Quantity:  1,
	})
	s.persistLocked()
	s.mu.Unlock()
}

// UpdateQuantity sets the quantity of the line item with the given id. A
// quantity of zero or below removes the line entirely; an unknown id is a
// no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persistLocked()
			break
		}
	}
	s.mu.Unlock()
}

// RemoveItem deletes the line item with the given id; no-op when absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			break
		}
	}
	s.mu.Unlock()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()
}

// Items returns a copy of the line items in insertion order. Mutating the
// returned slice does not affect store state.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItemCount is the sum of quantities across all line items.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the full-precision sum of unit price times quantity. Rounding
// happens at the summary boundary, not here.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, it := range s.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

func (s *Store) snapshotLocked() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), s.snapshotLocked()); err != nil {
		s.logger.Printf("cart save failed: %v", err)
	}
}
