package cart

import (
	"context"
	"encoding/json"
	"sync"

	"noir-be/internal/logger"

	"go.uber.org/zap"
)

// Store owns the authoritative line items for one session and mirrors
// them to Storage after every mutation, before the mutation returns.
// Mutations are serialized behind a mutex so a read-merge-write never
// interleaves with another operation on the same store.
type Store struct {
	mu       sync.Mutex
	key      string
	items    []Item
	storage  Storage
	degraded bool
}

// NewStore loads any persisted collection for the key. A missing or
// corrupt blob initializes an empty cart rather than failing.
func NewStore(ctx context.Context, key string, storage Storage) *Store {
	s := &Store{key: key, storage: storage}

	data, err := storage.Load(ctx, key)
	if err != nil {
		if err != ErrNotPersisted {
			logger.FromCtx(ctx).Warn("failed to load persisted cart",
				zap.String("cart_key", key),
				zap.Error(err),
			)
		}
		return s
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		logger.FromCtx(ctx).Warn("discarding corrupt persisted cart",
			zap.String("cart_key", key),
			zap.Error(err),
		)
		return s
	}

	s.items = items
	return s
}

// persist mirrors the full collection. A write failure degrades the
// store to memory-only for the rest of the session; the user action
// still succeeds.
func (s *Store) persist(ctx context.Context) {
	if s.degraded {
		return
	}

	data, err := json.Marshal(s.items)
	if err == nil {
		err = s.storage.Save(ctx, s.key, data)
	}
	if err != nil {
		s.degraded = true
		logger.FromCtx(ctx).Warn("cart persistence unavailable, continuing in memory",
			zap.String("cart_key", s.key),
			zap.Error(err),
		)
	}
}

// AddItem appends a line, or sums quantities when the variant is
// already present.
func (s *Store) AddItem(ctx context.Context, item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].VariantID == item.VariantID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}

	s.persist(ctx)
	return nil
}

// RemoveItem deletes the line for the variant; absent lines are a no-op.
func (s *Store) RemoveItem(ctx context.Context, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, variantID)
}

func (s *Store) removeLocked(ctx context.Context, variantID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.VariantID != variantID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// UpdateQuantity sets the line's quantity exactly; a quantity <= 0
// removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, variantID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, variantID)
		return
	}

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the current lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Total sums price x quantity over the snapshot prices stored on each
// line. It intentionally does not reflect live upstream price changes.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
