package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/code-differently/cs-25-2-team2/internal/storage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// StorageKey is the single key the cart occupies in the backing store.
const StorageKey = "spud_cart"

// Store holds the in-progress order as one JSON array under StorageKey.
// Every mutation rewrites the whole array and then notifies subscribers, who
// re-read the store themselves; the notification carries no payload.
//
// The store is reachable from concurrent HTTP handlers, so mutations serialize
// on a mutex.
type Store struct {
	mu        sync.Mutex
	kv        storage.KV
	listeners []func()
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Subscribe registers a listener invoked after every cart mutation. Listeners
// run synchronously in registration order for a single mutation; no ordering
// is guaranteed across mutations racing on different requests.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Items returns the current cart lines. Absent or malformed stored data is
// treated as an empty cart, never an error.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items()
}

func (s *Store) items() []Item {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil || !ok {
		if err != nil {
			slog.Error("error reading cart from storage", slog.String(logkey.ERROR, err.Error()))
		}
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Error("error parsing stored cart, treating as empty", slog.String(logkey.ERROR, err.Error()))
		return []Item{}
	}
	return items
}

// Save persists the full line sequence, replacing any prior value, and
// notifies subscribers.
func (s *Store) Save(items []Item) error {
	s.mu.Lock()
	err := s.save(items)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) save(items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.kv.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// AddItem merges the item into the cart: an existing line with the same id has
// its quantity incremented, otherwise a new line is appended. A quantity below
// one counts as one. Returns the updated sequence.
func (s *Store) AddItem(item Item, quantity int) ([]Item, error) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	items := s.items()
	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		item.Quantity = quantity
		items = append(items, item)
	}
	err := s.save(items)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.notify()
	return items, nil
}

// UpdateQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line, keeping the stored-quantity >= 1 invariant
// in one place instead of at every call site.
func (s *Store) UpdateQuantity(id int, quantity int) ([]Item, error) {
	s.mu.Lock()
	items := s.items()
	updated := items[:0]
	for _, item := range items {
		if item.ID == id {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		updated = append(updated, item)
	}
	err := s.save(updated)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.notify()
	return updated, nil
}

// RemoveItem drops the matching line. Removing an absent id is a no-op.
func (s *Store) RemoveItem(id int) ([]Item, error) {
	s.mu.Lock()
	items := s.items()
	updated := items[:0]
	for _, item := range items {
		if item.ID != id {
			updated = append(updated, item)
		}
	}
	err := s.save(updated)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.notify()
	return updated, nil
}

// Clear deletes all stored lines and notifies subscribers once.
func (s *Store) Clear() ([]Item, error) {
	s.mu.Lock()
	err := s.kv.Delete(StorageKey)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	s.notify()
	return []Item{}, nil
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
