package cart

import (
	"context"
	"sync"
)

// Op identifies the kind of mutation carried on a store event.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpChange Op = "change"
	OpClear  Op = "clear"
)

// Event describes a single cart mutation. Qty is the quantity of the
// product after the mutation (0 when the entry was removed).
type Event struct {
	SessionID string `json:"session_id"`
	Op        Op     `json:"op"`
	ProductID string `json:"product_id,omitempty"`
	Qty       int    `json:"qty"`
}

// Items maps product id to quantity. Invariant: no entry with qty <= 0.
type Items map[string]int

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type Store interface {
	// Add increments the product's quantity by 1, inserting at 1 if absent.
	Add(ctx context.Context, sessionID, productID string) error

	// Remove deletes the entry entirely. Absent keys are a no-op, not an error.
	Remove(ctx context.Context, sessionID, productID string) error

	// ChangeQuantity adds delta to the current quantity (absence counts as 0).
	// A resulting quantity <= 0 deletes the entry.
	ChangeQuantity(ctx context.Context, sessionID, productID string, delta int) error

	// Clear resets the session's cart to empty.
	Clear(ctx context.Context, sessionID string) error

	// Get returns a snapshot of the session's cart. Mutating the returned
	// map does not affect the store.
	Get(ctx context.Context, sessionID string) (Items, error)

	// Subscribe registers fn to be called after every mutation. The returned
	// function removes the subscription.
	Subscribe(fn func(Event)) func()
}

// notifier implements the subscription half of Store, shared by the
// memory and redis backends.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

func (n *notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(Event))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) publish(ev Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

type memoryStore struct {
	notifier

	cartsMu sync.Mutex
	carts   map[string]Items
}

// NewMemoryStore returns the in-process Store. Carts live for the
// session only and are discarded with the process.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string]Items)}
}

func (s *memoryStore) Add(_ context.Context, sessionID, productID string) error {
	s.cartsMu.Lock()
	items := s.carts[sessionID]
	if items == nil {
		items = make(Items)
		s.carts[sessionID] = items
	}
	items[productID]++
	qty := items[productID]
	s.cartsMu.Unlock()

	s.publish(Event{SessionID: sessionID, Op: OpAdd, ProductID: productID, Qty: qty})
	return nil
}

func (s *memoryStore) Remove(_ context.Context, sessionID, productID string) error {
	s.cartsMu.Lock()
	items := s.carts[sessionID]
	_, existed := items[productID]
	delete(items, productID)
	s.cartsMu.Unlock()

	if existed {
		s.publish(Event{SessionID: sessionID, Op: OpRemove, ProductID: productID})
	}
	return nil
}

func (s *memoryStore) ChangeQuantity(_ context.Context, sessionID, productID string, delta int) error {
	s.cartsMu.Lock()
	items := s.carts[sessionID]
	if items == nil {
		items = make(Items)
		s.carts[sessionID] = items
	}

	prev, existed := items[productID]
	qty := prev + delta
	if qty <= 0 {
		delete(items, productID)
		qty = 0
	} else {
		items[productID] = qty
	}
	s.cartsMu.Unlock()

	// A non-positive delta against an absent key changes nothing, so no
	// event goes out, same as Remove on an absent key.
	if !existed && qty == 0 {
		return nil
	}

	s.publish(Event{SessionID: sessionID, Op: OpChange, ProductID: productID, Qty: qty})
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.cartsMu.Lock()
	delete(s.carts, sessionID)
	s.cartsMu.Unlock()

	s.publish(Event{SessionID: sessionID, Op: OpClear})
	return nil
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (Items, error) {
	s.cartsMu.Lock()
	defer s.cartsMu.Unlock()

	snapshot := make(Items, len(s.carts[sessionID]))
	for id, qty := range s.carts[sessionID] {
		snapshot[id] = qty
	}
	return snapshot, nil
}
