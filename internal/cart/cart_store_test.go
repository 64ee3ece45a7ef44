package cart_test

import (
	"context"
	"testing"

	"github.com/Garvit-office/smart-agriguard/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Add(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	t.Run("insert_at_one_when_absent", func(t *testing.T) {
		assert.NoError(t, store.Add(ctx, "s1", "p1"))

		items, err := store.Get(ctx, "s1")
		assert.NoError(t, err)
		assert.Equal(t, 1, items["p1"])
	})

	t.Run("quantity_equals_call_count", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			assert.NoError(t, store.Add(ctx, "s2", "p1"))
		}

		items, _ := store.Get(ctx, "s2")
		assert.Equal(t, 4, items["p1"])
	})

	t.Run("sessions_are_isolated", func(t *testing.T) {
		_ = store.Add(ctx, "s3", "p1")

		items, _ := store.Get(ctx, "s4")
		assert.Empty(t, items)
	})
}

func TestMemoryStore_Remove(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	t.Run("deletes_entry_regardless_of_quantity", func(t *testing.T) {
		_ = store.Add(ctx, "s1", "p1")
		_ = store.Add(ctx, "s1", "p1")
		_ = store.Add(ctx, "s1", "p2")

		assert.NoError(t, store.Remove(ctx, "s1", "p1"))

		items, _ := store.Get(ctx, "s1")
		assert.NotContains(t, items, "p1")
		assert.Equal(t, 1, items["p2"])
	})

	t.Run("absent_key_is_a_noop", func(t *testing.T) {
		_ = store.Add(ctx, "s2", "p1")

		assert.NoError(t, store.Remove(ctx, "s2", "missing"))

		items, _ := store.Get(ctx, "s2")
		assert.Equal(t, cart.Items{"p1": 1}, items)
	})
}

func TestMemoryStore_ChangeQuantity(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	t.Run("positive_delta_updates_in_place", func(t *testing.T) {
		_ = store.Add(ctx, "s1", "p1")

		assert.NoError(t, store.ChangeQuantity(ctx, "s1", "p1", 3))

		items, _ := store.Get(ctx, "s1")
		assert.Equal(t, 4, items["p1"])
	})

	t.Run("absence_counts_as_zero", func(t *testing.T) {
		assert.NoError(t, store.ChangeQuantity(ctx, "s2", "p1", 2))

		items, _ := store.Get(ctx, "s2")
		assert.Equal(t, 2, items["p1"])
	})

	t.Run("result_zero_removes_key", func(t *testing.T) {
		_ = store.Add(ctx, "s3", "p1")
		_ = store.Add(ctx, "s3", "p1")

		assert.NoError(t, store.ChangeQuantity(ctx, "s3", "p1", -2))

		items, _ := store.Get(ctx, "s3")
		assert.NotContains(t, items, "p1")
	})

	t.Run("result_below_zero_removes_key", func(t *testing.T) {
		_ = store.Add(ctx, "s4", "p1")

		assert.NoError(t, store.ChangeQuantity(ctx, "s4", "p1", -10))

		items, _ := store.Get(ctx, "s4")
		assert.NotContains(t, items, "p1")
	})
}

func TestMemoryStore_Clear(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	_ = store.Add(ctx, "s1", "p1")
	_ = store.Add(ctx, "s1", "p2")
	_ = store.ChangeQuantity(ctx, "s1", "p3", 5)

	assert.NoError(t, store.Clear(ctx, "s1"))

	items, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an already empty cart is fine.
	assert.NoError(t, store.Clear(ctx, "s1"))
}

func TestMemoryStore_GetReturnsSnapshot(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	_ = store.Add(ctx, "s1", "p1")

	items, _ := store.Get(ctx, "s1")
	items["p1"] = 99
	items["p2"] = 1

	fresh, _ := store.Get(ctx, "s1")
	assert.Equal(t, cart.Items{"p1": 1}, fresh)
}

func TestMemoryStore_Subscribe(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := context.Background()

	var events []cart.Event
	unsubscribe := store.Subscribe(func(ev cart.Event) {
		events = append(events, ev)
	})

	_ = store.Add(ctx, "s1", "p1")
	_ = store.ChangeQuantity(ctx, "s1", "p1", 2)
	_ = store.Remove(ctx, "s1", "p1")
	_ = store.Clear(ctx, "s1")

	assert.Equal(t, []cart.Event{
		{SessionID: "s1", Op: cart.OpAdd, ProductID: "p1", Qty: 1},
		{SessionID: "s1", Op: cart.OpChange, ProductID: "p1", Qty: 3},
		{SessionID: "s1", Op: cart.OpRemove, ProductID: "p1"},
		{SessionID: "s1", Op: cart.OpClear},
	}, events)

	t.Run("remove_of_absent_key_does_not_notify", func(t *testing.T) {
		before := len(events)
		_ = store.Remove(ctx, "s1", "missing")
		assert.Len(t, events, before)
	})

	t.Run("negative_delta_on_absent_key_does_not_notify", func(t *testing.T) {
		before := len(events)
		_ = store.ChangeQuantity(ctx, "s1", "missing", -3)
		assert.Len(t, events, before)

		// The result-zero removal of an existing key still notifies.
		_ = store.Add(ctx, "s1", "p9")
		_ = store.ChangeQuantity(ctx, "s1", "p9", -1)
		assert.Len(t, events, before+2)
		assert.Equal(t, cart.Event{SessionID: "s1", Op: cart.OpChange, ProductID: "p9"}, events[len(events)-1])
	})

	t.Run("unsubscribe_stops_delivery", func(t *testing.T) {
		unsubscribe()
		before := len(events)
		_ = store.Add(ctx, "s1", "p2")
		assert.Len(t, events, before)
	})
}
