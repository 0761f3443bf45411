package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveQuantities(t *testing.T) {
	c := New()

	c.Add(1, "Latte", 10000)
	c.Add(1, "Latte", 10000)
	c.Add(1, "Latte", 10000)
	assert.Equal(t, 3, c.Qty(1))

	c.Remove(1)
	c.Remove(1)
	assert.Equal(t, 1, c.Qty(1))

	// A fourth remove evicts the entry entirely.
	c.Remove(1)
	assert.Equal(t, 0, c.Qty(1))
	assert.Equal(t, 0, c.Len())

	// Removing an absent item is a no-op, not a negative quantity.
	c.Remove(1)
	assert.Equal(t, 0, c.Qty(1))
}

func TestRemoveAllEvictsRegardlessOfQuantity(t *testing.T) {
	c := New()

	c.Add(7, "Espresso", 8000)
	c.Add(7, "Espresso", 8000)
	c.Add(7, "Espresso", 8000)
	require.Equal(t, 3, c.Qty(7))

	c.RemoveAll(7)
	assert.Equal(t, 0, c.Qty(7))
	assert.Empty(t, c.Items())
}

func TestTotalRecomputed(t *testing.T) {
	c := New()

	c.Add(1, "Latte", 10000)
	c.Add(1, "Latte", 10000)
	c.Add(2, "Croissant", 5000)
	c.Add(2, "Croissant", 5000)
	c.Add(2, "Croissant", 5000)

	assert.Equal(t, float64(35000), c.Total())

	c.Remove(2)
	assert.Equal(t, float64(30000), c.Total())
}

func TestClearEmptiesEverything(t *testing.T) {
	c := New()

	c.Add(1, "Latte", 10000)
	c.Add(2, "Croissant", 5000)
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Total())
	assert.Empty(t, c.Items())
}

func TestItemsSnapshotKeepsInsertionOrder(t *testing.T) {
	c := New()

	c.Add(3, "Tea", 6000)
	c.Add(1, "Latte", 10000)
	c.Add(2, "Croissant", 5000)
	c.Add(1, "Latte", 10000)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, uint(3), items[0].MenuItemID)
	assert.Equal(t, uint(1), items[1].MenuItemID)
	assert.Equal(t, uint(2), items[2].MenuItemID)
	assert.Equal(t, 2, items[1].Qty)

	// Mutating the snapshot must not touch the cart.
	items[0].Qty = 99
	assert.Equal(t, 1, c.Qty(3))
}

func TestRegistrySeparatesUsers(t *testing.T) {
	r := NewRegistry()

	r.With(1, func(c *Cart) { c.Add(5, "Latte", 10000) })
	r.With(2, func(c *Cart) { c.Add(5, "Latte", 10000); c.Add(5, "Latte", 10000) })

	itemsA, totalA := r.Snapshot(1)
	itemsB, totalB := r.Snapshot(2)

	require.Len(t, itemsA, 1)
	require.Len(t, itemsB, 1)
	assert.Equal(t, 1, itemsA[0].Qty)
	assert.Equal(t, 2, itemsB[0].Qty)
	assert.Equal(t, float64(10000), totalA)
	assert.Equal(t, float64(20000), totalB)

	r.Clear(1)
	itemsA, totalA = r.Snapshot(1)
	assert.Empty(t, itemsA)
	assert.Equal(t, float64(0), totalA)

	// User 2 is untouched.
	_, totalB = r.Snapshot(2)
	assert.Equal(t, float64(20000), totalB)
}
