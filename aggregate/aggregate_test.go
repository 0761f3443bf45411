package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neeto7/neetocafebackoffice/models"
)

func TestGroupOrdersDropsOrphans(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{ID: 1, TableNumber: "4", CreatedAt: now.Add(-2 * time.Minute)},
		{ID: 2, TableNumber: "7", CreatedAt: now.Add(-1 * time.Minute)},
	}
	items := []models.OrderItem{
		{ID: 10, OrderID: 1, Name: "Latte", Price: 10000, Qty: 1},
		{ID: 11, OrderID: 2, Name: "Tea", Price: 6000, Qty: 2},
		{ID: 12, OrderID: 2, Name: "Croissant", Price: 5000, Qty: 1},
		// Items pointing at orders that are not in the fetched set.
		{ID: 13, OrderID: 99, Name: "Ghost", Price: 1, Qty: 1},
		{ID: 14, OrderID: 100, Name: "Ghost", Price: 1, Qty: 1},
	}

	grouped := GroupOrders(orders, items)

	require.Len(t, grouped, 2)
	assert.Equal(t, uint(2), grouped[0].ID, "newest order first")
	assert.Len(t, grouped[0].Items, 2)
	assert.Len(t, grouped[1].Items, 1)
	for _, g := range grouped {
		for _, item := range g.Items {
			assert.NotEqual(t, "Ghost", item.Name)
		}
	}
}

func TestGroupOrdersEmptyOrderKeepsEmptyItems(t *testing.T) {
	orders := []models.Order{{ID: 1, TableNumber: "2", CreatedAt: time.Now()}}

	grouped := GroupOrders(orders, nil)

	require.Len(t, grouped, 1)
	assert.NotNil(t, grouped[0].Items)
	assert.Empty(t, grouped[0].Items)
}

func TestGroupOrdersIdempotent(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{ID: 1, CreatedAt: now},
		{ID: 2, CreatedAt: now.Add(time.Second)},
	}
	items := []models.OrderItem{
		{ID: 10, OrderID: 1, Price: 100, Qty: 1},
		{ID: 11, OrderID: 3, Price: 100, Qty: 1},
	}

	first := GroupOrders(orders, items)
	second := GroupOrders(orders, items)

	assert.Equal(t, first, second)
}

func TestGroupHistoryRebuildsOrders(t *testing.T) {
	finishedLate := time.Date(2024, 3, 10, 14, 0, 0, 0, time.Local)
	finishedEarly := finishedLate.Add(-time.Hour)

	rows := []models.OrderHistory{
		{ID: 1, OrderID: 5, OrderItemID: 50, TableNumber: "3", CustomerName: "Sari", MenuName: "Latte", Price: 10000, Qty: 2, FinishedAt: finishedEarly},
		{ID: 2, OrderID: 5, OrderItemID: 51, TableNumber: "3", CustomerName: "Sari", MenuName: "Croissant", Price: 5000, Qty: 1, FinishedAt: finishedEarly},
		{ID: 3, OrderID: 6, OrderItemID: 52, TableNumber: "8", CustomerName: "Budi", MenuName: "Tea", Price: 6000, Qty: 1, FinishedAt: finishedLate},
		// Rows with no order id are skipped.
		{ID: 4, OrderID: 0, OrderItemID: 53, MenuName: "Stray", Price: 1000, Qty: 1, FinishedAt: finishedLate},
	}

	grouped := GroupHistory(rows)

	require.Len(t, grouped, 2)
	assert.Equal(t, uint(6), grouped[0].OrderID, "most recently finished first")
	assert.Equal(t, uint(5), grouped[1].OrderID)
	assert.Equal(t, float64(25000), grouped[1].TotalPrice)
	assert.Len(t, grouped[1].Items, 2)
	assert.Equal(t, float64(6000), grouped[0].TotalPrice)
}
