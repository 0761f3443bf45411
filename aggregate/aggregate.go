package aggregate

import (
	"sort"
	"time"

	"github.com/Neeto7/neetocafebackoffice/models"
)

// OrderWithItems is the composite returned by the active-orders view.
type OrderWithItems struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

// GroupOrders folds flat order and order-item rows into one composite per
// order, newest first. Items whose order id is not among the fetched orders
// are dropped silently; a refetch over the same rows always reproduces the
// same output.
func GroupOrders(orders []models.Order, items []models.OrderItem) []OrderWithItems {
	grouped := make([]OrderWithItems, 0, len(orders))
	index := make(map[uint]int, len(orders))

	for _, order := range orders {
		index[order.ID] = len(grouped)
		grouped = append(grouped, OrderWithItems{Order: order, Items: []models.OrderItem{}})
	}

	for _, item := range items {
		i, ok := index[item.OrderID]
		if !ok {
			continue
		}
		grouped[i].Items = append(grouped[i].Items, item)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].CreatedAt.After(grouped[j].CreatedAt)
	})

	return grouped
}

type HistoryItem struct {
	OrderItemID uint    `json:"order_item_id"`
	MenuItemID  uint    `json:"menu_id"`
	MenuName    string  `json:"menu_name"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

type HistoryOrder struct {
	OrderID      uint          `json:"order_id"`
	CustomerName string        `json:"customer_name"`
	TableNumber  string        `json:"table_number"`
	Items        []HistoryItem `json:"items"`
	TotalPrice   float64       `json:"total_price"`
	FinishedAt   time.Time     `json:"finished_at"`
}

// GroupHistory rebuilds completed orders from the flattened history rows: one
// entry per order id with its items and the recomputed total. Rows without an
// order id are skipped.
func GroupHistory(rows []models.OrderHistory) []HistoryOrder {
	grouped := make([]HistoryOrder, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		if row.OrderID == 0 {
			continue
		}

		i, ok := index[row.OrderID]
		if !ok {
			i = len(grouped)
			index[row.OrderID] = i
			grouped = append(grouped, HistoryOrder{
				OrderID:      row.OrderID,
				CustomerName: row.CustomerName,
				TableNumber:  row.TableNumber,
				Items:        []HistoryItem{},
				FinishedAt:   row.FinishedAt,
			})
		}

		grouped[i].Items = append(grouped[i].Items, HistoryItem{
			OrderItemID: row.OrderItemID,
			MenuItemID:  row.MenuItemID,
			MenuName:    row.MenuName,
			Price:       row.Price,
			Qty:         row.Qty,
		})
		grouped[i].TotalPrice += row.Price * float64(row.Qty)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].FinishedAt.After(grouped[j].FinishedAt)
	})

	return grouped
}
