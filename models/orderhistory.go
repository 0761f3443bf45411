package models

import "time"

// OrderHistory is the durable, denormalized record written when an order is
// completed: one row per order item.
type OrderHistory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"index"`
	OrderItemID  uint      `json:"order_item_id" gorm:"uniqueIndex"`
	CustomerName string    `json:"customer_name"`
	TableNumber  string    `json:"table_number"`
	MenuItemID   uint      `json:"menu_id"`
	MenuName     string    `json:"menu_name"`
	Price        float64   `json:"price"`
	Qty          int       `json:"qty"`
	Subtotal     float64   `json:"subtotal"`
	Status       string    `json:"status" gorm:"type:varchar(20)"`
	CreatedAt    time.Time `json:"created_at" gorm:"index;autoCreateTime"`
	FinishedAt   time.Time `json:"finished_at"`
}

func (OrderHistory) TableName() string {
	return "order_history"
}
