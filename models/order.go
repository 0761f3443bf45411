package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

type Order struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TableNumber  string    `json:"table_number" gorm:"not null"`
	CustomerName string    `json:"customer_name"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type OrderItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    uint   `json:"order_id" gorm:"not null;index"`
	MenuItemID uint   `json:"menu_id"`
	Name       string `json:"name" gorm:"not null"`
	// Unit price copied from the menu at order time. Never re-read from the
	// menu row: completed orders must keep their historical prices.
	Price     float64   `json:"price" gorm:"not null"`
	Qty       int       `json:"qty" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
