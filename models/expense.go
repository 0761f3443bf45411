package models

import "time"

type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index;autoCreateTime"`
}
